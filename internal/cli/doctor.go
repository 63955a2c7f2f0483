package cli

import (
	"fmt"

	"github.com/julianstephens/summon/internal/backup"
	"github.com/julianstephens/summon/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: storage readable and parseable. Initialize swallows
	// this on normal startup; doctor surfaces it.
	projects, err := ctx.Provider.Load()
	if err != nil {
		fmt.Printf("❌ Storage readable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage readable: OK (%d projects)\n", len(projects))
	}

	// Check 2: data invariants
	if err == nil {
		result := validation.New().ValidateProjects(projects)
		if result.HasConflicts() {
			fmt.Printf("❌ Data invariants: FAIL\n")
			for _, conflict := range result.Conflicts {
				fmt.Printf("   - %s\n", conflict.Description)
			}
			hasError = true
		} else {
			fmt.Printf("✓ Data invariants: OK\n")
		}
	}

	// Check 3: backups present (warning only)
	mgr := backup.NewManager(ctx.Provider.ConfigPath())
	backups, listErr := mgr.ListBackups()
	switch {
	case listErr != nil:
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", listErr)
	case len(backups) == 0:
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   No backups yet; run 'summon backup create'\n")
	default:
		fmt.Printf("✓ Backups present: OK (%d)\n", len(backups))
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}
