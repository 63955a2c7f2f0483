// Package validation checks a loaded project list against the data
// invariants: unique project ids, unique dates within a project, and
// known billing types. The store never produces violations itself;
// hand-edited or foreign storage can.
package validation

import (
	"fmt"
	"time"

	"github.com/julianstephens/summon/internal/calendar"
	"github.com/julianstephens/summon/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateProjectID ConflictType = "duplicate_project_id"
	ConflictDuplicateDate      ConflictType = "duplicate_date"
	ConflictInvalidBillingType ConflictType = "invalid_billing_type"
	ConflictInvalidDate        ConflictType = "invalid_date"
	ConflictEmptyName          ConflictType = "empty_name"
)

// Conflict represents a detected conflict in the project list
type Conflict struct {
	Type        ConflictType
	Description string
	ProjectIDs  []int64 // IDs of projects involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator validates project lists for invariant violations
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateProjects checks the list for invariant violations.
func (v *Validator) ValidateProjects(projects []models.Project) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	idCount := make(map[int64]int)
	for _, p := range projects {
		idCount[p.ID]++
	}
	for _, p := range projects {
		if idCount[p.ID] > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateProjectID,
				Description: fmt.Sprintf("Duplicate project id %d (%q)", p.ID, p.Name),
				ProjectIDs:  []int64{p.ID},
			})
			idCount[p.ID] = 1 // report each duplicated id once
		}
	}

	for _, p := range projects {
		if p.Name == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictEmptyName,
				Description: fmt.Sprintf("Project %d has an empty name", p.ID),
				ProjectIDs:  []int64{p.ID},
			})
		}

		if _, err := models.ParseBillingType(string(p.Type)); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidBillingType,
				Description: fmt.Sprintf("Project %q has invalid billing type %q", p.Name, p.Type),
				ProjectIDs:  []int64{p.ID},
			})
		}

		seen := make(map[string]bool, len(p.Dates))
		for _, d := range p.Dates {
			if seen[d.Date] {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictDuplicateDate,
					Description: fmt.Sprintf("Project %q has duplicate date %s", p.Name, d.Date),
					ProjectIDs:  []int64{p.ID},
				})
				continue
			}
			seen[d.Date] = true

			if !isValidDate(d.Date) {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictInvalidDate,
					Description: fmt.Sprintf("Project %q has invalid date %q", p.Name, d.Date),
					ProjectIDs:  []int64{p.ID},
				})
			}
		}
	}

	return result
}

func isValidDate(s string) bool {
	t, err := time.ParseInLocation(calendar.DateFormat, s, time.Local)
	if err != nil {
		return false
	}
	// Reject dates that parse but do not round-trip, e.g. 2024-1-5.
	return t.Format(calendar.DateFormat) == s
}
