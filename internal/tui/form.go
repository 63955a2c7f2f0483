package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/summon/internal/models"
)

// ProjectFormModel is the add-project draft. It lives only while the
// form is open and is discarded on cancel.
type ProjectFormModel struct {
	Name string
	Type models.BillingType
	Rate string
}

func newProjectForm(fm *ProjectFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("project name cannot be empty")
					}
					return nil
				}),
			huh.NewSelect[models.BillingType]().
				Title("Project Type").
				Options(
					huh.NewOption("Per Day", models.BillingPerDay),
					huh.NewOption("Per Week", models.BillingPerWeek),
					huh.NewOption("Per Project", models.BillingPerProject),
				).
				Value(&fm.Type),
			huh.NewInput().
				Title("Rate").
				Value(&fm.Rate).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("rate cannot be empty")
					}
					if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
						return fmt.Errorf("rate must be a number")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}
