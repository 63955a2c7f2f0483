package cli

import (
	"fmt"

	"github.com/julianstephens/summon/internal/store"
)

type ProjectAddCmd struct {
	Name string `arg:"" help:"Project name."`
	Type string `short:"t" help:"Billing type (per_day|per_week|per_project)." enum:"per_day,per_week,per_project" required:""`
	Rate string `short:"r" help:"Billing rate." required:""`
}

func (c *ProjectAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Initialize(); err != nil {
		return err
	}

	p, ok := ctx.Store.Add(store.Draft{
		Name: c.Name,
		Type: c.Type,
		Rate: c.Rate,
	})
	if !ok {
		return fmt.Errorf("name, type and rate are all required")
	}

	fmt.Printf("Added project: %s (ID: %d)\n", p.Name, p.ID)
	return nil
}
