package cli

import "fmt"

type ProjectRemoveCmd struct {
	ID int64 `arg:"" help:"Project ID."`
}

func (c *ProjectRemoveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Initialize(); err != nil {
		return err
	}

	p, ok := ctx.Store.Get(c.ID)
	if !ok {
		// Removal of an unknown id is a documented no-op.
		fmt.Printf("No project with ID %d\n", c.ID)
		return nil
	}

	ctx.Store.Remove(c.ID)
	fmt.Printf("Removed project: %s (ID: %d)\n", p.Name, p.ID)
	return nil
}
