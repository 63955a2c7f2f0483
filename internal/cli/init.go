package cli

import "fmt"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Provider.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized summon storage at: %s\n", ctx.Provider.ConfigPath())
	return nil
}
