package cli

import (
	"fmt"

	"github.com/julianstephens/summon/internal/calendar"
)

type ToggleCmd struct {
	ID   int64  `arg:"" help:"Project ID."`
	Date string `arg:"" help:"Date to toggle (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *ToggleCmd) Run(ctx *Context) error {
	if err := ctx.Store.Initialize(); err != nil {
		return err
	}

	day, err := parseDay(c.Date)
	if err != nil {
		return err
	}

	if _, ok := ctx.Store.Get(c.ID); !ok {
		fmt.Printf("No project with ID %d\n", c.ID)
		return nil
	}

	ctx.Store.ToggleDate(c.ID, day)

	p, _ := ctx.Store.Get(c.ID)
	date := calendar.Normalize(day)
	fmt.Printf("%s %s: %s\n", p.Name, date, p.Status(date))
	return nil
}
