package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/julianstephens/summon/internal/calendar"
	"github.com/julianstephens/summon/internal/models"
)

type CalCmd struct {
	ID    int64  `arg:"" help:"Project ID."`
	Month string `short:"m" help:"Month to show (YYYY-MM)." default:""`
}

var (
	bookedColor = color.New(color.FgRed, color.Bold)
	paidColor   = color.New(color.FgGreen, color.Bold)
)

func (c *CalCmd) Run(ctx *Context) error {
	if err := ctx.Store.Initialize(); err != nil {
		return err
	}

	p, ok := ctx.Store.Get(c.ID)
	if !ok {
		fmt.Printf("No project with ID %d\n", c.ID)
		return nil
	}

	month, err := parseMonth(c.Month)
	if err != nil {
		return err
	}

	fmt.Printf("%s — %s\n\n", p.Name, month.Label())
	fmt.Println(strings.Join(calendar.WeekdayNames, " "))

	cells := calendar.Cells(month, p)
	for i, cell := range cells {
		if cell.Day == 0 {
			fmt.Print("   ")
		} else {
			fmt.Print(renderDay(cell))
		}
		if (i+1)%7 == 0 {
			fmt.Println()
		} else {
			fmt.Print(" ")
		}
	}
	if len(cells)%7 != 0 {
		fmt.Println()
	}

	fmt.Printf("\nBooked: %s  Paid: %s  (%d days, %d paid)\n",
		bookedColor.Sprint("red"), paidColor.Sprint("green"),
		p.TotalDays(), p.PaidDays())

	return nil
}

func renderDay(cell calendar.Cell) string {
	s := fmt.Sprintf("%3d", cell.Day)
	switch cell.Status {
	case models.StatusBooked:
		return bookedColor.Sprint(s)
	case models.StatusPaid:
		return paidColor.Sprint(s)
	default:
		return s
	}
}
