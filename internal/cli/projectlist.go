package cli

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type ProjectListCmd struct{}

func (c *ProjectListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Initialize(); err != nil {
		return err
	}

	projects := ctx.Store.Projects()
	if len(projects) == 0 {
		fmt.Println("No projects found")
		return nil
	}

	fmt.Println("Projects:")
	for _, p := range projects {
		fmt.Printf("  [%d] %s - %s %s\n", p.ID, p.Name, formatRate(string(p.Rate)), p.Type)
		fmt.Printf("      Total days: %d, paid: %d\n", p.TotalDays(), p.PaidDays())
	}

	return nil
}

// formatRate renders a numeric rate with grouping ($12,500); a rate
// that does not parse as a number is shown as entered.
func formatRate(rate string) string {
	f, err := strconv.ParseFloat(rate, 64)
	if err != nil {
		return "$" + rate
	}
	p := message.NewPrinter(language.English)
	return p.Sprintf("$%v", number.Decimal(f))
}
