package cli

import "fmt"

type DayCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD, 'today' or 'yesterday')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	date, err := ParseDateArg(c.Date)
	if err != nil {
		return err
	}

	ctx.Session.SetCurrentDate(date)
	entry, err := ctx.Session.CurrentJournal()
	if err != nil {
		return err
	}

	fmt.Printf("Journal for %s\n\n", ctx.Session.FormatCurrentDate())
	PrintJournal(entry)
	return nil
}
