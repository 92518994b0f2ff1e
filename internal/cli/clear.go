package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

type ClearCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ClearCmd) Run(ctx *Context) error {
	if !c.Yes {
		var confirmed bool
		confirm := huh.NewConfirm().
			Title("Delete every journal entry and reset settings to defaults?").
			Description("API keys in the OS keyring are kept.").
			Value(&confirmed)
		if err := confirm.Run(); err != nil {
			return fmt.Errorf("confirmation error: %w", err)
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := ctx.Store.ClearAll(); err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}
	fmt.Println("All journal data cleared and settings reset to defaults.")
	return nil
}
