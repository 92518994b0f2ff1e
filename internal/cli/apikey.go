package cli

import (
	"fmt"

	"mealtrack/internal/keyring"
)

type ApikeySetCmd struct {
	Source string `arg:"" help:"Recipe provider (spoonacular|calorieninjas)."`
	Key    string `arg:"" help:"The API key to store."`
}

func (c *ApikeySetCmd) Run(ctx *Context) error {
	source, err := ParseSource(c.Source)
	if err != nil {
		return err
	}
	if !keyring.IsAvailable() {
		return fmt.Errorf("OS keyring is not available; set the %s key via environment instead", source)
	}
	if err := keyring.SetAPIKey(source, c.Key); err != nil {
		return err
	}
	fmt.Printf("Stored API key for %s.\n", source)
	return nil
}

type ApikeyDeleteCmd struct {
	Source string `arg:"" help:"Recipe provider (spoonacular|calorieninjas)."`
}

func (c *ApikeyDeleteCmd) Run(ctx *Context) error {
	source, err := ParseSource(c.Source)
	if err != nil {
		return err
	}
	if err := keyring.DeleteAPIKey(source); err != nil {
		return err
	}
	fmt.Printf("Deleted API key for %s.\n", source)
	return nil
}
