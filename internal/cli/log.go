package cli

import (
	"context"
	"fmt"

	"mealtrack/internal/models"
)

type LogAddCmd struct {
	Name     string  `arg:"" optional:"" help:"Meal name for a manual entry."`
	Category string  `short:"c" help:"Meal category (breakfast|lunch|dinner|snacks)." required:""`
	Date     string  `short:"d" help:"Date to log to (YYYY-MM-DD or 'today')." default:"today"`
	Calories float64 `help:"Calories (kcal) for a manual entry." default:"0"`
	Protein  float64 `help:"Protein in grams for a manual entry." default:"0"`
	Carbs    float64 `help:"Carbs in grams for a manual entry." default:"0"`
	Fat      float64 `help:"Fat in grams for a manual entry." default:"0"`
	ID       string  `help:"Provider recipe ID to log instead of a manual entry."`
	Source   string  `short:"s" help:"Recipe provider for --id lookups (spoonacular|calorieninjas)." default:"spoonacular"`
}

func (c *LogAddCmd) Validate() error {
	if c.Name == "" && c.ID == "" {
		return fmt.Errorf("either a meal name or --id must be provided")
	}
	return nil
}

func (c *LogAddCmd) Run(ctx *Context) error {
	category, err := ParseCategory(c.Category)
	if err != nil {
		return err
	}
	date, err := ParseDateArg(c.Date)
	if err != nil {
		return err
	}
	ctx.Session.SetCurrentDate(date)

	meal, err := c.resolveMeal(ctx)
	if err != nil {
		return err
	}

	entry, err := ctx.Session.AddMeal(meal, category)
	if err != nil {
		return err
	}

	fmt.Printf("Logged %q to %s on %s\n\n", meal.Name, category, ctx.Session.FormatCurrentDate())
	PrintJournal(entry)
	return nil
}

// resolveMeal prefers a provider lookup when --id is given, otherwise builds
// a manual entry from the macro flags.
func (c *LogAddCmd) resolveMeal(ctx *Context) (models.NormalizedMeal, error) {
	if c.ID != "" {
		source, err := ParseSource(c.Source)
		if err != nil {
			return models.NormalizedMeal{}, err
		}
		detail, err := ctx.Recipes.Details(context.Background(), c.ID, source)
		if err != nil {
			return models.NormalizedMeal{}, err
		}
		return detail.NormalizedMeal, nil
	}

	return models.NormalizedMeal{
		Name: c.Name,
		Nutrition: models.NutritionTotals{
			Calories: c.Calories,
			Protein:  c.Protein,
			Carbs:    c.Carbs,
			Fat:      c.Fat,
		},
	}, nil
}

type LogRemoveCmd struct {
	MealID   string `arg:"" help:"ID of the meal to remove."`
	Category string `short:"c" help:"Meal category the entry lives in." required:""`
	Date     string `short:"d" help:"Date to remove from (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *LogRemoveCmd) Run(ctx *Context) error {
	category, err := ParseCategory(c.Category)
	if err != nil {
		return err
	}
	date, err := ParseDateArg(c.Date)
	if err != nil {
		return err
	}

	removed, err := ctx.Store.RemoveMeal(date, category, c.MealID)
	if err != nil {
		return err
	}
	if !removed {
		fmt.Printf("No meal with ID %s in %s\n", c.MealID, category)
		return nil
	}

	ctx.Session.SetCurrentDate(date)
	entry, err := ctx.Session.CurrentJournal()
	if err != nil {
		return err
	}
	fmt.Printf("Removed meal from %s on %s\n\n", category, ctx.Session.FormatCurrentDate())
	PrintJournal(entry)
	return nil
}
