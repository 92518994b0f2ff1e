package cli

import (
	"context"
	"fmt"
	"strings"
)

type SearchCmd struct {
	Query  []string `arg:"" help:"Search terms."`
	Source string   `short:"s" help:"Recipe provider (spoonacular|calorieninjas)." default:"spoonacular"`
}

func (c *SearchCmd) Run(ctx *Context) error {
	source, err := ParseSource(c.Source)
	if err != nil {
		return err
	}

	query := strings.Join(c.Query, " ")
	meals, err := ctx.Recipes.Search(context.Background(), query, source)
	if err != nil {
		return err
	}

	if len(meals) == 0 {
		fmt.Printf("No results for %q on %s\n", query, source)
		return nil
	}

	fmt.Printf("Results for %q (%s):\n\n", query, source)
	for _, meal := range meals {
		fmt.Printf("  %-12s %-40s %6.0f kcal  P %.0fg  C %.0fg  F %.0fg\n",
			meal.ID, meal.Name, meal.Nutrition.Calories, meal.Nutrition.Protein,
			meal.Nutrition.Carbs, meal.Nutrition.Fat)
	}
	fmt.Printf("\nLog one with: mealtrack log add --id <ID> --source %s --category <category>\n", source)
	return nil
}

type DetailsCmd struct {
	ID     string `arg:"" help:"Recipe ID from a search result."`
	Source string `short:"s" help:"Recipe provider (spoonacular|calorieninjas)." default:"spoonacular"`
}

func (c *DetailsCmd) Run(ctx *Context) error {
	source, err := ParseSource(c.Source)
	if err != nil {
		return err
	}

	detail, err := ctx.Recipes.Details(context.Background(), c.ID, source)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", detail.Name)
	if len(detail.Tags) > 0 {
		fmt.Printf("Tags: %s\n", strings.Join(detail.Tags, ", "))
	}
	n := detail.Nutrition
	fmt.Printf("Nutrition: %.0f kcal  Protein %.0fg  Carbs %.0fg  Fat %.0fg\n", n.Calories, n.Protein, n.Carbs, n.Fat)

	if len(detail.Ingredients) > 0 {
		fmt.Println("\nIngredients:")
		for _, ing := range detail.Ingredients {
			fmt.Printf("  - %s\n", ing)
		}
	}
	if detail.Instructions != "" {
		fmt.Printf("\nInstructions:\n%s\n", detail.Instructions)
	}
	if detail.SourceURL != "" {
		fmt.Printf("\nSource: %s\n", detail.SourceURL)
	}
	return nil
}
