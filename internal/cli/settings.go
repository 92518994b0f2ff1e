package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`
	Edit bool `help:"Edit settings interactively."`

	Name         *string  `help:"User display name."`
	Age          *int     `help:"User age in years."`
	Gender       *string  `help:"User gender."`
	GoalCalories *float64 `help:"Daily calorie goal (kcal)."`
	GoalProtein  *float64 `help:"Daily protein goal (g)."`
	GoalCarbs    *float64 `help:"Daily carbs goal (g)."`
	GoalFat      *float64 `help:"Daily fat goal (g)."`
}

func (c *SettingsCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Name:    %s\n", settings.UserName)
		fmt.Printf("  Age:     %d\n", settings.UserAge)
		fmt.Printf("  Gender:  %s\n", settings.UserGender)
		fmt.Println("\nDaily Nutrition Goals:")
		fmt.Printf("  Calories: %.0f kcal\n", settings.Goals.Calories)
		fmt.Printf("  Protein:  %.0f g\n", settings.Goals.Protein)
		fmt.Printf("  Carbs:    %.0f g\n", settings.Goals.Carbs)
		fmt.Printf("  Fat:      %.0f g\n", settings.Goals.Fat)
		return nil
	}

	if c.Edit {
		return c.runForm(ctx)
	}

	updated := false
	if c.Name != nil {
		settings.UserName = *c.Name
		updated = true
	}
	if c.Age != nil {
		settings.UserAge = *c.Age
		updated = true
	}
	if c.Gender != nil {
		settings.UserGender = *c.Gender
		updated = true
	}
	if c.GoalCalories != nil {
		settings.Goals.Calories = *c.GoalCalories
		updated = true
	}
	if c.GoalProtein != nil {
		settings.Goals.Protein = *c.GoalProtein
		updated = true
	}
	if c.GoalCarbs != nil {
		settings.Goals.Carbs = *c.GoalCarbs
		updated = true
	}
	if c.GoalFat != nil {
		settings.Goals.Fat = *c.GoalFat
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}

func (c *SettingsCmd) runForm(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	age := strconv.Itoa(settings.UserAge)
	calories := strconv.FormatFloat(settings.Goals.Calories, 'f', -1, 64)
	protein := strconv.FormatFloat(settings.Goals.Protein, 'f', -1, 64)
	carbs := strconv.FormatFloat(settings.Goals.Carbs, 'f', -1, 64)
	fat := strconv.FormatFloat(settings.Goals.Fat, 'f', -1, 64)

	positiveNumber := func(s string) error {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		if f < 0 {
			return fmt.Errorf("must not be negative")
		}
		return nil
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&settings.UserName),
			huh.NewInput().
				Title("Age").
				Value(&age).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if n <= 0 {
						return fmt.Errorf("age must be positive")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Gender").
				Options(
					huh.NewOption("Male", "male"),
					huh.NewOption("Female", "female"),
					huh.NewOption("Other", "other"),
				).
				Value(&settings.UserGender),
		),
		huh.NewGroup(
			huh.NewInput().Title("Calorie goal (kcal)").Value(&calories).Validate(positiveNumber),
			huh.NewInput().Title("Protein goal (g)").Value(&protein).Validate(positiveNumber),
			huh.NewInput().Title("Carbs goal (g)").Value(&carbs).Validate(positiveNumber),
			huh.NewInput().Title("Fat goal (g)").Value(&fat).Validate(positiveNumber),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("settings form error: %w", err)
	}

	settings.UserAge, _ = strconv.Atoi(age)
	settings.Goals.Calories, _ = strconv.ParseFloat(calories, 64)
	settings.Goals.Protein, _ = strconv.ParseFloat(protein, 64)
	settings.Goals.Carbs, _ = strconv.ParseFloat(carbs, 64)
	settings.Goals.Fat, _ = strconv.ParseFloat(fat, 64)

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("Settings updated successfully.")
	return nil
}
