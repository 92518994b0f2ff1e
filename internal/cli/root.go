package cli

import (
	"fmt"
	"strings"
	"time"

	"mealtrack/internal/journal"
	"mealtrack/internal/models"
	"mealtrack/internal/recipes"
	"mealtrack/internal/storage"
	"mealtrack/internal/utils"
)

type Context struct {
	Store   storage.Provider
	Session *journal.Session
	Recipes *recipes.Client
}

// ParseDateArg resolves a date argument: "today", an offset like
// "yesterday", or a YYYY-MM-DD string.
func ParseDateArg(s string) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return time.Now(), nil
	case "yesterday":
		return time.Now().AddDate(0, 0, -1), nil
	}
	t, err := utils.ParseDay(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return t, nil
}

// ParseCategory validates a category argument against the fixed set.
func ParseCategory(s string) (models.Category, error) {
	c := models.Category(strings.ToLower(strings.TrimSpace(s)))
	if !models.ValidCategory(c) {
		names := make([]string, 0, len(models.Categories()))
		for _, cat := range models.Categories() {
			names = append(names, string(cat))
		}
		return "", fmt.Errorf("invalid category %q (expected one of %s)", s, strings.Join(names, ", "))
	}
	return c, nil
}

// ParseSource validates a recipe provider argument.
func ParseSource(s string) (models.Source, error) {
	switch models.Source(strings.ToLower(strings.TrimSpace(s))) {
	case models.SourceSpoonacular:
		return models.SourceSpoonacular, nil
	case models.SourceCalorieNinjas:
		return models.SourceCalorieNinjas, nil
	}
	return "", fmt.Errorf("invalid source %q (expected %s or %s)", s, models.SourceSpoonacular, models.SourceCalorieNinjas)
}

// PrintJournal writes a journal entry to stdout, one category block at a
// time, followed by the day's roll-up.
func PrintJournal(entry models.JournalEntry) {
	for _, c := range models.Categories() {
		meals := entry.Meals[c]
		if len(meals) == 0 {
			continue
		}
		fmt.Printf("%s:\n", strings.ToUpper(string(c)[:1])+string(c)[1:])
		for _, meal := range meals {
			fmt.Printf("  %-40s %6.0f kcal  P %.0fg  C %.0fg  F %.0fg  [%s]\n",
				meal.Name, meal.Nutrition.Calories, meal.Nutrition.Protein,
				meal.Nutrition.Carbs, meal.Nutrition.Fat, meal.ID)
		}
	}

	if entry.MealCount() == 0 {
		fmt.Println("  No meals logged")
		return
	}

	t := entry.TotalNutrition
	fmt.Printf("\nTotal: %.0f kcal  Protein %.0fg  Carbs %.0fg  Fat %.0fg\n",
		t.Calories, t.Protein, t.Carbs, t.Fat)
}
