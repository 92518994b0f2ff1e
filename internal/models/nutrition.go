package models

import "math"

// NutritionTotals holds the four tracked nutrients. Calories are kilocalories,
// the rest are grams. Unknown values are zero, never null.
type NutritionTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Add returns the component-wise sum of t and other.
func (t NutritionTotals) Add(other NutritionTotals) NutritionTotals {
	return NutritionTotals{
		Calories: t.Calories + other.Calories,
		Protein:  t.Protein + other.Protein,
		Carbs:    t.Carbs + other.Carbs,
		Fat:      t.Fat + other.Fat,
	}
}

// Rounded returns totals with each nutrient rounded to the nearest integer.
func (t NutritionTotals) Rounded() NutritionTotals {
	return NutritionTotals{
		Calories: math.Round(t.Calories),
		Protein:  math.Round(t.Protein),
		Carbs:    math.Round(t.Carbs),
		Fat:      math.Round(t.Fat),
	}
}

// IsZero reports whether all nutrients are zero.
func (t NutritionTotals) IsZero() bool {
	return t.Calories == 0 && t.Protein == 0 && t.Carbs == 0 && t.Fat == 0
}
