package models

import "mealtrack/internal/constants"

// NutritionGoals holds the user's daily targets per nutrient.
type NutritionGoals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Settings is the singleton user profile record. It is always present once
// storage has been touched and is overwritten wholesale on save.
type Settings struct {
	UserName   string         `json:"user_name"`
	UserAge    int            `json:"user_age"`
	UserGender string         `json:"user_gender"`
	Goals      NutritionGoals `json:"nutrition_goals"`
}

// DefaultSettings returns the record written on first run.
func DefaultSettings() Settings {
	return Settings{
		UserName:   "",
		UserAge:    constants.DefaultUserAge,
		UserGender: constants.DefaultUserGender,
		Goals: NutritionGoals{
			Calories: constants.DefaultGoalCalories,
			Protein:  constants.DefaultGoalProtein,
			Carbs:    constants.DefaultGoalCarbs,
			Fat:      constants.DefaultGoalFat,
		},
	}
}
