package models

// Source identifies which recipe provider supplied a meal's data.
type Source string

const (
	SourceSpoonacular   Source = "spoonacular"
	SourceCalorieNinjas Source = "calorieninjas"
)

// MealEntry is a single logged food item inside a journal entry. The ID is
// assigned by the storage layer at insertion time and is unique within the
// category list that owns the entry. Entries are immutable once created
// except for deletion.
type MealEntry struct {
	ID        string          `json:"id"`
	SourceID  string          `json:"source_id,omitempty"`
	Source    Source          `json:"source,omitempty"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"image_url,omitempty"`
	Nutrition NutritionTotals `json:"nutrition"`
}

// NormalizedMeal is the internal meal shape after translating a specific
// provider's response. It is what search results hand to the journal.
type NormalizedMeal struct {
	ID        string          `json:"id"`
	Source    Source          `json:"source"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"image_url,omitempty"`
	Nutrition NutritionTotals `json:"nutrition"`
	Tags      []string        `json:"tags,omitempty"`
}

// MealDetail extends NormalizedMeal with the fields only a detail lookup
// returns.
type MealDetail struct {
	NormalizedMeal
	Ingredients  []string `json:"ingredients,omitempty"`
	Instructions string   `json:"instructions,omitempty"`
	SourceURL    string   `json:"source_url,omitempty"`
}
