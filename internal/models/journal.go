package models

// Category is one of the fixed meal-type buckets a journal day is organized
// into. The set is fixed at configuration time.
type Category string

const (
	CategoryBreakfast Category = "breakfast"
	CategoryLunch     Category = "lunch"
	CategoryDinner    Category = "dinner"
	CategorySnacks    Category = "snacks"
)

// Categories returns the fixed category set in display order.
func Categories() []Category {
	return []Category{CategoryBreakfast, CategoryLunch, CategoryDinner, CategorySnacks}
}

// ValidCategory reports whether c belongs to the fixed category set.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryBreakfast, CategoryLunch, CategoryDinner, CategorySnacks:
		return true
	}
	return false
}

// JournalEntry is the aggregate for one calendar day, keyed in storage by
// the day's YYYY-MM-DD string. TotalNutrition is denormalized: it must always
// equal the sum of every contained meal's nutrition and is recomputed on
// every mutation via RecomputeTotals.
type JournalEntry struct {
	Meals          map[Category][]MealEntry `json:"meals"`
	TotalNutrition NutritionTotals          `json:"total_nutrition"`
}

// NewJournalEntry returns an empty entry with every category present as an
// empty list and all-zero totals.
func NewJournalEntry() JournalEntry {
	meals := make(map[Category][]MealEntry, len(Categories()))
	for _, c := range Categories() {
		meals[c] = []MealEntry{}
	}
	return JournalEntry{Meals: meals}
}

// RecomputeTotals resets TotalNutrition to the exact sum of all contained
// meal entries. It is the single place the roll-up invariant is maintained;
// mutations must call it before the entry is persisted.
func (j *JournalEntry) RecomputeTotals() {
	var totals NutritionTotals
	for _, c := range Categories() {
		for _, meal := range j.Meals[c] {
			totals = totals.Add(meal.Nutrition)
		}
	}
	j.TotalNutrition = totals
}

// MealCount returns the number of logged meals across all categories.
func (j JournalEntry) MealCount() int {
	n := 0
	for _, meals := range j.Meals {
		n += len(meals)
	}
	return n
}
