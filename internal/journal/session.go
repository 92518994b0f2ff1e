// Package journal mediates all journal reads and writes through a
// current-date cursor, keeping raw date arithmetic out of the rest of the
// application.
package journal

import (
	"time"

	"mealtrack/internal/constants"
	"mealtrack/internal/models"
	"mealtrack/internal/storage"
)

// Direction selects which way ChangeDate moves the cursor.
type Direction int

const (
	Previous Direction = iota
	Next
)

// Session owns the current-date cursor for one caller. It is an explicit
// object rather than process state so journal and statistics code stay
// independently testable.
type Session struct {
	store       storage.Provider
	currentDate time.Time
}

// NewSession creates a session anchored at today.
func NewSession(store storage.Provider) *Session {
	return &Session{
		store:       store,
		currentDate: time.Now(),
	}
}

// CurrentDate returns the cursor's date.
func (s *Session) CurrentDate() time.Time {
	return s.currentDate
}

// SetCurrentDate moves the cursor to an arbitrary date.
func (s *Session) SetCurrentDate(date time.Time) {
	s.currentDate = date
}

// ChangeDate shifts the cursor by exactly one calendar day and returns the
// new date. There is no bounds checking; the cursor may move arbitrarily far
// into the past or future.
func (s *Session) ChangeDate(dir Direction) time.Time {
	days := 1
	if dir == Previous {
		days = -1
	}
	s.currentDate = s.currentDate.AddDate(0, 0, days)
	return s.currentDate
}

// FormatCurrentDate returns the cursor's date as a long display string,
// e.g. "Tuesday, January 6, 2026". Display only, never a storage key.
func (s *Session) FormatCurrentDate() string {
	return s.currentDate.Format(constants.DisplayDateFormat)
}

// CurrentJournal returns the journal entry for the cursor's date.
func (s *Session) CurrentJournal() (models.JournalEntry, error) {
	return s.store.GetJournal(s.currentDate)
}

// AddMeal normalizes an externally-sourced meal into a journal entry shape
// and appends it to the cursor's date under the given category.
func (s *Session) AddMeal(meal models.NormalizedMeal, category models.Category) (models.JournalEntry, error) {
	return s.store.AddMeal(s.currentDate, category, Normalize(meal))
}

// RemoveMeal deletes the identified meal and returns the refreshed entry for
// the cursor's date whether or not a removal happened.
func (s *Session) RemoveMeal(category models.Category, mealID string) (models.JournalEntry, error) {
	if _, err := s.store.RemoveMeal(s.currentDate, category, mealID); err != nil {
		return models.JournalEntry{}, err
	}
	return s.CurrentJournal()
}

// Normalize converts a provider meal into the stored MealEntry shape. Names
// fall back to a placeholder and missing nutrition stays all-zero; the ID is
// left empty for the store to assign.
func Normalize(meal models.NormalizedMeal) models.MealEntry {
	name := meal.Name
	if name == "" {
		name = constants.UnknownMealName
	}
	return models.MealEntry{
		SourceID:  meal.ID,
		Source:    meal.Source,
		Name:      name,
		ImageURL:  meal.ImageURL,
		Nutrition: meal.Nutrition,
	}
}
