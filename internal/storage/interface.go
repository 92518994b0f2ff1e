package storage

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"mealtrack/internal/models"
)

// ErrInvalidCategory is returned when a mutation names a meal category
// outside the fixed set. Stored state is left unchanged.
var ErrInvalidCategory = errors.New("invalid meal category")

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Journals. Entries are keyed by the local calendar day of the given
	// date; time-of-day is ignored.
	GetJournal(date time.Time) (models.JournalEntry, error)
	SaveJournal(date time.Time, entry models.JournalEntry) error
	// AddMeal assigns a fresh unique ID to the meal, appends it to the
	// category's list, recomputes the day's totals and persists, returning
	// the updated entry.
	AddMeal(date time.Time, category models.Category, meal models.MealEntry) (models.JournalEntry, error)
	// RemoveMeal removes the entry with the matching ID from the category's
	// list and reports whether a removal occurred. A missing ID is an
	// idempotent no-op, not an error.
	RemoveMeal(date time.Time, category models.Category, mealID string) (bool, error)
	// GetJournalsInRange returns stored entries keyed by day for the
	// inclusive [start, end] window. Days without data are absent from the
	// result, not synthesized.
	GetJournalsInRange(start, end time.Time) (map[string]models.JournalEntry, error)
	// ClearAll removes every journal entry and resets settings to defaults.
	// Provider API credentials live in the OS keyring and are unaffected.
	ClearAll() error

	// Utils
	GetConfigPath() string
}

// NewStore selects a backend by path: .db/.sqlite paths get the SQLite
// store, everything else the JSON file store.
func NewStore(path string) Provider {
	if strings.HasSuffix(path, ".db") || strings.HasSuffix(path, ".sqlite") {
		return NewSQLiteStore(path)
	}
	return NewJSONStore(path)
}

// newMealID generates a meal ID. UUIDv7 combines a millisecond timestamp
// with random bits, so IDs stay unique within a category list even under
// rapid repeated inserts.
func newMealID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
