package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"mealtrack/internal/logger"
	"mealtrack/internal/models"
	"mealtrack/internal/utils"
)

// fileStore is the on-disk shape of the JSON backend: the settings record
// plus one mapping from YYYY-MM-DD day keys to journal entries.
type fileStore struct {
	Version  int                            `json:"version"`
	Settings models.Settings                `json:"settings"`
	Journals map[string]models.JournalEntry `json:"journals"`
}

type JSONStore struct {
	path  string
	mu    sync.Mutex
	store *fileStore
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &fileStore{
		Version:  1,
		Settings: models.DefaultSettings(),
		Journals: make(map[string]models.JournalEntry),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'mealtrack init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &fileStore{}
	if err := json.Unmarshal(data, s.store); err != nil {
		// Unparseable state is treated as absent: rebuild from defaults
		// rather than failing every caller. Logged for diagnosis.
		logger.Warn("Stored data is unparseable, resetting to defaults", "path", s.path, "error", err)
		s.store = &fileStore{
			Version:  1,
			Settings: models.DefaultSettings(),
			Journals: make(map[string]models.JournalEntry),
		}
		return s.save()
	}

	// Ensure maps are initialized
	if s.store.Journals == nil {
		s.store.Journals = make(map[string]models.JournalEntry)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}

	// A zero-value record means settings were never written; write the
	// defaults back so subsequent reads are self-consistent.
	if s.store.Settings == (models.Settings{}) {
		s.store.Settings = models.DefaultSettings()
		if err := s.save(); err != nil {
			return models.Settings{}, err
		}
	}

	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) GetJournal(date time.Time) (models.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.journalLocked(date)
}

// journalLocked returns a copy of the stored entry for the given date, or a
// fresh empty entry without persisting it. Callers must hold s.mu.
func (s *JSONStore) journalLocked(date time.Time) (models.JournalEntry, error) {
	if s.store == nil {
		return models.JournalEntry{}, fmt.Errorf("storage not loaded")
	}

	entry, ok := s.store.Journals[utils.DateKey(date)]
	if !ok {
		return models.NewJournalEntry(), nil
	}
	return cloneEntry(entry), nil
}

func (s *JSONStore) SaveJournal(date time.Time, entry models.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Journals[utils.DateKey(date)] = cloneEntry(entry)
	return s.save()
}

func (s *JSONStore) AddMeal(date time.Time, category models.Category, meal models.MealEntry) (models.JournalEntry, error) {
	if !models.ValidCategory(category) {
		return models.JournalEntry{}, fmt.Errorf("%w: %s", ErrInvalidCategory, category)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.journalLocked(date)
	if err != nil {
		return models.JournalEntry{}, err
	}

	meal.ID = newMealID()
	entry.Meals[category] = append(entry.Meals[category], meal)
	entry.RecomputeTotals()

	s.store.Journals[utils.DateKey(date)] = entry
	if err := s.save(); err != nil {
		return models.JournalEntry{}, err
	}
	return cloneEntry(entry), nil
}

func (s *JSONStore) RemoveMeal(date time.Time, category models.Category, mealID string) (bool, error) {
	if !models.ValidCategory(category) {
		return false, fmt.Errorf("%w: %s", ErrInvalidCategory, category)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.journalLocked(date)
	if err != nil {
		return false, err
	}

	meals := entry.Meals[category]
	idx := -1
	for i, m := range meals {
		if m.ID == mealID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	entry.Meals[category] = append(meals[:idx], meals[idx+1:]...)
	entry.RecomputeTotals()

	s.store.Journals[utils.DateKey(date)] = entry
	if err := s.save(); err != nil {
		return false, err
	}
	return true, nil
}

func (s *JSONStore) GetJournalsInRange(start, end time.Time) (map[string]models.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	result := make(map[string]models.JournalEntry)
	for day := utils.StartOfDay(start); !day.After(utils.StartOfDay(end)); day = day.AddDate(0, 0, 1) {
		key := utils.DateKey(day)
		if entry, ok := s.store.Journals[key]; ok {
			result[key] = cloneEntry(entry)
		}
	}
	return result, nil
}

func (s *JSONStore) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Journals = make(map[string]models.JournalEntry)
	s.store.Settings = models.DefaultSettings()
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

// cloneEntry copies an entry's category lists so callers cannot alias the
// stored slices and bypass the totals invariant.
func cloneEntry(entry models.JournalEntry) models.JournalEntry {
	meals := make(map[models.Category][]models.MealEntry, len(entry.Meals))
	for c, list := range entry.Meals {
		copied := make([]models.MealEntry, len(list))
		copy(copied, list)
		meals[c] = copied
	}
	entry.Meals = meals
	return entry
}
