package storage

import (
	"database/sql"
	"fmt"
	"time"

	"mealtrack/internal/models"
	"mealtrack/internal/utils"
)

func (s *SQLiteStore) GetJournal(date time.Time) (models.JournalEntry, error) {
	day := utils.DateKey(date)

	entry := models.NewJournalEntry()

	row := s.db.QueryRow("SELECT calories, protein, carbs, fat FROM journals WHERE day = ?", day)
	err := row.Scan(&entry.TotalNutrition.Calories, &entry.TotalNutrition.Protein,
		&entry.TotalNutrition.Carbs, &entry.TotalNutrition.Fat)
	if err == sql.ErrNoRows {
		// Absent day: a fresh empty entry, nothing persisted.
		return entry, nil
	}
	if err != nil {
		return models.JournalEntry{}, err
	}

	rows, err := s.db.Query(`
		SELECT id, category, source, source_id, name, image_url, calories, protein, carbs, fat
		FROM meals WHERE day = ? ORDER BY category, position`, day)
	if err != nil {
		return models.JournalEntry{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var meal models.MealEntry
		var source string
		if err := rows.Scan(&meal.ID, &category, &source, &meal.SourceID, &meal.Name,
			&meal.ImageURL, &meal.Nutrition.Calories, &meal.Nutrition.Protein,
			&meal.Nutrition.Carbs, &meal.Nutrition.Fat); err != nil {
			return models.JournalEntry{}, err
		}
		meal.Source = models.Source(source)
		c := models.Category(category)
		entry.Meals[c] = append(entry.Meals[c], meal)
	}
	if err := rows.Err(); err != nil {
		return models.JournalEntry{}, err
	}

	return entry, nil
}

func (s *SQLiteStore) SaveJournal(date time.Time, entry models.JournalEntry) error {
	day := utils.DateKey(date)

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM meals WHERE day = ?", day); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO meals (id, day, category, source, source_id, name, image_url, calories, protein, carbs, fat, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range models.Categories() {
		for pos, meal := range entry.Meals[c] {
			if _, err := stmt.Exec(meal.ID, day, string(c), string(meal.Source), meal.SourceID,
				meal.Name, meal.ImageURL, meal.Nutrition.Calories, meal.Nutrition.Protein,
				meal.Nutrition.Carbs, meal.Nutrition.Fat, pos); err != nil {
				return err
			}
		}
	}

	if err := upsertTotalsTx(tx, day, entry.TotalNutrition); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) AddMeal(date time.Time, category models.Category, meal models.MealEntry) (models.JournalEntry, error) {
	if !models.ValidCategory(category) {
		return models.JournalEntry{}, fmt.Errorf("%w: %s", ErrInvalidCategory, category)
	}

	day := utils.DateKey(date)
	meal.ID = newMealID()

	tx, err := s.db.Begin()
	if err != nil {
		return models.JournalEntry{}, err
	}
	defer tx.Rollback()

	var position int
	err = tx.QueryRow("SELECT COUNT(*) FROM meals WHERE day = ? AND category = ?", day, string(category)).Scan(&position)
	if err != nil {
		return models.JournalEntry{}, err
	}

	_, err = tx.Exec(`
		INSERT INTO meals (id, day, category, source, source_id, name, image_url, calories, protein, carbs, fat, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		meal.ID, day, string(category), string(meal.Source), meal.SourceID, meal.Name,
		meal.ImageURL, meal.Nutrition.Calories, meal.Nutrition.Protein,
		meal.Nutrition.Carbs, meal.Nutrition.Fat, position)
	if err != nil {
		return models.JournalEntry{}, err
	}

	if err := recomputeTotalsTx(tx, day); err != nil {
		return models.JournalEntry{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.JournalEntry{}, err
	}

	return s.GetJournal(date)
}

func (s *SQLiteStore) RemoveMeal(date time.Time, category models.Category, mealID string) (bool, error) {
	if !models.ValidCategory(category) {
		return false, fmt.Errorf("%w: %s", ErrInvalidCategory, category)
	}

	day := utils.DateKey(date)

	tx, err := s.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM meals WHERE id = ? AND day = ? AND category = ?", mealID, day, string(category))
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		return false, nil
	}

	if err := recomputeTotalsTx(tx, day); err != nil {
		return false, err
	}
	return true, tx.Commit()
}

func (s *SQLiteStore) GetJournalsInRange(start, end time.Time) (map[string]models.JournalEntry, error) {
	startKey := utils.DateKey(start)
	endKey := utils.DateKey(end)

	result := make(map[string]models.JournalEntry)

	rows, err := s.db.Query("SELECT day, calories, protein, carbs, fat FROM journals WHERE day BETWEEN ? AND ?", startKey, endKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var day string
		entry := models.NewJournalEntry()
		if err := rows.Scan(&day, &entry.TotalNutrition.Calories, &entry.TotalNutrition.Protein,
			&entry.TotalNutrition.Carbs, &entry.TotalNutrition.Fat); err != nil {
			return nil, err
		}
		result[day] = entry
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	mealRows, err := s.db.Query(`
		SELECT day, id, category, source, source_id, name, image_url, calories, protein, carbs, fat
		FROM meals WHERE day BETWEEN ? AND ? ORDER BY day, category, position`, startKey, endKey)
	if err != nil {
		return nil, err
	}
	defer mealRows.Close()

	for mealRows.Next() {
		var day, category, source string
		var meal models.MealEntry
		if err := mealRows.Scan(&day, &meal.ID, &category, &source, &meal.SourceID, &meal.Name,
			&meal.ImageURL, &meal.Nutrition.Calories, &meal.Nutrition.Protein,
			&meal.Nutrition.Carbs, &meal.Nutrition.Fat); err != nil {
			return nil, err
		}
		meal.Source = models.Source(source)

		entry, ok := result[day]
		if !ok {
			entry = models.NewJournalEntry()
		}
		c := models.Category(category)
		entry.Meals[c] = append(entry.Meals[c], meal)
		result[day] = entry
	}
	if err := mealRows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// recomputeTotalsTx rewrites the day's persisted roll-up from its meal rows
// inside the caller's transaction, keeping the totals invariant and the meal
// mutation atomic per day key.
func recomputeTotalsTx(tx *sql.Tx, day string) error {
	var totals models.NutritionTotals
	err := tx.QueryRow(`
		SELECT COALESCE(SUM(calories), 0), COALESCE(SUM(protein), 0), COALESCE(SUM(carbs), 0), COALESCE(SUM(fat), 0)
		FROM meals WHERE day = ?`, day).
		Scan(&totals.Calories, &totals.Protein, &totals.Carbs, &totals.Fat)
	if err != nil {
		return err
	}
	return upsertTotalsTx(tx, day, totals)
}

func upsertTotalsTx(tx *sql.Tx, day string, totals models.NutritionTotals) error {
	_, err := tx.Exec(`
		INSERT INTO journals (day, calories, protein, carbs, fat) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET calories = excluded.calories, protein = excluded.protein,
			carbs = excluded.carbs, fat = excluded.fat`,
		day, totals.Calories, totals.Protein, totals.Carbs, totals.Fat)
	return err
}
