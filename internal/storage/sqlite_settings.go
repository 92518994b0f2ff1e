package storage

import (
	"database/sql"
	"strconv"

	"mealtrack/internal/logger"
	"mealtrack/internal/models"
)

type settingRow struct {
	key   string
	value string
}

func settingsRows(settings models.Settings) []settingRow {
	return []settingRow{
		{"user_name", settings.UserName},
		{"user_age", strconv.Itoa(settings.UserAge)},
		{"user_gender", settings.UserGender},
		{"goal_calories", strconv.FormatFloat(settings.Goals.Calories, 'f', -1, 64)},
		{"goal_protein", strconv.FormatFloat(settings.Goals.Protein, 'f', -1, 64)},
		{"goal_carbs", strconv.FormatFloat(settings.Goals.Carbs, 'f', -1, 64)},
		{"goal_fat", strconv.FormatFloat(settings.Goals.Fat, 'f', -1, 64)},
	}
}

func defaultSettingsRows() []settingRow {
	return settingsRows(models.DefaultSettings())
}

func saveSettingsTx(tx *sql.Tx, rows []settingRow) error {
	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.Exec(row.key, row.value); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	// Malformed values fall back to the default for that field rather than
	// failing the read.
	settings := models.DefaultSettings()
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case "user_name":
			settings.UserName = value
		case "user_age":
			if n, err := strconv.Atoi(value); err == nil {
				settings.UserAge = n
			} else {
				logger.Warn("Malformed setting, using default", "key", key, "value", value)
			}
		case "user_gender":
			settings.UserGender = value
		case "goal_calories":
			settings.Goals.Calories = parseGoal(key, value, settings.Goals.Calories)
		case "goal_protein":
			settings.Goals.Protein = parseGoal(key, value, settings.Goals.Protein)
		case "goal_carbs":
			settings.Goals.Carbs = parseGoal(key, value, settings.Goals.Carbs)
		case "goal_fat":
			settings.Goals.Fat = parseGoal(key, value, settings.Goals.Fat)
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	// First-ever access: persist the defaults so subsequent reads are
	// self-consistent.
	if count == 0 {
		if err := s.SaveSettings(settings); err != nil {
			return models.Settings{}, err
		}
	}

	return settings, nil
}

func parseGoal(key, value string, fallback float64) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logger.Warn("Malformed setting, using default", "key", key, "value", value)
		return fallback
	}
	return f
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := saveSettingsTx(tx, settingsRows(settings)); err != nil {
		return err
	}

	return tx.Commit()
}
