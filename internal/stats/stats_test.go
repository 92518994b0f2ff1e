package stats

import (
	"path/filepath"
	"testing"
	"time"

	"mealtrack/internal/models"
	"mealtrack/internal/storage"
)

func newTestStore(t *testing.T) storage.Provider {
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "mealtrack.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return store
}

func addMeal(t *testing.T, store storage.Provider, day time.Time, calories, protein, carbs, fat float64) {
	t.Helper()
	_, err := store.AddMeal(day, models.CategoryLunch, models.MealEntry{
		Name: "Meal",
		Nutrition: models.NutritionTotals{
			Calories: calories,
			Protein:  protein,
			Carbs:    carbs,
			Fat:      fat,
		},
	})
	if err != nil {
		t.Fatalf("failed to add meal: %v", err)
	}
}

func TestParsePeriod(t *testing.T) {
	for _, valid := range []string{"day", "week", "month", "year"} {
		if _, err := ParsePeriod(valid); err != nil {
			t.Errorf("expected %q to parse, got %v", valid, err)
		}
	}
	if _, err := ParsePeriod("fortnight"); err == nil {
		t.Errorf("expected invalid period to fail")
	}
}

func TestDateRangePerPeriod(t *testing.T) {
	today := time.Date(2026, 1, 6, 15, 45, 0, 0, time.Local)
	midnight := time.Date(2026, 1, 6, 0, 0, 0, 0, time.Local)

	agg := New(newTestStore(t))
	agg.SetClock(func() time.Time { return today })

	for _, tc := range []struct {
		period   Period
		daysBack int
	}{
		{PeriodDay, 0},
		{PeriodWeek, 6},
		{PeriodMonth, 29},
		{PeriodYear, 364},
	} {
		agg.SetPeriod(tc.period)
		start, end := agg.DateRange()
		if !end.Equal(midnight) {
			t.Errorf("%s: expected end at today's midnight, got %v", tc.period, end)
		}
		if want := midnight.AddDate(0, 0, -tc.daysBack); !start.Equal(want) {
			t.Errorf("%s: expected start %v, got %v", tc.period, want, start)
		}
	}
}

func TestWeekAveragesOverDaysWithData(t *testing.T) {
	today := time.Date(2026, 1, 6, 12, 0, 0, 0, time.Local)
	store := newTestStore(t)

	// Three of the seven days have data; averages divide by three.
	addMeal(t, store, today, 1800, 90, 150, 60)
	addMeal(t, store, today.AddDate(0, 0, -2), 2100, 120, 180, 70)
	addMeal(t, store, today.AddDate(0, 0, -6), 1500, 60, 120, 50)
	// Outside the window, must not count.
	addMeal(t, store, today.AddDate(0, 0, -7), 9999, 999, 999, 999)

	agg := New(store)
	agg.SetClock(func() time.Time { return today })
	agg.SetPeriod(PeriodWeek)

	report, err := agg.GenerateStats()
	if err != nil {
		t.Fatalf("failed to generate stats: %v", err)
	}

	if report.TotalDays != 3 {
		t.Errorf("expected 3 days with data, got %d", report.TotalDays)
	}
	if report.Totals.Calories != 5400 {
		t.Errorf("expected 5400 total kcal, got %.0f", report.Totals.Calories)
	}
	if report.Averages.Calories != 1800 {
		t.Errorf("expected 1800 kcal average, got %.0f", report.Averages.Calories)
	}
	if report.Averages.Protein != 90 {
		t.Errorf("expected 90g protein average, got %.0f", report.Averages.Protein)
	}

	if len(report.Series.Calories) != 7 {
		t.Fatalf("expected 7 series slots, got %d", len(report.Series.Calories))
	}
	// Oldest day first, today last.
	if report.Series.Calories[0] != 1500 {
		t.Errorf("expected slot 0 = 1500, got %.0f", report.Series.Calories[0])
	}
	if report.Series.Calories[4] != 2100 {
		t.Errorf("expected slot 4 = 2100, got %.0f", report.Series.Calories[4])
	}
	if report.Series.Calories[6] != 1800 {
		t.Errorf("expected slot 6 = 1800, got %.0f", report.Series.Calories[6])
	}
	// Days without data stay zero-filled.
	if report.Series.Calories[1] != 0 || report.Series.Calories[5] != 0 {
		t.Errorf("expected empty days to be zero-filled")
	}
}

func TestEmptyPeriodHasZeroAverages(t *testing.T) {
	agg := New(newTestStore(t))
	agg.SetClock(func() time.Time { return time.Date(2026, 1, 6, 8, 0, 0, 0, time.Local) })
	agg.SetPeriod(PeriodDay)

	report, err := agg.GenerateStats()
	if err != nil {
		t.Fatalf("failed to generate stats: %v", err)
	}
	if report.TotalDays != 0 {
		t.Errorf("expected 0 days with data, got %d", report.TotalDays)
	}
	if !report.Averages.IsZero() {
		t.Errorf("expected zero averages for empty period, got %+v", report.Averages)
	}
	if len(report.Series.Labels) != 1 || report.Series.Labels[0] != "Today" {
		t.Errorf("expected single 'Today' label, got %v", report.Series.Labels)
	}
}

func TestSeriesLabels(t *testing.T) {
	// A Tuesday, so the week runs Wed..Tue.
	today := time.Date(2026, 1, 6, 12, 0, 0, 0, time.Local)

	agg := New(newTestStore(t))
	agg.SetClock(func() time.Time { return today })

	agg.SetPeriod(PeriodWeek)
	report, err := agg.GenerateStats()
	if err != nil {
		t.Fatalf("failed to generate week stats: %v", err)
	}
	wantWeek := []string{"Wed", "Thu", "Fri", "Sat", "Sun", "Mon", "Tue"}
	for i, want := range wantWeek {
		if report.Series.Labels[i] != want {
			t.Errorf("week label %d: expected %q, got %q", i, want, report.Series.Labels[i])
		}
	}

	agg.SetPeriod(PeriodMonth)
	report, err = agg.GenerateStats()
	if err != nil {
		t.Fatalf("failed to generate month stats: %v", err)
	}
	if len(report.Series.Labels) != 30 {
		t.Fatalf("expected 30 month labels, got %d", len(report.Series.Labels))
	}
	if report.Series.Labels[0] != "Dec 8" {
		t.Errorf("expected first month label 'Dec 8', got %q", report.Series.Labels[0])
	}
	if report.Series.Labels[29] != "Jan 6" {
		t.Errorf("expected last month label 'Jan 6', got %q", report.Series.Labels[29])
	}

	agg.SetPeriod(PeriodYear)
	report, err = agg.GenerateStats()
	if err != nil {
		t.Fatalf("failed to generate year stats: %v", err)
	}
	if len(report.Series.Labels) != 365 {
		t.Fatalf("expected 365 year labels, got %d", len(report.Series.Labels))
	}
	if report.Series.Labels[364] != "Jan" {
		t.Errorf("expected last year label 'Jan', got %q", report.Series.Labels[364])
	}
}

func TestSetPeriodIgnoresUnknownValues(t *testing.T) {
	agg := New(newTestStore(t))
	agg.SetPeriod(PeriodMonth)
	agg.SetPeriod(Period("decade"))
	if agg.Period() != PeriodMonth {
		t.Errorf("expected unknown period to be ignored, got %s", agg.Period())
	}
}

func TestAveragesAreRounded(t *testing.T) {
	today := time.Date(2026, 1, 6, 12, 0, 0, 0, time.Local)
	store := newTestStore(t)

	addMeal(t, store, today, 100, 10, 10, 10)
	addMeal(t, store, today.AddDate(0, 0, -1), 101, 10, 10, 10)

	agg := New(store)
	agg.SetClock(func() time.Time { return today })
	agg.SetPeriod(PeriodWeek)

	report, err := agg.GenerateStats()
	if err != nil {
		t.Fatalf("failed to generate stats: %v", err)
	}
	// 201 / 2 = 100.5 rounds to 101.
	if report.Averages.Calories != 101 {
		t.Errorf("expected rounded average 101, got %v", report.Averages.Calories)
	}
}
