package utils

import (
	"testing"
	"time"
)

func TestDateKeyDiscardsTime(t *testing.T) {
	morning := time.Date(2026, 1, 6, 8, 15, 0, 0, time.Local)
	evening := time.Date(2026, 1, 6, 23, 59, 59, 0, time.Local)

	if DateKey(morning) != "2026-01-06" {
		t.Errorf("expected 2026-01-06, got %s", DateKey(morning))
	}
	if DateKey(morning) != DateKey(evening) {
		t.Errorf("expected same key for same calendar day")
	}
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2026-01-06")
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if want := time.Date(2026, 1, 6, 0, 0, 0, 0, time.Local); !day.Equal(want) {
		t.Errorf("expected local midnight %v, got %v", want, day)
	}

	for _, bad := range []string{"06-01-2026", "2026/01/06", "Jan 6 2026", ""} {
		if _, err := ParseDay(bad); err == nil {
			t.Errorf("expected %q to fail", bad)
		}
	}
}

func TestParseDayRoundtripsDateKey(t *testing.T) {
	original := time.Date(2026, 7, 31, 18, 30, 0, 0, time.Local)
	parsed, err := ParseDay(DateKey(original))
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if DateKey(parsed) != DateKey(original) {
		t.Errorf("round trip changed the day: %s vs %s", DateKey(parsed), DateKey(original))
	}
}

func TestDaysBetween(t *testing.T) {
	base := time.Date(2026, 1, 6, 13, 0, 0, 0, time.Local)

	for _, tc := range []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same day", base, base.Add(5 * time.Hour), 0},
		{"next day", base, base.AddDate(0, 0, 1), 1},
		{"previous day", base, base.AddDate(0, 0, -1), -1},
		{"across month", base, base.AddDate(0, 0, 40), 40},
		{"times ignored", StartOfDay(base), base.AddDate(0, 0, 2).Add(23 * time.Hour), 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := DaysBetween(tc.a, tc.b); got != tc.want {
				t.Errorf("DaysBetween = %d, want %d", got, tc.want)
			}
		})
	}
}
