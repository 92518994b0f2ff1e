// Package stats rolls persisted journal days up into period statistics and a
// plotting-ready time series.
package stats

import (
	"fmt"
	"time"

	"mealtrack/internal/constants"
	"mealtrack/internal/models"
	"mealtrack/internal/storage"
	"mealtrack/internal/utils"
)

// Period is the aggregation window, anchored at "now".
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"

	DefaultPeriod = PeriodWeek
)

// ParsePeriod validates a period name.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return Period(s), nil
	}
	return "", fmt.Errorf("invalid period %q (expected day, week, month or year)", s)
}

// Series holds one ordered slot per day in the range, zero-filled for days
// without data, with a parallel label sequence for plotting.
type Series struct {
	Labels   []string
	Calories []float64
	Protein  []float64
	Carbs    []float64
	Fat      []float64
}

// Report is the result of one aggregation pass. Totals are the raw
// accumulated sums feeding the averages; Averages are per-nutrient means
// over the days that actually had data, rounded to the nearest integer.
type Report struct {
	Series    Series
	Totals    models.NutritionTotals
	Averages  models.NutritionTotals
	TotalDays int
	Period    Period
}

// Aggregator computes period statistics from the persistence store. The
// clock is injectable so tests can pin "today".
type Aggregator struct {
	store  storage.Provider
	period Period
	now    func() time.Time
}

func New(store storage.Provider) *Aggregator {
	return &Aggregator{
		store:  store,
		period: DefaultPeriod,
		now:    time.Now,
	}
}

// SetPeriod selects the aggregation window. Unknown values are ignored.
func (a *Aggregator) SetPeriod(p Period) {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		a.period = p
	}
}

func (a *Aggregator) Period() Period {
	return a.period
}

// SetClock overrides the time source. Tests only.
func (a *Aggregator) SetClock(now func() time.Time) {
	a.now = now
}

// DateRange returns the inclusive [start, end] window for the current
// period, anchored at today: Day is today alone, Week/Month/Year reach back
// 6/29/364 days.
func (a *Aggregator) DateRange() (time.Time, time.Time) {
	end := utils.StartOfDay(a.now())
	switch a.period {
	case PeriodDay:
		return end, end
	case PeriodMonth:
		return end.AddDate(0, 0, -29), end
	case PeriodYear:
		return end.AddDate(0, 0, -364), end
	default: // week
		return end.AddDate(0, 0, -6), end
	}
}

// GenerateStats scans the stored journals in the period's range, buckets
// each day's persisted totals into the series by its offset from the range
// start, and averages over the days that had any data. Days without data
// contribute zero slots and are excluded from the averages denominator, so a
// user who logged 2 of 7 days gets averages over those 2 days.
func (a *Aggregator) GenerateStats() (Report, error) {
	start, end := a.DateRange()

	series := a.initSeries(start, end)
	length := len(series.Calories)

	journals, err := a.store.GetJournalsInRange(start, end)
	if err != nil {
		return Report{}, err
	}

	var totals models.NutritionTotals
	totalDays := 0

	for key, entry := range journals {
		day, err := utils.ParseDay(key)
		if err != nil {
			continue
		}
		idx := utils.DaysBetween(start, day)
		if idx < 0 || idx >= length {
			continue
		}

		series.Calories[idx] = entry.TotalNutrition.Calories
		series.Protein[idx] = entry.TotalNutrition.Protein
		series.Carbs[idx] = entry.TotalNutrition.Carbs
		series.Fat[idx] = entry.TotalNutrition.Fat

		totals = totals.Add(entry.TotalNutrition)
		totalDays++
	}

	averages := models.NutritionTotals{}
	if totalDays > 0 {
		averages = models.NutritionTotals{
			Calories: totals.Calories / float64(totalDays),
			Protein:  totals.Protein / float64(totalDays),
			Carbs:    totals.Carbs / float64(totalDays),
			Fat:      totals.Fat / float64(totalDays),
		}.Rounded()
	}

	return Report{
		Series:    series,
		Totals:    totals,
		Averages:  averages,
		TotalDays: totalDays,
		Period:    a.period,
	}, nil
}

// initSeries builds the zero-filled series and its labels: a single "Today"
// slot for the day period, otherwise one slot per day with the label format
// the period calls for.
func (a *Aggregator) initSeries(start, end time.Time) Series {
	if a.period == PeriodDay {
		return Series{
			Labels:   []string{"Today"},
			Calories: make([]float64, 1),
			Protein:  make([]float64, 1),
			Carbs:    make([]float64, 1),
			Fat:      make([]float64, 1),
		}
	}

	count := utils.DaysBetween(start, end) + 1
	labels := make([]string, 0, count)
	for day := start; len(labels) < count; day = day.AddDate(0, 0, 1) {
		labels = append(labels, day.Format(a.labelFormat()))
	}

	return Series{
		Labels:   labels,
		Calories: make([]float64, count),
		Protein:  make([]float64, count),
		Carbs:    make([]float64, count),
		Fat:      make([]float64, count),
	}
}

func (a *Aggregator) labelFormat() string {
	switch a.period {
	case PeriodWeek:
		return constants.WeekLabelFormat
	case PeriodMonth:
		return constants.MonthLabelFormat
	default:
		return constants.YearLabelFormat
	}
}
