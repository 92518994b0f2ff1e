package cli

import (
	"fmt"

	"mealtrack/internal/stats"
)

type StatsCmd struct {
	Period string `short:"p" help:"Aggregation period (day|week|month|year)." default:"week"`
}

func (c *StatsCmd) Run(ctx *Context) error {
	period, err := stats.ParsePeriod(c.Period)
	if err != nil {
		return err
	}

	agg := stats.New(ctx.Store)
	agg.SetPeriod(period)
	report, err := agg.GenerateStats()
	if err != nil {
		return err
	}

	fmt.Printf("Nutrition stats (%s)\n\n", report.Period)
	if report.TotalDays == 0 {
		fmt.Println("No journal data in this period.")
		return nil
	}

	fmt.Printf("Days with data: %d\n", report.TotalDays)
	fmt.Printf("Daily averages: %.0f kcal  Protein %.0fg  Carbs %.0fg  Fat %.0fg\n\n",
		report.Averages.Calories, report.Averages.Protein, report.Averages.Carbs, report.Averages.Fat)

	// Year series is too long to tabulate day by day; the averages above
	// carry the summary.
	if report.Period == stats.PeriodYear {
		return nil
	}

	fmt.Printf("%-8s %8s %8s %8s %8s\n", "", "kcal", "protein", "carbs", "fat")
	for i, label := range report.Series.Labels {
		fmt.Printf("%-8s %8.0f %8.0f %8.0f %8.0f\n", label,
			report.Series.Calories[i], report.Series.Protein[i],
			report.Series.Carbs[i], report.Series.Fat[i])
	}
	return nil
}
