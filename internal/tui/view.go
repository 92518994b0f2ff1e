package tui

import (
	"fmt"
	"strings"

	"mealtrack/internal/models"
	"mealtrack/internal/stats"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.state == StateJournal {
		b.WriteString(m.journalView())
	} else {
		b.WriteString(m.statsView())
	}

	if m.err != nil {
		b.WriteString("\n" + dangerStyle.Render(fmt.Sprintf("error: %v", m.err)) + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys))

	return docStyle.Render(b.String())
}

func (m Model) journalView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.session.FormatCurrentDate()) + "\n\n")

	cursor := 0
	for _, c := range models.Categories() {
		b.WriteString(categoryStyle.Render(categoryTitle(c)) + "\n")
		meals := m.entry.Meals[c]
		if len(meals) == 0 {
			b.WriteString(mutedStyle.Render("  nothing logged") + "\n")
		}
		for _, meal := range meals {
			line := fmt.Sprintf("  %s  %s", meal.Name, mutedStyle.Render(nutritionLine(meal.Nutrition)))
			if cursor == m.selected {
				line = selectedStyle.Render("> " + meal.Name + "  " + nutritionLine(meal.Nutrition))
			}
			b.WriteString(line + "\n")
			cursor++
		}
		b.WriteString("\n")
	}

	b.WriteString(totalsStyle.Render("Totals") + "\n")
	b.WriteString(m.goalLine("calories", m.entry.TotalNutrition.Calories, m.settings.Goals.Calories, "kcal"))
	b.WriteString(m.goalLine("protein", m.entry.TotalNutrition.Protein, m.settings.Goals.Protein, "g"))
	b.WriteString(m.goalLine("carbs", m.entry.TotalNutrition.Carbs, m.settings.Goals.Carbs, "g"))
	b.WriteString(m.goalLine("fat", m.entry.TotalNutrition.Fat, m.settings.Goals.Fat, "g"))

	return b.String()
}

// goalLine renders one "nutrient: eaten / goal" row, highlighted when the
// daily goal has been exceeded.
func (m Model) goalLine(name string, value, goal float64, unit string) string {
	line := fmt.Sprintf("  %-8s %.0f / %.0f %s", name, value, goal, unit)
	if goal > 0 && value > goal {
		return overGoalStyle.Render(line) + "\n"
	}
	return line + "\n"
}

func (m Model) statsView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Statistics (%s)", m.agg.Period())) + "\n\n")

	if m.report.TotalDays == 0 {
		b.WriteString(mutedStyle.Render("no meals logged in this period") + "\n")
		return b.String()
	}

	avg := m.report.Averages
	b.WriteString(fmt.Sprintf("Daily averages over %d day(s) with data:\n", m.report.TotalDays))
	b.WriteString(fmt.Sprintf("  calories %.0f kcal   protein %.0fg   carbs %.0fg   fat %.0fg\n\n",
		avg.Calories, avg.Protein, avg.Carbs, avg.Fat))

	// The year view has too many slots to chart per day.
	if m.agg.Period() == stats.PeriodYear {
		total := m.report.Totals
		b.WriteString(fmt.Sprintf("Period totals: %.0f kcal, %.0fg protein, %.0fg carbs, %.0fg fat\n",
			total.Calories, total.Protein, total.Carbs, total.Fat))
		return b.String()
	}

	b.WriteString(m.calorieChart())
	return b.String()
}

// calorieChart draws a simple horizontal bar per day, scaled against the
// period's calorie peak.
func (m Model) calorieChart() string {
	const maxBar = 40

	peak := 0.0
	for _, v := range m.report.Series.Calories {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		return mutedStyle.Render("no calories recorded") + "\n"
	}

	var b strings.Builder
	for i, label := range m.report.Series.Labels {
		v := m.report.Series.Calories[i]
		width := int(v / peak * maxBar)
		bar := barStyle.Render(strings.Repeat("█", width))
		b.WriteString(fmt.Sprintf("  %-7s %s %.0f\n", label, bar, v))
	}
	return b.String()
}

func nutritionLine(n models.NutritionTotals) string {
	return fmt.Sprintf("%.0f kcal, %.0fg P, %.0fg C, %.0fg F", n.Calories, n.Protein, n.Carbs, n.Fat)
}

func categoryTitle(c models.Category) string {
	s := string(c)
	return strings.ToUpper(s[:1]) + s[1:]
}
