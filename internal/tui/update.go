package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"mealtrack/internal/journal"
	"mealtrack/internal/stats"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.SwitchView):
			if m.state == StateJournal {
				m.state = StateStats
			} else {
				m.state = StateJournal
			}
			return m, nil
		}

		if m.state == StateJournal {
			return m.updateJournal(msg)
		}
		return m.updateStats(msg)
	}

	return m, nil
}

func (m Model) updateJournal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.PrevDay):
		m.session.ChangeDate(journal.Previous)
		m.selected = 0
		m.reload()

	case key.Matches(msg, m.keys.NextDay):
		m.session.ChangeDate(journal.Next)
		m.selected = 0
		m.reload()

	case key.Matches(msg, m.keys.Today):
		m.session.SetCurrentDate(time.Now())
		m.selected = 0
		m.reload()

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.mealRefs())-1 {
			m.selected++
		}

	case key.Matches(msg, m.keys.Delete):
		refs := m.mealRefs()
		if len(refs) == 0 {
			break
		}
		ref := refs[m.selected]
		meal := m.entry.Meals[ref.category][ref.index]
		if _, err := m.session.RemoveMeal(ref.category, meal.ID); err != nil {
			m.err = err
			break
		}
		m.reload()
	}

	return m, nil
}

func (m Model) updateStats(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Period) {
		m.agg.SetPeriod(nextPeriod(m.agg.Period()))
		m.reload()
	}
	return m, nil
}

func nextPeriod(p stats.Period) stats.Period {
	switch p {
	case stats.PeriodDay:
		return stats.PeriodWeek
	case stats.PeriodWeek:
		return stats.PeriodMonth
	case stats.PeriodMonth:
		return stats.PeriodYear
	default:
		return stats.PeriodDay
	}
}
