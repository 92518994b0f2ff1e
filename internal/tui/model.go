package tui

import (
	"github.com/charmbracelet/bubbles/help"

	"mealtrack/internal/journal"
	"mealtrack/internal/models"
	"mealtrack/internal/stats"
	"mealtrack/internal/storage"
)

// SessionState represents the active TUI view
type SessionState int

const (
	StateJournal SessionState = iota
	StateStats
)

// mealRef addresses one meal in the flattened journal list so selection can
// move across category boundaries.
type mealRef struct {
	category models.Category
	index    int
}

type Model struct {
	store    storage.Provider
	session  *journal.Session
	agg      *stats.Aggregator
	state    SessionState
	keys     KeyMap
	help     help.Model
	entry    models.JournalEntry
	settings models.Settings
	report   stats.Report
	selected int
	err      error
	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, session *journal.Session) Model {
	m := Model{
		store:   store,
		session: session,
		agg:     stats.New(store),
		state:   StateJournal,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.reload()
	return m
}

// reload refreshes the journal entry, settings and stats report from
// storage, clamping the meal selection to the new list.
func (m *Model) reload() {
	entry, err := m.session.CurrentJournal()
	if err != nil {
		m.err = err
		return
	}
	m.entry = entry

	settings, err := m.store.GetSettings()
	if err != nil {
		m.err = err
		return
	}
	m.settings = settings

	report, err := m.agg.GenerateStats()
	if err != nil {
		m.err = err
		return
	}
	m.report = report
	m.err = nil

	if n := len(m.mealRefs()); m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// mealRefs flattens the entry's category lists in display order.
func (m Model) mealRefs() []mealRef {
	var refs []mealRef
	for _, c := range models.Categories() {
		for i := range m.entry.Meals[c] {
			refs = append(refs, mealRef{category: c, index: i})
		}
	}
	return refs
}
