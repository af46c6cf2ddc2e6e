package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"trainweek/internal/dragdrop"
	"trainweek/internal/models"
	"trainweek/internal/planner"
	"trainweek/internal/storage"
	"trainweek/internal/tui/components/board"
)

// dragState tracks an in-flight mouse drag from press to release.
type dragState struct {
	itemID string
	origin models.Bucket
	point  dragdrop.Point
}

type Model struct {
	store   storage.Provider
	planner *planner.Planner

	week     string
	board    board.Model
	snapshot dragdrop.Snapshot
	dragging *dragState

	keys   KeyMap
	help   help.Model
	width  int
	height int

	status   string
	err      error
	quitting bool
}

func NewModel(store storage.Provider, p *planner.Planner) Model {
	m := Model{
		store:   store,
		planner: p,
		week:    models.WeekStart(time.Now()),
		board:   board.New(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.reload()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// headerHeight is the number of rows above the board; the layout snapshot is
// offset by it so mouse coordinates land on the right rows.
const headerHeight = 1

// reload re-reads the week's items and the slot policy from storage.
func (m *Model) reload() {
	m.err = nil

	settings, err := m.store.GetSettings()
	if err != nil {
		m.err = err
		return
	}
	m.board.SetPolicy(settings.SlotModePolicy)

	items, err := m.planner.LoadWeek(m.week)
	if err != nil {
		m.err = err
		return
	}
	m.board.SetItems(items)
	m.refreshSnapshot()
}

// refreshSnapshot re-measures the board layout. Must run after anything that
// changes board geometry (items, policy, width), not during View, which has a
// value receiver.
func (m *Model) refreshSnapshot() {
	_, m.snapshot = m.board.Render(headerHeight)
}

func (m *Model) shiftWeek(days int) {
	t, err := time.Parse(models.DateFormat, m.week)
	if err != nil {
		m.err = err
		return
	}
	m.week = models.WeekStart(t.AddDate(0, 0, days))
	m.reload()
}
