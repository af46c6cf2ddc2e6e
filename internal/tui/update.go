package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"trainweek/internal/dragdrop"
	"trainweek/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.board.SetWidth(msg.Width)
		m.refreshSnapshot()

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		m.board.MoveSelection(-1)

	case key.Matches(msg, m.keys.Down):
		m.board.MoveSelection(1)

	case key.Matches(msg, m.keys.PrevWeek):
		m.shiftWeek(-7)

	case key.Matches(msg, m.keys.NextWeek):
		m.shiftWeek(7)

	case key.Matches(msg, m.keys.Refresh):
		m.reload()
		m.status = "Reloaded."

	case key.Matches(msg, m.keys.Complete):
		if item, ok := m.board.Selected(); ok && item.Kind != models.EventTypeRestDay {
			w, err := m.planner.ToggleComplete(item.ID)
			if err != nil {
				m.err = err
				break
			}
			if w.IsCompleted {
				m.status = fmt.Sprintf("Completed %s.", w.Type)
			} else {
				m.status = fmt.Sprintf("Marked %s incomplete.", w.Type)
			}
			m.reload()
		}

	case key.Matches(msg, m.keys.Unplan):
		if item, ok := m.board.Selected(); ok && !item.Bucket.IsUnscheduled() {
			if err := m.planner.MoveItem(m.week, item.ID, models.Unscheduled(), 0); err != nil {
				m.err = err
				break
			}
			m.status = "Sent to " + models.DayName(0) + "."
			m.reload()
		}

	case key.Matches(msg, m.keys.Delete):
		if item, ok := m.board.Selected(); ok {
			if err := m.planner.RemoveWorkout(item.ID); err != nil {
				m.err = err
				break
			}
			m.status = "Deleted."
			m.reload()
		}
	}

	return m, nil
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p := dragdrop.Point{X: float64(msg.X), Y: float64(msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			break
		}
		if id, ok := m.board.SelectAt(p, m.snapshot); ok {
			item, _ := m.board.Selected()
			m.dragging = &dragState{itemID: id, origin: item.Bucket, point: p}
			m.board.SetDragged(id)
		}

	case tea.MouseActionMotion:
		if m.dragging != nil {
			m.dragging.point = p
			bucket, _ := dragdrop.Resolve(p, m.snapshot, m.dragging.itemID, m.dragging.origin)
			m.status = "Drop on " + bucket.String()
		}

	case tea.MouseActionRelease:
		if m.dragging == nil {
			break
		}
		drag := m.dragging
		m.dragging = nil
		m.board.SetDragged("")

		bucket, index := dragdrop.Resolve(p, m.snapshot, drag.itemID, drag.origin)
		if err := m.planner.MoveItem(m.week, drag.itemID, bucket, index); err != nil {
			m.err = err
			break
		}
		m.status = "Moved to " + bucket.String() + "."
		m.reload()
	}

	return m, nil
}
