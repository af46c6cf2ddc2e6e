package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := titleStyle.Render("trainweek · " + m.week)

	boardView, _ := m.board.Render(headerHeight)

	var status string
	switch {
	case m.err != nil:
		status = errorStyle.Render("Error: " + m.err.Error())
	case m.dragging != nil:
		status = dragHintStyle.Render(m.status)
	case m.status != "":
		status = statusStyle.Render(m.status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		strings.TrimRight(boardView, "\n"),
		status,
		m.help.View(m.keys),
	)
}
