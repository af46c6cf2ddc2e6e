// Package board renders the weekly planner grid and measures it. Every render
// produces both the styled text and a dragdrop.Snapshot of where each
// section, slot and item landed, so mouse positions can be resolved against
// exactly what is on screen.
package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"trainweek/internal/constants"
	"trainweek/internal/dragdrop"
	"trainweek/internal/models"
)

var (
	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	slotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")).
			Strikethrough(true)

	restStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("179")).
			Italic(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	draggingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))
)

func categoryStyle(colorID int) lipgloss.Style {
	hex := constants.Palette[((colorID%len(constants.Palette))+len(constants.Palette))%len(constants.Palette)]
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

type Model struct {
	items    []models.ScheduledItem
	policy   models.SlotModePolicy
	width    int
	selected int    // index into the rendered item order, -1 when empty
	dragged  string // id of the item being dragged, empty otherwise
	rendered []models.ScheduledItem
}

func New() Model {
	return Model{
		policy:   models.SlotModeSingle,
		selected: -1,
	}
}

func (m *Model) SetItems(items []models.ScheduledItem) {
	m.items = items
	m.rendered = renderOrder(items, m.policy)
	if len(m.rendered) == 0 {
		m.selected = -1
	} else if m.selected < 0 {
		m.selected = 0
	} else if m.selected >= len(m.rendered) {
		m.selected = len(m.rendered) - 1
	}
}

func (m *Model) SetPolicy(policy models.SlotModePolicy) {
	m.policy = policy
	m.SetItems(m.items)
}

func (m *Model) SetWidth(width int) {
	m.width = width
}

func (m *Model) SetDragged(id string) {
	m.dragged = id
}

// Selected returns the item under the keyboard cursor.
func (m *Model) Selected() (models.ScheduledItem, bool) {
	if m.selected < 0 || m.selected >= len(m.rendered) {
		return models.ScheduledItem{}, false
	}
	return m.rendered[m.selected], true
}

func (m *Model) MoveSelection(delta int) {
	if len(m.rendered) == 0 {
		return
	}
	m.selected += delta
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected >= len(m.rendered) {
		m.selected = len(m.rendered) - 1
	}
}

// SelectAt moves the keyboard cursor to the item containing the given screen
// position, if any.
func (m *Model) SelectAt(p dragdrop.Point, snap dragdrop.Snapshot) (string, bool) {
	for i, item := range m.rendered {
		rect, ok := snap.ItemBounds[item.ID]
		if ok && rect.Contains(p) {
			m.selected = i
			return item.ID, true
		}
	}
	return "", false
}

// subdivided reports whether the given day renders as three slot lists.
func subdivided(policy models.SlotModePolicy, day int, byBucket map[models.Bucket][]models.ScheduledItem) bool {
	if day == 0 {
		return false
	}
	switch policy {
	case models.SlotModeSlots:
		return true
	case models.SlotModePerDay:
		for _, slot := range models.TimeSlots {
			if len(byBucket[models.Bucket{Day: day, Slot: slot}]) > 0 {
				return true
			}
		}
	}
	return false
}

// renderOrder flattens items into the top-to-bottom order the board draws
// them in, which is what keyboard navigation walks.
func renderOrder(items []models.ScheduledItem, policy models.SlotModePolicy) []models.ScheduledItem {
	byBucket := groupByBucket(items)

	var out []models.ScheduledItem
	for day := 0; day <= 7; day++ {
		out = append(out, byBucket[models.Bucket{Day: day}]...)
		if subdivided(policy, day, byBucket) {
			for _, slot := range models.TimeSlots {
				out = append(out, byBucket[models.Bucket{Day: day, Slot: slot}]...)
			}
		}
	}
	return out
}

func groupByBucket(items []models.ScheduledItem) map[models.Bucket][]models.ScheduledItem {
	byBucket := make(map[models.Bucket][]models.ScheduledItem)
	for _, item := range items {
		byBucket[item.Bucket] = append(byBucket[item.Bucket], item)
	}
	return byBucket
}

// Render draws the board and measures it. offsetY is the number of screen
// rows above the board, so the snapshot lines up with mouse coordinates.
func (m *Model) Render(offsetY int) (string, dragdrop.Snapshot) {
	byBucket := groupByBucket(m.items)
	width := float64(m.width)
	if width <= 0 {
		width = 80
	}

	snap := dragdrop.Snapshot{
		SectionBounds: make(map[int]dragdrop.Rect),
		SlotBounds:    make(map[models.Bucket]dragdrop.Rect),
		ItemBounds:    make(map[string]dragdrop.Rect),
		Items:         m.items,
	}

	var b strings.Builder
	y := offsetY
	cursor := 0

	writeLine := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
		y++
	}

	writeItem := func(item models.ScheduledItem, indent string) {
		line := indent + m.itemLine(item, cursor)
		snap.ItemBounds[item.ID] = dragdrop.Rect{X: 0, Y: float64(y), W: width, H: 1}
		writeLine(line)
		cursor++
	}

	for day := 0; day <= 7; day++ {
		sectionTop := y
		writeLine(sectionStyle.Render(models.DayName(day)))

		empty := true
		for _, item := range byBucket[models.Bucket{Day: day}] {
			writeItem(item, "  ")
			empty = false
		}

		if subdivided(m.policy, day, byBucket) {
			for _, slot := range models.TimeSlots {
				bucket := models.Bucket{Day: day, Slot: slot}
				slotTop := y
				writeLine(slotStyle.Render("  " + string(slot)))
				for _, item := range byBucket[bucket] {
					writeItem(item, "    ")
					empty = false
				}
				snap.SlotBounds[bucket] = dragdrop.Rect{X: 0, Y: float64(slotTop), W: width, H: float64(y - slotTop)}
			}
			empty = false
		}

		if empty {
			writeLine(emptyStyle.Render("  ·"))
		}

		snap.SectionBounds[day] = dragdrop.Rect{X: 0, Y: float64(sectionTop), W: width, H: float64(y - sectionTop)}

		if day < 7 {
			writeLine("")
		}
	}

	return b.String(), snap
}

func (m *Model) itemLine(item models.ScheduledItem, cursor int) string {
	if item.Kind == models.EventTypeRestDay {
		line := "~ Rest day"
		if cursor == m.selected {
			return selectedStyle.Render(line)
		}
		return restStyle.Render(line)
	}

	check := "[ ]"
	if item.IsCompleted {
		check = "[✓]"
	}
	label := fmt.Sprintf("%s %s", check, item.Title)

	switch {
	case item.ID == m.dragged:
		return draggingStyle.Render(label + " (moving…)")
	case cursor == m.selected:
		return selectedStyle.Render(label)
	case item.IsCompleted:
		return doneStyle.Render(label)
	}

	out := itemStyle.Render(label)
	if item.CategoryName != "" {
		out += " " + categoryStyle(item.CategoryColorID).Render("●"+item.CategoryName)
	}
	return out
}
