package board

import (
	"strings"
	"testing"

	"trainweek/internal/dragdrop"
	"trainweek/internal/models"
)

func testItems() []models.ScheduledItem {
	return []models.ScheduledItem{
		{ID: "u1", Bucket: models.Bucket{}, Kind: models.EventTypeWorkout, Title: "Stretching", Order: 0},
		{ID: "m1", Bucket: models.Bucket{Day: 1}, Kind: models.EventTypeWorkout, Title: "Squats", Order: 0},
		{ID: "m2", Bucket: models.Bucket{Day: 1}, Kind: models.EventTypeWorkout, Title: "Deadlifts", Order: 1},
		{ID: "t1", Bucket: models.Bucket{Day: 2}, Kind: models.EventTypeRestDay, Title: "Rest", Order: 0},
	}
}

func TestRender_SnapshotMatchesLines(t *testing.T) {
	m := New()
	m.SetWidth(80)
	m.SetItems(testItems())

	const offset = 1
	view, snap := m.Render(offset)
	lines := strings.Split(view, "\n")

	// Every measured item rectangle points at the line that renders it.
	for id, want := range map[string]string{
		"u1": "Stretching",
		"m1": "Squats",
		"m2": "Deadlifts",
	} {
		rect, ok := snap.ItemBounds[id]
		if !ok {
			t.Fatalf("no bounds recorded for %s", id)
		}
		line := lines[int(rect.Y)-offset]
		if !strings.Contains(line, want) {
			t.Errorf("bounds for %s point at %q, expected it to contain %q", id, line, want)
		}
	}

	// All eight sections are measured, stacked without overlap.
	if len(snap.SectionBounds) != 8 {
		t.Fatalf("expected 8 section rects, got %d", len(snap.SectionBounds))
	}
	for day := 0; day < 7; day++ {
		cur, next := snap.SectionBounds[day], snap.SectionBounds[day+1]
		if cur.Bottom() > next.Y {
			t.Errorf("section %d (bottom %v) overlaps section %d (top %v)", day, cur.Bottom(), day+1, next.Y)
		}
	}
}

func TestRender_SingleModeHasNoSlotBounds(t *testing.T) {
	m := New()
	m.SetWidth(80)
	m.SetItems(testItems())

	_, snap := m.Render(0)

	if len(snap.SlotBounds) != 0 {
		t.Errorf("expected no slot rects in single mode, got %d", len(snap.SlotBounds))
	}
}

func TestRender_SlotModeMeasuresEverySlot(t *testing.T) {
	m := New()
	m.SetWidth(80)
	m.SetPolicy(models.SlotModeSlots)
	m.SetItems(testItems())

	_, snap := m.Render(0)

	// 7 days x 3 slots; the unscheduled section is never subdivided.
	if len(snap.SlotBounds) != 21 {
		t.Fatalf("expected 21 slot rects, got %d", len(snap.SlotBounds))
	}
	for bucket, rect := range snap.SlotBounds {
		section := snap.SectionBounds[bucket.Day]
		if rect.Y < section.Y || rect.Bottom() > section.Bottom() {
			t.Errorf("slot %v rect %v escapes its section rect %v", bucket, rect, section)
		}
	}
}

func TestRender_PerDayModeSubdividesOnlyDaysWithSlottedItems(t *testing.T) {
	slot := models.TimeSlotMorning
	items := append(testItems(), models.ScheduledItem{
		ID: "w1", Bucket: models.Bucket{Day: 3, Slot: slot}, Kind: models.EventTypeWorkout, Title: "Swim", Order: 0,
	})

	m := New()
	m.SetWidth(80)
	m.SetPolicy(models.SlotModePerDay)
	m.SetItems(items)

	_, snap := m.Render(0)

	for bucket := range snap.SlotBounds {
		if bucket.Day != 3 {
			t.Errorf("expected slot rects only on Wednesday, got %v", bucket)
		}
	}
	if len(snap.SlotBounds) != 3 {
		t.Errorf("expected 3 slot rects, got %d", len(snap.SlotBounds))
	}
}

func TestSelection_WalksRenderOrder(t *testing.T) {
	m := New()
	m.SetWidth(80)
	m.SetItems(testItems())

	first, ok := m.Selected()
	if !ok || first.ID != "u1" {
		t.Fatalf("expected initial selection u1, got %+v", first)
	}

	m.MoveSelection(1)
	second, _ := m.Selected()
	if second.ID != "m1" {
		t.Errorf("expected m1 after moving down, got %s", second.ID)
	}

	// Clamped at both ends.
	m.MoveSelection(100)
	last, _ := m.Selected()
	if last.ID != "t1" {
		t.Errorf("expected t1 at the bottom, got %s", last.ID)
	}
	m.MoveSelection(-100)
	top, _ := m.Selected()
	if top.ID != "u1" {
		t.Errorf("expected u1 at the top, got %s", top.ID)
	}
}

func TestSelectAt(t *testing.T) {
	m := New()
	m.SetWidth(80)
	m.SetItems(testItems())

	_, snap := m.Render(0)

	rect := snap.ItemBounds["m2"]
	id, ok := m.SelectAt(dragdrop.Point{X: 2, Y: rect.Y}, snap)
	if !ok || id != "m2" {
		t.Fatalf("expected to select m2, got %q (ok=%v)", id, ok)
	}
	selected, _ := m.Selected()
	if selected.ID != "m2" {
		t.Errorf("expected selection m2, got %s", selected.ID)
	}

	if _, ok := m.SelectAt(dragdrop.Point{X: 2, Y: 9999}, snap); ok {
		t.Error("expected no selection far below the board")
	}
}
