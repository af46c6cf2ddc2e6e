// Package dragdrop maps pointer positions to board buckets and insertion
// indexes during a drag gesture. The resolver is a pure function of a layout
// snapshot captured at render time; it never consults ambient state and it
// always produces a target, even when the pointer has left every known
// rectangle mid-swipe.
package dragdrop

import (
	"sort"

	"trainweek/internal/models"
)

// Point is a pointer position in board coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in board coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

func (r Rect) MidY() float64 {
	return r.Y + r.H/2
}

// Snapshot is the board layout as measured during the last render. Sections
// are keyed by day (0 = the unscheduled section); SlotBounds carries the
// finer per-slot rectangles for days that are subdivided and has no entries
// for days that are not. Items supplies bucket membership and ordering for
// the rendered items whose rectangles appear in ItemBounds.
type Snapshot struct {
	SectionBounds map[int]Rect
	SlotBounds    map[models.Bucket]Rect
	ItemBounds    map[string]Rect
	Items         []models.ScheduledItem
}

// Resolve returns the bucket under the pointer and the insertion index within
// it for the dragged item.
//
// Bucket resolution tries, in order: containment in a slot rectangle,
// containment in a section rectangle, then a vertical fallback over sections
// sorted by top edge: above everything resolves to the first section, below
// everything to the last, and a pointer in the gap between two sections goes
// to whichever side of the gap's midpoint it is on (the exact midpoint goes
// to the lower section). fallback is returned only when the snapshot has no
// sections at all.
//
// The index is the position of the first same-bucket item whose rectangle
// center lies below the pointer; when none does the item is appended.
func Resolve(p Point, snap Snapshot, draggedID string, fallback models.Bucket) (models.Bucket, int) {
	bucket := resolveBucket(p, snap, fallback)
	return bucket, resolveIndex(p, snap, bucket, draggedID)
}

func resolveBucket(p Point, snap Snapshot, fallback models.Bucket) models.Bucket {
	for bucket, rect := range snap.SlotBounds {
		if rect.Contains(p) {
			return bucket
		}
	}

	for day, rect := range snap.SectionBounds {
		if rect.Contains(p) {
			return bucketForDay(p, snap, day)
		}
	}

	if len(snap.SectionBounds) == 0 {
		return fallback
	}
	return bucketForDay(p, snap, fallbackDay(p, snap.SectionBounds))
}

// fallbackDay picks a section for a pointer outside every known rectangle,
// scanning sections by top edge.
func fallbackDay(p Point, sections map[int]Rect) int {
	type entry struct {
		day  int
		rect Rect
	}
	sorted := make([]entry, 0, len(sections))
	for day, rect := range sections {
		sorted = append(sorted, entry{day, rect})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].rect.Y != sorted[j].rect.Y {
			return sorted[i].rect.Y < sorted[j].rect.Y
		}
		return sorted[i].day < sorted[j].day
	})

	for i, e := range sorted {
		if p.Y < e.rect.Bottom() {
			return e.day
		}
		if i+1 < len(sorted) {
			boundary := (e.rect.Bottom() + sorted[i+1].rect.Y) / 2
			if p.Y < boundary {
				return e.day
			}
		}
	}
	return sorted[len(sorted)-1].day
}

// bucketForDay attaches a slot to the resolved day. Days without slot
// subdivision always produce a slotless bucket; subdivided days pick the slot
// whose rectangle center is vertically nearest the pointer, so a pointer on a
// day header still lands somewhere defined.
func bucketForDay(p Point, snap Snapshot, day int) models.Bucket {
	best := models.Bucket{Day: day}
	bestDist := -1.0
	for bucket, rect := range snap.SlotBounds {
		if bucket.Day != day {
			continue
		}
		dist := p.Y - rect.MidY()
		if dist < 0 {
			dist = -dist
		}
		if bestDist < 0 || dist < bestDist || (dist == bestDist && bucket.Slot < best.Slot) {
			best = bucket
			bestDist = dist
		}
	}
	return best
}

func resolveIndex(p Point, snap Snapshot, bucket models.Bucket, draggedID string) int {
	var members []models.ScheduledItem
	for _, item := range snap.Items {
		if item.ID != draggedID && item.Bucket == bucket {
			members = append(members, item)
		}
	}
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Order < members[j].Order
	})

	for i, item := range members {
		rect, ok := snap.ItemBounds[item.ID]
		if !ok {
			continue
		}
		if rect.MidY() > p.Y {
			return i
		}
	}
	return len(members)
}
