package models

// Bucket identifies one ordered list on the weekly board. Day 0 is the
// unscheduled "To Be Defined" section; 1..7 are Monday..Sunday. Slot is empty
// when the day is a single undivided bucket.
type Bucket struct {
	Day  int
	Slot TimeSlot
}

// Unscheduled is the bucket items land in when they have no day assigned.
func Unscheduled() Bucket {
	return Bucket{}
}

func (b Bucket) IsUnscheduled() bool {
	return b.Day == 0
}

func (b Bucket) String() string {
	name := DayName(b.Day)
	if b.Slot != "" {
		return name + "/" + string(b.Slot)
	}
	return name
}

// ScheduledItem is the in-memory unit the ordering engine and drop resolver
// operate on: a workout or rest day projected onto its board position, with
// the category reference denormalized for rendering.
type ScheduledItem struct {
	ID              string
	Bucket          Bucket
	Kind            EventType
	Title           string
	Order           int
	IsCompleted     bool
	CategoryID      string
	CategoryName    string
	CategoryColorID int
}

// ItemFromWorkout projects a persisted workout onto the board, resolving its
// category reference against cats (keyed by category id).
func ItemFromWorkout(w Workout, cats map[string]Category) ScheduledItem {
	item := ScheduledItem{
		ID:          w.ID,
		Kind:        w.EventType,
		Title:       w.Type,
		Order:       w.SortOrder,
		IsCompleted: w.IsCompleted,
	}
	if w.DayOfWeek != nil {
		item.Bucket.Day = *w.DayOfWeek
	}
	if w.TimeSlot != nil {
		item.Bucket.Slot = *w.TimeSlot
	}
	if w.CategoryID != nil {
		item.CategoryID = *w.CategoryID
		if cat, ok := cats[*w.CategoryID]; ok {
			item.CategoryName = cat.Name
			item.CategoryColorID = cat.ColorID
		}
	}
	return item
}

// ApplyPlacement writes an item's board position back onto its workout
// record.
func ApplyPlacement(w *Workout, item ScheduledItem) {
	if item.Bucket.IsUnscheduled() {
		w.DayOfWeek = nil
	} else {
		day := item.Bucket.Day
		w.DayOfWeek = &day
	}
	if item.Bucket.Slot == "" {
		w.TimeSlot = nil
	} else {
		slot := item.Bucket.Slot
		w.TimeSlot = &slot
	}
	w.SortOrder = item.Order
}
