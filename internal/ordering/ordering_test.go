package ordering

import (
	"testing"

	"trainweek/internal/models"
)

func workout(id string, day int, slot models.TimeSlot, order int) models.ScheduledItem {
	return models.ScheduledItem{
		ID:     id,
		Bucket: models.Bucket{Day: day, Slot: slot},
		Kind:   models.EventTypeWorkout,
		Order:  order,
	}
}

func restDay(id string, day int, slot models.TimeSlot, order int) models.ScheduledItem {
	item := workout(id, day, slot, order)
	item.Kind = models.EventTypeRestDay
	return item
}

func find(t *testing.T, items []models.ScheduledItem, id string) models.ScheduledItem {
	t.Helper()
	for _, item := range items {
		if item.ID == id {
			return item
		}
	}
	t.Fatalf("item %s not found", id)
	return models.ScheduledItem{}
}

// checkDense verifies every bucket's orders are exactly {0..n-1}.
func checkDense(t *testing.T, items []models.ScheduledItem) {
	t.Helper()
	counts := make(map[models.Bucket]int)
	for _, item := range items {
		counts[item.Bucket]++
	}
	seen := make(map[models.Bucket]map[int]bool)
	for _, item := range items {
		if seen[item.Bucket] == nil {
			seen[item.Bucket] = make(map[int]bool)
		}
		n := counts[item.Bucket]
		if item.Order < 0 || item.Order >= n {
			t.Errorf("item %s has order %d outside [0,%d) in bucket %v", item.ID, item.Order, n, item.Bucket)
		}
		if seen[item.Bucket][item.Order] {
			t.Errorf("duplicate order %d in bucket %v", item.Order, item.Bucket)
		}
		seen[item.Bucket][item.Order] = true
	}
}

func TestReorder_MissingIDIsNoOp(t *testing.T) {
	items := []models.ScheduledItem{
		workout("a", 1, "", 0),
		workout("b", 2, "", 0),
	}

	result := Reorder(items, "nonexistent", models.Bucket{Day: 3}, 0)

	if len(result) != len(items) {
		t.Fatalf("expected %d items, got %d", len(items), len(result))
	}
	for i := range items {
		if result[i] != items[i] {
			t.Errorf("item %d changed: got %+v, want %+v", i, result[i], items[i])
		}
	}
}

func TestReorder_MoveWithinBucket(t *testing.T) {
	items := []models.ScheduledItem{
		workout("a", 1, "", 0),
		workout("b", 1, "", 1),
		workout("c", 1, "", 2),
	}

	result := Reorder(items, "c", models.Bucket{Day: 1}, 0)

	if got := find(t, result, "c").Order; got != 0 {
		t.Errorf("expected c at order 0, got %d", got)
	}
	if got := find(t, result, "a").Order; got != 1 {
		t.Errorf("expected a at order 1, got %d", got)
	}
	if got := find(t, result, "b").Order; got != 2 {
		t.Errorf("expected b at order 2, got %d", got)
	}
	checkDense(t, result)
}

func TestReorder_MoveAcrossDaysRenumbersBoth(t *testing.T) {
	items := []models.ScheduledItem{
		workout("a", 1, "", 0),
		workout("b", 1, "", 1),
		workout("c", 1, "", 2),
		workout("d", 2, "", 0),
	}

	result := Reorder(items, "b", models.Bucket{Day: 2}, 1)

	b := find(t, result, "b")
	if b.Bucket.Day != 2 || b.Order != 1 {
		t.Errorf("expected b at day 2 order 1, got day %d order %d", b.Bucket.Day, b.Order)
	}
	// Source day closes the gap.
	if got := find(t, result, "a").Order; got != 0 {
		t.Errorf("expected a at order 0, got %d", got)
	}
	if got := find(t, result, "c").Order; got != 1 {
		t.Errorf("expected c at order 1, got %d", got)
	}
	checkDense(t, result)
}

func TestReorder_ClampPastEndAppends(t *testing.T) {
	items := []models.ScheduledItem{
		workout("a", 1, "", 0),
		workout("b", 2, "", 0),
		workout("c", 2, "", 1),
	}

	result := Reorder(items, "a", models.Bucket{Day: 2}, 99)

	if got := find(t, result, "a").Order; got != 2 {
		t.Errorf("expected a appended at order 2, got %d", got)
	}
	checkDense(t, result)
}

func TestReorder_NegativeIndexClampsToZero(t *testing.T) {
	items := []models.ScheduledItem{
		workout("a", 1, "", 0),
		workout("b", 2, "", 0),
	}

	result := Reorder(items, "a", models.Bucket{Day: 2}, -5)

	if got := find(t, result, "a").Order; got != 0 {
		t.Errorf("expected a at order 0, got %d", got)
	}
	checkDense(t, result)
}

func TestReorder_WorkoutEvictsRestDay(t *testing.T) {
	// Monday holds a rest day; dragging an unscheduled workout onto Monday
	// sends the rest day back to the To Be Defined section.
	items := []models.ScheduledItem{
		restDay("1", 1, "", 0),
		workout("2", 0, "", 0),
	}

	result := Reorder(items, "2", models.Bucket{Day: 1}, 0)

	rest := find(t, result, "1")
	if !rest.Bucket.IsUnscheduled() {
		t.Errorf("expected rest day evicted to unscheduled, got bucket %v", rest.Bucket)
	}
	if rest.Order != 0 {
		t.Errorf("expected evicted rest day at order 0, got %d", rest.Order)
	}
	moved := find(t, result, "2")
	if moved.Bucket.Day != 1 || moved.Order != 0 {
		t.Errorf("expected workout at Monday order 0, got day %d order %d", moved.Bucket.Day, moved.Order)
	}
	checkDense(t, result)
}

func TestReorder_RestDayEvictsWorkouts(t *testing.T) {
	items := []models.ScheduledItem{
		workout("w1", 3, "", 0),
		workout("w2", 3, "", 1),
		restDay("r", 0, "", 0),
	}

	result := Reorder(items, "r", models.Bucket{Day: 3}, 0)

	for _, id := range []string{"w1", "w2"} {
		if got := find(t, result, id).Bucket; !got.IsUnscheduled() {
			t.Errorf("expected %s evicted to unscheduled, got %v", id, got)
		}
	}
	// Evicted workouts keep their relative order.
	if find(t, result, "w1").Order != 0 || find(t, result, "w2").Order != 1 {
		t.Errorf("expected evicted workouts in original order, got w1=%d w2=%d",
			find(t, result, "w1").Order, find(t, result, "w2").Order)
	}
	r := find(t, result, "r")
	if r.Bucket.Day != 3 || r.Order != 0 {
		t.Errorf("expected rest day at day 3 order 0, got day %d order %d", r.Bucket.Day, r.Order)
	}
	checkDense(t, result)
}

func TestReorder_EvictedAppendAfterExistingUnscheduled(t *testing.T) {
	items := []models.ScheduledItem{
		workout("u", 0, "", 0),
		restDay("r", 2, "", 0),
		workout("w", 5, "", 0),
	}

	result := Reorder(items, "w", models.Bucket{Day: 2}, 0)

	if got := find(t, result, "u").Order; got != 0 {
		t.Errorf("expected existing unscheduled item to stay at order 0, got %d", got)
	}
	if got := find(t, result, "r").Order; got != 1 {
		t.Errorf("expected evicted rest day at order 1, got %d", got)
	}
	checkDense(t, result)
}

func TestReorder_EvictionOnlyAppliesToExactSlot(t *testing.T) {
	// A rest day in the morning slot does not conflict with a workout dropped
	// on the afternoon slot of the same day.
	items := []models.ScheduledItem{
		restDay("r", 4, models.TimeSlotMorning, 0),
		workout("w", 0, "", 0),
	}

	result := Reorder(items, "w", models.Bucket{Day: 4, Slot: models.TimeSlotAfternoon}, 0)

	r := find(t, result, "r")
	if r.Bucket.Day != 4 || r.Bucket.Slot != models.TimeSlotMorning {
		t.Errorf("expected rest day untouched, got bucket %v", r.Bucket)
	}
	checkDense(t, result)
}

func TestReorder_NoEvictionInUnscheduled(t *testing.T) {
	items := []models.ScheduledItem{
		restDay("r", 0, "", 0),
		workout("w", 1, "", 0),
	}

	result := Reorder(items, "w", models.Unscheduled(), 1)

	r := find(t, result, "r")
	if !r.Bucket.IsUnscheduled() || r.Order != 0 {
		t.Errorf("expected rest day to stay in unscheduled at order 0, got %v order %d", r.Bucket, r.Order)
	}
	w := find(t, result, "w")
	if !w.Bucket.IsUnscheduled() || w.Order != 1 {
		t.Errorf("expected workout at unscheduled order 1, got %v order %d", w.Bucket, w.Order)
	}
	checkDense(t, result)
}

func TestReorder_UntouchedBucketsVerbatim(t *testing.T) {
	items := []models.ScheduledItem{
		workout("a", 1, "", 0),
		workout("far", 6, "", 0),
		workout("b", 2, "", 0),
	}

	result := Reorder(items, "a", models.Bucket{Day: 2}, 0)

	far := find(t, result, "far")
	if far != items[1] {
		t.Errorf("expected day 6 bucket untouched, got %+v", far)
	}
}

func TestReorder_InputNotMutated(t *testing.T) {
	items := []models.ScheduledItem{
		workout("a", 1, "", 0),
		workout("b", 1, "", 1),
	}
	before := make([]models.ScheduledItem, len(items))
	copy(before, items)

	Reorder(items, "b", models.Bucket{Day: 2}, 0)

	for i := range before {
		if items[i] != before[i] {
			t.Errorf("input slice mutated at %d: got %+v, want %+v", i, items[i], before[i])
		}
	}
}

func TestReorder_DensityAfterSequenceOfMoves(t *testing.T) {
	items := []models.ScheduledItem{
		workout("a", 0, "", 0),
		workout("b", 0, "", 1),
		workout("c", 1, "", 0),
		restDay("r", 2, "", 0),
		workout("d", 3, models.TimeSlotMorning, 0),
		workout("e", 3, models.TimeSlotNight, 0),
	}

	moves := []struct {
		id     string
		bucket models.Bucket
		index  int
	}{
		{"a", models.Bucket{Day: 1}, 0},
		{"b", models.Bucket{Day: 2}, 0}, // evicts the rest day
		{"r", models.Bucket{Day: 3, Slot: models.TimeSlotMorning}, 0},
		{"d", models.Bucket{Day: 3, Slot: models.TimeSlotNight}, 5},
		{"e", models.Unscheduled(), 0},
		{"c", models.Bucket{Day: 1}, 1},
	}

	for _, mv := range moves {
		items = Reorder(items, mv.id, mv.bucket, mv.index)
		checkDense(t, items)

		// Exclusivity: no bucket holds a rest day alongside anything else.
		occupants := make(map[models.Bucket][]models.EventType)
		for _, item := range items {
			occupants[item.Bucket] = append(occupants[item.Bucket], item.Kind)
		}
		for bucket, kinds := range occupants {
			if bucket.IsUnscheduled() || len(kinds) < 2 {
				continue
			}
			for _, k := range kinds {
				if k == models.EventTypeRestDay {
					t.Errorf("after moving %s: bucket %v holds a rest day alongside other items", mv.id, bucket)
				}
			}
		}
	}
}
