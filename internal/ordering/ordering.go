package ordering

import (
	"sort"

	"trainweek/internal/models"
)

// Reorder computes the board state after moving one item into target at
// targetIndex, keeping every bucket's sort orders dense (0..n-1).
//
// The input is the full item list across all buckets. If movedID is not
// present the input is returned unchanged. Rest-day exclusivity is applied
// before insertion: a rest day occupies its bucket alone, so moving a workout
// onto an occupied rest day evicts the rest day to the unscheduled section,
// and moving a rest day into a bucket evicts everything already there.
// targetIndex is clamped to the destination bucket's size; past-the-end
// inserts append.
//
// Only the destination bucket, the moved item's source bucket, and the
// unscheduled bucket (when an eviction occurred) are renumbered; all other
// buckets are returned verbatim. The function is pure: the input slice is
// never mutated.
func Reorder(items []models.ScheduledItem, movedID string, target models.Bucket, targetIndex int) []models.ScheduledItem {
	movedAt := -1
	for i := range items {
		if items[i].ID == movedID {
			movedAt = i
			break
		}
	}
	if movedAt == -1 {
		return items
	}

	result := make([]models.ScheduledItem, len(items))
	copy(result, items)

	source := result[movedAt].Bucket
	kind := result[movedAt].Kind

	// Evict conflicting occupants of the target bucket. The unscheduled
	// section has no exclusivity rule; anything may pile up there.
	evicted := map[string]bool{}
	if !target.IsUnscheduled() {
		for i := range result {
			if i == movedAt || result[i].Bucket != target {
				continue
			}
			conflict := result[i].Kind != kind || kind == models.EventTypeRestDay
			if conflict {
				result[i].Bucket = models.Unscheduled()
				evicted[result[i].ID] = true
			}
		}
	}

	// Insert the moved item into the destination ordering.
	dest := bucketIndices(result, target, movedAt)
	sortByOrder(result, dest)
	idx := targetIndex
	if idx < 0 {
		idx = 0
	}
	if idx > len(dest) {
		idx = len(dest)
	}
	result[movedAt].Bucket = target
	for pos, i := range dest {
		if pos < idx {
			result[i].Order = pos
		} else {
			result[i].Order = pos + 1
		}
	}
	result[movedAt].Order = idx

	// Renumber the vacated source bucket.
	if source != target {
		renumber(result, bucketIndices(result, source, movedAt))
	}

	// Renumber the unscheduled bucket when evictions landed there. Evicted
	// items keep their relative order and sort after the section's existing
	// occupants.
	if len(evicted) > 0 {
		renumberWithEvicted(result, evicted)
	}

	return result
}

// bucketIndices returns the indices of items sitting in bucket, excluding
// skip.
func bucketIndices(items []models.ScheduledItem, bucket models.Bucket, skip int) []int {
	var out []int
	for i := range items {
		if i != skip && items[i].Bucket == bucket {
			out = append(out, i)
		}
	}
	return out
}

func sortByOrder(items []models.ScheduledItem, idxs []int) {
	sort.SliceStable(idxs, func(a, b int) bool {
		return items[idxs[a]].Order < items[idxs[b]].Order
	})
}

func renumber(items []models.ScheduledItem, idxs []int) {
	sortByOrder(items, idxs)
	for pos, i := range idxs {
		items[i].Order = pos
	}
}

// renumberWithEvicted renumbers the unscheduled bucket, placing freshly
// evicted items after the items already there.
func renumberWithEvicted(items []models.ScheduledItem, evicted map[string]bool) {
	var natives, incoming []int
	for i := range items {
		if !items[i].Bucket.IsUnscheduled() {
			continue
		}
		if evicted[items[i].ID] {
			incoming = append(incoming, i)
		} else {
			natives = append(natives, i)
		}
	}
	sortByOrder(items, natives)
	sortByOrder(items, incoming)
	pos := 0
	for _, i := range natives {
		items[i].Order = pos
		pos++
	}
	for _, i := range incoming {
		items[i].Order = pos
		pos++
	}
}
