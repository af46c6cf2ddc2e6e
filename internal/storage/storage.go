package storage

import (
	"sort"
	"strings"

	"trainweek/internal/models"
)

// sortWorkouts orders workouts the way the board displays them: by week,
// then unscheduled first, then day, slot and sort order.
func sortWorkouts(workouts []models.Workout) {
	sort.Slice(workouts, func(i, j int) bool {
		a, b := workouts[i], workouts[j]
		if a.WeekStartDate != b.WeekStartDate {
			return a.WeekStartDate < b.WeekStartDate
		}
		ad, bd := 0, 0
		if a.DayOfWeek != nil {
			ad = *a.DayOfWeek
		}
		if b.DayOfWeek != nil {
			bd = *b.DayOfWeek
		}
		if ad != bd {
			return ad < bd
		}
		as, bs := "", ""
		if a.TimeSlot != nil {
			as = string(*a.TimeSlot)
		}
		if b.TimeSlot != nil {
			bs = string(*b.TimeSlot)
		}
		if as != bs {
			return slotRank(as) < slotRank(bs)
		}
		return a.SortOrder < b.SortOrder
	})
}

func slotRank(slot string) int {
	switch models.TimeSlot(slot) {
	case models.TimeSlotMorning:
		return 1
	case models.TimeSlotAfternoon:
		return 2
	case models.TimeSlotNight:
		return 3
	}
	return 0
}

func sortCategories(categories []models.Category) {
	sort.Slice(categories, func(i, j int) bool {
		a, b := categories[i], categories[j]
		if a.SortOrder != b.SortOrder {
			return a.SortOrder < b.SortOrder
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
}
