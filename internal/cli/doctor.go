package cli

import (
	"fmt"
	"time"

	"trainweek/internal/models"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storageReachable := false

	if err := checkStorageReachable(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storageReachable = true
	}

	if storageReachable {
		if err := checkSettings(ctx); err != nil {
			fmt.Printf("❌ Settings: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Settings: OK\n")
		}

		if err := checkBoardIntegrity(ctx); err != nil {
			fmt.Printf("❌ Board integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Board integrity: OK\n")
		}

		if err := checkCategoryReferences(ctx); err != nil {
			fmt.Printf("❌ Category references: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Category references: OK\n")
		}
	} else {
		fmt.Printf("⊘ Settings: SKIPPED (storage not reachable)\n")
		fmt.Printf("⊘ Board integrity: SKIPPED (storage not reachable)\n")
		fmt.Printf("⊘ Category references: SKIPPED (storage not reachable)\n")
	}

	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStorageReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	return nil
}

func checkSettings(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if !settings.ThemeMode.Valid() {
		return fmt.Errorf("unknown theme mode: %s", settings.ThemeMode)
	}
	if !models.ValidLanguageTag(settings.LanguageTag) {
		return fmt.Errorf("unsupported language: %s", settings.LanguageTag)
	}
	if !settings.SlotModePolicy.Valid() {
		return fmt.Errorf("unknown slot mode policy: %s", settings.SlotModePolicy)
	}
	return nil
}

// checkBoardIntegrity verifies the invariants every board list must hold:
// sort orders dense from zero, day-of-week in range, and no bucket mixing a
// rest day with anything else.
func checkBoardIntegrity(ctx *Context) error {
	workouts, err := ctx.Store.GetAllWorkouts()
	if err != nil {
		return fmt.Errorf("failed to get workouts: %w", err)
	}

	type bucketKey struct {
		week   string
		bucket models.Bucket
	}
	orders := make(map[bucketKey][]int)
	restDays := make(map[bucketKey]int)
	sizes := make(map[bucketKey]int)

	seen := make(map[string]bool)
	for _, w := range workouts {
		if seen[w.ID] {
			return fmt.Errorf("duplicate workout ID found: %s", w.ID)
		}
		seen[w.ID] = true

		if w.DayOfWeek != nil && (*w.DayOfWeek < 1 || *w.DayOfWeek > 7) {
			return fmt.Errorf("workout %s has day_of_week %d out of range", w.ID, *w.DayOfWeek)
		}

		key := bucketKey{week: w.WeekStartDate}
		if w.DayOfWeek != nil {
			key.bucket.Day = *w.DayOfWeek
		}
		if w.TimeSlot != nil {
			key.bucket.Slot = *w.TimeSlot
		}

		orders[key] = append(orders[key], w.SortOrder)
		sizes[key]++
		if w.EventType == models.EventTypeRestDay {
			restDays[key]++
		}
	}

	for key, ord := range orders {
		present := make(map[int]bool, len(ord))
		for _, o := range ord {
			if o < 0 || o >= len(ord) || present[o] {
				return fmt.Errorf("week %s %s: sort orders are not dense", key.week, key.bucket)
			}
			present[o] = true
		}
	}

	for key, n := range restDays {
		if key.bucket.IsUnscheduled() {
			continue
		}
		if n > 1 || (n == 1 && sizes[key] > 1) {
			return fmt.Errorf("week %s %s: rest day shares the bucket with other items", key.week, key.bucket)
		}
	}

	return nil
}

func checkCategoryReferences(ctx *Context) error {
	categories, err := ctx.Store.GetAllCategories()
	if err != nil {
		return fmt.Errorf("failed to get categories: %w", err)
	}
	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[c.ID] = true
	}

	workouts, err := ctx.Store.GetAllWorkouts()
	if err != nil {
		return fmt.Errorf("failed to get workouts: %w", err)
	}
	for _, w := range workouts {
		if w.CategoryID != nil && !known[*w.CategoryID] {
			return fmt.Errorf("workout %s references unknown category %s", w.ID, *w.CategoryID)
		}
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
