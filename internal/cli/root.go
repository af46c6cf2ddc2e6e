package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"trainweek/internal/backup"
	"trainweek/internal/models"
	"trainweek/internal/planner"
	"trainweek/internal/storage"
)

type Context struct {
	Store   storage.Provider
	Planner *planner.Planner
	Backup  *backup.Repository
	Version string
}

var dayAliases = map[string]int{
	"tbd":         0,
	"unscheduled": 0,
	"none":        0,
	"mon":         1,
	"monday":      1,
	"tue":         2,
	"tuesday":     2,
	"wed":         3,
	"wednesday":   3,
	"thu":         4,
	"thursday":    4,
	"fri":         5,
	"friday":      5,
	"sat":         6,
	"saturday":    6,
	"sun":         7,
	"sunday":      7,
}

// parseDay accepts day names, short names, or numbers (0=unscheduled,
// 1=Monday .. 7=Sunday).
func parseDay(s string) (int, error) {
	key := strings.TrimSpace(strings.ToLower(s))
	if day, ok := dayAliases[key]; ok {
		return day, nil
	}
	num, err := strconv.Atoi(key)
	if err == nil && num >= 0 && num <= 7 {
		return num, nil
	}
	return 0, fmt.Errorf("invalid day: %s", s)
}

func parseSlot(s string) (models.TimeSlot, error) {
	if s == "" {
		return "", nil
	}
	slot := models.TimeSlot(strings.ToLower(strings.TrimSpace(s)))
	if !slot.Valid() {
		return "", fmt.Errorf("invalid time slot: %s (use morning, afternoon or night)", s)
	}
	return slot, nil
}

// resolveWeek turns a week argument into a Monday date string. Accepts
// "this", "next", "last", or any date inside the wanted week.
func resolveWeek(s string) (string, error) {
	now := time.Now()
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "this":
		return models.WeekStart(now), nil
	case "next":
		return models.WeekStart(now.AddDate(0, 0, 7)), nil
	case "last":
		return models.WeekStart(now.AddDate(0, 0, -7)), nil
	}
	t, err := time.Parse(models.DateFormat, s)
	if err != nil {
		return "", fmt.Errorf("invalid week, use YYYY-MM-DD, 'this', 'next' or 'last': %w", err)
	}
	return models.WeekStart(t), nil
}

// findWorkout resolves an exact id or an unambiguous id prefix.
func findWorkout(ctx *Context, id string) (models.Workout, error) {
	if w, err := ctx.Store.GetWorkout(id); err == nil {
		return w, nil
	}

	workouts, err := ctx.Store.GetAllWorkouts()
	if err != nil {
		return models.Workout{}, err
	}

	var matches []models.Workout
	for _, w := range workouts {
		if strings.HasPrefix(w.ID, id) {
			matches = append(matches, w)
		}
	}
	switch len(matches) {
	case 0:
		return models.Workout{}, fmt.Errorf("no workout matches id %s", id)
	case 1:
		return matches[0], nil
	default:
		return models.Workout{}, fmt.Errorf("id prefix %s is ambiguous (%d matches)", id, len(matches))
	}
}

// findCategoryByName matches case-insensitively against category names.
func findCategoryByName(ctx *Context, name string) (models.Category, error) {
	categories, err := ctx.Store.GetAllCategories()
	if err != nil {
		return models.Category{}, err
	}
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return models.Category{}, fmt.Errorf("no category named %q, create it with 'trainweek category add'", name)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
