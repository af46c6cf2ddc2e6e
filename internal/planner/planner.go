// Package planner orchestrates board operations against storage: loading a
// week's items, applying moves through the ordering engine, toggling
// completion, and recording entries in the action history.
package planner

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"trainweek/internal/models"
	"trainweek/internal/ordering"
	"trainweek/internal/storage"
)

type Planner struct {
	store storage.Provider
	now   func() time.Time
	newID func() string

	// OnItemMoved fires once per completed drop with the moved item's new
	// placement, after persistence has succeeded.
	OnItemMoved func(itemID string, bucket models.Bucket, order int)
}

func New(store storage.Provider) *Planner {
	return &Planner{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// LoadWeek projects a week's workouts onto the board with category details
// denormalized.
func (p *Planner) LoadWeek(weekStartDate string) ([]models.ScheduledItem, error) {
	workouts, err := p.store.GetWorkoutsByWeek(weekStartDate)
	if err != nil {
		return nil, fmt.Errorf("failed to read week %s: %w", weekStartDate, err)
	}
	cats, err := p.categoryIndex()
	if err != nil {
		return nil, err
	}

	items := make([]models.ScheduledItem, 0, len(workouts))
	for _, w := range workouts {
		items = append(items, models.ItemFromWorkout(w, cats))
	}
	return items, nil
}

func (p *Planner) categoryIndex() (map[string]models.Category, error) {
	categories, err := p.store.GetAllCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}
	cats := make(map[string]models.Category, len(categories))
	for _, c := range categories {
		cats[c.ID] = c
	}
	return cats, nil
}

// MoveItem applies a completed drop: runs the ordering engine, persists every
// item whose placement changed, and appends a move entry to the action
// history. Moving an id that is not on the board is a no-op, not an error.
func (p *Planner) MoveItem(weekStartDate, itemID string, target models.Bucket, targetIndex int) error {
	items, err := p.LoadWeek(weekStartDate)
	if err != nil {
		return err
	}

	before := make(map[string]models.ScheduledItem, len(items))
	for _, item := range items {
		before[item.ID] = item
	}

	after := ordering.Reorder(items, itemID, target, targetIndex)

	var moved *models.ScheduledItem
	for i, item := range after {
		prev := before[item.ID]
		if prev.Bucket == item.Bucket && prev.Order == item.Order {
			continue
		}
		day, slot := placementColumns(item.Bucket)
		if err := p.store.UpdateWorkoutPlacement(item.ID, day, slot, item.Order); err != nil {
			return fmt.Errorf("failed to persist placement of %s: %w", item.ID, err)
		}
		if item.ID == itemID {
			moved = &after[i]
		}
	}

	if moved == nil {
		// Either the id was unknown or the drop landed where the item
		// already was; nothing to record.
		return nil
	}

	metadata := fmt.Sprintf("to=%s order=%d", moved.Bucket, moved.Order)
	if err := p.logAction(models.ActionWorkoutMoved, models.EntityWorkout, itemID, metadata); err != nil {
		return err
	}

	if p.OnItemMoved != nil {
		p.OnItemMoved(itemID, moved.Bucket, moved.Order)
	}
	return nil
}

func placementColumns(bucket models.Bucket) (*int, *models.TimeSlot) {
	var day *int
	if !bucket.IsUnscheduled() {
		d := bucket.Day
		day = &d
	}
	var slot *models.TimeSlot
	if bucket.Slot != "" {
		s := bucket.Slot
		slot = &s
	}
	return day, slot
}

// AddWorkout schedules a new workout at the end of the given bucket.
func (p *Planner) AddWorkout(weekStartDate string, bucket models.Bucket, workoutType, description string, categoryID *string) (models.Workout, error) {
	items, err := p.LoadWeek(weekStartDate)
	if err != nil {
		return models.Workout{}, err
	}
	order := 0
	for _, item := range items {
		if item.Bucket == bucket {
			order++
		}
	}

	day, slot := placementColumns(bucket)
	w := models.Workout{
		ID:            p.newID(),
		WeekStartDate: weekStartDate,
		DayOfWeek:     day,
		TimeSlot:      slot,
		SortOrder:     order,
		EventType:     models.EventTypeWorkout,
		Type:          workoutType,
		Description:   description,
		CategoryID:    categoryID,
	}
	if err := p.store.AddWorkout(w); err != nil {
		return models.Workout{}, fmt.Errorf("failed to add workout: %w", err)
	}
	if err := p.logAction(models.ActionWorkoutAdded, models.EntityWorkout, w.ID, workoutType); err != nil {
		return models.Workout{}, err
	}
	return w, nil
}

// AddRestDay marks a day (or slot) as rest. The rest day is created in the
// unscheduled section and moved into place so the usual eviction rules apply
// to whatever is already scheduled there.
func (p *Planner) AddRestDay(weekStartDate string, bucket models.Bucket) (models.Workout, error) {
	w := models.Workout{
		ID:            p.newID(),
		WeekStartDate: weekStartDate,
		SortOrder:     0,
		EventType:     models.EventTypeRestDay,
		Type:          "Rest",
	}
	if err := p.store.AddWorkout(w); err != nil {
		return models.Workout{}, fmt.Errorf("failed to add rest day: %w", err)
	}
	if err := p.MoveItem(weekStartDate, w.ID, bucket, 0); err != nil {
		return models.Workout{}, err
	}
	return p.store.GetWorkout(w.ID)
}

// EditWorkout updates a workout's type, description or category and records
// the change. Nil arguments leave the corresponding field untouched.
func (p *Planner) EditWorkout(id string, workoutType, description *string, categoryID *string) (models.Workout, error) {
	w, err := p.store.GetWorkout(id)
	if err != nil {
		return models.Workout{}, err
	}
	if w.EventType == models.EventTypeRestDay {
		return models.Workout{}, fmt.Errorf("rest days cannot be edited")
	}

	if workoutType != nil {
		w.Type = *workoutType
	}
	if description != nil {
		w.Description = *description
	}
	if categoryID != nil {
		if *categoryID == "" {
			w.CategoryID = nil
		} else {
			w.CategoryID = categoryID
		}
	}

	if err := p.store.UpdateWorkout(w); err != nil {
		return models.Workout{}, fmt.Errorf("failed to update workout: %w", err)
	}
	if err := p.logAction(models.ActionWorkoutUpdated, models.EntityWorkout, w.ID, w.Type); err != nil {
		return models.Workout{}, err
	}
	return w, nil
}

// ToggleComplete flips a workout's completion state and records it.
func (p *Planner) ToggleComplete(id string) (models.Workout, error) {
	w, err := p.store.GetWorkout(id)
	if err != nil {
		return models.Workout{}, err
	}
	if w.EventType == models.EventTypeRestDay {
		return models.Workout{}, fmt.Errorf("rest days cannot be completed")
	}

	w.IsCompleted = !w.IsCompleted
	if err := p.store.UpdateWorkout(w); err != nil {
		return models.Workout{}, fmt.Errorf("failed to update workout: %w", err)
	}

	action := models.ActionWorkoutCompleted
	if !w.IsCompleted {
		action = models.ActionWorkoutUncompleted
	}
	if err := p.logAction(action, models.EntityWorkout, w.ID, w.Type); err != nil {
		return models.Workout{}, err
	}
	return w, nil
}

// RemoveWorkout deletes an item and closes the order gap it leaves behind.
func (p *Planner) RemoveWorkout(id string) error {
	w, err := p.store.GetWorkout(id)
	if err != nil {
		return err
	}
	if err := p.store.DeleteWorkout(id); err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}

	items, err := p.LoadWeek(w.WeekStartDate)
	if err != nil {
		return err
	}
	bucket := models.Bucket{}
	if w.DayOfWeek != nil {
		bucket.Day = *w.DayOfWeek
	}
	if w.TimeSlot != nil {
		bucket.Slot = *w.TimeSlot
	}
	order := 0
	for _, item := range items {
		if item.Bucket != bucket {
			continue
		}
		if item.Order != order {
			day, slot := placementColumns(bucket)
			if err := p.store.UpdateWorkoutPlacement(item.ID, day, slot, order); err != nil {
				return fmt.Errorf("failed to renumber %s: %w", item.ID, err)
			}
		}
		order++
	}

	return p.logAction(models.ActionWorkoutDeleted, models.EntityWorkout, id, w.Type)
}

// AddCategory creates a category at the end of the category list.
func (p *Planner) AddCategory(name string, colorID int) (models.Category, error) {
	existing, err := p.store.GetAllCategories()
	if err != nil {
		return models.Category{}, fmt.Errorf("failed to read categories: %w", err)
	}
	c := models.Category{
		ID:        p.newID(),
		Name:      name,
		ColorID:   colorID % models.PaletteSize,
		SortOrder: len(existing),
	}
	if err := p.store.AddCategory(c); err != nil {
		return models.Category{}, fmt.Errorf("failed to add category: %w", err)
	}
	if err := p.logAction(models.ActionCategoryAdded, models.EntityCategory, c.ID, name); err != nil {
		return models.Category{}, err
	}
	return c, nil
}

func (p *Planner) logAction(action models.ActionType, entity models.EntityType, entityID, metadata string) error {
	record := models.UserAction{
		ID:         p.newID(),
		ActionType: action,
		EntityType: entity,
		Timestamp:  p.now().UTC().Format(time.RFC3339),
	}
	if entityID != "" {
		record.EntityID = &entityID
	}
	if metadata != "" {
		record.Metadata = &metadata
	}
	if err := p.store.AppendUserAction(record); err != nil {
		return fmt.Errorf("failed to record action: %w", err)
	}
	return nil
}
