package cli

import (
	"fmt"

	"trainweek/internal/models"
)

type AddCmd struct {
	Type        string `arg:"" help:"Workout type, e.g. 'Upper body'."`
	Day         string `short:"D" help:"Day to schedule on (name, number, or 'tbd')." default:"tbd"`
	Slot        string `short:"s" help:"Time slot (morning|afternoon|night)."`
	Week        string `short:"w" help:"Week (YYYY-MM-DD, 'this', 'next' or 'last')." default:"this"`
	Description string `short:"d" help:"Free-form description."`
	Category    string `short:"c" help:"Category name."`
}

func (c *AddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	week, err := resolveWeek(c.Week)
	if err != nil {
		return err
	}
	day, err := parseDay(c.Day)
	if err != nil {
		return err
	}
	slot, err := parseSlot(c.Slot)
	if err != nil {
		return err
	}
	if day == 0 && slot != "" {
		return fmt.Errorf("the unscheduled section has no time slots")
	}

	var categoryID *string
	if c.Category != "" {
		cat, err := findCategoryByName(ctx, c.Category)
		if err != nil {
			return err
		}
		categoryID = &cat.ID
	}

	bucket := models.Bucket{Day: day, Slot: slot}
	w, err := ctx.Planner.AddWorkout(week, bucket, c.Type, c.Description, categoryID)
	if err != nil {
		return err
	}

	fmt.Printf("Added %s to %s (ID: %s)\n", c.Type, bucket, shortID(w.ID))
	return nil
}
