package cli

import (
	"fmt"
	"math"

	"trainweek/internal/models"
)

type MoveCmd struct {
	ID    string `arg:"" help:"Workout id (or unambiguous prefix)."`
	Day   string `arg:"" help:"Target day (name, number, or 'tbd')."`
	Slot  string `short:"s" help:"Target time slot (morning|afternoon|night)."`
	Index int    `short:"i" help:"Position within the target day, 0 is first. Defaults to last." default:"-1"`
}

func (c *MoveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	w, err := findWorkout(ctx, c.ID)
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

	index := c.Index
	if index < 0 {
		index = math.MaxInt32 // append; the ordering engine clamps
	}

	target := models.Bucket{Day: day, Slot: slot}
	if err := ctx.Planner.MoveItem(w.WeekStartDate, w.ID, target, index); err != nil {
		return err
	}

	fmt.Printf("Moved %s to %s\n", w.Type, target)
	return nil
}
