package cli

import (
	"fmt"

	"trainweek/internal/models"
)

type RestCmd struct {
	Day  string `arg:"" help:"Day to mark as rest (name or number)."`
	Slot string `short:"s" help:"Time slot (morning|afternoon|night)."`
	Week string `short:"w" help:"Week (YYYY-MM-DD, 'this', 'next' or 'last')." default:"this"`
}

func (c *RestCmd) Run(ctx *Context) error {
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
	if day == 0 {
		return fmt.Errorf("rest days need a concrete day, not the unscheduled section")
	}
	slot, err := parseSlot(c.Slot)
	if err != nil {
		return err
	}

	bucket := models.Bucket{Day: day, Slot: slot}
	if _, err := ctx.Planner.AddRestDay(week, bucket); err != nil {
		return err
	}

	fmt.Printf("Marked %s as a rest day. Anything scheduled there moved to %s.\n", bucket, models.DayName(0))
	return nil
}
