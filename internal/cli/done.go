package cli

import "fmt"

type DoneCmd struct {
	ID string `arg:"" help:"Workout id (or unambiguous prefix)."`
}

func (c *DoneCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	w, err := findWorkout(ctx, c.ID)
	if err != nil {
		return err
	}

	w, err = ctx.Planner.ToggleComplete(w.ID)
	if err != nil {
		return err
	}

	if w.IsCompleted {
		fmt.Printf("✓ Completed: %s\n", w.Type)
	} else {
		fmt.Printf("Marked incomplete: %s\n", w.Type)
	}
	return nil
}
