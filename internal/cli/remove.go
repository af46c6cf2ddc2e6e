package cli

import "fmt"

type RemoveCmd struct {
	ID string `arg:"" help:"Workout id (or unambiguous prefix)."`
}

func (c *RemoveCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	w, err := findWorkout(ctx, c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Planner.RemoveWorkout(w.ID); err != nil {
		return err
	}

	fmt.Printf("Removed %s (ID: %s)\n", w.Type, shortID(w.ID))
	return nil
}
