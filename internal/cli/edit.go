package cli

import "fmt"

type EditCmd struct {
	ID          string  `arg:"" help:"Workout id (or unambiguous prefix)."`
	Type        *string `help:"New workout type."`
	Description *string `short:"d" help:"New description."`
	Category    *string `short:"c" help:"New category name, empty clears it."`
}

func (c *EditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	w, err := findWorkout(ctx, c.ID)
	if err != nil {
		return err
	}

	if c.Type == nil && c.Description == nil && c.Category == nil {
		return fmt.Errorf("nothing to change, pass --type, --description or --category")
	}

	categoryID := c.Category
	if c.Category != nil && *c.Category != "" {
		cat, err := findCategoryByName(ctx, *c.Category)
		if err != nil {
			return err
		}
		categoryID = &cat.ID
	}

	w, err = ctx.Planner.EditWorkout(w.ID, c.Type, c.Description, categoryID)
	if err != nil {
		return err
	}

	fmt.Printf("Updated %s (ID: %s)\n", w.Type, shortID(w.ID))
	return nil
}
