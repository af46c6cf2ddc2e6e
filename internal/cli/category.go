package cli

import (
	"fmt"

	"github.com/gosuri/uitable"
)

type CategoryCmd struct {
	Add  CategoryAddCmd  `cmd:"" help:"Create a category."`
	List CategoryListCmd `cmd:"" help:"List categories."`
}

type CategoryAddCmd struct {
	Name  string `arg:"" help:"Category name."`
	Color int    `short:"c" help:"Palette color id (0-11). Defaults to the next free color." default:"-1"`
}

func (c *CategoryAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	colorID := c.Color
	if colorID < 0 {
		existing, err := ctx.Store.GetAllCategories()
		if err != nil {
			return err
		}
		colorID = len(existing)
	}

	cat, err := ctx.Planner.AddCategory(c.Name, colorID)
	if err != nil {
		return err
	}

	fmt.Printf("Added category %s (color %d)\n", cat.Name, cat.ColorID)
	return nil
}

type CategoryListCmd struct {
	All bool `help:"Include hidden categories."`
}

func (c *CategoryListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	categories, err := ctx.Store.GetAllCategories()
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		fmt.Println("No categories yet. Create one with 'trainweek category add'.")
		return nil
	}

	table := uitable.New()
	table.MaxColWidth = 40
	table.AddRow("ID", "NAME", "COLOR", "FLAGS")
	for _, cat := range categories {
		if cat.IsHidden && !c.All {
			continue
		}
		flags := ""
		if cat.IsSystem {
			flags += "system "
		}
		if cat.IsHidden {
			flags += "hidden"
		}
		table.AddRow(shortID(cat.ID), cat.Name, cat.ColorID, flags)
	}
	fmt.Println(table)
	return nil
}
