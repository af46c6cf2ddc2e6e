package cli

import (
	"fmt"

	"github.com/gosuri/uitable"
)

type HistoryCmd struct {
	Limit int `short:"n" help:"Show at most this many recent entries." default:"20"`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	actions, err := ctx.Store.GetAllUserActions()
	if err != nil {
		return err
	}
	if len(actions) == 0 {
		fmt.Println("No activity yet.")
		return nil
	}

	if c.Limit > 0 && len(actions) > c.Limit {
		actions = actions[len(actions)-c.Limit:]
	}

	table := uitable.New()
	table.MaxColWidth = 50
	table.AddRow("TIME", "ACTION", "ENTITY", "DETAILS")
	// Newest first.
	for i := len(actions) - 1; i >= 0; i-- {
		a := actions[i]
		entity := string(a.EntityType)
		if a.EntityID != nil {
			entity += " " + shortID(*a.EntityID)
		}
		details := ""
		if a.Metadata != nil {
			details = *a.Metadata
		}
		table.AddRow(a.Timestamp, string(a.ActionType), entity, details)
	}
	fmt.Println(table)
	return nil
}
