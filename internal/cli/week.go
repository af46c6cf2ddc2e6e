package cli

import (
	"fmt"

	"github.com/fatih/color"

	"trainweek/internal/models"
)

type WeekCmd struct {
	Week string `arg:"" help:"Week to show (YYYY-MM-DD, 'this', 'next' or 'last')." default:"this"`
}

var (
	dayHeaderColor = color.New(color.FgCyan, color.Bold)
	doneColor      = color.New(color.FgGreen)
	restColor      = color.New(color.FgYellow, color.Italic)
	slotColor      = color.New(color.FgHiBlack)

	// categoryColors maps a category ColorID onto a terminal color; the TUI
	// renders the same ids with the hex palette in internal/constants.
	categoryColors = []*color.Color{
		color.New(color.FgRed),
		color.New(color.FgHiRed),
		color.New(color.FgYellow),
		color.New(color.FgHiGreen),
		color.New(color.FgGreen),
		color.New(color.FgCyan),
		color.New(color.FgBlue),
		color.New(color.FgHiBlue),
		color.New(color.FgMagenta),
		color.New(color.FgHiMagenta),
		color.New(color.FgHiCyan),
		color.New(color.FgWhite),
	}
)

func (c *WeekCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	week, err := resolveWeek(c.Week)
	if err != nil {
		return err
	}

	items, err := ctx.Planner.LoadWeek(week)
	if err != nil {
		return err
	}

	byBucket := make(map[models.Bucket][]models.ScheduledItem)
	for _, item := range items {
		byBucket[item.Bucket] = append(byBucket[item.Bucket], item)
	}

	fmt.Printf("Week of %s\n\n", week)

	for day := 0; day <= 7; day++ {
		dayHeaderColor.Println(models.DayName(day))

		printed := false
		if whole := byBucket[models.Bucket{Day: day}]; len(whole) > 0 {
			printItems(whole)
			printed = true
		}
		for _, slot := range models.TimeSlots {
			bucket := models.Bucket{Day: day, Slot: slot}
			if slotted := byBucket[bucket]; len(slotted) > 0 {
				slotColor.Printf("  %s\n", slot)
				printItems(slotted)
				printed = true
			}
		}
		if !printed {
			fmt.Println("  -")
		}
		fmt.Println()
	}

	return nil
}

// categoryColor wraps the color id into palette range; imported backups may
// carry ids outside it, including negative ones.
func categoryColor(colorID int) *color.Color {
	n := len(categoryColors)
	return categoryColors[((colorID%n)+n)%n]
}

func printItems(items []models.ScheduledItem) {
	for _, item := range items {
		if item.Kind == models.EventTypeRestDay {
			restColor.Printf("  %s  Rest day\n", shortID(item.ID))
			continue
		}

		check := " "
		if item.IsCompleted {
			check = doneColor.Sprint("✓")
		}

		label := ""
		if item.CategoryName != "" {
			label = " " + categoryColor(item.CategoryColorID).Sprintf("[%s]", item.CategoryName)
		}

		fmt.Printf("  %s [%s] %s%s\n", shortID(item.ID), check, item.Title, label)
	}
}
