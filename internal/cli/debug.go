package cli

import (
	"encoding/json"
	"fmt"
)

type DebugCmd struct {
	DBPath      *DebugDBPathCmd      `cmd:"" help:"Show storage path."`
	DumpWeek    *DebugDumpWeekCmd    `cmd:"" help:"Dump a week's workouts as JSON."`
	DumpWorkout *DebugDumpWorkoutCmd `cmd:"" help:"Dump a workout as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *Context) error {
	output := map[string]string{
		"path": ctx.Store.GetConfigPath(),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpWeekCmd struct {
	Week string `arg:"" help:"Week to dump (YYYY-MM-DD, 'this', 'next' or 'last')." default:"this"`
}

func (cmd *DebugDumpWeekCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	week, err := resolveWeek(cmd.Week)
	if err != nil {
		return err
	}

	workouts, err := ctx.Store.GetWorkoutsByWeek(week)
	if err != nil {
		return fmt.Errorf("failed to get workouts: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(workouts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal workouts: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpWorkoutCmd struct {
	ID string `arg:"" help:"ID of the workout to dump."`
}

func (cmd *DebugDumpWorkoutCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	w, err := findWorkout(ctx, cmd.ID)
	if err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal workout: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}
