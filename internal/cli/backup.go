package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"trainweek/internal/models"
)

// logBackupAction records export/import events in the history. The backup
// repository itself stays read/replace-only.
func logBackupAction(ctx *Context, action models.ActionType) {
	record := models.UserAction{
		ID:         uuid.NewString(),
		ActionType: action,
		EntityType: models.EntityBackup,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	if err := ctx.Store.AppendUserAction(record); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to record %s: %v\n", action, err)
	}
}

type ExportCmd struct {
	Output string `short:"o" help:"Output file. Defaults to trainweek-backup-<date>.json, '-' writes to stdout."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	text, err := ctx.Backup.ExportJSON(ctx.Version)
	if err != nil {
		return err
	}

	if c.Output == "-" {
		logBackupAction(ctx, models.ActionBackupExported)
		fmt.Println(text)
		return nil
	}

	path := c.Output
	if path == "" {
		path = fmt.Sprintf("trainweek-backup-%s.json", time.Now().Format(models.DateFormat))
	}
	if err := os.WriteFile(path, []byte(text), 0600); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	logBackupAction(ctx, models.ActionBackupExported)

	fmt.Printf("✓ Backup written to %s\n", path)
	return nil
}

type ImportCmd struct {
	File  string `arg:"" help:"Backup file to import."`
	Force bool   `short:"f" help:"Replace existing data without asking."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	if !c.Force {
		hasData, err := ctx.Backup.HasAnyData()
		if err != nil {
			return err
		}
		if hasData {
			var confirmed bool
			prompt := huh.NewConfirm().
				Title("Replace existing data?").
				Description("Importing wipes every workout, category and history entry and replaces them with the backup's contents.").
				Affirmative("Replace").
				Negative("Cancel").
				Value(&confirmed)
			if err := prompt.Run(); err != nil {
				return err
			}
			if !confirmed {
				fmt.Println("Import cancelled.")
				return nil
			}
		}
	}

	if ierr := ctx.Backup.ImportJSON(string(data)); ierr != nil {
		return fmt.Errorf("import failed: %w", ierr)
	}
	logBackupAction(ctx, models.ActionBackupImported)

	fmt.Println("✓ Backup imported.")
	return nil
}
