package cli

import (
	"fmt"

	"trainweek/internal/models"
)

type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"" help:"Show current settings." default:"1"`
	Set  SettingsSetCmd  `cmd:"" help:"Update settings."`
}

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	fmt.Printf("theme:     %s\n", settings.ThemeMode)
	fmt.Printf("language:  %s\n", settings.LanguageTag)
	fmt.Printf("slot mode: %s\n", settings.SlotModePolicy)
	return nil
}

type SettingsSetCmd struct {
	Theme    string `help:"Theme mode (system|light|dark)."`
	Language string `help:"Language tag (en|es|pt|de|fr)."`
	SlotMode string `help:"Slot mode policy (single|slots|perDay)."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	changed := false
	if c.Theme != "" {
		theme := models.ThemeMode(c.Theme)
		if !theme.Valid() {
			return fmt.Errorf("invalid theme: %s", c.Theme)
		}
		settings.ThemeMode = theme
		changed = true
	}
	if c.Language != "" {
		if !models.ValidLanguageTag(c.Language) {
			return fmt.Errorf("unsupported language: %s", c.Language)
		}
		settings.LanguageTag = c.Language
		changed = true
	}
	if c.SlotMode != "" {
		policy := models.SlotModePolicy(c.SlotMode)
		if !policy.Valid() {
			return fmt.Errorf("invalid slot mode: %s", c.SlotMode)
		}
		settings.SlotModePolicy = policy
		changed = true
	}

	if !changed {
		return fmt.Errorf("nothing to change, pass --theme, --language or --slot-mode")
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}
	fmt.Println("Settings updated.")
	return nil
}
