package backup

import (
	"fmt"
	"time"

	"trainweek/internal/models"
	"trainweek/internal/storage"
)

// Repository builds export snapshots from the storage provider and performs
// all-or-nothing restores into it.
type Repository struct {
	store storage.Provider
	now   func() time.Time
}

func NewRepository(store storage.Provider) *Repository {
	return &Repository{
		store: store,
		now:   time.Now,
	}
}

// ExportJSON reads the full record store, snapshots it, and encodes the
// backup document. Storage read failures are wrapped, not decomposed.
func (r *Repository) ExportJSON(appVersion string) (string, error) {
	workouts, err := r.store.GetAllWorkouts()
	if err != nil {
		return "", fmt.Errorf("failed to read workouts: %w", err)
	}
	categories, err := r.store.GetAllCategories()
	if err != nil {
		return "", fmt.Errorf("failed to read categories: %w", err)
	}
	actions, err := r.store.GetAllUserActions()
	if err != nil {
		return "", fmt.Errorf("failed to read user actions: %w", err)
	}
	settings, err := r.store.GetSettings()
	if err != nil {
		return "", fmt.Errorf("failed to read settings: %w", err)
	}

	snap := Snapshot{
		SchemaVersion: SchemaVersion,
		ExportedAt:    r.now().UTC().Format(time.RFC3339),
		AppVersion:    appVersion,
		Workouts:      workouts,
		Categories:    categories,
		UserActions:   actions,
		Settings:      &settings,
	}
	return Encode(snap), nil
}

// ImportJSON decodes, validates and applies a backup document, replacing the
// entire record store in one transaction. A nil return means success; any
// failure before the write leaves storage untouched, and a write failure
// rolls back to the prior state. Settings, when present, are applied after
// the main transaction.
func (r *Repository) ImportJSON(text string) *ImportError {
	snap, derr := Decode(text)
	if derr != nil {
		return &ImportError{Kind: derr.Kind, Detail: derr.Detail}
	}

	if ierr := validateSnapshot(snap); ierr != nil {
		return ierr
	}

	if err := r.store.ReplaceAll(snap.Categories, snap.Workouts, snap.UserActions); err != nil {
		return &ImportError{Kind: KindWriteFailed, Detail: "failed to replace stored records", Err: err}
	}

	if snap.Settings != nil {
		if err := r.store.SaveSettings(*snap.Settings); err != nil {
			return &ImportError{Kind: KindWriteFailed, Detail: "failed to apply settings", Err: err}
		}
	}

	return nil
}

// HasAnyData reports whether importing would overwrite existing records.
func (r *Repository) HasAnyData() (bool, error) {
	workouts, err := r.store.GetAllWorkouts()
	if err != nil {
		return false, fmt.Errorf("failed to read workouts: %w", err)
	}
	if len(workouts) > 0 {
		return true, nil
	}
	categories, err := r.store.GetAllCategories()
	if err != nil {
		return false, fmt.Errorf("failed to read categories: %w", err)
	}
	if len(categories) > 0 {
		return true, nil
	}
	actions, err := r.store.GetAllUserActions()
	if err != nil {
		return false, fmt.Errorf("failed to read user actions: %w", err)
	}
	return len(actions) > 0, nil
}

// validateSnapshot checks field values and referential integrity beyond the
// shape checks the codec already performed.
func validateSnapshot(snap *Snapshot) *ImportError {
	categoryIDs := make(map[string]bool, len(snap.Categories))
	for _, c := range snap.Categories {
		categoryIDs[c.ID] = true
	}

	for _, w := range snap.Workouts {
		if !models.ValidDate(w.WeekStartDate) {
			return invalidField(fmt.Sprintf("workout %s: weekStartDate %q is not a calendar date", w.ID, w.WeekStartDate))
		}
		if w.DayOfWeek != nil && (*w.DayOfWeek < 1 || *w.DayOfWeek > 7) {
			return invalidField(fmt.Sprintf("workout %s: dayOfWeek %d is out of range", w.ID, *w.DayOfWeek))
		}
		if w.TimeSlot != nil && !w.TimeSlot.Valid() {
			return invalidField(fmt.Sprintf("workout %s: unknown timeSlot %q", w.ID, *w.TimeSlot))
		}
		if !w.EventType.Valid() {
			return invalidField(fmt.Sprintf("workout %s: unknown eventType %q", w.ID, w.EventType))
		}
		if w.CategoryID != nil && !categoryIDs[*w.CategoryID] {
			return &ImportError{
				Kind:   KindInvalidReference,
				Detail: fmt.Sprintf("workout %s references unknown category %s", w.ID, *w.CategoryID),
			}
		}
	}

	for _, a := range snap.UserActions {
		if !a.ActionType.Valid() {
			return invalidField(fmt.Sprintf("user action %s: unknown actionType %q", a.ID, a.ActionType))
		}
		if !a.EntityType.Valid() {
			return invalidField(fmt.Sprintf("user action %s: unknown entityType %q", a.ID, a.EntityType))
		}
	}

	if snap.Settings != nil {
		if !snap.Settings.ThemeMode.Valid() {
			return invalidField(fmt.Sprintf("settings: unknown themeMode %q", snap.Settings.ThemeMode))
		}
		if !models.ValidLanguageTag(snap.Settings.LanguageTag) {
			return invalidField(fmt.Sprintf("settings: unsupported languageTag %q", snap.Settings.LanguageTag))
		}
		if !snap.Settings.SlotModePolicy.Valid() {
			return invalidField(fmt.Sprintf("settings: unknown slotModePolicy %q", snap.Settings.SlotModePolicy))
		}
	}

	return nil
}

func invalidField(detail string) *ImportError {
	return &ImportError{Kind: KindInvalidFieldValue, Detail: detail}
}
