package backup

import (
	"path/filepath"
	"strings"
	"testing"

	"trainweek/internal/models"
	"trainweek/internal/storage"
)

func setupStore(t *testing.T) storage.Provider {
	t.Helper()
	store := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "trainweek.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func seedStore(t *testing.T, store storage.Provider) {
	t.Helper()
	if err := store.AddCategory(models.Category{ID: "cat-old", Name: "Cardio", ColorID: 1}); err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	catID := "cat-old"
	if err := store.AddWorkout(models.Workout{
		ID:            "w-old",
		WeekStartDate: "2026-08-17",
		SortOrder:     0,
		EventType:     models.EventTypeWorkout,
		Type:          "Run",
		CategoryID:    &catID,
	}); err != nil {
		t.Fatalf("failed to seed workout: %v", err)
	}
}

func TestHasAnyData(t *testing.T) {
	store := setupStore(t)
	repo := NewRepository(store)

	has, err := repo.HasAnyData()
	if err != nil {
		t.Fatalf("HasAnyData failed: %v", err)
	}
	if has {
		t.Error("expected no data in a fresh store")
	}

	seedStore(t, store)

	has, err = repo.HasAnyData()
	if err != nil {
		t.Fatalf("HasAnyData failed: %v", err)
	}
	if !has {
		t.Error("expected data after seeding")
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	store := setupStore(t)
	seedStore(t, store)
	repo := NewRepository(store)

	text, err := repo.ExportJSON("1.4.0")
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	// Restore into a second, empty store.
	target := setupStore(t)
	targetRepo := NewRepository(target)
	if ierr := targetRepo.ImportJSON(text); ierr != nil {
		t.Fatalf("ImportJSON failed: %v", ierr)
	}

	workouts, err := target.GetAllWorkouts()
	if err != nil {
		t.Fatalf("failed to read workouts: %v", err)
	}
	if len(workouts) != 1 || workouts[0].ID != "w-old" {
		t.Errorf("expected restored workout w-old, got %+v", workouts)
	}
	categories, err := target.GetAllCategories()
	if err != nil {
		t.Fatalf("failed to read categories: %v", err)
	}
	if len(categories) != 1 || categories[0].ID != "cat-old" {
		t.Errorf("expected restored category cat-old, got %+v", categories)
	}
}

func TestImport_ReplacesExistingData(t *testing.T) {
	store := setupStore(t)
	seedStore(t, store)
	repo := NewRepository(store)

	snap := sampleSnapshot()
	if ierr := repo.ImportJSON(Encode(snap)); ierr != nil {
		t.Fatalf("ImportJSON failed: %v", ierr)
	}

	workouts, err := store.GetAllWorkouts()
	if err != nil {
		t.Fatalf("failed to read workouts: %v", err)
	}
	if len(workouts) != 2 {
		t.Fatalf("expected 2 workouts after import, got %d", len(workouts))
	}
	for _, w := range workouts {
		if w.ID == "w-old" {
			t.Error("expected prior workout to be wiped by import")
		}
	}

	// Settings from the snapshot were applied.
	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to read settings: %v", err)
	}
	if settings.ThemeMode != models.ThemeDark || settings.SlotModePolicy != models.SlotModePerDay {
		t.Errorf("expected imported settings, got %+v", settings)
	}
}

func TestImport_InvalidReferenceLeavesStorageIntact(t *testing.T) {
	store := setupStore(t)
	seedStore(t, store)
	repo := NewRepository(store)

	snap := sampleSnapshot()
	badRef := "99"
	snap.Workouts[0].CategoryID = &badRef

	ierr := repo.ImportJSON(Encode(snap))

	if ierr == nil || ierr.Kind != KindInvalidReference {
		t.Fatalf("expected %s, got %v", KindInvalidReference, ierr)
	}

	// Prior state untouched.
	workouts, err := store.GetAllWorkouts()
	if err != nil {
		t.Fatalf("failed to read workouts: %v", err)
	}
	if len(workouts) != 1 || workouts[0].ID != "w-old" {
		t.Errorf("expected prior workout to survive failed import, got %+v", workouts)
	}
}

func TestImport_DecodeErrorsMapOneToOne(t *testing.T) {
	repo := NewRepository(setupStore(t))

	cases := []struct {
		name string
		text string
		kind ErrorKind
	}{
		{"invalid json", "{", KindInvalidJSON},
		{"unsupported version", `{"schemaVersion": 3}`, KindUnsupportedSchemaVersion},
		{"missing section", `{"schemaVersion": 1, "exportedAt": "x", "categories": [], "userActions": []}`, KindMissingRequiredSection},
		{"bad field", `{"schemaVersion": 1, "exportedAt": 7, "workouts": [], "categories": [], "userActions": []}`, KindInvalidFieldValue},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ierr := repo.ImportJSON(tc.text)
			if ierr == nil || ierr.Kind != tc.kind {
				t.Fatalf("expected %s, got %v", tc.kind, ierr)
			}
		})
	}
}

func TestImport_RejectsOutOfRangeDay(t *testing.T) {
	repo := NewRepository(setupStore(t))

	snap := sampleSnapshot()
	day := 8
	snap.Workouts[0].DayOfWeek = &day

	ierr := repo.ImportJSON(Encode(snap))

	if ierr == nil || ierr.Kind != KindInvalidFieldValue {
		t.Fatalf("expected %s, got %v", KindInvalidFieldValue, ierr)
	}
}

func TestImport_RejectsUnknownEnumNames(t *testing.T) {
	repo := NewRepository(setupStore(t))

	base := Encode(sampleSnapshot())

	cases := []struct {
		name string
		old  string
		new  string
	}{
		{"event type", `"eventType": "workout"`, `"eventType": "sprint"`},
		{"time slot", `"timeSlot": "morning"`, `"timeSlot": "dawn"`},
		{"action type", `"actionType": "workoutCompleted"`, `"actionType": "somethingElse"`},
		{"theme mode", `"themeMode": "dark"`, `"themeMode": "midnight"`},
		{"language", `"languageTag": "en"`, `"languageTag": "xx"`},
		{"slot policy", `"slotModePolicy": "perDay"`, `"slotModePolicy": "always"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			text := strings.Replace(base, tc.old, tc.new, 1)
			if text == base {
				t.Fatalf("substitution %q not applied", tc.old)
			}
			ierr := repo.ImportJSON(text)
			if ierr == nil || ierr.Kind != KindInvalidFieldValue {
				t.Fatalf("expected %s, got %v", KindInvalidFieldValue, ierr)
			}
		})
	}
}

func TestImport_RejectsBadWeekStartDate(t *testing.T) {
	repo := NewRepository(setupStore(t))

	snap := sampleSnapshot()
	snap.Workouts[0].WeekStartDate = "not-a-date"

	ierr := repo.ImportJSON(Encode(snap))

	if ierr == nil || ierr.Kind != KindInvalidFieldValue {
		t.Fatalf("expected %s, got %v", KindInvalidFieldValue, ierr)
	}
}

func TestExport_ContainsAllSections(t *testing.T) {
	store := setupStore(t)
	seedStore(t, store)
	repo := NewRepository(store)

	text, err := repo.ExportJSON("")
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	snap, derr := Decode(text)
	if derr != nil {
		t.Fatalf("exported document failed to decode: %v", derr)
	}
	if snap.SchemaVersion != SchemaVersion {
		t.Errorf("expected schema version %d, got %d", SchemaVersion, snap.SchemaVersion)
	}
	if snap.ExportedAt == "" {
		t.Error("expected exportedAt to be set")
	}
	if len(snap.Workouts) != 1 || len(snap.Categories) != 1 {
		t.Errorf("expected 1 workout and 1 category, got %d and %d", len(snap.Workouts), len(snap.Categories))
	}
	if snap.Settings == nil {
		t.Error("expected settings in export")
	}
}
