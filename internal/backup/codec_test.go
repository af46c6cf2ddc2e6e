package backup

import (
	"reflect"
	"strings"
	"testing"

	"trainweek/internal/models"
)

func sampleSnapshot() Snapshot {
	day := 1
	slot := models.TimeSlotMorning
	categoryID := "cat-1"
	entityID := "w-1"

	return Snapshot{
		SchemaVersion: SchemaVersion,
		ExportedAt:    "2026-08-24T10:00:00Z",
		AppVersion:    "1.4.0",
		Workouts: []models.Workout{
			{
				ID:            "w-1",
				WeekStartDate: "2026-08-24",
				DayOfWeek:     &day,
				TimeSlot:      &slot,
				SortOrder:     0,
				EventType:     models.EventTypeWorkout,
				Type:          "Upper body",
				Description:   "Bench, rows, press",
				IsCompleted:   true,
				CategoryID:    &categoryID,
			},
			{
				ID:            "w-2",
				WeekStartDate: "2026-08-24",
				SortOrder:     0,
				EventType:     models.EventTypeRestDay,
				Type:          "Rest",
				Description:   "",
				IsCompleted:   false,
			},
		},
		Categories: []models.Category{
			{ID: "cat-1", Name: "Strength", ColorID: 3, SortOrder: 0, IsHidden: false, IsSystem: false},
		},
		UserActions: []models.UserAction{
			{
				ID:         "a-1",
				ActionType: models.ActionWorkoutCompleted,
				EntityType: models.EntityWorkout,
				EntityID:   &entityID,
				Timestamp:  "2026-08-24T09:30:00Z",
			},
		},
		Settings: &models.Settings{
			ThemeMode:      models.ThemeDark,
			LanguageTag:    "en",
			SlotModePolicy: models.SlotModePerDay,
		},
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	original := sampleSnapshot()

	decoded, derr := Decode(Encode(original))
	if derr != nil {
		t.Fatalf("Decode failed: %v", derr)
	}

	if !reflect.DeepEqual(*decoded, original) {
		t.Errorf("round trip mismatch:\n got: %+v\nwant: %+v", *decoded, original)
	}
}

func TestEncode_OmitsAbsentOptionals(t *testing.T) {
	snap := Snapshot{
		SchemaVersion: SchemaVersion,
		ExportedAt:    "2026-08-24T10:00:00Z",
		Workouts: []models.Workout{
			{ID: "w-1", WeekStartDate: "2026-08-24", EventType: models.EventTypeWorkout, Type: "Run"},
		},
	}

	text := Encode(snap)

	for _, key := range []string{"dayOfWeek", "timeSlot", "categoryId", "settings", "appVersion"} {
		if strings.Contains(text, key) {
			t.Errorf("expected %q to be omitted, found it in:\n%s", key, text)
		}
	}
	// Nil sections become empty arrays, never null.
	if strings.Contains(text, "null") {
		t.Errorf("expected no null markers, got:\n%s", text)
	}
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, derr := Decode("{not json")

	if derr == nil || derr.Kind != KindInvalidJSON {
		t.Fatalf("expected %s, got %v", KindInvalidJSON, derr)
	}
}

func TestDecode_RootNotObject(t *testing.T) {
	_, derr := Decode("[1, 2, 3]")

	if derr == nil || derr.Kind != KindInvalidFieldValue {
		t.Fatalf("expected %s, got %v", KindInvalidFieldValue, derr)
	}
}

func TestDecode_SchemaVersionMissing(t *testing.T) {
	_, derr := Decode(`{"exportedAt": "x", "workouts": [], "categories": [], "userActions": []}`)

	if derr == nil || derr.Kind != KindInvalidFieldValue {
		t.Fatalf("expected %s, got %v", KindInvalidFieldValue, derr)
	}
}

func TestDecode_SchemaVersionWrongType(t *testing.T) {
	_, derr := Decode(`{"schemaVersion": "1", "exportedAt": "x", "workouts": [], "categories": [], "userActions": []}`)

	if derr == nil || derr.Kind != KindInvalidFieldValue {
		t.Fatalf("expected %s, got %v", KindInvalidFieldValue, derr)
	}
}

func TestDecode_UnsupportedSchemaVersion(t *testing.T) {
	text := Encode(sampleSnapshot())
	text = strings.Replace(text, `"schemaVersion": 1`, `"schemaVersion": 2`, 1)

	_, derr := Decode(text)

	if derr == nil || derr.Kind != KindUnsupportedSchemaVersion {
		t.Fatalf("expected %s, got %v", KindUnsupportedSchemaVersion, derr)
	}
}

func TestDecode_MissingSection(t *testing.T) {
	for _, section := range []string{"workouts", "categories", "userActions"} {
		t.Run(section, func(t *testing.T) {
			doc := map[string]string{
				"workouts":    `"workouts": []`,
				"categories":  `"categories": []`,
				"userActions": `"userActions": []`,
			}
			delete(doc, section)
			parts := []string{`"schemaVersion": 1`, `"exportedAt": "2026-08-24T10:00:00Z"`}
			for _, v := range doc {
				parts = append(parts, v)
			}
			text := "{" + strings.Join(parts, ", ") + "}"

			_, derr := Decode(text)

			if derr == nil || derr.Kind != KindMissingRequiredSection {
				t.Fatalf("expected %s, got %v", KindMissingRequiredSection, derr)
			}
		})
	}
}

func TestDecode_SectionNotArray(t *testing.T) {
	text := `{"schemaVersion": 1, "exportedAt": "x", "workouts": {}, "categories": [], "userActions": []}`

	_, derr := Decode(text)

	if derr == nil || derr.Kind != KindInvalidFieldValue {
		t.Fatalf("expected %s, got %v", KindInvalidFieldValue, derr)
	}
}

func TestDecode_NullSection(t *testing.T) {
	for _, section := range []string{"workouts", "categories", "userActions"} {
		t.Run(section, func(t *testing.T) {
			text := `{"schemaVersion": 1, "exportedAt": "x", "workouts": [], "categories": [], "userActions": []}`
			text = strings.Replace(text, `"`+section+`": []`, `"`+section+`": null`, 1)

			_, derr := Decode(text)

			if derr == nil || derr.Kind != KindInvalidFieldValue {
				t.Fatalf("expected %s, got %v", KindInvalidFieldValue, derr)
			}
		})
	}
}

func TestDecode_MissingExportedAt(t *testing.T) {
	text := `{"schemaVersion": 1, "workouts": [], "categories": [], "userActions": []}`

	_, derr := Decode(text)

	if derr == nil || derr.Kind != KindInvalidFieldValue {
		t.Fatalf("expected %s, got %v", KindInvalidFieldValue, derr)
	}
}

func TestDecode_ElementMissingRequiredField(t *testing.T) {
	// Workout without an id: the whole decode fails, no lenient skipping.
	text := `{
		"schemaVersion": 1,
		"exportedAt": "2026-08-24T10:00:00Z",
		"workouts": [{"weekStartDate": "2026-08-24", "sortOrder": 0, "eventType": "workout", "type": "Run", "description": "", "isCompleted": false}],
		"categories": [],
		"userActions": []
	}`

	_, derr := Decode(text)

	if derr == nil || derr.Kind != KindInvalidFieldValue {
		t.Fatalf("expected %s, got %v", KindInvalidFieldValue, derr)
	}
}

func TestDecode_ElementWrongFieldType(t *testing.T) {
	text := `{
		"schemaVersion": 1,
		"exportedAt": "2026-08-24T10:00:00Z",
		"workouts": [],
		"categories": [{"id": "c", "name": "Strength", "colorId": "red", "sortOrder": 0, "isHidden": false, "isSystem": false}],
		"userActions": []
	}`

	_, derr := Decode(text)

	if derr == nil || derr.Kind != KindInvalidFieldValue {
		t.Fatalf("expected %s, got %v", KindInvalidFieldValue, derr)
	}
}

func TestDecode_PartialSettingsFails(t *testing.T) {
	text := `{
		"schemaVersion": 1,
		"exportedAt": "2026-08-24T10:00:00Z",
		"workouts": [],
		"categories": [],
		"userActions": [],
		"settings": {"themeMode": "dark"}
	}`

	_, derr := Decode(text)

	if derr == nil || derr.Kind != KindInvalidFieldValue {
		t.Fatalf("expected %s, got %v", KindInvalidFieldValue, derr)
	}
}

func TestDecode_AbsentSettingsIsNil(t *testing.T) {
	text := `{
		"schemaVersion": 1,
		"exportedAt": "2026-08-24T10:00:00Z",
		"workouts": [],
		"categories": [],
		"userActions": []
	}`

	snap, derr := Decode(text)
	if derr != nil {
		t.Fatalf("Decode failed: %v", derr)
	}

	if snap.Settings != nil {
		t.Errorf("expected nil settings, got %+v", snap.Settings)
	}
}
