package backup

import (
	"encoding/json"
	"fmt"

	"trainweek/internal/models"
)

// SchemaVersion is the only backup schema this build reads and writes.
const SchemaVersion = 1

// Snapshot is a complete, self-consistent copy of the backed-up records at
// one point in time. It is built fresh on every export and never mutated.
type Snapshot struct {
	SchemaVersion int                 `json:"schemaVersion"`
	ExportedAt    string              `json:"exportedAt"`
	AppVersion    string              `json:"appVersion,omitempty"`
	Workouts      []models.Workout    `json:"workouts"`
	Categories    []models.Category   `json:"categories"`
	UserActions   []models.UserAction `json:"userActions"`
	Settings      *models.Settings    `json:"settings,omitempty"`
}

// Encode renders a snapshot as the versioned backup document. Encoding is
// total: every snapshot produces a valid document, nil sections are emitted
// as empty arrays, and absent optionals are omitted rather than written as
// null.
func Encode(snap Snapshot) string {
	if snap.Workouts == nil {
		snap.Workouts = []models.Workout{}
	}
	if snap.Categories == nil {
		snap.Categories = []models.Category{}
	}
	if snap.UserActions == nil {
		snap.UserActions = []models.UserAction{}
	}
	// Marshalling plain structs and strings cannot fail.
	data, _ := json.MarshalIndent(snap, "", "  ")
	return string(data)
}

// Decode parses and shape-checks a backup document. Arrays are decoded
// strictly: one malformed element rejects the whole document, there is no
// lenient skip-and-continue mode. Value-level validation (enum names, day
// ranges, references) is the importer's job, not the codec's.
func Decode(text string) (*Snapshot, *DecodeError) {
	raw := []byte(text)
	if !json.Valid(raw) {
		return nil, decodeErrf(KindInvalidJSON, "backup is not valid JSON")
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, decodeErrf(KindInvalidFieldValue, "backup root is not an object")
	}

	versionRaw, ok := top["schemaVersion"]
	if !ok {
		return nil, decodeErrf(KindInvalidFieldValue, "schemaVersion is missing")
	}
	var version int
	if err := json.Unmarshal(versionRaw, &version); err != nil {
		return nil, decodeErrf(KindInvalidFieldValue, "schemaVersion is not an integer")
	}
	if version != SchemaVersion {
		return nil, decodeErrf(KindUnsupportedSchemaVersion, fmt.Sprintf("schema version %d is not supported", version))
	}

	return decodeV1(top)
}

func decodeV1(top map[string]json.RawMessage) (*Snapshot, *DecodeError) {
	snap := &Snapshot{SchemaVersion: SchemaVersion}

	exportedRaw, ok := top["exportedAt"]
	if !ok {
		return nil, decodeErrf(KindInvalidFieldValue, "exportedAt is missing")
	}
	if err := json.Unmarshal(exportedRaw, &snap.ExportedAt); err != nil {
		return nil, decodeErrf(KindInvalidFieldValue, "exportedAt is not a string")
	}

	if appRaw, ok := top["appVersion"]; ok {
		if err := json.Unmarshal(appRaw, &snap.AppVersion); err != nil {
			return nil, decodeErrf(KindInvalidFieldValue, "appVersion is not a string")
		}
	}

	workouts, derr := sectionElements(top, "workouts")
	if derr != nil {
		return nil, derr
	}
	categories, derr := sectionElements(top, "categories")
	if derr != nil {
		return nil, derr
	}
	actions, derr := sectionElements(top, "userActions")
	if derr != nil {
		return nil, derr
	}

	snap.Workouts = make([]models.Workout, 0, len(workouts))
	for i, elem := range workouts {
		w, derr := decodeWorkout(elem)
		if derr != nil {
			return nil, decodeErrf(derr.Kind, fmt.Sprintf("workouts[%d]: %s", i, derr.Detail))
		}
		snap.Workouts = append(snap.Workouts, w)
	}

	snap.Categories = make([]models.Category, 0, len(categories))
	for i, elem := range categories {
		c, derr := decodeCategory(elem)
		if derr != nil {
			return nil, decodeErrf(derr.Kind, fmt.Sprintf("categories[%d]: %s", i, derr.Detail))
		}
		snap.Categories = append(snap.Categories, c)
	}

	snap.UserActions = make([]models.UserAction, 0, len(actions))
	for i, elem := range actions {
		a, derr := decodeUserAction(elem)
		if derr != nil {
			return nil, decodeErrf(derr.Kind, fmt.Sprintf("userActions[%d]: %s", i, derr.Detail))
		}
		snap.UserActions = append(snap.UserActions, a)
	}

	if settingsRaw, ok := top["settings"]; ok {
		settings, derr := decodeSettings(settingsRaw)
		if derr != nil {
			return nil, derr
		}
		snap.Settings = settings
	}

	return snap, nil
}

// sectionElements requires key to be present and hold an array. JSON null is
// rejected too: unmarshalling null into a slice succeeds without touching it,
// so it has to be checked for explicitly.
func sectionElements(top map[string]json.RawMessage, key string) ([]json.RawMessage, *DecodeError) {
	raw, ok := top[key]
	if !ok {
		return nil, decodeErrf(KindMissingRequiredSection, key+" section is missing")
	}
	if string(raw) == "null" {
		return nil, decodeErrf(KindInvalidFieldValue, key+" is not an array")
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, decodeErrf(KindInvalidFieldValue, key+" is not an array")
	}
	return elems, nil
}

// The *Doc types use pointer fields so that a required key that is absent
// (or JSON null) is distinguishable from a zero value.

type workoutDoc struct {
	ID            *string `json:"id"`
	WeekStartDate *string `json:"weekStartDate"`
	DayOfWeek     *int    `json:"dayOfWeek"`
	TimeSlot      *string `json:"timeSlot"`
	SortOrder     *int    `json:"sortOrder"`
	EventType     *string `json:"eventType"`
	Type          *string `json:"type"`
	Description   *string `json:"description"`
	IsCompleted   *bool   `json:"isCompleted"`
	CategoryID    *string `json:"categoryId"`
}

func decodeWorkout(raw json.RawMessage) (models.Workout, *DecodeError) {
	var doc workoutDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.Workout{}, decodeErrf(KindInvalidFieldValue, "malformed workout record")
	}
	if doc.ID == nil || doc.WeekStartDate == nil || doc.SortOrder == nil ||
		doc.EventType == nil || doc.Type == nil || doc.Description == nil || doc.IsCompleted == nil {
		return models.Workout{}, decodeErrf(KindInvalidFieldValue, "workout record is missing required fields")
	}
	w := models.Workout{
		ID:            *doc.ID,
		WeekStartDate: *doc.WeekStartDate,
		DayOfWeek:     doc.DayOfWeek,
		SortOrder:     *doc.SortOrder,
		EventType:     models.EventType(*doc.EventType),
		Type:          *doc.Type,
		Description:   *doc.Description,
		IsCompleted:   *doc.IsCompleted,
		CategoryID:    doc.CategoryID,
	}
	if doc.TimeSlot != nil {
		slot := models.TimeSlot(*doc.TimeSlot)
		w.TimeSlot = &slot
	}
	return w, nil
}

type categoryDoc struct {
	ID        *string `json:"id"`
	Name      *string `json:"name"`
	ColorID   *int    `json:"colorId"`
	SortOrder *int    `json:"sortOrder"`
	IsHidden  *bool   `json:"isHidden"`
	IsSystem  *bool   `json:"isSystem"`
}

func decodeCategory(raw json.RawMessage) (models.Category, *DecodeError) {
	var doc categoryDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.Category{}, decodeErrf(KindInvalidFieldValue, "malformed category record")
	}
	if doc.ID == nil || doc.Name == nil || doc.ColorID == nil ||
		doc.SortOrder == nil || doc.IsHidden == nil || doc.IsSystem == nil {
		return models.Category{}, decodeErrf(KindInvalidFieldValue, "category record is missing required fields")
	}
	return models.Category{
		ID:        *doc.ID,
		Name:      *doc.Name,
		ColorID:   *doc.ColorID,
		SortOrder: *doc.SortOrder,
		IsHidden:  *doc.IsHidden,
		IsSystem:  *doc.IsSystem,
	}, nil
}

type userActionDoc struct {
	ID         *string `json:"id"`
	ActionType *string `json:"actionType"`
	EntityType *string `json:"entityType"`
	EntityID   *string `json:"entityId"`
	Metadata   *string `json:"metadata"`
	Timestamp  *string `json:"timestamp"`
}

func decodeUserAction(raw json.RawMessage) (models.UserAction, *DecodeError) {
	var doc userActionDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.UserAction{}, decodeErrf(KindInvalidFieldValue, "malformed user action record")
	}
	if doc.ID == nil || doc.ActionType == nil || doc.EntityType == nil || doc.Timestamp == nil {
		return models.UserAction{}, decodeErrf(KindInvalidFieldValue, "user action record is missing required fields")
	}
	return models.UserAction{
		ID:         *doc.ID,
		ActionType: models.ActionType(*doc.ActionType),
		EntityType: models.EntityType(*doc.EntityType),
		EntityID:   doc.EntityID,
		Metadata:   doc.Metadata,
		Timestamp:  *doc.Timestamp,
	}, nil
}

type settingsDoc struct {
	ThemeMode      *string `json:"themeMode"`
	LanguageTag    *string `json:"languageTag"`
	SlotModePolicy *string `json:"slotModePolicy"`
}

// decodeSettings requires the full record once the settings key is present;
// a partial object fails the whole decode.
func decodeSettings(raw json.RawMessage) (*models.Settings, *DecodeError) {
	var doc settingsDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, decodeErrf(KindInvalidFieldValue, "malformed settings record")
	}
	if doc.ThemeMode == nil || doc.LanguageTag == nil || doc.SlotModePolicy == nil {
		return nil, decodeErrf(KindInvalidFieldValue, "settings record is missing required fields")
	}
	return &models.Settings{
		ThemeMode:      models.ThemeMode(*doc.ThemeMode),
		LanguageTag:    *doc.LanguageTag,
		SlotModePolicy: models.SlotModePolicy(*doc.SlotModePolicy),
	}, nil
}
