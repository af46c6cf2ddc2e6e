package models

type ActionType string

const (
	ActionWorkoutAdded       ActionType = "workoutAdded"
	ActionWorkoutUpdated     ActionType = "workoutUpdated"
	ActionWorkoutDeleted     ActionType = "workoutDeleted"
	ActionWorkoutCompleted   ActionType = "workoutCompleted"
	ActionWorkoutUncompleted ActionType = "workoutUncompleted"
	ActionWorkoutMoved       ActionType = "workoutMoved"
	ActionCategoryAdded      ActionType = "categoryAdded"
	ActionBackupImported     ActionType = "backupImported"
	ActionBackupExported     ActionType = "backupExported"
)

func (a ActionType) Valid() bool {
	switch a {
	case ActionWorkoutAdded, ActionWorkoutUpdated, ActionWorkoutDeleted,
		ActionWorkoutCompleted, ActionWorkoutUncompleted, ActionWorkoutMoved,
		ActionCategoryAdded, ActionBackupImported, ActionBackupExported:
		return true
	}
	return false
}

type EntityType string

const (
	EntityWorkout  EntityType = "workout"
	EntityCategory EntityType = "category"
	EntitySettings EntityType = "settings"
	EntityBackup   EntityType = "backup"
)

func (e EntityType) Valid() bool {
	switch e {
	case EntityWorkout, EntityCategory, EntitySettings, EntityBackup:
		return true
	}
	return false
}

// UserAction is one entry in the action history. Timestamp is RFC3339.
type UserAction struct {
	ID         string     `json:"id"`
	ActionType ActionType `json:"actionType"`
	EntityType EntityType `json:"entityType"`
	EntityID   *string    `json:"entityId,omitempty"`
	Metadata   *string    `json:"metadata,omitempty"`
	Timestamp  string     `json:"timestamp"`
}
