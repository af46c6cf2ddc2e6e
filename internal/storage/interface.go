package storage

import "trainweek/internal/models"

// Provider is the storage collaborator behind the planner, the backup
// repository, and the CLI. Implementations are single-writer: concurrent
// processes sharing one config path are not supported.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Workouts
	AddWorkout(models.Workout) error
	GetWorkout(id string) (models.Workout, error)
	GetAllWorkouts() ([]models.Workout, error)
	GetWorkoutsByWeek(weekStartDate string) ([]models.Workout, error)
	UpdateWorkout(models.Workout) error
	UpdateWorkoutPlacement(id string, dayOfWeek *int, timeSlot *models.TimeSlot, sortOrder int) error
	DeleteWorkout(id string) error

	// Categories
	AddCategory(models.Category) error
	GetAllCategories() ([]models.Category, error)

	// User actions
	AppendUserAction(models.UserAction) error
	GetAllUserActions() ([]models.UserAction, error)

	// ReplaceAll wipes and replaces workouts, categories and user actions in
	// one atomic step: either every record is swapped in or the prior state
	// stays fully intact.
	ReplaceAll(categories []models.Category, workouts []models.Workout, actions []models.UserAction) error

	// Utils
	GetConfigPath() string
}
