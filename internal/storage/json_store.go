package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"trainweek/internal/models"
)

// jsonDocument is the on-disk shape of the JSON backend.
type jsonDocument struct {
	Version     int                        `json:"version"`
	Settings    models.Settings            `json:"settings"`
	Workouts    map[string]models.Workout  `json:"workouts"`
	Categories  map[string]models.Category `json:"categories"`
	UserActions []models.UserAction        `json:"userActions"`
}

// JSONStore keeps the whole record store in a single JSON document. Every
// save stages the document in a temp file and renames it over the old one,
// so a multi-record replace is as atomic as the SQLite transaction path.
type JSONStore struct {
	path string
	doc  *jsonDocument
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &jsonDocument{
		Version:    1,
		Settings:   models.DefaultSettings(),
		Workouts:   make(map[string]models.Workout),
		Categories: make(map[string]models.Category),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	if s.doc != nil {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'trainweek init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &jsonDocument{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.doc.Workouts == nil {
		s.doc.Workouts = make(map[string]models.Workout)
	}
	if s.doc.Categories == nil {
		s.doc.Categories = make(map[string]models.Category)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// save writes the document to a staging file and atomically renames it into
// place.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tempPath := s.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tempPath, s.path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to replace storage: %w", err)
	}

	return nil
}

func (s *JSONStore) loaded() error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if err := s.loaded(); err != nil {
		return models.Settings{}, err
	}
	return s.doc.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Settings = settings
	return s.save()
}

func (s *JSONStore) AddWorkout(w models.Workout) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Workouts[w.ID] = w
	return s.save()
}

func (s *JSONStore) GetWorkout(id string) (models.Workout, error) {
	if err := s.loaded(); err != nil {
		return models.Workout{}, err
	}
	w, ok := s.doc.Workouts[id]
	if !ok {
		return models.Workout{}, fmt.Errorf("workout with id %s not found", id)
	}
	return w, nil
}

func (s *JSONStore) GetAllWorkouts() ([]models.Workout, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	workouts := make([]models.Workout, 0, len(s.doc.Workouts))
	for _, w := range s.doc.Workouts {
		workouts = append(workouts, w)
	}
	sortWorkouts(workouts)
	return workouts, nil
}

func (s *JSONStore) GetWorkoutsByWeek(weekStartDate string) ([]models.Workout, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	var workouts []models.Workout
	for _, w := range s.doc.Workouts {
		if w.WeekStartDate == weekStartDate {
			workouts = append(workouts, w)
		}
	}
	sortWorkouts(workouts)
	return workouts, nil
}

func (s *JSONStore) UpdateWorkout(w models.Workout) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if _, ok := s.doc.Workouts[w.ID]; !ok {
		return fmt.Errorf("workout with id %s not found", w.ID)
	}
	s.doc.Workouts[w.ID] = w
	return s.save()
}

func (s *JSONStore) UpdateWorkoutPlacement(id string, dayOfWeek *int, timeSlot *models.TimeSlot, sortOrder int) error {
	if err := s.loaded(); err != nil {
		return err
	}
	w, ok := s.doc.Workouts[id]
	if !ok {
		return fmt.Errorf("workout with id %s not found", id)
	}
	w.DayOfWeek = dayOfWeek
	w.TimeSlot = timeSlot
	w.SortOrder = sortOrder
	s.doc.Workouts[id] = w
	return s.save()
}

func (s *JSONStore) DeleteWorkout(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if _, ok := s.doc.Workouts[id]; !ok {
		return fmt.Errorf("workout with id %s not found", id)
	}
	delete(s.doc.Workouts, id)
	return s.save()
}

func (s *JSONStore) AddCategory(c models.Category) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Categories[c.ID] = c
	return s.save()
}

func (s *JSONStore) GetAllCategories() ([]models.Category, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	categories := make([]models.Category, 0, len(s.doc.Categories))
	for _, c := range s.doc.Categories {
		categories = append(categories, c)
	}
	sortCategories(categories)
	return categories, nil
}

func (s *JSONStore) AppendUserAction(a models.UserAction) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.UserActions = append(s.doc.UserActions, a)
	return s.save()
}

func (s *JSONStore) GetAllUserActions() ([]models.UserAction, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	actions := make([]models.UserAction, len(s.doc.UserActions))
	copy(actions, s.doc.UserActions)
	return actions, nil
}

func (s *JSONStore) ReplaceAll(categories []models.Category, workouts []models.Workout, actions []models.UserAction) error {
	if err := s.loaded(); err != nil {
		return err
	}

	// Stage the replacement in memory; save() makes it visible atomically.
	// On failure, reload from disk so the in-memory view matches the file.
	prev := s.doc
	next := &jsonDocument{
		Version:     prev.Version,
		Settings:    prev.Settings,
		Workouts:    make(map[string]models.Workout, len(workouts)),
		Categories:  make(map[string]models.Category, len(categories)),
		UserActions: append([]models.UserAction(nil), actions...),
	}
	for _, c := range categories {
		next.Categories[c.ID] = c
	}
	for _, w := range workouts {
		next.Workouts[w.ID] = w
	}

	s.doc = next
	if err := s.save(); err != nil {
		s.doc = prev
		return err
	}
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
