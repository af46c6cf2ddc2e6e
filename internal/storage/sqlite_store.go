package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"trainweek/internal/models"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS workouts (
	id TEXT PRIMARY KEY,
	week_start_date TEXT NOT NULL,
	day_of_week INTEGER,
	time_slot TEXT,
	sort_order INTEGER NOT NULL,
	event_type TEXT NOT NULL,
	type TEXT NOT NULL,
	description TEXT NOT NULL,
	is_completed INTEGER NOT NULL,
	category_id TEXT
);
CREATE INDEX IF NOT EXISTS idx_workouts_week ON workouts(week_start_date);

CREATE TABLE IF NOT EXISTS categories (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	color_id INTEGER NOT NULL,
	sort_order INTEGER NOT NULL,
	is_hidden INTEGER NOT NULL,
	is_system INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS user_actions (
	id TEXT PRIMARY KEY,
	action_type TEXT NOT NULL,
	entity_type TEXT NOT NULL,
	entity_id TEXT,
	metadata TEXT,
	timestamp TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Initialize default settings if not present
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(models.DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'trainweek init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case "theme_mode":
			settings.ThemeMode = models.ThemeMode(value)
		case "language_tag":
			settings.LanguageTag = value
		case "slot_mode_policy":
			settings.SlotModePolicy = models.SlotModePolicy(value)
		}
		count++
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, rows.Err()
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec("theme_mode", string(settings.ThemeMode)); err != nil {
		return err
	}
	if _, err := stmt.Exec("language_tag", settings.LanguageTag); err != nil {
		return err
	}
	if _, err := stmt.Exec("slot_mode_policy", string(settings.SlotModePolicy)); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) AddWorkout(w models.Workout) error {
	return s.UpdateWorkout(w)
}

const workoutColumns = "id, week_start_date, day_of_week, time_slot, sort_order, event_type, type, description, is_completed, category_id"

func scanWorkout(scan func(dest ...any) error) (models.Workout, error) {
	var w models.Workout
	var day sql.NullInt64
	var slot, categoryID sql.NullString
	var eventType string

	err := scan(
		&w.ID, &w.WeekStartDate, &day, &slot, &w.SortOrder,
		&eventType, &w.Type, &w.Description, &w.IsCompleted, &categoryID,
	)
	if err != nil {
		return models.Workout{}, err
	}

	w.EventType = models.EventType(eventType)
	if day.Valid {
		d := int(day.Int64)
		w.DayOfWeek = &d
	}
	if slot.Valid {
		ts := models.TimeSlot(slot.String)
		w.TimeSlot = &ts
	}
	if categoryID.Valid {
		w.CategoryID = &categoryID.String
	}
	return w, nil
}

func (s *SQLiteStore) GetWorkout(id string) (models.Workout, error) {
	row := s.db.QueryRow("SELECT "+workoutColumns+" FROM workouts WHERE id = ?", id)
	w, err := scanWorkout(row.Scan)
	if err == sql.ErrNoRows {
		return models.Workout{}, fmt.Errorf("workout with id %s not found", id)
	}
	return w, err
}

func (s *SQLiteStore) queryWorkouts(query string, args ...any) ([]models.Workout, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []models.Workout
	for rows.Next() {
		w, err := scanWorkout(rows.Scan)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

// slotOrderSQL ranks time slots chronologically; lexical ordering would put
// afternoon before morning.
const slotOrderSQL = `CASE time_slot WHEN 'morning' THEN 1 WHEN 'afternoon' THEN 2 WHEN 'night' THEN 3 ELSE 0 END`

func (s *SQLiteStore) GetAllWorkouts() ([]models.Workout, error) {
	return s.queryWorkouts("SELECT " + workoutColumns + " FROM workouts ORDER BY week_start_date, day_of_week, " + slotOrderSQL + ", sort_order")
}

func (s *SQLiteStore) GetWorkoutsByWeek(weekStartDate string) ([]models.Workout, error) {
	return s.queryWorkouts("SELECT "+workoutColumns+" FROM workouts WHERE week_start_date = ? ORDER BY day_of_week, "+slotOrderSQL+", sort_order", weekStartDate)
}

func workoutArgs(w models.Workout) []any {
	var day sql.NullInt64
	if w.DayOfWeek != nil {
		day = sql.NullInt64{Int64: int64(*w.DayOfWeek), Valid: true}
	}
	var slot sql.NullString
	if w.TimeSlot != nil {
		slot = sql.NullString{String: string(*w.TimeSlot), Valid: true}
	}
	var categoryID sql.NullString
	if w.CategoryID != nil {
		categoryID = sql.NullString{String: *w.CategoryID, Valid: true}
	}
	return []any{
		w.ID, w.WeekStartDate, day, slot, w.SortOrder,
		string(w.EventType), w.Type, w.Description, w.IsCompleted, categoryID,
	}
}

const insertWorkoutSQL = `
	INSERT OR REPLACE INTO workouts (` + workoutColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

func (s *SQLiteStore) UpdateWorkout(w models.Workout) error {
	_, err := s.db.Exec(insertWorkoutSQL, workoutArgs(w)...)
	return err
}

func (s *SQLiteStore) UpdateWorkoutPlacement(id string, dayOfWeek *int, timeSlot *models.TimeSlot, sortOrder int) error {
	var day sql.NullInt64
	if dayOfWeek != nil {
		day = sql.NullInt64{Int64: int64(*dayOfWeek), Valid: true}
	}
	var slot sql.NullString
	if timeSlot != nil {
		slot = sql.NullString{String: string(*timeSlot), Valid: true}
	}

	res, err := s.db.Exec("UPDATE workouts SET day_of_week = ?, time_slot = ?, sort_order = ? WHERE id = ?", day, slot, sortOrder, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("workout with id %s not found", id)
	}
	return nil
}

func (s *SQLiteStore) DeleteWorkout(id string) error {
	res, err := s.db.Exec("DELETE FROM workouts WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("workout with id %s not found", id)
	}
	return nil
}

func (s *SQLiteStore) AddCategory(c models.Category) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO categories (id, name, color_id, sort_order, is_hidden, is_system)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.ColorID, c.SortOrder, c.IsHidden, c.IsSystem,
	)
	return err
}

func (s *SQLiteStore) GetAllCategories() ([]models.Category, error) {
	rows, err := s.db.Query("SELECT id, name, color_id, sort_order, is_hidden, is_system FROM categories ORDER BY sort_order")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ColorID, &c.SortOrder, &c.IsHidden, &c.IsSystem); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func userActionArgs(a models.UserAction) []any {
	var entityID, metadata sql.NullString
	if a.EntityID != nil {
		entityID = sql.NullString{String: *a.EntityID, Valid: true}
	}
	if a.Metadata != nil {
		metadata = sql.NullString{String: *a.Metadata, Valid: true}
	}
	return []any{a.ID, string(a.ActionType), string(a.EntityType), entityID, metadata, a.Timestamp}
}

const insertUserActionSQL = `
	INSERT OR REPLACE INTO user_actions (id, action_type, entity_type, entity_id, metadata, timestamp)
	VALUES (?, ?, ?, ?, ?, ?)`

func (s *SQLiteStore) AppendUserAction(a models.UserAction) error {
	_, err := s.db.Exec(insertUserActionSQL, userActionArgs(a)...)
	return err
}

func (s *SQLiteStore) GetAllUserActions() ([]models.UserAction, error) {
	rows, err := s.db.Query("SELECT id, action_type, entity_type, entity_id, metadata, timestamp FROM user_actions ORDER BY timestamp")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var actions []models.UserAction
	for rows.Next() {
		var a models.UserAction
		var actionType, entityType string
		var entityID, metadata sql.NullString
		if err := rows.Scan(&a.ID, &actionType, &entityType, &entityID, &metadata, &a.Timestamp); err != nil {
			return nil, err
		}
		a.ActionType = models.ActionType(actionType)
		a.EntityType = models.EntityType(entityType)
		if entityID.Valid {
			a.EntityID = &entityID.String
		}
		if metadata.Valid {
			a.Metadata = &metadata.String
		}
		actions = append(actions, a)
	}
	return actions, rows.Err()
}

// ReplaceAll swaps the entire record store inside one transaction. Categories
// are inserted before the workouts that reference them.
func (s *SQLiteStore) ReplaceAll(categories []models.Category, workouts []models.Workout, actions []models.UserAction) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"workouts", "categories", "user_actions"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	for _, c := range categories {
		if _, err := tx.Exec(`
			INSERT INTO categories (id, name, color_id, sort_order, is_hidden, is_system)
			VALUES (?, ?, ?, ?, ?, ?)`,
			c.ID, c.Name, c.ColorID, c.SortOrder, c.IsHidden, c.IsSystem,
		); err != nil {
			return err
		}
	}

	for _, w := range workouts {
		if _, err := tx.Exec(insertWorkoutSQL, workoutArgs(w)...); err != nil {
			return err
		}
	}

	for _, a := range actions {
		if _, err := tx.Exec(insertUserActionSQL, userActionArgs(a)...); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
