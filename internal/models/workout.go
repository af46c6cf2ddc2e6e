package models

import "time"

type EventType string

const (
	EventTypeWorkout EventType = "workout"
	EventTypeRestDay EventType = "restDay"
)

func (e EventType) Valid() bool {
	return e == EventTypeWorkout || e == EventTypeRestDay
}

type TimeSlot string

const (
	TimeSlotMorning   TimeSlot = "morning"
	TimeSlotAfternoon TimeSlot = "afternoon"
	TimeSlotNight     TimeSlot = "night"
)

func (s TimeSlot) Valid() bool {
	return s == TimeSlotMorning || s == TimeSlotAfternoon || s == TimeSlotNight
}

// TimeSlots lists the slots in display order (top to bottom on the board).
var TimeSlots = []TimeSlot{TimeSlotMorning, TimeSlotAfternoon, TimeSlotNight}

// Workout is a scheduled event on the weekly board. DayOfWeek is nil while the
// workout sits in the "To Be Defined" section; TimeSlot is nil when the day is
// not subdivided into slots.
type Workout struct {
	ID            string    `json:"id"`
	WeekStartDate string    `json:"weekStartDate"` // YYYY-MM-DD
	DayOfWeek     *int      `json:"dayOfWeek,omitempty"` // 1 (Monday) .. 7 (Sunday)
	TimeSlot      *TimeSlot `json:"timeSlot,omitempty"`
	SortOrder     int       `json:"sortOrder"`
	EventType     EventType `json:"eventType"`
	Type          string    `json:"type"`
	Description   string    `json:"description"`
	IsCompleted   bool      `json:"isCompleted"`
	CategoryID    *string   `json:"categoryId,omitempty"`
}

// DateFormat is the calendar date layout used for weekStartDate fields.
const DateFormat = "2006-01-02"

// ValidDate reports whether s parses as a YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateFormat, s)
	return err == nil
}

// WeekStart returns the Monday of the week containing t, formatted as a date
// string.
func WeekStart(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset).Format(DateFormat)
}

var dayNames = [8]string{"To Be Defined", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DayName returns the display name for a day-of-week number, with 0 naming
// the unscheduled section.
func DayName(day int) string {
	if day < 0 || day > 7 {
		return "Unknown"
	}
	return dayNames[day]
}
