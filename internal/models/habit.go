package models

import "time"

// HabitRecord is one day of habit history. Date is a calendar day in
// YYYY-MM-DD form so lookups are independent of time of day.
type HabitRecord struct {
	Date      string `bson:"date" json:"date"`
	Completed bool   `bson:"completed" json:"completed"`
	Notes     string `bson:"notes" json:"notes"`
}

// HabitFrequency describes which weekdays a habit is active on.
// Days uses time.Weekday numbering (0 = Sunday).
type HabitFrequency struct {
	Type string `bson:"type" json:"type"`
	Days []int  `bson:"days" json:"days"`
}

type Habit struct {
	ID          string         `bson:"_id,omitempty" json:"id"`
	UserID      string         `bson:"user_id" json:"user_id"`
	Title       string         `bson:"title" json:"title"`
	Description string         `bson:"description" json:"description"`
	Frequency   HabitFrequency `bson:"frequency" json:"frequency"`
	TimeOfDay   string         `bson:"time_of_day" json:"time_of_day"`
	Streak      int            `bson:"streak" json:"streak"`
	History     []HabitRecord  `bson:"history" json:"history"`
	CreatedAt   time.Time      `bson:"created_at" json:"created_at"`
}

// RecordFor returns the history entry for the given day, or nil.
func (h *Habit) RecordFor(date string) *HabitRecord {
	for i := range h.History {
		if h.History[i].Date == date {
			return &h.History[i]
		}
	}
	return nil
}

// ActiveOn reports whether the habit is scheduled for the given weekday.
func (h *Habit) ActiveOn(day time.Weekday) bool {
	for _, d := range h.Frequency.Days {
		if d == int(day) {
			return true
		}
	}
	return false
}
