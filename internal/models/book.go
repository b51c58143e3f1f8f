package models

import "time"

// Reading progress states.
const (
	ProgressNotStarted = "Not Started"
	ProgressInProgress = "In Progress"
	ProgressCompleted  = "Completed"
)

type Book struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Title     string    `bson:"title" json:"title"`
	Author    string    `bson:"author" json:"author"`
	Category  string    `bson:"category" json:"category"`
	Progress  string    `bson:"progress" json:"progress"`
	Rating    int       `bson:"rating" json:"rating"`
	Notes     string    `bson:"notes" json:"notes"`
	AddedAt   time.Time `bson:"added_at" json:"added_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
