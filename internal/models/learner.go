package models

import "time"

// LearnerProfile keeps per-learner state that outlives sessions, most
// importantly the adaptive difficulty level (1..3) used to select the
// question subset of the next quiz attempt.
type LearnerProfile struct {
	UserID          string    `bson:"_id" json:"user_id"`
	DifficultyLevel int       `bson:"difficulty_level" json:"difficulty_level"`
	QuizzesTaken    int       `bson:"quizzes_taken" json:"quizzes_taken"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}
