package models

import "time"

// QuizAnswer is one recorded response inside a quiz session.
type QuizAnswer struct {
	ID                 string    `bson:"_id,omitempty" json:"id"`
	SessionID          string    `bson:"session_id" json:"session_id"`
	QuestionID         string    `bson:"question_id" json:"question_id"`
	SelectedOption     string    `bson:"selected_option" json:"selected_option"`
	IsCorrect          bool      `bson:"is_correct" json:"is_correct"`
	TimeSpentSeconds   int       `bson:"time_spent_seconds" json:"time_spent_seconds"`
	QuestionDifficulty int       `bson:"question_difficulty" json:"question_difficulty"`
	AnsweredAt         time.Time `bson:"answered_at" json:"answered_at"`
}
