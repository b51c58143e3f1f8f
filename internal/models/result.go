package models

import "time"

// DifficultyBreakdown counts correct answers per question tier.
type DifficultyBreakdown struct {
	Easy   int `bson:"easy" json:"easy"`
	Medium int `bson:"medium" json:"medium"`
	Hard   int `bson:"hard" json:"hard"`
}

type QuizResult struct {
	ID                  string              `bson:"_id,omitempty" json:"id"`
	SessionID           string              `bson:"session_id" json:"session_id"`
	UserID              string              `bson:"user_id" json:"user_id"`
	QuizID              string              `bson:"quiz_id" json:"quiz_id"`
	TotalQuestions      int                 `bson:"total_questions" json:"total_questions"`
	AnsweredQuestions   int                 `bson:"answered_questions" json:"answered_questions"`
	CorrectAnswers      int                 `bson:"correct_answers" json:"correct_answers"`
	IncorrectAnswers    int                 `bson:"incorrect_answers" json:"incorrect_answers"`
	UnansweredQuestions int                 `bson:"unanswered_questions" json:"unanswered_questions"`
	PercentageScore     int                 `bson:"percentage_score" json:"percentage_score"`
	Passed              bool                `bson:"passed" json:"passed"`
	TimeSpentSeconds    int                 `bson:"time_spent_seconds" json:"time_spent_seconds"`
	TimeExpired         bool                `bson:"time_expired" json:"time_expired"`
	DifficultyBreakdown DifficultyBreakdown `bson:"difficulty_breakdown" json:"difficulty_breakdown"`
	CreatedAt           time.Time           `bson:"created_at" json:"created_at"`
}
