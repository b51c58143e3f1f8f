package models

import "time"

type Quiz struct {
	ID               string     `bson:"_id,omitempty" json:"id"`
	Title            string     `bson:"title" json:"title"`
	Description      string     `bson:"description" json:"description"`
	Category         string     `bson:"category" json:"category"`
	Questions        []Question `bson:"questions" json:"questions"`
	TimeLimitSeconds int        `bson:"time_limit_seconds" json:"time_limit_seconds"`
	PassingScore     int        `bson:"passing_score" json:"passing_score"`
	CreatedAt        time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `bson:"updated_at" json:"updated_at"`
}

// DifficultyLabel classifies the quiz by the average tier of its questions.
func (q *Quiz) DifficultyLabel() string {
	if len(q.Questions) == 0 {
		return DifficultyName(TierMedium)
	}
	sum := 0
	for _, question := range q.Questions {
		sum += question.Difficulty
	}
	avg := float64(sum) / float64(len(q.Questions))
	switch {
	case avg < 1.5:
		return DifficultyName(TierEasy)
	case avg < 2.5:
		return DifficultyName(TierMedium)
	default:
		return DifficultyName(TierHard)
	}
}
