package models

import "time"

type CourseModule struct {
	Title         string  `bson:"title" json:"title"`
	DurationHours float64 `bson:"duration_hours" json:"duration_hours"`
}

type Course struct {
	ID              string         `bson:"_id,omitempty" json:"id"`
	Title           string         `bson:"title" json:"title"`
	Description     string         `bson:"description" json:"description"`
	Topics          []string       `bson:"topics" json:"topics"`
	Difficulty      string         `bson:"difficulty" json:"difficulty"`
	EstimatedHours  float64        `bson:"estimated_hours" json:"estimated_hours"`
	Modules         []CourseModule `bson:"modules" json:"modules"`
	Instructor      string         `bson:"instructor" json:"instructor"`
	EnrollmentCount int            `bson:"enrollment_count" json:"enrollment_count"`
	Rating          float64        `bson:"rating" json:"rating"`
	ReleasedAt      time.Time      `bson:"released_at" json:"released_at"`
}
