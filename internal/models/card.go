package models

import "time"

// Card is a single flashcard. Level runs from 1 to 5; a known answer
// moves the card up one level, an unknown answer sends it back to 1.
type Card struct {
	ID          string     `bson:"id" json:"id"`
	Question    string     `bson:"question" json:"question"`
	Answer      string     `bson:"answer" json:"answer"`
	Level       int        `bson:"level" json:"level"`
	NextReview  *time.Time `bson:"next_review,omitempty" json:"next_review,omitempty"`
	ReviewCount int        `bson:"review_count" json:"review_count"`
}

type Deck struct {
	ID          string     `bson:"_id,omitempty" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description" json:"description"`
	Cards       []Card     `bson:"cards" json:"cards"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	LastStudied *time.Time `bson:"last_studied,omitempty" json:"last_studied,omitempty"`
}

// CardByID returns the card with the given id, or nil.
func (d *Deck) CardByID(id string) *Card {
	for i := range d.Cards {
		if d.Cards[i].ID == id {
			return &d.Cards[i]
		}
	}
	return nil
}
