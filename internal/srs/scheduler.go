package srs

import (
	"time"

	"studyhub-service/internal/models"
)

// Mastery level bounds for a card.
const (
	MinLevel = 1
	MaxLevel = 5
)

// reviewIntervals holds the days until the next review, indexed by the
// card's new level (1-based). A deliberately simple fixed table rather
// than a full SM-2 style model: one binary signal in, one interval out.
var reviewIntervals = [...]int{1, 3, 7, 14, 30}

// IntervalDays returns the review interval for a level. Levels outside
// the table fall back to 1 day.
func IntervalDays(level int) int {
	if level < MinLevel || level > MaxLevel {
		return 1
	}
	return reviewIntervals[level-1]
}

// ApplyReview updates a card's spaced-repetition state from a binary
// self-assessment. A known card climbs one level (capped at MaxLevel);
// an unknown card drops all the way back to MinLevel. The next review
// date is derived from the new level.
func ApplyReview(card *models.Card, known bool, now time.Time) {
	if known {
		if card.Level < MaxLevel {
			card.Level++
		}
	} else {
		card.Level = MinLevel
	}

	next := now.AddDate(0, 0, IntervalDays(card.Level))
	card.NextReview = &next
	card.ReviewCount++
}
