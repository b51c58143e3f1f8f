package adaptive

import (
	"sort"

	"studyhub-service/internal/models"
	"studyhub-service/internal/selection"
)

// Adaptive difficulty levels. The level is a cross-quiz signal kept per
// learner; it starts at medium and only the end-of-quiz scoring step
// moves it.
const (
	LevelEasy   = 1
	LevelMedium = 2
	LevelHard   = 3

	DefaultLevel = LevelMedium
)

// Score thresholds for the end-of-quiz difficulty adjustment.
const (
	raiseAbove = 85
	lowerBelow = 60
)

// ClampLevel forces a stored level back into the valid range.
func ClampLevel(level int) int {
	if level < LevelEasy {
		return LevelEasy
	}
	if level > LevelHard {
		return LevelHard
	}
	return level
}

// AdjustLevel moves the difficulty level based on a percentage score:
// above 85 raises it, below 60 lowers it, anything between leaves it
// alone. The result never leaves the 1..3 range.
func AdjustLevel(level, percentageScore int) int {
	switch {
	case percentageScore > raiseAbove:
		return ClampLevel(level + 1)
	case percentageScore < lowerBelow:
		return ClampLevel(level - 1)
	default:
		return ClampLevel(level)
	}
}

// ActiveQuestions picks the question subset for one quiz attempt at the
// given difficulty level and shuffles it.
//
// Easy keeps only questions up to medium tier. Medium takes everything.
// Hard takes everything ordered by descending tier first; the shuffle
// right after makes that ordering cosmetic, but it is kept to match the
// observed behavior of the original quiz flow.
func ActiveQuestions(questions []models.Question, level int) []models.Question {
	var subset []models.Question

	switch ClampLevel(level) {
	case LevelEasy:
		for _, q := range questions {
			if q.Difficulty <= models.TierMedium {
				subset = append(subset, q)
			}
		}
	case LevelHard:
		subset = make([]models.Question, len(questions))
		copy(subset, questions)
		sort.SliceStable(subset, func(i, j int) bool {
			return subset[i].Difficulty > subset[j].Difficulty
		})
	default:
		subset = make([]models.Question, len(questions))
		copy(subset, questions)
	}

	selection.Shuffle(subset)
	return subset
}
