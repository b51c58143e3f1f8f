package adaptive

import (
	"testing"

	"studyhub-service/internal/models"
)

func questionPool() []models.Question {
	return []models.Question{
		{ID: "q1", Difficulty: models.TierEasy},
		{ID: "q2", Difficulty: models.TierMedium},
		{ID: "q3", Difficulty: models.TierHard},
		{ID: "q4", Difficulty: models.TierEasy},
		{ID: "q5", Difficulty: models.TierHard},
		{ID: "q6", Difficulty: models.TierMedium},
	}
}

func TestAdjustLevel(t *testing.T) {
	testCases := []struct {
		name     string
		level    int
		score    int
		expected int
	}{
		{"high score raises difficulty", LevelMedium, 90, LevelHard},
		{"high score caps at hard", LevelHard, 100, LevelHard},
		{"low score lowers difficulty", LevelMedium, 45, LevelEasy},
		{"low score floors at easy", LevelEasy, 10, LevelEasy},
		{"middling score unchanged", LevelMedium, 75, LevelMedium},
		{"boundary 85 unchanged", LevelMedium, 85, LevelMedium},
		{"boundary 86 raises", LevelMedium, 86, LevelHard},
		{"boundary 60 unchanged", LevelMedium, 60, LevelMedium},
		{"boundary 59 lowers", LevelMedium, 59, LevelEasy},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AdjustLevel(tc.level, tc.score); got != tc.expected {
				t.Errorf("AdjustLevel(%d, %d): expected %d, got %d", tc.level, tc.score, tc.expected, got)
			}
		})
	}
}

func TestAdjustLevelNeverLeavesRange(t *testing.T) {
	scores := []int{0, 100, 100, 100, 0, 0, 0, 90, 90, 50, 50, 50, 95}
	level := DefaultLevel
	for i, score := range scores {
		level = AdjustLevel(level, score)
		if level < LevelEasy || level > LevelHard {
			t.Fatalf("after score %d (step %d): level %d out of range", score, i, level)
		}
	}
}

func TestActiveQuestionsEasyFiltersHardTier(t *testing.T) {
	subset := ActiveQuestions(questionPool(), LevelEasy)

	if len(subset) != 4 {
		t.Fatalf("expected 4 questions at easy level, got %d", len(subset))
	}
	for _, q := range subset {
		if q.Difficulty > models.TierMedium {
			t.Errorf("question %s with tier %d should be filtered out at easy level", q.ID, q.Difficulty)
		}
	}
}

func TestActiveQuestionsMediumKeepsEverything(t *testing.T) {
	pool := questionPool()
	subset := ActiveQuestions(pool, LevelMedium)

	if len(subset) != len(pool) {
		t.Fatalf("expected %d questions at medium level, got %d", len(pool), len(subset))
	}
	seen := make(map[string]bool)
	for _, q := range subset {
		seen[q.ID] = true
	}
	for _, q := range pool {
		if !seen[q.ID] {
			t.Errorf("question %s missing from medium subset", q.ID)
		}
	}
}

func TestActiveQuestionsHardKeepsEverything(t *testing.T) {
	pool := questionPool()
	subset := ActiveQuestions(pool, LevelHard)

	if len(subset) != len(pool) {
		t.Fatalf("expected %d questions at hard level, got %d", len(pool), len(subset))
	}
}

func TestActiveQuestionsDoesNotMutatePool(t *testing.T) {
	pool := questionPool()
	ActiveQuestions(pool, LevelHard)

	expected := questionPool()
	for i := range pool {
		if pool[i].ID != expected[i].ID {
			t.Fatalf("pool order mutated at index %d: expected %s, got %s", i, expected[i].ID, pool[i].ID)
		}
	}
}

func TestActiveQuestionsEmptyPool(t *testing.T) {
	for _, level := range []int{LevelEasy, LevelMedium, LevelHard} {
		if subset := ActiveQuestions(nil, level); len(subset) != 0 {
			t.Errorf("level %d: expected empty subset, got %d questions", level, len(subset))
		}
	}
}
