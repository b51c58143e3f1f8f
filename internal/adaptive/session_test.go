package adaptive

import (
	"testing"

	"studyhub-service/internal/models"
)

func testQuiz(questionCount int) *models.Quiz {
	quiz := &models.Quiz{
		ID:               "quiz-1",
		Title:            "Neural Networks Fundamentals",
		TimeLimitSeconds: 300,
		PassingScore:     70,
	}
	for i := 0; i < questionCount; i++ {
		id := string(rune('a' + i))
		quiz.Questions = append(quiz.Questions, models.Question{
			ID:            "q-" + id,
			Difficulty:    models.TierMedium,
			CorrectAnswer: "b",
			Options: []models.Option{
				{ID: "a", Text: "wrong"},
				{ID: "b", Text: "right"},
			},
		})
	}
	return quiz
}

// answerAndAdvance submits the given option and moves to the next question.
func answerAndAdvance(t *testing.T, s *Session, optionID string) {
	t.Helper()
	if _, err := s.SubmitAnswer(optionID); err != nil {
		t.Fatalf("unexpected submit error: %v", err)
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("unexpected advance error: %v", err)
	}
}

func TestSessionPassingScore(t *testing.T) {
	// 6 of 8 correct at medium: 75%, passing, difficulty untouched.
	session := NewSession(testQuiz(8), LevelMedium)

	for i := 0; i < 6; i++ {
		answerAndAdvance(t, session, "b")
	}
	for i := 0; i < 2; i++ {
		answerAndAdvance(t, session, "a")
	}

	if !session.Complete() {
		t.Fatal("expected session to be complete")
	}

	result := session.Result()
	if result.PercentageScore != 75 {
		t.Errorf("expected 75%%, got %d", result.PercentageScore)
	}
	if !result.Passed {
		t.Error("expected quiz to be passed at 75%% with passing score 70")
	}
	if next := AdjustLevel(LevelMedium, result.PercentageScore); next != LevelMedium {
		t.Errorf("expected difficulty to stay at medium, got %d", next)
	}
}

func TestSessionHighScoreRaisesDifficulty(t *testing.T) {
	// 9 of 10 correct: 90%, difficulty climbs from medium to hard.
	session := NewSession(testQuiz(10), LevelMedium)

	for i := 0; i < 9; i++ {
		answerAndAdvance(t, session, "b")
	}
	answerAndAdvance(t, session, "a")

	result := session.Result()
	if result.PercentageScore != 90 {
		t.Errorf("expected 90%%, got %d", result.PercentageScore)
	}
	if next := AdjustLevel(LevelMedium, result.PercentageScore); next != LevelHard {
		t.Errorf("expected difficulty to rise to hard, got %d", next)
	}
}

func TestSessionTimerExpiry(t *testing.T) {
	quiz := testQuiz(8)
	quiz.TimeLimitSeconds = 5
	session := NewSession(quiz, LevelMedium)

	for i := 0; i < 3; i++ {
		answerAndAdvance(t, session, "b")
	}

	expired := false
	for i := 0; i < 5; i++ {
		expired = session.Tick()
	}
	if !expired {
		t.Fatal("expected the final tick to expire the timer")
	}
	if !session.Complete() {
		t.Fatal("expected session to be complete after timer expiry")
	}

	// Ticks after completion must be no-ops.
	if session.Tick() {
		t.Error("tick after completion should not expire again")
	}
	if session.RemainingSeconds != 0 {
		t.Errorf("expected remaining time to stay at 0, got %d", session.RemainingSeconds)
	}

	result := session.Result()
	if !result.TimeExpired {
		t.Error("expected time expired flag on result")
	}
	if result.AnsweredQuestions != 3 {
		t.Errorf("expected 3 answered questions, got %d", result.AnsweredQuestions)
	}
	if result.UnansweredQuestions != 5 {
		t.Errorf("expected 5 unanswered questions, got %d", result.UnansweredQuestions)
	}
	// Score is computed over the full subset, not just answered questions.
	if result.PercentageScore != 38 {
		t.Errorf("expected 38%% (3 of 8), got %d", result.PercentageScore)
	}
}

func TestSubmitAnswerTwiceRejected(t *testing.T) {
	session := NewSession(testQuiz(3), LevelMedium)

	if _, err := session.SubmitAnswer("b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := session.SubmitAnswer("a"); err != ErrAlreadyAnswered {
		t.Errorf("expected ErrAlreadyAnswered, got %v", err)
	}
}

func TestAdvanceRequiresAnswer(t *testing.T) {
	session := NewSession(testQuiz(3), LevelMedium)

	// A question cannot be skipped.
	if err := session.Advance(); err != ErrNoAnswerRecorded {
		t.Fatalf("expected ErrNoAnswerRecorded, got %v", err)
	}

	// Skipping must not break the duplicate-answer guard: the first
	// submit lands, the second is still rejected.
	if _, err := session.SubmitAnswer("b"); err != nil {
		t.Fatalf("unexpected submit error: %v", err)
	}
	if _, err := session.SubmitAnswer("b"); err != ErrAlreadyAnswered {
		t.Errorf("expected ErrAlreadyAnswered, got %v", err)
	}
	if len(session.Answers) != 1 {
		t.Fatalf("expected 1 recorded answer, got %d", len(session.Answers))
	}

	// The guard resets per question, so the next question is answerable.
	if err := session.Advance(); err != nil {
		t.Fatalf("unexpected advance error: %v", err)
	}
	if _, err := session.SubmitAnswer("a"); err != nil {
		t.Fatalf("unexpected submit error on next question: %v", err)
	}

	session.Finish()
	result := session.Result()
	if result.AnsweredQuestions != 2 || result.UnansweredQuestions != 1 {
		t.Errorf("expected 2 answered and 1 unanswered, got %d/%d",
			result.AnsweredQuestions, result.UnansweredQuestions)
	}
	if result.CorrectAnswers != 1 {
		t.Errorf("expected 1 correct answer, got %d", result.CorrectAnswers)
	}
}

func TestOperationsAfterComplete(t *testing.T) {
	session := NewSession(testQuiz(1), LevelMedium)
	answerAndAdvance(t, session, "b")

	if _, err := session.SubmitAnswer("b"); err != ErrSessionComplete {
		t.Errorf("submit: expected ErrSessionComplete, got %v", err)
	}
	if err := session.Advance(); err != ErrSessionComplete {
		t.Errorf("advance: expected ErrSessionComplete, got %v", err)
	}
}

func TestEmptyQuizSession(t *testing.T) {
	session := NewSession(testQuiz(0), LevelMedium)

	if !session.Complete() {
		t.Fatal("expected empty quiz session to be immediately complete")
	}

	result := session.Result()
	if result.PercentageScore != 0 {
		t.Errorf("expected 0%% for empty quiz, got %d", result.PercentageScore)
	}
	if result.Passed {
		t.Error("expected empty quiz not to pass a 70%% threshold")
	}
}

func TestAnswerTimingResetsPerQuestion(t *testing.T) {
	session := NewSession(testQuiz(2), LevelMedium)

	session.Tick()
	session.Tick()
	answer, err := session.SubmitAnswer("b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer.TimeSpentSeconds != 2 {
		t.Errorf("expected 2 seconds on first question, got %d", answer.TimeSpentSeconds)
	}
	if err := session.Advance(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	session.Tick()
	answer, err = session.SubmitAnswer("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer.TimeSpentSeconds != 1 {
		t.Errorf("expected per-question clock to reset, got %d seconds", answer.TimeSpentSeconds)
	}
}

func TestPercentageAlwaysInBounds(t *testing.T) {
	for count := 0; count <= 7; count++ {
		session := NewSession(testQuiz(count), LevelMedium)
		for i := 0; i < count; i++ {
			option := "a"
			if i%3 == 0 {
				option = "b"
			}
			answerAndAdvance(t, session, option)
		}
		result := session.Result()
		if result.PercentageScore < 0 || result.PercentageScore > 100 {
			t.Errorf("%d questions: percentage %d out of bounds", count, result.PercentageScore)
		}
	}
}
