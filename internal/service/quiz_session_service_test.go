package service

import (
	"context"
	"errors"
	"testing"

	"studyhub-service/internal/adaptive"
	"studyhub-service/internal/models"
)

type fakeQuizStore struct {
	quizzes map[string]*models.Quiz
}

func (f *fakeQuizStore) FindByID(_ context.Context, id string) (*models.Quiz, error) {
	quiz, ok := f.quizzes[id]
	if !ok {
		return nil, errors.New("quiz not found")
	}
	return quiz, nil
}

type fakeLearnerStore struct {
	profiles map[string]*models.LearnerProfile
	saves    int
}

func (f *fakeLearnerStore) FindByUser(_ context.Context, userID string) (*models.LearnerProfile, error) {
	if profile, ok := f.profiles[userID]; ok {
		copied := *profile
		return &copied, nil
	}
	return &models.LearnerProfile{UserID: userID, DifficultyLevel: adaptive.DefaultLevel}, nil
}

func (f *fakeLearnerStore) Save(_ context.Context, profile *models.LearnerProfile) error {
	f.profiles[profile.UserID] = profile
	f.saves++
	return nil
}

type fakeAnswerStore struct {
	answers []models.QuizAnswer
}

func (f *fakeAnswerStore) Create(_ context.Context, answer *models.QuizAnswer) error {
	f.answers = append(f.answers, *answer)
	return nil
}

type fakeResultStore struct {
	results []models.QuizResult
}

func (f *fakeResultStore) Create(_ context.Context, result *models.QuizResult) error {
	f.results = append(f.results, *result)
	return nil
}

// serviceQuiz builds a quiz whose questions all share correct option "b",
// so tests can answer without peeking past the preview.
func serviceQuiz(questionCount int) *models.Quiz {
	quiz := &models.Quiz{
		ID:           "quiz-1",
		Title:        "Service Fundamentals",
		PassingScore: 70,
	}
	for i := 0; i < questionCount; i++ {
		quiz.Questions = append(quiz.Questions, models.Question{
			ID:         string(rune('a' + i)),
			Text:       "q",
			Difficulty: models.TierMedium,
			Options: []models.Option{
				{ID: "a", Text: "wrong"},
				{ID: "b", Text: "right"},
			},
			CorrectAnswer: "b",
		})
	}
	return quiz
}

func newQuizFixture(quiz *models.Quiz) (*QuizSessionService, *fakeLearnerStore, *fakeAnswerStore, *fakeResultStore) {
	learners := &fakeLearnerStore{profiles: make(map[string]*models.LearnerProfile)}
	answers := &fakeAnswerStore{}
	results := &fakeResultStore{}
	svc := NewQuizSessionService(
		&fakeQuizStore{quizzes: map[string]*models.Quiz{quiz.ID: quiz}},
		learners, answers, results,
	)
	return svc, learners, answers, results
}

func TestQuizSessionFullRun(t *testing.T) {
	svc, learners, answers, results := newQuizFixture(serviceQuiz(4))
	ctx := context.Background()

	id, status, err := svc.Start(ctx, "quiz-1", "user-1")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if status.TotalQuestions != 4 || status.DifficultyLevel != adaptive.LevelMedium {
		t.Fatalf("unexpected start status: %+v", status)
	}
	if status.CurrentQuestion == nil {
		t.Fatal("start status has no current question")
	}

	for i := 0; i < 4; i++ {
		feedback, err := svc.SubmitAnswer(ctx, id, "b")
		if err != nil {
			t.Fatalf("SubmitAnswer %d: %v", i, err)
		}
		if !feedback.IsCorrect || feedback.CorrectOption != "b" {
			t.Errorf("feedback %d = %+v, want correct answer b", i, feedback)
		}
		if _, err := svc.Advance(ctx, id); err != nil {
			t.Fatalf("Advance %d: %v", i, err)
		}
	}

	result, err := svc.Result(id)
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	if result.PercentageScore != 100 || !result.Passed {
		t.Errorf("result = %+v, want 100%% passed", result)
	}
	if result.SessionID != id || result.UserID != "user-1" {
		t.Errorf("result attribution = %q/%q, want %q/user-1", result.SessionID, result.UserID, id)
	}

	if len(answers.answers) != 4 {
		t.Errorf("persisted %d answers, want 4", len(answers.answers))
	}
	if len(results.results) != 1 {
		t.Fatalf("persisted %d results, want exactly 1", len(results.results))
	}
	profile := learners.profiles["user-1"]
	if profile == nil || profile.DifficultyLevel != adaptive.LevelHard {
		t.Errorf("learner profile = %+v, want difficulty raised to hard", profile)
	}
	if profile != nil && profile.QuizzesTaken != 1 {
		t.Errorf("quizzes taken = %d, want 1", profile.QuizzesTaken)
	}
}

func TestQuizSessionAdvanceRequiresAnswer(t *testing.T) {
	svc, _, answers, _ := newQuizFixture(serviceQuiz(3))
	ctx := context.Background()

	id, _, err := svc.Start(ctx, "quiz-1", "user-1")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := svc.Advance(ctx, id); !errors.Is(err, adaptive.ErrNoAnswerRecorded) {
		t.Fatalf("Advance err = %v, want ErrNoAnswerRecorded", err)
	}
	if _, err := svc.SubmitAnswer(ctx, id, "b"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if _, err := svc.SubmitAnswer(ctx, id, "b"); !errors.Is(err, adaptive.ErrAlreadyAnswered) {
		t.Fatalf("duplicate SubmitAnswer err = %v, want ErrAlreadyAnswered", err)
	}
	if len(answers.answers) != 1 {
		t.Errorf("persisted %d answers, want 1", len(answers.answers))
	}
}

func TestQuizSessionResultBeforeComplete(t *testing.T) {
	svc, _, _, _ := newQuizFixture(serviceQuiz(3))

	id, _, err := svc.Start(context.Background(), "quiz-1", "user-1")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := svc.Result(id); !errors.Is(err, ErrSessionInProgress) {
		t.Errorf("Result err = %v, want ErrSessionInProgress", err)
	}
}

func TestQuizSessionFinishEarly(t *testing.T) {
	svc, _, _, results := newQuizFixture(serviceQuiz(4))
	ctx := context.Background()

	id, _, err := svc.Start(ctx, "quiz-1", "user-1")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := svc.SubmitAnswer(ctx, id, "b"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if _, err := svc.Advance(ctx, id); err != nil {
		t.Fatalf("Advance: %v", err)
	}

	result, err := svc.Finish(ctx, id)
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if result.AnsweredQuestions != 1 || result.UnansweredQuestions != 3 {
		t.Errorf("result = %+v, want 1 answered of 4", result)
	}
	if result.TimeExpired {
		t.Error("voluntary finish flagged as time expired")
	}
	if result.PercentageScore != 25 {
		t.Errorf("percentage = %d, want 25 over the full subset", result.PercentageScore)
	}
	if len(results.results) != 1 {
		t.Errorf("persisted %d results, want exactly 1", len(results.results))
	}
}

func TestQuizSessionEmptyQuiz(t *testing.T) {
	svc, _, _, results := newQuizFixture(serviceQuiz(0))

	id, status, err := svc.Start(context.Background(), "quiz-1", "user-1")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !status.Complete {
		t.Fatal("empty quiz session should start complete")
	}

	result, err := svc.Result(id)
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	if result.PercentageScore != 0 || result.Passed {
		t.Errorf("result = %+v, want 0%% not passed", result)
	}
	if len(results.results) != 1 {
		t.Errorf("persisted %d results, want 1", len(results.results))
	}
}

func TestQuizSessionAbandon(t *testing.T) {
	svc, learners, _, results := newQuizFixture(serviceQuiz(3))
	ctx := context.Background()

	id, _, err := svc.Start(ctx, "quiz-1", "user-1")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := svc.SubmitAnswer(ctx, id, "b"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if err := svc.Abandon(id); err != nil {
		t.Fatalf("Abandon: %v", err)
	}

	if len(results.results) != 0 {
		t.Errorf("abandon wrote %d results, want none", len(results.results))
	}
	if learners.saves != 0 {
		t.Errorf("abandon saved the learner profile %d times, want none", learners.saves)
	}
	if _, err := svc.Status(id); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Status after abandon err = %v, want ErrSessionNotFound", err)
	}
}

func TestQuizSessionDifficultyDrop(t *testing.T) {
	svc, learners, _, _ := newQuizFixture(serviceQuiz(4))
	ctx := context.Background()

	id, _, err := svc.Start(ctx, "quiz-1", "user-2")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	// Answer everything wrong and walk to the end.
	for i := 0; i < 4; i++ {
		if _, err := svc.SubmitAnswer(ctx, id, "a"); err != nil {
			t.Fatalf("SubmitAnswer %d: %v", i, err)
		}
		if _, err := svc.Advance(ctx, id); err != nil {
			t.Fatalf("Advance %d: %v", i, err)
		}
	}

	profile := learners.profiles["user-2"]
	if profile == nil || profile.DifficultyLevel != adaptive.LevelEasy {
		t.Errorf("learner profile = %+v, want difficulty lowered to easy", profile)
	}
}
