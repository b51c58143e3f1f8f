package service

import (
	"context"
	"log"
	"sync"
	"time"

	"studyhub-service/internal/adaptive"
	"studyhub-service/internal/models"

	"github.com/google/uuid"
)

// QuizSessionService runs adaptive quiz attempts. A session is held in
// memory with a per-session lock and a 1 Hz countdown goroutine; timer
// expiry and advancing past the last question both finalize the attempt
// exactly once, which is the only point where the learner's difficulty
// level moves.
type QuizSessionService struct {
	Quizzes  QuizStore
	Learners LearnerStore
	Answers  AnswerStore
	Results  ResultStore

	mu       sync.Mutex
	sessions map[string]*quizRun
}

type quizRun struct {
	mu        sync.Mutex
	userID    string
	level     int
	session   *adaptive.Session
	stop      chan struct{}
	finalized bool
	result    *models.QuizResult
}

// QuizStatus is the presentation view of a quiz attempt in flight. The
// current question is exposed without its correct answer or explanation;
// those come back on the answer feedback and the final result.
type QuizStatus struct {
	SessionID        string           `json:"session_id"`
	QuizID           string           `json:"quiz_id"`
	Position         int              `json:"position"`
	TotalQuestions   int              `json:"total_questions"`
	Answered         int              `json:"answered"`
	RemainingSeconds int              `json:"remaining_seconds"`
	DifficultyLevel  int              `json:"difficulty_level"`
	Difficulty       string           `json:"difficulty"`
	Complete         bool             `json:"complete"`
	TimeExpired      bool             `json:"time_expired"`
	CurrentQuestion  *QuestionPreview `json:"current_question,omitempty"`
}

type QuestionPreview struct {
	ID         string          `json:"id"`
	Text       string          `json:"text"`
	Difficulty int             `json:"difficulty"`
	Options    []models.Option `json:"options"`
}

// AnswerFeedback is returned right after a submission so the caller can
// show correctness before advancing.
type AnswerFeedback struct {
	QuestionID     string `json:"question_id"`
	SelectedOption string `json:"selected_option"`
	IsCorrect      bool   `json:"is_correct"`
	CorrectOption  string `json:"correct_option"`
	Explanation    string `json:"explanation"`
}

func NewQuizSessionService(quizzes QuizStore, learners LearnerStore, answers AnswerStore, results ResultStore) *QuizSessionService {
	return &QuizSessionService{
		Quizzes:  quizzes,
		Learners: learners,
		Answers:  answers,
		Results:  results,
		sessions: make(map[string]*quizRun),
	}
}

// Start loads the quiz and the learner's difficulty level, selects the
// active question subset and starts the countdown.
func (s *QuizSessionService) Start(ctx context.Context, quizID, userID string) (string, *QuizStatus, error) {
	quiz, err := s.Quizzes.FindByID(ctx, quizID)
	if err != nil {
		return "", nil, err
	}
	profile, err := s.Learners.FindByUser(ctx, userID)
	if err != nil {
		return "", nil, err
	}
	level := adaptive.ClampLevel(profile.DifficultyLevel)

	session := adaptive.NewSession(quiz, level)
	id := uuid.NewString()
	run := &quizRun{
		userID:  userID,
		level:   level,
		session: session,
		stop:    make(chan struct{}),
	}

	s.mu.Lock()
	s.sessions[id] = run
	s.mu.Unlock()

	if session.Complete() {
		// Empty active subset: nothing to ask, score it right away.
		s.finalizeRun(ctx, id, run)
	} else if quiz.TimeLimitSeconds > 0 {
		go s.countdown(id, run)
	}

	return id, s.statusOf(id, run), nil
}

// countdown drives the session clock once per second of wall-clock time
// until the session ends or is abandoned.
func (s *QuizSessionService) countdown(id string, run *quizRun) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-run.stop:
			return
		case <-ticker.C:
			run.mu.Lock()
			expired := run.session.Tick()
			done := run.session.Complete()
			run.mu.Unlock()

			if expired {
				s.finalizeRun(context.Background(), id, run)
			}
			if done {
				return
			}
		}
	}
}

func (s *QuizSessionService) run(sessionID string) (*quizRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return run, nil
}

// Status returns progress, remaining time and the current question.
func (s *QuizSessionService) Status(sessionID string) (*QuizStatus, error) {
	run, err := s.run(sessionID)
	if err != nil {
		return nil, err
	}
	return s.statusOf(sessionID, run), nil
}

// SubmitAnswer records the learner's choice for the current question and
// persists the answer before returning. The session does not advance;
// the caller shows feedback first and then calls Advance.
func (s *QuizSessionService) SubmitAnswer(ctx context.Context, sessionID, optionID string) (*AnswerFeedback, error) {
	run, err := s.run(sessionID)
	if err != nil {
		return nil, err
	}

	run.mu.Lock()
	defer run.mu.Unlock()

	question := run.session.CurrentQuestion()
	answer, err := run.session.SubmitAnswer(optionID)
	if err != nil {
		return nil, err
	}
	answer.ID = uuid.NewString()
	answer.SessionID = sessionID

	if err := s.Answers.Create(ctx, answer); err != nil {
		return nil, err
	}

	return &AnswerFeedback{
		QuestionID:     answer.QuestionID,
		SelectedOption: answer.SelectedOption,
		IsCorrect:      answer.IsCorrect,
		CorrectOption:  question.CorrectAnswer,
		Explanation:    question.Explanation,
	}, nil
}

// Advance moves to the next question. Stepping past the last question
// completes and finalizes the attempt.
func (s *QuizSessionService) Advance(ctx context.Context, sessionID string) (*QuizStatus, error) {
	run, err := s.run(sessionID)
	if err != nil {
		return nil, err
	}

	run.mu.Lock()
	advanceErr := run.session.Advance()
	done := run.session.Complete()
	run.mu.Unlock()

	if advanceErr != nil {
		return nil, advanceErr
	}
	if done {
		s.finalizeRun(ctx, sessionID, run)
	}
	return s.statusOf(sessionID, run), nil
}

// Finish ends the attempt early at the learner's request and returns the
// scored result.
func (s *QuizSessionService) Finish(ctx context.Context, sessionID string) (*models.QuizResult, error) {
	run, err := s.run(sessionID)
	if err != nil {
		return nil, err
	}

	run.mu.Lock()
	run.session.Finish()
	run.mu.Unlock()

	s.finalizeRun(ctx, sessionID, run)
	return s.Result(sessionID)
}

// Result returns the final scored result of a completed attempt.
func (s *QuizSessionService) Result(sessionID string) (*models.QuizResult, error) {
	run, err := s.run(sessionID)
	if err != nil {
		return nil, err
	}

	run.mu.Lock()
	defer run.mu.Unlock()
	if !run.finalized {
		return nil, ErrSessionInProgress
	}
	return run.result, nil
}

// Abandon discards a session: the timer stops and nothing further is
// written. Answers persisted at submit time stay.
func (s *QuizSessionService) Abandon(sessionID string) error {
	s.mu.Lock()
	run, ok := s.sessions[sessionID]
	if ok {
		delete(s.sessions, sessionID)
	}
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	run.mu.Lock()
	defer run.mu.Unlock()
	if !run.finalized {
		// Mark terminal so a racing timer expiry cannot score the
		// attempt or close the stop channel a second time.
		run.finalized = true
		close(run.stop)
	}
	return nil
}

// finalizeRun scores the attempt, adjusts the learner's difficulty and
// persists both. Guarded so that timer expiry and an advance racing each
// other score exactly once.
func (s *QuizSessionService) finalizeRun(ctx context.Context, sessionID string, run *quizRun) {
	run.mu.Lock()
	defer run.mu.Unlock()

	if run.finalized {
		return
	}
	run.finalized = true
	close(run.stop)

	result := run.session.Result()
	result.ID = uuid.NewString()
	result.SessionID = sessionID
	result.UserID = run.userID
	run.result = &result

	profile, err := s.Learners.FindByUser(ctx, run.userID)
	if err != nil {
		log.Printf("quiz session %s: loading learner profile failed: %v", sessionID, err)
	} else {
		profile.DifficultyLevel = adaptive.AdjustLevel(run.level, result.PercentageScore)
		profile.QuizzesTaken++
		profile.UpdatedAt = time.Now()
		if err := s.Learners.Save(ctx, profile); err != nil {
			log.Printf("quiz session %s: saving learner difficulty failed: %v", sessionID, err)
		}
	}

	if err := s.Results.Create(ctx, &result); err != nil {
		log.Printf("quiz session %s: saving result failed: %v", sessionID, err)
	}
}

func (s *QuizSessionService) statusOf(id string, run *quizRun) *QuizStatus {
	run.mu.Lock()
	defer run.mu.Unlock()

	status := &QuizStatus{
		SessionID:        id,
		QuizID:           run.session.Quiz.ID,
		Position:         run.session.Position(),
		TotalQuestions:   len(run.session.Questions),
		Answered:         len(run.session.Answers),
		RemainingSeconds: run.session.RemainingSeconds,
		DifficultyLevel:  run.level,
		Difficulty:       models.DifficultyName(run.level),
		Complete:         run.session.Complete(),
		TimeExpired:      run.session.TimeExpired,
	}
	if q := run.session.CurrentQuestion(); q != nil {
		status.CurrentQuestion = &QuestionPreview{
			ID:         q.ID,
			Text:       q.Text,
			Difficulty: q.Difficulty,
			Options:    q.Options,
		}
	}
	return status
}
