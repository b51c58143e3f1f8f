package adaptive

import (
	"errors"
	"math"
	"time"

	"studyhub-service/internal/models"
)

var (
	ErrSessionComplete  = errors.New("quiz session already complete")
	ErrAlreadyAnswered  = errors.New("current question already answered")
	ErrNoAnswerRecorded = errors.New("no answer recorded for current question")
)

// Session is one quiz attempt over the active question subset selected
// for the learner's difficulty level. It is transient: answers and the
// final result are persisted by the caller, the session itself is not.
type Session struct {
	Quiz             *models.Quiz
	Questions        []models.Question
	position         int
	answeredCurrent  bool
	Answers          []models.QuizAnswer
	RemainingSeconds int
	questionElapsed  int
	TimeExpired      bool
	completed        bool
	StartedAt        time.Time
}

// NewSession starts a quiz attempt at the given difficulty level.
// An empty active subset yields a session that is immediately complete.
func NewSession(quiz *models.Quiz, level int) *Session {
	s := &Session{
		Quiz:             quiz,
		Questions:        ActiveQuestions(quiz.Questions, level),
		RemainingSeconds: quiz.TimeLimitSeconds,
		StartedAt:        time.Now(),
	}
	if len(s.Questions) == 0 {
		s.completed = true
	}
	return s
}

// Complete reports whether the session reached a terminal state, either
// by advancing past the last question or by timer expiry.
func (s *Session) Complete() bool {
	return s.completed
}

// Position returns the 0-based index of the current question.
func (s *Session) Position() int {
	return s.position
}

// CurrentQuestion returns the question at the session position, or nil
// when the session is complete.
func (s *Session) CurrentQuestion() *models.Question {
	if s.completed || s.position >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.position]
}

// SubmitAnswer records the learner's choice for the current question
// without advancing, so the caller can show correctness feedback first.
// The per-question clock is attached to the answer and reset.
func (s *Session) SubmitAnswer(optionID string) (*models.QuizAnswer, error) {
	if s.completed {
		return nil, ErrSessionComplete
	}
	if s.answeredCurrent {
		return nil, ErrAlreadyAnswered
	}

	question := s.Questions[s.position]
	answer := models.QuizAnswer{
		QuestionID:         question.ID,
		SelectedOption:     optionID,
		IsCorrect:          optionID == question.CorrectAnswer,
		TimeSpentSeconds:   s.questionElapsed,
		QuestionDifficulty: question.Difficulty,
		AnsweredAt:         time.Now(),
	}
	s.Answers = append(s.Answers, answer)
	s.answeredCurrent = true
	s.questionElapsed = 0

	return &s.Answers[len(s.Answers)-1], nil
}

// Advance moves to the next question. The current question must have an
// answer first; a question can only be left behind by timer expiry or an
// early Finish, never skipped. Moving past the last question completes
// the session.
func (s *Session) Advance() error {
	if s.completed {
		return ErrSessionComplete
	}
	if !s.answeredCurrent {
		return ErrNoAnswerRecorded
	}
	s.position++
	s.answeredCurrent = false
	if s.position >= len(s.Questions) {
		s.completed = true
	}
	return nil
}

// Tick advances the countdown by one second of wall-clock time and
// returns true when this tick expired the timer. Ticks arriving after
// completion are no-ops, so expiry fires at most once.
func (s *Session) Tick() bool {
	if s.completed {
		return false
	}
	s.RemainingSeconds--
	s.questionElapsed++
	if s.RemainingSeconds <= 0 {
		s.RemainingSeconds = 0
		s.TimeExpired = true
		s.completed = true
		return true
	}
	return false
}

// Finish completes the session early without the time-expired flag,
// for a learner who submits before reaching the last question.
func (s *Session) Finish() {
	s.completed = true
}

// Result scores the attempt. The percentage is computed over the whole
// active subset, not just answered questions, and is defined as 0 for an
// empty subset.
func (s *Session) Result() models.QuizResult {
	total := len(s.Questions)
	answered := len(s.Answers)

	correct := 0
	breakdown := models.DifficultyBreakdown{}
	for _, a := range s.Answers {
		if !a.IsCorrect {
			continue
		}
		correct++
		switch a.QuestionDifficulty {
		case models.TierEasy:
			breakdown.Easy++
		case models.TierMedium:
			breakdown.Medium++
		default:
			breakdown.Hard++
		}
	}

	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(correct) / float64(total) * 100))
	}

	return models.QuizResult{
		QuizID:              s.Quiz.ID,
		TotalQuestions:      total,
		AnsweredQuestions:   answered,
		CorrectAnswers:      correct,
		IncorrectAnswers:    answered - correct,
		UnansweredQuestions: total - answered,
		PercentageScore:     percentage,
		Passed:              percentage >= s.Quiz.PassingScore,
		TimeSpentSeconds:    s.Quiz.TimeLimitSeconds - s.RemainingSeconds,
		TimeExpired:         s.TimeExpired,
		DifficultyBreakdown: breakdown,
		CreatedAt:           time.Now(),
	}
}
