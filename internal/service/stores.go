package service

import (
	"context"

	"studyhub-service/internal/models"
)

// The scheduling services talk to persistence through these narrow
// stores. The mongo repositories satisfy them unchanged; tests swap in
// fakes. Mutating operations are called before control returns to the
// caller so an abrupt shutdown cannot lose an applied response.

type DeckStore interface {
	FindByID(ctx context.Context, id string) (*models.Deck, error)
	Save(ctx context.Context, deck *models.Deck) error
}

type QuizStore interface {
	FindByID(ctx context.Context, id string) (*models.Quiz, error)
}

type LearnerStore interface {
	FindByUser(ctx context.Context, userID string) (*models.LearnerProfile, error)
	Save(ctx context.Context, profile *models.LearnerProfile) error
}

type AnswerStore interface {
	Create(ctx context.Context, answer *models.QuizAnswer) error
}

type ResultStore interface {
	Create(ctx context.Context, result *models.QuizResult) error
}

type HabitStore interface {
	FindByUser(ctx context.Context, userID string) ([]models.Habit, error)
	FindByID(ctx context.Context, id string) (*models.Habit, error)
	Create(ctx context.Context, habit *models.Habit) error
	Save(ctx context.Context, habit *models.Habit) error
	Delete(ctx context.Context, id string) error
}
