package service

import (
	"context"
	"time"

	"studyhub-service/internal/models"
	"studyhub-service/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

type DeckService struct {
	Repo *repository.DeckRepository
}

func NewDeckService(repo *repository.DeckRepository) *DeckService {
	return &DeckService{Repo: repo}
}

func (s *DeckService) GetAllDecks(ctx context.Context) ([]models.Deck, error) {
	return s.Repo.FindAll(ctx)
}

func (s *DeckService) GetDeck(ctx context.Context, id string) (*models.Deck, error) {
	return s.Repo.FindByID(ctx, id)
}

// CreateDeck stores a new deck. Cards start at the lowest level with no
// review history.
func (s *DeckService) CreateDeck(ctx context.Context, deck *models.Deck) error {
	deck.ID = uuid.NewString()
	deck.CreatedAt = time.Now()
	for i := range deck.Cards {
		if deck.Cards[i].ID == "" {
			deck.Cards[i].ID = uuid.NewString()
		}
		deck.Cards[i].Level = 1
		deck.Cards[i].NextReview = nil
		deck.Cards[i].ReviewCount = 0
	}
	return s.Repo.Create(ctx, deck)
}

func (s *DeckService) UpdateDeck(ctx context.Context, id string, update map[string]interface{}) error {
	return s.Repo.Update(ctx, id, bson.M(update))
}

// AddCard appends a fresh card to a deck.
func (s *DeckService) AddCard(ctx context.Context, deckID string, card models.Card) (*models.Deck, error) {
	deck, err := s.Repo.FindByID(ctx, deckID)
	if err != nil {
		return nil, err
	}
	card.ID = uuid.NewString()
	card.Level = 1
	card.NextReview = nil
	card.ReviewCount = 0
	deck.Cards = append(deck.Cards, card)
	if err := s.Repo.Save(ctx, deck); err != nil {
		return nil, err
	}
	return deck, nil
}

func (s *DeckService) DeleteDeck(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
