package srs

import (
	"errors"
	"math"
	"time"

	"studyhub-service/internal/models"
	"studyhub-service/internal/selection"
)

var ErrSessionComplete = errors.New("study session already complete")

// Session is one pass through a deck. The presentation order is a
// shuffled permutation of the deck's cards, fixed for the session.
// Sessions are transient; only the card mutations they apply outlive them.
type Session struct {
	Deck      *models.Deck
	order     []*models.Card
	position  int
	Known     int
	Unknown   int
	StartedAt time.Time
	EndedAt   *time.Time
}

// Summary is the end-of-session report shown to the learner.
type Summary struct {
	DeckID          string `json:"deck_id"`
	DeckTitle       string `json:"deck_title"`
	TotalCards      int    `json:"total_cards"`
	Known           int    `json:"known"`
	Unknown         int    `json:"unknown"`
	DurationSeconds int    `json:"duration_seconds"`
	SuccessRate     int    `json:"success_rate"`
}

// NewSession starts studying a deck. The deck's lastStudied timestamp is
// bumped as a side effect. An empty deck yields a session that is
// immediately complete.
func NewSession(deck *models.Deck) *Session {
	now := time.Now()
	deck.LastStudied = &now

	order := make([]*models.Card, len(deck.Cards))
	for i := range deck.Cards {
		order[i] = &deck.Cards[i]
	}
	selection.Shuffle(order)

	return &Session{
		Deck:      deck,
		order:     order,
		StartedAt: now,
	}
}

// Complete reports whether every card has been answered. The terminal
// transition is observed here rather than eagerly in RecordResponse, so
// the end timestamp is stamped on first observation.
func (s *Session) Complete() bool {
	if s.position < len(s.order) {
		return false
	}
	if s.EndedAt == nil {
		now := time.Now()
		s.EndedAt = &now
	}
	return true
}

// CurrentCard returns the card at the session position, or nil when the
// session is complete.
func (s *Session) CurrentCard() *models.Card {
	if s.Complete() {
		return nil
	}
	return s.order[s.position]
}

// Position returns the 0-based index of the current card.
func (s *Session) Position() int {
	return s.position
}

// RecordResponse applies the learner's binary self-assessment to the
// current card and advances the session. The card mutation, the session
// counters and the position all move together; a response is never half
// recorded.
func (s *Session) RecordResponse(known bool) (*models.Card, error) {
	if s.Complete() {
		return nil, ErrSessionComplete
	}

	card := s.order[s.position]
	ApplyReview(card, known, time.Now())
	if known {
		s.Known++
	} else {
		s.Unknown++
	}
	s.position++

	return card, nil
}

// Summarize builds the end-of-session report. Success rate is the known
// share rounded to the nearest percent, defined as 0 for an empty deck.
func (s *Session) Summarize() Summary {
	total := len(s.order)
	rate := 0
	if total > 0 {
		rate = int(math.Round(float64(s.Known) / float64(total) * 100))
	}

	end := time.Now()
	if s.EndedAt != nil {
		end = *s.EndedAt
	}

	return Summary{
		DeckID:          s.Deck.ID,
		DeckTitle:       s.Deck.Title,
		TotalCards:      total,
		Known:           s.Known,
		Unknown:         s.Unknown,
		DurationSeconds: int(end.Sub(s.StartedAt).Seconds()),
		SuccessRate:     rate,
	}
}
