package service

import (
	"context"
	"errors"
	"sync"

	"studyhub-service/internal/models"
	"studyhub-service/internal/srs"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionInProgress = errors.New("session still in progress")
)

// StudyService runs flashcard study sessions. Sessions live only in
// memory (they are throwaway views over a deck); the deck itself is
// saved through the store after every recorded response. Each session
// is serialized behind its own lock.
type StudyService struct {
	Decks DeckStore

	mu       sync.Mutex
	sessions map[string]*studyRun
}

type studyRun struct {
	mu      sync.Mutex
	session *srs.Session
}

// StudyStatus is the presentation view of a session in flight.
type StudyStatus struct {
	SessionID   string       `json:"session_id"`
	DeckID      string       `json:"deck_id"`
	Position    int          `json:"position"`
	TotalCards  int          `json:"total_cards"`
	Known       int          `json:"known"`
	Unknown     int          `json:"unknown"`
	Complete    bool         `json:"complete"`
	CurrentCard *models.Card `json:"current_card,omitempty"`
}

func NewStudyService(decks DeckStore) *StudyService {
	return &StudyService{
		Decks:    decks,
		sessions: make(map[string]*studyRun),
	}
}

// StartSession loads a deck, shuffles it into a new session and saves
// the deck's bumped lastStudied timestamp.
func (s *StudyService) StartSession(ctx context.Context, deckID string) (string, *StudyStatus, error) {
	deck, err := s.Decks.FindByID(ctx, deckID)
	if err != nil {
		return "", nil, err
	}

	session := srs.NewSession(deck)
	if err := s.Decks.Save(ctx, deck); err != nil {
		return "", nil, err
	}

	id := uuid.NewString()
	run := &studyRun{session: session}

	s.mu.Lock()
	s.sessions[id] = run
	s.mu.Unlock()

	return id, statusOf(id, session), nil
}

func (s *StudyService) run(sessionID string) (*studyRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return run, nil
}

// Status returns the current card and progress counters.
func (s *StudyService) Status(sessionID string) (*StudyStatus, error) {
	run, err := s.run(sessionID)
	if err != nil {
		return nil, err
	}
	run.mu.Lock()
	defer run.mu.Unlock()
	return statusOf(sessionID, run.session), nil
}

// RecordResponse applies a known/unknown response to the current card
// and persists the deck before returning, so an applied response is
// never lost to an abrupt termination.
func (s *StudyService) RecordResponse(ctx context.Context, sessionID string, known bool) (*StudyStatus, error) {
	run, err := s.run(sessionID)
	if err != nil {
		return nil, err
	}

	run.mu.Lock()
	defer run.mu.Unlock()

	if _, err := run.session.RecordResponse(known); err != nil {
		return nil, err
	}
	if err := s.Decks.Save(ctx, run.session.Deck); err != nil {
		return nil, err
	}

	return statusOf(sessionID, run.session), nil
}

// Summary returns the end-of-session report. It is only available once
// the session is complete.
func (s *StudyService) Summary(sessionID string) (*srs.Summary, error) {
	run, err := s.run(sessionID)
	if err != nil {
		return nil, err
	}

	run.mu.Lock()
	defer run.mu.Unlock()

	if !run.session.Complete() {
		return nil, ErrSessionInProgress
	}
	summary := run.session.Summarize()
	return &summary, nil
}

// EndSession discards a session. Responses already recorded stay
// persisted; nothing else is written.
func (s *StudyService) EndSession(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

func statusOf(id string, session *srs.Session) *StudyStatus {
	return &StudyStatus{
		SessionID:   id,
		DeckID:      session.Deck.ID,
		Position:    session.Position(),
		TotalCards:  len(session.Deck.Cards),
		Known:       session.Known,
		Unknown:     session.Unknown,
		Complete:    session.Complete(),
		CurrentCard: session.CurrentCard(),
	}
}
