package usecase

import (
	"context"
	"strings"

	"github.com/passtrack-app/passtrack/internal/domain/passing"
	"github.com/passtrack-app/passtrack/internal/domain/player"
	"github.com/passtrack-app/passtrack/internal/domain/session"
	idgen "github.com/passtrack-app/passtrack/internal/platform/id"
)

// PassingService records pass-rating events and serves the aggregates
// derived from them. Aggregates are always recomputed from stored events;
// nothing here is cached.
type PassingService struct {
	sessionRepo session.Repository
	playerRepo  player.Repository
	passingRepo passing.Repository
	idGen       idgen.Generator
}

func NewPassingService(
	sessionRepo session.Repository,
	playerRepo player.Repository,
	passingRepo passing.Repository,
	idGen idgen.Generator,
) *PassingService {
	return &PassingService{
		sessionRepo: sessionRepo,
		playerRepo:  playerRepo,
		passingRepo: passingRepo,
		idGen:       idGen,
	}
}

// RecordPass validates the rating before anything touches the store,
// inserts one server-stamped event, and returns it together with the
// freshly recomputed aggregate for that player within that session.
func (s *PassingService) RecordPass(ctx context.Context, sessionID, playerID string, rating int) (passing.Event, passing.PlayerAggregate, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PassingService.RecordPass")
	defer span.End()

	sessionID = strings.TrimSpace(sessionID)
	playerID = strings.TrimSpace(playerID)
	if sessionID == "" {
		return passing.Event{}, passing.PlayerAggregate{}, invalidInput("session id is required")
	}
	if playerID == "" {
		return passing.Event{}, passing.PlayerAggregate{}, invalidInput("player id is required")
	}
	if !passing.Rating(rating).Valid() {
		return passing.Event{}, passing.PlayerAggregate{}, invalidInput("rating must be between %d and %d, got %d", passing.MinRating, passing.MaxRating, rating)
	}

	if err := s.requireSession(ctx, sessionID); err != nil {
		return passing.Event{}, passing.PlayerAggregate{}, err
	}
	if err := s.requirePlayer(ctx, playerID); err != nil {
		return passing.Event{}, passing.PlayerAggregate{}, err
	}

	publicID, err := s.idGen.NewID()
	if err != nil {
		return passing.Event{}, passing.PlayerAggregate{}, storageErr(err, "generate pass event id")
	}

	event, err := s.passingRepo.Create(ctx, passing.Event{
		ID:        publicID,
		SessionID: sessionID,
		PlayerID:  playerID,
		Rating:    passing.Rating(rating),
	})
	if err != nil {
		return passing.Event{}, passing.PlayerAggregate{}, storageErr(err, "insert pass event")
	}

	aggregate, _, err := s.passingRepo.AggregateForPlayer(ctx, sessionID, playerID)
	if err != nil {
		return passing.Event{}, passing.PlayerAggregate{}, storageErr(err, "recompute player aggregate")
	}

	return event, aggregate, nil
}

// UndoLastPass deletes the single newest event for the pair in one
// conditional statement, so a concurrent insert cannot slip between the
// lookup and the delete. With no prior events it fails with ErrNotFound and
// changes nothing.
func (s *PassingService) UndoLastPass(ctx context.Context, sessionID, playerID string) (passing.Event, passing.PlayerAggregate, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PassingService.UndoLastPass")
	defer span.End()

	sessionID = strings.TrimSpace(sessionID)
	playerID = strings.TrimSpace(playerID)
	if sessionID == "" {
		return passing.Event{}, passing.PlayerAggregate{}, invalidInput("session id is required")
	}
	if playerID == "" {
		return passing.Event{}, passing.PlayerAggregate{}, invalidInput("player id is required")
	}

	removed, existed, err := s.passingRepo.DeleteLatest(ctx, sessionID, playerID)
	if err != nil {
		return passing.Event{}, passing.PlayerAggregate{}, storageErr(err, "delete latest pass event")
	}
	if !existed {
		return passing.Event{}, passing.PlayerAggregate{}, notFound("no passes to undo for session=%s player=%s", sessionID, playerID)
	}

	aggregate, _, err := s.passingRepo.AggregateForPlayer(ctx, sessionID, playerID)
	if err != nil {
		return passing.Event{}, passing.PlayerAggregate{}, storageErr(err, "recompute player aggregate")
	}

	return removed, aggregate, nil
}

// SessionStats returns one aggregate per registered player, zero-valued for
// players without events in the session.
func (s *PassingService) SessionStats(ctx context.Context, sessionID string) ([]passing.PlayerAggregate, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PassingService.SessionStats")
	defer span.End()

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, invalidInput("session id is required")
	}
	if err := s.requireSession(ctx, sessionID); err != nil {
		return nil, err
	}

	aggregates, err := s.passingRepo.AggregatesForSession(ctx, sessionID)
	if err != nil {
		return nil, storageErr(err, "aggregate session stats")
	}

	return aggregates, nil
}

// PlayerStats is the single-player variant of SessionStats.
func (s *PassingService) PlayerStats(ctx context.Context, sessionID, playerID string) (passing.PlayerAggregate, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PassingService.PlayerStats")
	defer span.End()

	sessionID = strings.TrimSpace(sessionID)
	playerID = strings.TrimSpace(playerID)
	if sessionID == "" {
		return passing.PlayerAggregate{}, invalidInput("session id is required")
	}
	if playerID == "" {
		return passing.PlayerAggregate{}, invalidInput("player id is required")
	}
	if err := s.requireSession(ctx, sessionID); err != nil {
		return passing.PlayerAggregate{}, err
	}

	aggregate, exists, err := s.passingRepo.AggregateForPlayer(ctx, sessionID, playerID)
	if err != nil {
		return passing.PlayerAggregate{}, storageErr(err, "aggregate player stats")
	}
	if !exists {
		return passing.PlayerAggregate{}, notFound("player=%s", playerID)
	}

	return aggregate, nil
}

func (s *PassingService) requireSession(ctx context.Context, sessionID string) error {
	_, exists, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return storageErr(err, "get session")
	}
	if !exists {
		return notFound("session=%s", sessionID)
	}
	return nil
}

func (s *PassingService) requirePlayer(ctx context.Context, playerID string) error {
	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return storageErr(err, "get player")
	}
	if !exists {
		return notFound("player=%s", playerID)
	}
	return nil
}
