package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/passtrack-app/passtrack/internal/domain/player"
	idgen "github.com/passtrack-app/passtrack/internal/platform/id"
)

// PlayerService owns the player registry: add, rename, and remove team
// members that stats cards can be dealt from.
type PlayerService struct {
	playerRepo player.Repository
	idGen      idgen.Generator
}

func NewPlayerService(playerRepo player.Repository, idGen idgen.Generator) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		idGen:      idGen,
	}
}

func (s *PlayerService) List(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, storageErr(err, "list players")
	}

	return players, nil
}

func (s *PlayerService) Add(ctx context.Context, name string, jerseyNumber int) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Add")
	defer span.End()

	candidate := player.Player{
		Name:         strings.TrimSpace(name),
		JerseyNumber: jerseyNumber,
	}
	if err := candidate.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	publicID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}
	candidate.ID = publicID

	created, err := s.playerRepo.Create(ctx, candidate)
	if err != nil {
		return player.Player{}, storageErr(err, "create player")
	}

	return created, nil
}

func (s *PlayerService) Update(ctx context.Context, playerID, name string, jerseyNumber int) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, invalidInput("player id is required")
	}

	candidate := player.Player{
		ID:           playerID,
		Name:         strings.TrimSpace(name),
		JerseyNumber: jerseyNumber,
	}
	if err := candidate.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, exists, err := s.playerRepo.Update(ctx, candidate)
	if err != nil {
		return player.Player{}, storageErr(err, "update player")
	}
	if !exists {
		return player.Player{}, notFound("player=%s", playerID)
	}

	return updated, nil
}

// Delete is idempotent: removing an absent player is not an error, but the
// returned flag distinguishes a real deletion from a no-op so callers can
// report which one happened.
func (s *PlayerService) Delete(ctx context.Context, playerID string) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return false, invalidInput("player id is required")
	}

	deleted, err := s.playerRepo.Delete(ctx, playerID)
	if err != nil {
		return false, storageErr(err, "delete player")
	}

	return deleted, nil
}
