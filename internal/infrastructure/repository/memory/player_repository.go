// Package memory holds mutex-guarded in-process implementations of the
// domain repositories. They back the service when no database is
// configured and double as test fixtures.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/passtrack-app/passtrack/internal/domain/player"
)

type PlayerRepository struct {
	mu    sync.RWMutex
	byID  map[string]player.Player
	order []string
}

func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{
		byID: make(map[string]player.Player),
	}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[playerID]
	return p, ok, nil
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) (player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.byID[p.ID] = p
	r.order = append(r.order, p.ID)
	return p, nil
}

func (r *PlayerRepository) Update(_ context.Context, p player.Player) (player.Player, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[p.ID]
	if !ok {
		return player.Player{}, false, nil
	}
	existing.Name = p.Name
	existing.JerseyNumber = p.JerseyNumber
	existing.UpdatedAt = time.Now().UTC()
	r.byID[p.ID] = existing
	return existing, true, nil
}

func (r *PlayerRepository) Delete(_ context.Context, playerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[playerID]; !ok {
		return false, nil
	}
	delete(r.byID, playerID)
	for i, id := range r.order {
		if id == playerID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}
