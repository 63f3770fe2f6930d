package memory

import (
	"context"
	"sync"
	"time"

	"github.com/passtrack-app/passtrack/internal/domain/passing"
)

type storedEvent struct {
	event passing.Event
	seq   int64
}

// PassEventRepository keeps events in insertion order. It reads the player
// registry to shape aggregates the same way the SQL backends do with their
// left join.
type PassEventRepository struct {
	mu      sync.RWMutex
	events  []storedEvent
	nextSeq int64
	players *PlayerRepository
}

func NewPassEventRepository(players *PlayerRepository) *PassEventRepository {
	return &PassEventRepository{players: players}
}

func (r *PassEventRepository) Create(_ context.Context, e passing.Event) (passing.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e.RecordedAt = time.Now().UTC()
	r.nextSeq++
	r.events = append(r.events, storedEvent{event: e, seq: r.nextSeq})
	return e, nil
}

func (r *PassEventRepository) DeleteLatest(_ context.Context, sessionID, playerID string) (passing.Event, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	latest := -1
	for i, stored := range r.events {
		if stored.event.SessionID != sessionID || stored.event.PlayerID != playerID {
			continue
		}
		if latest == -1 || newerThan(stored, r.events[latest]) {
			latest = i
		}
	}
	if latest == -1 {
		return passing.Event{}, false, nil
	}

	removed := r.events[latest].event
	r.events = append(r.events[:latest], r.events[latest+1:]...)
	return removed, true, nil
}

func (r *PassEventRepository) AggregateForPlayer(ctx context.Context, sessionID, playerID string) (passing.PlayerAggregate, bool, error) {
	p, exists, err := r.players.GetByID(ctx, playerID)
	if err != nil || !exists {
		return passing.PlayerAggregate{}, false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	agg := passing.PlayerAggregate{
		PlayerID:     p.ID,
		Name:         p.Name,
		JerseyNumber: p.JerseyNumber,
	}
	var sum float64
	for _, stored := range r.events {
		if stored.event.SessionID != sessionID || stored.event.PlayerID != playerID {
			continue
		}
		agg.TotalPasses++
		sum += float64(stored.event.Rating)
	}
	if agg.TotalPasses > 0 {
		agg.AverageRating = sum / float64(agg.TotalPasses)
	}
	return agg, true, nil
}

func (r *PassEventRepository) AggregatesForSession(ctx context.Context, sessionID string) ([]passing.PlayerAggregate, error) {
	players, err := r.players.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]passing.PlayerAggregate, 0, len(players))
	for _, p := range players {
		agg, _, err := r.AggregateForPlayer(ctx, sessionID, p.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, agg)
	}
	return out, nil
}

// newerThan orders events by timestamp, then by insertion sequence so undo
// stays deterministic when timestamps collide.
func newerThan(a, b storedEvent) bool {
	if !a.event.RecordedAt.Equal(b.event.RecordedAt) {
		return a.event.RecordedAt.After(b.event.RecordedAt)
	}
	return a.seq > b.seq
}
