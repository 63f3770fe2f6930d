package passing

import "context"

// Repository describes pass-event persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, e Event) (Event, error)

	// DeleteLatest removes the chronologically last event for the pair,
	// breaking timestamp ties by highest insertion order. The bool reports
	// whether an event existed to delete.
	DeleteLatest(ctx context.Context, sessionID, playerID string) (Event, bool, error)

	// AggregateForPlayer recomputes the aggregate for one registered player
	// within a session. It returns a zero-valued aggregate when the player
	// has no events in the session; the bool is false when the player is
	// not registered at all.
	AggregateForPlayer(ctx context.Context, sessionID, playerID string) (PlayerAggregate, bool, error)

	// AggregatesForSession returns one aggregate per registered player in
	// insertion order, zero-valued for players without events in the
	// session.
	AggregatesForSession(ctx context.Context, sessionID string) ([]PlayerAggregate, error)
}
