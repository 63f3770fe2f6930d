package passing

import (
	"fmt"
	"time"
)

// Rating grades one passing attempt. The scale is fixed: 0 is a miss, 3 is
// a perfect pass.
type Rating int

const (
	MinRating Rating = 0
	MaxRating Rating = 3
)

func (r Rating) Valid() bool {
	return r >= MinRating && r <= MaxRating
}

// Event is one recorded pass attempt. Events are append-only; the single
// newest event per (session, player) pair may be removed by undo, ordered
// by RecordedAt with insertion order breaking timestamp ties.
type Event struct {
	ID         string
	SessionID  string
	PlayerID   string
	Rating     Rating
	RecordedAt time.Time
}

func (e Event) Validate() error {
	if e.SessionID == "" {
		return fmt.Errorf("pass event session id is required")
	}
	if e.PlayerID == "" {
		return fmt.Errorf("pass event player id is required")
	}
	if !e.Rating.Valid() {
		return fmt.Errorf("pass rating must be between %d and %d", MinRating, MaxRating)
	}
	return nil
}

// PlayerAggregate is the derived (total, average) pair for one player
// within one session. It is recomputed from stored events on every read and
// never persisted. AverageRating is 0 when TotalPasses is 0.
type PlayerAggregate struct {
	PlayerID      string
	Name          string
	JerseyNumber  int
	TotalPasses   int
	AverageRating float64
}
