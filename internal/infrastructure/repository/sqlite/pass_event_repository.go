package sqlite

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/passtrack-app/passtrack/internal/domain/passing"
)

type PassEventRepository struct {
	db *sqlx.DB
}

type passEventTableModel struct {
	ID         int64     `db:"id"`
	PublicID   string    `db:"public_id"`
	SessionID  string    `db:"session_public_id"`
	PlayerID   string    `db:"player_public_id"`
	Rating     int       `db:"rating"`
	RecordedAt time.Time `db:"recorded_at"`
}

type aggregateRow struct {
	PlayerID      string  `db:"public_id"`
	Name          string  `db:"name"`
	JerseyNumber  int     `db:"jersey_number"`
	TotalPasses   int     `db:"total_passes"`
	AverageRating float64 `db:"average_rating"`
}

// Ties on recorded_at fall back to the highest insertion id, matching the
// postgres variant even though recorded_at here already carries Go-side
// sub-second precision.
const deleteLatestPassQuery = `
DELETE FROM pass_events
WHERE id = (
    SELECT id FROM pass_events
    WHERE session_public_id = ? AND player_public_id = ?
    ORDER BY recorded_at DESC, id DESC
    LIMIT 1
)
RETURNING id, public_id, session_public_id, player_public_id, rating, recorded_at`

const sessionAggregatesQuery = `
SELECT p.public_id,
       p.name,
       p.jersey_number,
       COUNT(pe.id) AS total_passes,
       COALESCE(AVG(pe.rating), 0) AS average_rating
FROM players p
LEFT JOIN pass_events pe
       ON pe.player_public_id = p.public_id
      AND pe.session_public_id = ?
GROUP BY p.id, p.public_id, p.name, p.jersey_number
ORDER BY p.id`

const playerAggregateQuery = `
SELECT p.public_id,
       p.name,
       p.jersey_number,
       COUNT(pe.id) AS total_passes,
       COALESCE(AVG(pe.rating), 0) AS average_rating
FROM players p
LEFT JOIN pass_events pe
       ON pe.player_public_id = p.public_id
      AND pe.session_public_id = ?
WHERE p.public_id = ?
GROUP BY p.id, p.public_id, p.name, p.jersey_number`

func NewPassEventRepository(db *sqlx.DB) *PassEventRepository {
	return &PassEventRepository{db: db}
}

func (r *PassEventRepository) Create(ctx context.Context, e passing.Event) (passing.Event, error) {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO pass_events (public_id, session_public_id, player_public_id, rating, recorded_at)
		 VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.SessionID, e.PlayerID, int(e.Rating), now)
	if err != nil {
		return passing.Event{}, errors.Wrap(err, "insert pass event")
	}

	e.RecordedAt = now
	return e, nil
}

func (r *PassEventRepository) DeleteLatest(ctx context.Context, sessionID, playerID string) (passing.Event, bool, error) {
	var row passEventTableModel
	if err := r.db.GetContext(ctx, &row, deleteLatestPassQuery, sessionID, playerID); err != nil {
		if isNotFound(err) {
			return passing.Event{}, false, nil
		}
		return passing.Event{}, false, errors.Wrap(err, "delete latest pass event")
	}
	return eventFromRow(row), true, nil
}

func (r *PassEventRepository) AggregateForPlayer(ctx context.Context, sessionID, playerID string) (passing.PlayerAggregate, bool, error) {
	var row aggregateRow
	if err := r.db.GetContext(ctx, &row, playerAggregateQuery, sessionID, playerID); err != nil {
		if isNotFound(err) {
			return passing.PlayerAggregate{}, false, nil
		}
		return passing.PlayerAggregate{}, false, errors.Wrap(err, "aggregate player stats")
	}
	return aggregateFromRow(row), true, nil
}

func (r *PassEventRepository) AggregatesForSession(ctx context.Context, sessionID string) ([]passing.PlayerAggregate, error) {
	var rows []aggregateRow
	if err := r.db.SelectContext(ctx, &rows, sessionAggregatesQuery, sessionID); err != nil {
		return nil, errors.Wrap(err, "aggregate session stats")
	}

	out := make([]passing.PlayerAggregate, 0, len(rows))
	for _, row := range rows {
		out = append(out, aggregateFromRow(row))
	}
	return out, nil
}

func eventFromRow(row passEventTableModel) passing.Event {
	return passing.Event{
		ID:         row.PublicID,
		SessionID:  row.SessionID,
		PlayerID:   row.PlayerID,
		Rating:     passing.Rating(row.Rating),
		RecordedAt: row.RecordedAt,
	}
}

func aggregateFromRow(row aggregateRow) passing.PlayerAggregate {
	return passing.PlayerAggregate{
		PlayerID:      row.PlayerID,
		Name:          row.Name,
		JerseyNumber:  row.JerseyNumber,
		TotalPasses:   row.TotalPasses,
		AverageRating: row.AverageRating,
	}
}
