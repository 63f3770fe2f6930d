package sqlite

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/passtrack-app/passtrack/internal/domain/player"
)

type PlayerRepository struct {
	db *sqlx.DB
}

type playerTableModel struct {
	ID           int64     `db:"id"`
	PublicID     string    `db:"public_id"`
	Name         string    `db:"name"`
	JerseyNumber int       `db:"jersey_number"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	var rows []playerTableModel
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, public_id, name, jersey_number, created_at, updated_at FROM players ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "select players")
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	var row playerTableModel
	err := r.db.GetContext(ctx, &row,
		`SELECT id, public_id, name, jersey_number, created_at, updated_at FROM players WHERE public_id = ?`,
		playerID)
	if err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, errors.Wrap(err, "get player")
	}
	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (player.Player, error) {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO players (public_id, name, jersey_number, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.JerseyNumber, now, now)
	if err != nil {
		return player.Player{}, errors.Wrap(err, "insert player")
	}

	p.CreatedAt = now
	p.UpdatedAt = now
	return p, nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) (player.Player, bool, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE players SET name = ?, jersey_number = ?, updated_at = ? WHERE public_id = ?`,
		p.Name, p.JerseyNumber, now, p.ID)
	if err != nil {
		return player.Player{}, false, errors.Wrap(err, "update player")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return player.Player{}, false, errors.Wrap(err, "update player rows affected")
	}
	if affected == 0 {
		return player.Player{}, false, nil
	}

	updated, exists, err := r.GetByID(ctx, p.ID)
	if err != nil {
		return player.Player{}, false, err
	}
	return updated, exists, nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE public_id = ?`, playerID)
	if err != nil {
		return false, errors.Wrap(err, "delete player")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "delete player rows affected")
	}
	return affected > 0, nil
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:           row.PublicID,
		Name:         row.Name,
		JerseyNumber: row.JerseyNumber,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
