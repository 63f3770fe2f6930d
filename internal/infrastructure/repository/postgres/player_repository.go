package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/passtrack-app/passtrack/internal/domain/player"
	qb "github.com/passtrack-app/passtrack/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"id",
	"public_id",
	"name",
	"jersey_number",
	"created_at",
	"updated_at",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list players query")
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select players")
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("public_id", playerID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, errors.Wrap(err, "build get player query")
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, errors.Wrap(err, "get player")
	}
	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (player.Player, error) {
	query, args, err := qb.InsertInto("players").
		Columns("public_id", "name", "jersey_number").
		Values(p.ID, p.Name, p.JerseyNumber).
		Suffix("RETURNING id, public_id, name, jersey_number, created_at, updated_at").
		ToSQL()
	if err != nil {
		return player.Player{}, errors.Wrap(err, "build insert player query")
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return player.Player{}, errors.Wrap(err, "insert player")
	}
	return playerFromRow(row), nil
}

const updatePlayerQuery = `
UPDATE players
SET name = $1, jersey_number = $2, updated_at = now()
WHERE public_id = $3
RETURNING id, public_id, name, jersey_number, created_at, updated_at`

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) (player.Player, bool, error) {
	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, updatePlayerQuery, p.Name, p.JerseyNumber, p.ID); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, errors.Wrap(err, "update player")
	}
	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) (bool, error) {
	query, args, err := qb.DeleteFrom("players").
		Where(qb.Eq("public_id", playerID)).
		ToSQL()
	if err != nil {
		return false, errors.Wrap(err, "build delete player query")
	}

	res, err := r.db.ExecContext(ctx, query, args...)
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
