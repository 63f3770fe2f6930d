package postgres

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/passtrack-app/passtrack/internal/domain/session"
	qb "github.com/passtrack-app/passtrack/internal/platform/querybuilder"
)

type SessionRepository struct {
	db *sqlx.DB
}

type sessionTableModel struct {
	ID        int64     `db:"id"`
	PublicID  string    `db:"public_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

var sessionSelectColumns = []string{"id", "public_id", "name", "created_at"}

func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) List(ctx context.Context) ([]session.Session, error) {
	query, args, err := qb.Select(sessionSelectColumns...).From("sessions").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list sessions query")
	}

	var rows []sessionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select sessions")
	}

	out := make([]session.Session, 0, len(rows))
	for _, row := range rows {
		out = append(out, sessionFromRow(row))
	}
	return out, nil
}

func (r *SessionRepository) GetByID(ctx context.Context, sessionID string) (session.Session, bool, error) {
	query, args, err := qb.Select(sessionSelectColumns...).From("sessions").
		Where(qb.Eq("public_id", sessionID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return session.Session{}, false, errors.Wrap(err, "build get session query")
	}

	var row sessionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return session.Session{}, false, nil
		}
		return session.Session{}, false, errors.Wrap(err, "get session")
	}
	return sessionFromRow(row), true, nil
}

func (r *SessionRepository) Create(ctx context.Context, s session.Session) (session.Session, error) {
	query, args, err := qb.InsertInto("sessions").
		Columns("public_id", "name").
		Values(s.ID, s.Name).
		Suffix("RETURNING id, public_id, name, created_at").
		ToSQL()
	if err != nil {
		return session.Session{}, errors.Wrap(err, "build insert session query")
	}

	var row sessionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return session.Session{}, errors.Wrap(err, "insert session")
	}
	return sessionFromRow(row), nil
}

func sessionFromRow(row sessionTableModel) session.Session {
	return session.Session{
		ID:        row.PublicID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}
}
