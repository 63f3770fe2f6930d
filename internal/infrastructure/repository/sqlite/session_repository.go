package sqlite

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/passtrack-app/passtrack/internal/domain/session"
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

func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) List(ctx context.Context) ([]session.Session, error) {
	var rows []sessionTableModel
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, public_id, name, created_at FROM sessions ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "select sessions")
	}

	out := make([]session.Session, 0, len(rows))
	for _, row := range rows {
		out = append(out, sessionFromRow(row))
	}
	return out, nil
}

func (r *SessionRepository) GetByID(ctx context.Context, sessionID string) (session.Session, bool, error) {
	var row sessionTableModel
	err := r.db.GetContext(ctx, &row,
		`SELECT id, public_id, name, created_at FROM sessions WHERE public_id = ?`,
		sessionID)
	if err != nil {
		if isNotFound(err) {
			return session.Session{}, false, nil
		}
		return session.Session{}, false, errors.Wrap(err, "get session")
	}
	return sessionFromRow(row), true, nil
}

func (r *SessionRepository) Create(ctx context.Context, s session.Session) (session.Session, error) {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (public_id, name, created_at) VALUES (?, ?, ?)`,
		s.ID, s.Name, now)
	if err != nil {
		return session.Session{}, errors.Wrap(err, "insert session")
	}

	s.CreatedAt = now
	return s, nil
}

func sessionFromRow(row sessionTableModel) session.Session {
	return session.Session{
		ID:        row.PublicID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}
}
