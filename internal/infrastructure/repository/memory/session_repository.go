package memory

import (
	"context"
	"sync"
	"time"

	"github.com/passtrack-app/passtrack/internal/domain/session"
)

type SessionRepository struct {
	mu    sync.RWMutex
	byID  map[string]session.Session
	order []string
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		byID: make(map[string]session.Session),
	}
}

func (r *SessionRepository) List(_ context.Context) ([]session.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]session.Session, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *SessionRepository) GetByID(_ context.Context, sessionID string) (session.Session, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[sessionID]
	return s, ok, nil
}

func (r *SessionRepository) Create(_ context.Context, s session.Session) (session.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.CreatedAt = time.Now().UTC()
	r.byID[s.ID] = s
	r.order = append(r.order, s.ID)
	return s, nil
}
