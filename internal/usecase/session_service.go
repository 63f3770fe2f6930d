package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/passtrack-app/passtrack/internal/domain/session"
	idgen "github.com/passtrack-app/passtrack/internal/platform/id"
)

// SessionService creates and looks up recording sessions. A scoring client
// creates one session per run; old sessions accumulate and are never
// deleted.
type SessionService struct {
	sessionRepo session.Repository
	idGen       idgen.Generator
}

func NewSessionService(sessionRepo session.Repository, idGen idgen.Generator) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		idGen:       idGen,
	}
}

func (s *SessionService) Create(ctx context.Context, name string) (session.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.Create")
	defer span.End()

	candidate := session.Session{Name: strings.TrimSpace(name)}
	if err := candidate.Validate(); err != nil {
		return session.Session{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	publicID, err := s.idGen.NewID()
	if err != nil {
		return session.Session{}, fmt.Errorf("generate session id: %w", err)
	}
	candidate.ID = publicID

	created, err := s.sessionRepo.Create(ctx, candidate)
	if err != nil {
		return session.Session{}, storageErr(err, "create session")
	}

	return created, nil
}

func (s *SessionService) List(ctx context.Context) ([]session.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.List")
	defer span.End()

	sessions, err := s.sessionRepo.List(ctx)
	if err != nil {
		return nil, storageErr(err, "list sessions")
	}

	return sessions, nil
}

func (s *SessionService) GetByID(ctx context.Context, sessionID string) (session.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.GetByID")
	defer span.End()

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return session.Session{}, invalidInput("session id is required")
	}

	item, exists, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return session.Session{}, storageErr(err, "get session")
	}
	if !exists {
		return session.Session{}, notFound("session=%s", sessionID)
	}

	return item, nil
}
