package session

import "context"

// Repository describes session persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Session, error)
	GetByID(ctx context.Context, sessionID string) (Session, bool, error)
	Create(ctx context.Context, s Session) (Session, error)
}
