package player

import "context"

// Repository describes player persistence needs from use cases.
// List returns players in insertion order.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	Create(ctx context.Context, p Player) (Player, error)
	Update(ctx context.Context, p Player) (Player, bool, error)
	Delete(ctx context.Context, playerID string) (bool, error)
}
