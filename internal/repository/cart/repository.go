package cart

import (
	"context"

	"neonburro-api/internal/domain"
)

// Repository persists whole carts keyed by cart id. Get never fails on a
// corrupt stored payload: the cart degrades to empty instead of blocking
// the storefront at load.
type Repository interface {
	Get(ctx context.Context, cartID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, cartID string) error
}
