package order

import (
	"context"

	"neonburro-api/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByNumber(ctx context.Context, number string) (*domain.Order, error)
	GetByPaymentIntent(ctx context.Context, intentID string) (*domain.Order, error)
}
