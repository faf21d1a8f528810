package cart

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"neonburro-api/internal/domain"
)

const keyPrefix = "neonburro-cart:"

type redisRepo struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedis builds a Repository storing each cart as a JSON blob under
// "neonburro-cart:<id>" with the given TTL.
func NewRedis(client *redis.Client, ttl time.Duration, logger *zap.Logger) Repository {
	return &redisRepo{client: client, ttl: ttl, logger: logger}
}

func cartKey(cartID string) string {
	return keyPrefix + cartID
}

func (r *redisRepo) Get(ctx context.Context, cartID string) (*domain.Cart, error) {
	data, err := r.client.Get(ctx, cartKey(cartID)).Bytes()
	if err == redis.Nil {
		return &domain.Cart{ID: cartID}, nil
	}
	if err != nil {
		return nil, err
	}

	cart, decodeErr := decodeCart(cartID, data)
	if decodeErr != nil {
		// Malformed persisted cart fails soft to empty rather than
		// breaking the session that owns it.
		r.logger.Warn("discarding corrupt cart payload",
			zap.String("cart_id", cartID),
			zap.Error(decodeErr),
		)
		return &domain.Cart{ID: cartID}, nil
	}
	return cart, nil
}

func (r *redisRepo) Save(ctx context.Context, cart *domain.Cart) error {
	cart.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, cartKey(cart.ID), data, r.ttl).Err()
}

func (r *redisRepo) Delete(ctx context.Context, cartID string) error {
	return r.client.Del(ctx, cartKey(cartID)).Err()
}

func decodeCart(cartID string, data []byte) (*domain.Cart, error) {
	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, err
	}
	cart.ID = cartID
	// Drop lines a previous version may have persisted in a shape the
	// current invariants reject.
	valid := cart.Lines[:0]
	for _, l := range cart.Lines {
		if l.ProductID == "" || l.Quantity < 1 {
			continue
		}
		if l.Key == "" {
			l.Key = domain.LineKey(l.ProductID, l.Size, l.Tier)
		}
		valid = append(valid, l)
	}
	cart.Lines = valid
	return &cart, nil
}
