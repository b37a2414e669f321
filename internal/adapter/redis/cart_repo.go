package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ouissal-yahyouni/VeggieMarket/internal/domain/entity"
	"github.com/ouissal-yahyouni/VeggieMarket/internal/repository"
	"github.com/redis/go-redis/v9"
)

const cartKeyPrefix = "cart:"

type cartRepository struct {
	client *redis.Client
}

func NewCartRepository(client *redis.Client) repository.CartRepository {
	return &cartRepository{
		client: client,
	}
}

func (r *cartRepository) cartKey(sessionID string) string {
	return cartKeyPrefix + sessionID
}

func (r *cartRepository) Load(ctx context.Context, sessionID string) (*entity.Cart, error) {
	key := r.cartKey(sessionID)
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cart for session %s from redis: %w", sessionID, err)
	}

	var cart entity.Cart
	if err := json.Unmarshal([]byte(val), &cart); err != nil {
		return nil, fmt.Errorf("cart for session %s: %w: %v", sessionID, repository.ErrMalformedData, err)
	}
	return &cart, nil
}

func (r *cartRepository) Save(ctx context.Context, cart *entity.Cart, ttl time.Duration) error {
	if cart == nil || cart.SessionID == "" {
		return errors.New("cannot save nil cart or cart with empty sessionID")
	}

	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart for session %s: %w", cart.SessionID, err)
	}

	key := r.cartKey(cart.SessionID)
	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart for session %s to redis: %w", cart.SessionID, err)
	}
	return nil
}

func (r *cartRepository) Delete(ctx context.Context, sessionID string) error {
	key := r.cartKey(sessionID)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete cart for session %s from redis: %w", sessionID, err)
	}
	return nil
}
