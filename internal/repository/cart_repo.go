package repository

import (
	"context"
	"time"

	"github.com/ouissal-yahyouni/VeggieMarket/internal/domain/entity"
)

// CartRepository is the persistence adapter for session carts: one JSON value
// per session under a fixed key. Load returns ErrNotFound when nothing was
// saved for the session yet, and ErrMalformedData when the stored value does
// not decode.
type CartRepository interface {
	Load(ctx context.Context, sessionID string) (*entity.Cart, error)
	Save(ctx context.Context, cart *entity.Cart, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}
