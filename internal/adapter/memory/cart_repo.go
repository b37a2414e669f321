package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ouissal-yahyouni/VeggieMarket/internal/domain/entity"
	"github.com/ouissal-yahyouni/VeggieMarket/internal/repository"
)

// cartRepository keeps serialized carts in process memory. It stores the same
// JSON bytes the redis adapter would, so load/save round-trips exercise the
// full codec path. TTLs are ignored; entries live until deleted.
type cartRepository struct {
	mu    sync.RWMutex
	store map[string][]byte
}

func NewCartRepository() repository.CartRepository {
	return &cartRepository{
		store: make(map[string][]byte),
	}
}

func (r *cartRepository) Load(ctx context.Context, sessionID string) (*entity.Cart, error) {
	r.mu.RLock()
	data, ok := r.store[sessionID]
	r.mu.RUnlock()
	if !ok {
		return nil, repository.ErrNotFound
	}

	var cart entity.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("cart for session %s: %w: %v", sessionID, repository.ErrMalformedData, err)
	}
	return &cart, nil
}

func (r *cartRepository) Save(ctx context.Context, cart *entity.Cart, _ time.Duration) error {
	if cart == nil || cart.SessionID == "" {
		return fmt.Errorf("cannot save nil cart or cart with empty sessionID")
	}

	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart for session %s: %w", cart.SessionID, err)
	}

	r.mu.Lock()
	r.store[cart.SessionID] = data
	r.mu.Unlock()
	return nil
}

func (r *cartRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	delete(r.store, sessionID)
	r.mu.Unlock()
	return nil
}

// SeedRaw plants an arbitrary payload under a session key, bypassing the
// marshal path. Tests use it to simulate foreign or corrupted stored values.
func SeedRaw(repo repository.CartRepository, sessionID string, data []byte) {
	r, ok := repo.(*cartRepository)
	if !ok {
		return
	}
	r.mu.Lock()
	r.store[sessionID] = data
	r.mu.Unlock()
}
