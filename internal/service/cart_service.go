package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ouissal-yahyouni/VeggieMarket/internal/domain/entity"
	"github.com/ouissal-yahyouni/VeggieMarket/internal/platform/logger"
	"github.com/ouissal-yahyouni/VeggieMarket/internal/repository"
)

const defaultCartTTL = 30 * 24 * time.Hour

var (
	ErrSessionRequired = errors.New("session id is required")
	ErrNilProduct      = errors.New("product is required")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
)

// CartEventPublisher is the notification side channel: events are published
// after a transition and never influence the cart state itself.
type CartEventPublisher interface {
	CartItemAdded(ctx context.Context, cart *entity.Cart, product *entity.Product, quantity int) error
	CartItemRemoved(ctx context.Context, cart *entity.Cart, productID int64) error
	CartQuantityUpdated(ctx context.Context, cart *entity.Cart, productID int64, quantity int) error
	CartCleared(ctx context.Context, cart *entity.Cart) error
}

type CartService interface {
	GetCart(ctx context.Context, sessionID string) (*entity.Cart, error)
	AddItem(ctx context.Context, sessionID string, product *entity.Product, quantity int) (*entity.Cart, error)
	UpdateItemQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (*entity.Cart, error)
	RemoveItem(ctx context.Context, sessionID string, productID int64) (*entity.Cart, error)
	ClearCart(ctx context.Context, sessionID string) (*entity.Cart, error)
}

// cartService owns every session cart in this process. A session's cart is
// loaded from the repository once, on first touch, and lives in memory from
// then on; every transition is written back to the repository afterwards.
// One mutex serializes all transitions, which gives the strict
// apply-in-dispatch-order guarantee the cart semantics assume.
type cartService struct {
	cartRepo repository.CartRepository
	events   CartEventPublisher
	log      logger.Logger
	cartTTL  time.Duration

	mu    sync.Mutex
	carts map[string]*entity.Cart
}

type CartServiceConfig struct {
	CartTTL time.Duration
}

// NewCartService wires the cart store. events may be nil when no notification
// channel is configured.
func NewCartService(
	cartRepo repository.CartRepository,
	events CartEventPublisher,
	log logger.Logger,
	cfg CartServiceConfig,
) CartService {
	cartTTL := cfg.CartTTL
	if cartTTL <= 0 {
		cartTTL = defaultCartTTL
	}
	return &cartService{
		cartRepo: cartRepo,
		events:   events,
		log:      log,
		cartTTL:  cartTTL,
		carts:    make(map[string]*entity.Cart),
	}
}

// getOrLoad returns the live cart for a session, loading it from the
// repository on first touch. Persisted items are replayed through AddItem so
// the total is re-derived by the normal transition path instead of trusting a
// stored value; entries without a product snapshot or with a non-positive
// quantity are dropped. A malformed stored value resets the session to an
// empty cart. Callers must hold s.mu.
func (s *cartService) getOrLoad(ctx context.Context, sessionID string) (*entity.Cart, error) {
	if cart, ok := s.carts[sessionID]; ok {
		return cart, nil
	}

	persisted, err := s.cartRepo.Load(ctx, sessionID)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrNotFound):
		persisted = nil
	case errors.Is(err, repository.ErrMalformedData):
		s.log.Warnf("Discarding malformed persisted cart for session %s: %v", sessionID, err)
		persisted = nil
	default:
		s.log.Errorf("Error loading cart for session %s: %v", sessionID, err)
		return nil, err
	}

	cart := entity.NewCart(sessionID)
	if persisted != nil {
		if persisted.ID != 0 {
			cart.ID = persisted.ID
		}
		if persisted.SessionID != "" {
			cart.SessionID = persisted.SessionID
		}
		cart.UserID = persisted.UserID
		if !persisted.CreatedAt.IsZero() {
			cart.CreatedAt = persisted.CreatedAt
		}
		for i := range persisted.Items {
			item := &persisted.Items[i]
			if item.Product != nil && item.Quantity > 0 {
				cart.AddItem(item.Product, item.Quantity)
			}
		}
	}

	s.carts[sessionID] = cart
	return cart, nil
}

// persist writes the cart back after a transition. Persistence is
// fire-and-forget: a failed save is logged and the in-memory transition
// stands.
func (s *cartService) persist(ctx context.Context, cart *entity.Cart) {
	if err := s.cartRepo.Save(ctx, cart, s.cartTTL); err != nil {
		s.log.Warnf("Failed to save cart for session %s: %v", cart.SessionID, err)
	}
}

func (s *cartService) GetCart(ctx context.Context, sessionID string) (*entity.Cart, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.getOrLoad(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return cart.Snapshot(), nil
}

func (s *cartService) AddItem(ctx context.Context, sessionID string, product *entity.Product, quantity int) (*entity.Cart, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}
	if product == nil {
		return nil, ErrNilProduct
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	s.mu.Lock()
	cart, err := s.getOrLoad(ctx, sessionID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	cart.AddItem(product, quantity)
	s.persist(ctx, cart)
	snapshot := cart.Snapshot()
	s.mu.Unlock()

	s.log.Infof("Added item to cart: session=%s product=%d quantity=%d", sessionID, product.ID, quantity)
	if s.events != nil {
		if err := s.events.CartItemAdded(ctx, snapshot, product, quantity); err != nil {
			s.log.Warnf("Failed to publish cart.item_added for session %s: %v", sessionID, err)
		}
	}
	return snapshot, nil
}

func (s *cartService) UpdateItemQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (*entity.Cart, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	s.mu.Lock()
	cart, err := s.getOrLoad(ctx, sessionID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	cart.UpdateItemQuantity(productID, quantity)
	s.persist(ctx, cart)
	snapshot := cart.Snapshot()
	s.mu.Unlock()

	s.log.Infof("Updated cart quantity: session=%s product=%d quantity=%d", sessionID, productID, quantity)
	if s.events != nil {
		if err := s.events.CartQuantityUpdated(ctx, snapshot, productID, quantity); err != nil {
			s.log.Warnf("Failed to publish cart.quantity_updated for session %s: %v", sessionID, err)
		}
	}
	return snapshot, nil
}

func (s *cartService) RemoveItem(ctx context.Context, sessionID string, productID int64) (*entity.Cart, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	s.mu.Lock()
	cart, err := s.getOrLoad(ctx, sessionID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	cart.RemoveItem(productID)
	s.persist(ctx, cart)
	snapshot := cart.Snapshot()
	s.mu.Unlock()

	s.log.Infof("Removed item from cart: session=%s product=%d", sessionID, productID)
	if s.events != nil {
		if err := s.events.CartItemRemoved(ctx, snapshot, productID); err != nil {
			s.log.Warnf("Failed to publish cart.item_removed for session %s: %v", sessionID, err)
		}
	}
	return snapshot, nil
}

func (s *cartService) ClearCart(ctx context.Context, sessionID string) (*entity.Cart, error) {
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	s.mu.Lock()
	cart, err := s.getOrLoad(ctx, sessionID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	cart.Clear()
	s.persist(ctx, cart)
	snapshot := cart.Snapshot()
	s.mu.Unlock()

	s.log.Infof("Cleared cart: session=%s", sessionID)
	if s.events != nil {
		if err := s.events.CartCleared(ctx, snapshot); err != nil {
			s.log.Warnf("Failed to publish cart.cleared for session %s: %v", sessionID, err)
		}
	}
	return snapshot, nil
}
