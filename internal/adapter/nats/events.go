package nats

import (
	"context"
	"time"

	"github.com/ouissal-yahyouni/VeggieMarket/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Subjects for the cart notification side channel. The storefront UI listens
// to these to show its toasts; nothing in the cart flow depends on them being
// delivered.
const (
	SubjectCartItemAdded       = "cart.item_added"
	SubjectCartItemRemoved     = "cart.item_removed"
	SubjectCartQuantityUpdated = "cart.quantity_updated"
	SubjectCartCleared         = "cart.cleared"
)

type cartEventPayload struct {
	SessionID   string          `json:"sessionId"`
	ProductID   int64           `json:"productId,omitempty"`
	ProductName string          `json:"productName,omitempty"`
	Quantity    int             `json:"quantity,omitempty"`
	Total       decimal.Decimal `json:"total"`
	ItemCount   int             `json:"itemCount"`
	OccurredAt  time.Time       `json:"occurredAt"`
}

// CartEventsPublisher adapts the generic MessagePublisher to the typed event
// interface the cart service expects.
type CartEventsPublisher struct {
	pub MessagePublisher
}

func NewCartEventsPublisher(pub MessagePublisher) *CartEventsPublisher {
	return &CartEventsPublisher{pub: pub}
}

func (p *CartEventsPublisher) CartItemAdded(ctx context.Context, cart *entity.Cart, product *entity.Product, quantity int) error {
	return p.pub.Publish(ctx, SubjectCartItemAdded, cartEventPayload{
		SessionID:   cart.SessionID,
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
		Total:       cart.Total,
		ItemCount:   cart.ItemCount(),
		OccurredAt:  time.Now().UTC(),
	})
}

func (p *CartEventsPublisher) CartItemRemoved(ctx context.Context, cart *entity.Cart, productID int64) error {
	return p.pub.Publish(ctx, SubjectCartItemRemoved, cartEventPayload{
		SessionID:  cart.SessionID,
		ProductID:  productID,
		Total:      cart.Total,
		ItemCount:  cart.ItemCount(),
		OccurredAt: time.Now().UTC(),
	})
}

func (p *CartEventsPublisher) CartQuantityUpdated(ctx context.Context, cart *entity.Cart, productID int64, quantity int) error {
	return p.pub.Publish(ctx, SubjectCartQuantityUpdated, cartEventPayload{
		SessionID:  cart.SessionID,
		ProductID:  productID,
		Quantity:   quantity,
		Total:      cart.Total,
		ItemCount:  cart.ItemCount(),
		OccurredAt: time.Now().UTC(),
	})
}

func (p *CartEventsPublisher) CartCleared(ctx context.Context, cart *entity.Cart) error {
	return p.pub.Publish(ctx, SubjectCartCleared, cartEventPayload{
		SessionID:  cart.SessionID,
		Total:      cart.Total,
		ItemCount:  cart.ItemCount(),
		OccurredAt: time.Now().UTC(),
	})
}
