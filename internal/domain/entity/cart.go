package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one line entry in a cart: a product snapshot paired with a
// quantity and the unit price captured when the item was added (or last
// merged). An item with quantity <= 0 must not exist; the transitions below
// remove it instead.
type CartItem struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"productId"`
	Product   *Product        `json:"product"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Cart is the session-scoped collection of selected products. Total is always
// recomputed as a full fold over the items, never adjusted incrementally, so
// it cannot drift from the item list.
type Cart struct {
	ID        int64           `json:"id"`
	SessionID string          `json:"sessionId"`
	UserID    *int64          `json:"userId,omitempty"`
	Items     []CartItem      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`

	// nextItemID only advances on append, so line ids stay unique within the
	// cart even after removals. It is deliberately not persisted: a reload
	// replays items through AddItem, which renumbers them from 1.
	nextItemID int64
}

func NewCart(sessionID string) *Cart {
	now := time.Now().UTC()
	return &Cart{
		ID:        1,
		SessionID: sessionID,
		Items:     make([]CartItem, 0),
		Total:     decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// GetItem returns the line item holding productID and its index, or (nil, -1).
func (c *Cart) GetItem(productID int64) (*CartItem, int) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i], i
		}
	}
	return nil, -1
}

// AddItem merges quantity into an existing line for the same product,
// re-stamping its unit price to the product's current price, or appends a new
// line with the next line id. The product snapshot of a merged line is kept.
func (c *Cart) AddItem(product *Product, quantity int) {
	item, _ := c.GetItem(product.ID)
	if item != nil {
		item.Quantity += quantity
		item.Price = product.Price
	} else {
		c.nextItemID++
		c.Items = append(c.Items, CartItem{
			ID:        c.nextItemID,
			ProductID: product.ID,
			Product:   product,
			Quantity:  quantity,
			Price:     product.Price,
		})
	}
	c.recompute()
}

// RemoveItem drops the line holding productID. Removing an absent product is
// a no-op, not an error.
func (c *Cart) RemoveItem(productID int64) {
	_, index := c.GetItem(productID)
	if index == -1 {
		return
	}
	c.Items = append(c.Items[:index], c.Items[index+1:]...)
	c.recompute()
}

// UpdateItemQuantity sets the quantity of the line holding productID.
// A quantity <= 0 behaves exactly like RemoveItem. Updating an absent product
// is a no-op.
func (c *Cart) UpdateItemQuantity(productID int64, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	item, _ := c.GetItem(productID)
	if item == nil {
		return
	}
	item.Quantity = quantity
	c.recompute()
}

// Clear empties the cart in place. Session and user identity are retained;
// the cart itself lives on for the rest of the session.
func (c *Cart) Clear() {
	c.Items = make([]CartItem, 0)
	c.recompute()
}

// ItemCount is the summed quantity across all lines (the nav badge number).
func (c *Cart) ItemCount() int {
	count := 0
	for i := range c.Items {
		count += c.Items[i].Quantity
	}
	return count
}

// Snapshot returns a copy whose item slice is detached from the live cart, so
// callers can hold it across later transitions.
func (c *Cart) Snapshot() *Cart {
	out := *c
	out.Items = make([]CartItem, len(c.Items))
	copy(out.Items, c.Items)
	return &out
}

func (c *Cart) recompute() {
	total := decimal.Zero
	for i := range c.Items {
		total = total.Add(c.Items[i].Price.Mul(decimal.NewFromInt(int64(c.Items[i].Quantity))))
	}
	c.Total = total
	c.UpdatedAt = time.Now().UTC()
}
