// Package storefront is the client side of the shop: a session-scoped cart,
// the checkout flow against the order API, and a local order history that
// keeps working when the API is unreachable.
package storefront

import (
	"errors"
	"sync"

	"github.com/sweetdelights/bakery/app/models"
)

// Per-item quantity bounds enforced by the cart.
const (
	MinQuantity = 1
	MaxQuantity = 3
)

// ErrMaxQuantity is returned when an Add would push a line past MaxQuantity.
// The increment is rejected whole, never partially applied.
var ErrMaxQuantity = errors.New("storefront: maximum quantity reached")

// Cart is the session-scoped shopping cart. Lines are unique by product name
// and keep their insertion order.
type Cart struct {
	mu    sync.Mutex
	items []models.OrderItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add merges qty into an existing line or appends a new one. New lines clamp
// the quantity into [MinQuantity, MaxQuantity].
func (c *Cart) Add(name string, price float64, qty int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Name == name {
			if c.items[i].Quantity+qty > MaxQuantity {
				return ErrMaxQuantity
			}
			c.items[i].Quantity += qty
			return nil
		}
	}
	c.items = append(c.items, models.OrderItem{
		Name:     name,
		Price:    price,
		Quantity: clampQuantity(qty),
	})
	return nil
}

// UpdateQuantity adjusts an existing line by delta, clamped to
// [MinQuantity, MaxQuantity]. Unknown names are ignored.
func (c *Cart) UpdateQuantity(name string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Name == name {
			c.items[i].Quantity = clampQuantity(c.items[i].Quantity + delta)
			return
		}
	}
}

// Remove deletes a line from the cart.
func (c *Cart) Remove(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Name == name {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []models.OrderItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.OrderItem, len(c.items))
	copy(out, c.items)
	return out
}

// Total is a pure projection: Σ price × quantity.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, it := range c.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items) == 0
}

func clampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}
