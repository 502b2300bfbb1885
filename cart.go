package main

import "sync"

// CartStore holds the shopping cart: an ordered list of product and
// quantity pairs, unique per product id, first-added-first. The cart
// is deliberately session-only and never persisted, so a restart
// always comes up empty.
type CartStore struct {
	mu    sync.Mutex
	items []CartItem
}

func NewCartStore() *CartStore {
	return &CartStore{}
}

// AddToCart appends the product, or bumps the quantity if it is
// already in the cart. Quantity defaults to 1 when qty < 1.
func (c *CartStore) AddToCart(product Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Product.ID == product.ID {
			c.items[i].Quantity += qty
			return
		}
	}
	c.items = append(c.items, CartItem{Product: product, Quantity: qty})
}

// RemoveFromCart drops the entry unconditionally; unknown ids are a
// no-op.
func (c *CartStore) RemoveFromCart(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity exactly; qty <= 0 removes the
// entry. Unknown ids are a no-op.
func (c *CartStore) UpdateQuantity(productID string, qty int) {
	if qty <= 0 {
		c.RemoveFromCart(productID)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = qty
			return
		}
	}
}

// ClearCart empties the cart.
func (c *CartStore) ClearCart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// IsInCart reports whether the product is in the cart.
func (c *CartStore) IsInCart(productID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			return true
		}
	}
	return false
}

// Items returns a copy of the cart contents in insertion order.
func (c *CartStore) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := make([]CartItem, len(c.items))
	copy(cp, c.items)
	return cp
}

// ItemCount is the sum of quantities across all entries.
func (c *CartStore) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for i := range c.items {
		n += c.items[i].Quantity
	}
	return n
}

// Total is the sum of price times quantity across all entries.
func (c *CartStore) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0.0
	for i := range c.items {
		total += c.items[i].Product.Price * float64(c.items[i].Quantity)
	}
	return total
}
