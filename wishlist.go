package main

import "sync"

const wishlistKey = "gamestore_wishlist"

// WishlistStore holds the set of wished-for products, unique by id,
// persisted as a whole under a single global key (the wishlist is not
// scoped to a user). Hydration happens once at construction; mutations
// after that re-persist the full set.
type WishlistStore struct {
	mu       sync.Mutex
	kv       KVStore
	items    []Product
	hydrated bool
}

func NewWishlistStore(kv KVStore) *WishlistStore {
	w := &WishlistStore{kv: kv}
	if items, ok := loadJSON[[]Product](kv, wishlistKey); ok {
		w.items = items
	}
	w.hydrated = true
	return w
}

// persist mirrors the current set into storage. The hydrated guard
// keeps a not-yet-loaded store from clobbering persisted data.
func (w *WishlistStore) persist() {
	if !w.hydrated {
		return
	}
	saveJSON(w.kv, wishlistKey, w.items)
}

// AddToWishlist appends the product; adding an id already present is
// a no-op.
func (w *WishlistStore) AddToWishlist(product Product) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.items {
		if w.items[i].ID == product.ID {
			return
		}
	}
	w.items = append(w.items, product)
	w.persist()
}

// RemoveFromWishlist drops the product if present.
func (w *WishlistStore) RemoveFromWishlist(productID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.items {
		if w.items[i].ID == productID {
			w.items = append(w.items[:i], w.items[i+1:]...)
			w.persist()
			return
		}
	}
}

// Toggle adds the product when absent and removes it when present.
// Returns true when the product ends up in the wishlist.
func (w *WishlistStore) Toggle(product Product) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.items {
		if w.items[i].ID == product.ID {
			w.items = append(w.items[:i], w.items[i+1:]...)
			w.persist()
			return false
		}
	}
	w.items = append(w.items, product)
	w.persist()
	return true
}

// IsInWishlist reports membership by product id.
func (w *WishlistStore) IsInWishlist(productID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.items {
		if w.items[i].ID == productID {
			return true
		}
	}
	return false
}

// ClearWishlist empties the set and persists the empty state.
func (w *WishlistStore) ClearWishlist() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.items = nil
	w.persist()
}

// Items returns a copy of the wishlist.
func (w *WishlistStore) Items() []Product {
	w.mu.Lock()
	defer w.mu.Unlock()
	cp := make([]Product, len(w.items))
	copy(cp, w.items)
	return cp
}

// ItemCount is the size of the set.
func (w *WishlistStore) ItemCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.items)
}
