package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistAddIsIdempotent(t *testing.T) {
	wl := NewWishlistStore(newMemStore())
	p := cartProduct("1", 10)

	wl.AddToWishlist(p)
	wl.AddToWishlist(p)

	assert.Equal(t, 1, wl.ItemCount())
	assert.True(t, wl.IsInWishlist("1"))
}

func TestWishlistRemove(t *testing.T) {
	wl := NewWishlistStore(newMemStore())
	wl.AddToWishlist(cartProduct("1", 10))
	wl.AddToWishlist(cartProduct("2", 20))

	wl.RemoveFromWishlist("1")
	assert.False(t, wl.IsInWishlist("1"))
	assert.True(t, wl.IsInWishlist("2"))
	assert.Equal(t, 1, wl.ItemCount())

	// removing again is a no-op
	wl.RemoveFromWishlist("1")
	assert.Equal(t, 1, wl.ItemCount())
}

func TestWishlistToggle(t *testing.T) {
	wl := NewWishlistStore(newMemStore())
	p := cartProduct("1", 10)

	assert.True(t, wl.Toggle(p))
	assert.True(t, wl.IsInWishlist("1"))
	assert.False(t, wl.Toggle(p))
	assert.False(t, wl.IsInWishlist("1"))
}

func TestWishlistRoundTrip(t *testing.T) {
	kv := newMemStore()

	first := NewWishlistStore(kv)
	first.AddToWishlist(cartProduct("1", 10))
	first.AddToWishlist(cartProduct("2", 20))

	// simulated restart
	second := NewWishlistStore(kv)
	require.Equal(t, 2, second.ItemCount())
	assert.True(t, second.IsInWishlist("1"))
	assert.True(t, second.IsInWishlist("2"))
	assert.Equal(t, first.Items(), second.Items())
}

func TestWishlistClearPersistsEmptyState(t *testing.T) {
	kv := newMemStore()

	first := NewWishlistStore(kv)
	first.AddToWishlist(cartProduct("1", 10))
	first.ClearWishlist()

	second := NewWishlistStore(kv)
	assert.Zero(t, second.ItemCount())
}

func TestWishlistIgnoresCorruptStoredValue(t *testing.T) {
	kv := newMemStore()
	kv.Save(wishlistKey, []byte(`{"not":"an array"`))

	wl := NewWishlistStore(kv)
	assert.Zero(t, wl.ItemCount())

	// the store stays usable and re-persists cleanly
	wl.AddToWishlist(cartProduct("1", 10))
	assert.Equal(t, 1, NewWishlistStore(kv).ItemCount())
}
