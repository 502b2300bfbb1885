package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminHydratesFromSeeds(t *testing.T) {
	admin := NewAdminStore(newMemStore())

	assert.Len(t, admin.Products(), 10)
	assert.Len(t, admin.GiftCards(), 5)
	assert.Len(t, admin.Users(), 7)
	assert.Len(t, admin.Orders(), 7)
}

func TestAdminAddProduct(t *testing.T) {
	admin := NewAdminStore(newMemStore())

	p := admin.AddProduct(Product{Title: "New Game", Price: 49.99, Category: CategoryAction})
	assert.Regexp(t, `^product_\d+$`, p.ID)

	got, ok := admin.ProductByID(p.ID)
	require.True(t, ok)
	assert.Equal(t, "New Game", got.Title)
	assert.Len(t, admin.Products(), 11)
}

func TestAdminUpdateProductMergesPartial(t *testing.T) {
	admin := NewAdminStore(newMemStore())

	price := 49.99
	stock := false
	require.True(t, admin.UpdateProduct("1", ProductUpdate{Price: &price, InStock: &stock}))

	p, ok := admin.ProductByID("1")
	require.True(t, ok)
	assert.InDelta(t, 49.99, p.Price, 1e-9)
	assert.False(t, p.InStock)
	// untouched fields survive
	assert.Equal(t, "Cyber Nexus 2077", p.Title)
	assert.InDelta(t, 199.99, p.OriginalPrice, 1e-9)
}

func TestAdminUpdateProductUnknownID(t *testing.T) {
	admin := NewAdminStore(newMemStore())
	price := 1.0
	assert.False(t, admin.UpdateProduct("missing", ProductUpdate{Price: &price}))
}

func TestAdminDeleteProduct(t *testing.T) {
	admin := NewAdminStore(newMemStore())

	require.True(t, admin.DeleteProduct("1"))
	_, ok := admin.ProductByID("1")
	assert.False(t, ok)

	// deleting twice is a no-op
	assert.False(t, admin.DeleteProduct("1"))
	assert.Len(t, admin.Products(), 9)
}

func TestAdminAddGiftCard(t *testing.T) {
	admin := NewAdminStore(newMemStore())

	card := admin.AddGiftCard(100)
	assert.Regexp(t, `^GV100-[A-Z0-9]{4}-\d{4}$`, card.Code)
	assert.Equal(t, GiftCardActive, card.Status)
	assert.InDelta(t, 100, card.Value, 1e-9)
	assert.NotEmpty(t, card.CreatedAt)
	assert.Len(t, admin.GiftCards(), 6)
}

func TestAdminDeleteGiftCard(t *testing.T) {
	admin := NewAdminStore(newMemStore())

	require.True(t, admin.DeleteGiftCard("gc1"))
	assert.False(t, admin.DeleteGiftCard("gc1"))
	assert.Len(t, admin.GiftCards(), 4)
}

func TestAdminUpdateUserStatus(t *testing.T) {
	admin := NewAdminStore(newMemStore())

	require.True(t, admin.UpdateUserStatus("u1", StoreUserBanned))
	for _, u := range admin.Users() {
		if u.ID == "u1" {
			assert.Equal(t, StoreUserBanned, u.Status)
		}
	}
	assert.False(t, admin.UpdateUserStatus("missing", StoreUserActive))
}

func TestAdminUpdateOrderStatus(t *testing.T) {
	admin := NewAdminStore(newMemStore())

	// any status is reachable from any other
	require.True(t, admin.UpdateOrderStatus("o5", OrderCompleted))
	require.True(t, admin.UpdateOrderStatus("o5", OrderCancelled))
	assert.False(t, admin.UpdateOrderStatus("missing", OrderPending))
}

func TestAdminStats(t *testing.T) {
	admin := NewAdminStore(newMemStore())

	s := admin.Stats()
	// completed seed orders: 159.99 + 149.99 + 99.99 + 79.99
	assert.InDelta(t, 489.96, s.TotalRevenue, 1e-6)
	assert.Equal(t, 7, s.TotalOrders)
	assert.Equal(t, 7, s.TotalUsers)
	assert.Equal(t, 10, s.TotalProducts)
}

func TestAdminStatsFollowOrderStatusChanges(t *testing.T) {
	admin := NewAdminStore(newMemStore())

	require.True(t, admin.UpdateOrderStatus("o1", OrderRefunded))
	s := admin.Stats()
	assert.InDelta(t, 329.97, s.TotalRevenue, 1e-6)
}

func TestAdminRoundTrip(t *testing.T) {
	kv := newMemStore()

	first := NewAdminStore(kv)
	added := first.AddProduct(Product{Title: "Persisted Game", Price: 9.99})
	require.True(t, first.UpdateUserStatus("u2", StoreUserSuspended))

	second := NewAdminStore(kv)
	got, ok := second.ProductByID(added.ID)
	require.True(t, ok)
	assert.Equal(t, "Persisted Game", got.Title)
	for _, u := range second.Users() {
		if u.ID == "u2" {
			assert.Equal(t, StoreUserSuspended, u.Status)
		}
	}
}

func TestAdminClearedCollectionStaysEmptyAfterRestart(t *testing.T) {
	kv := newMemStore()

	first := NewAdminStore(kv)
	for _, gc := range first.GiftCards() {
		require.True(t, first.DeleteGiftCard(gc.ID))
	}
	require.Empty(t, first.GiftCards())

	// an emptied collection must not fall back to the seeds
	second := NewAdminStore(kv)
	assert.Empty(t, second.GiftCards())
}
