package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	adminProductsKey  = "admin_products"
	adminGiftCardsKey = "admin_giftCards"
	adminUsersKey     = "admin_users"
	adminOrdersKey    = "admin_orders"
)

// ProductUpdate is a partial product; nil fields are left untouched.
type ProductUpdate struct {
	Title         *string     `json:"title"`
	TitleKa       *string     `json:"titleKa"`
	TitleRu       *string     `json:"titleRu"`
	Description   *string     `json:"description"`
	DescriptionKa *string     `json:"descriptionKa"`
	DescriptionRu *string     `json:"descriptionRu"`
	Price         *float64    `json:"price"`
	OriginalPrice *float64    `json:"originalPrice"`
	Image         *string     `json:"image"`
	Images        *[]string   `json:"images"`
	Category      *Category   `json:"category"`
	Platform      *[]Platform `json:"platform"`
	Tags          *[]Tag      `json:"tags"`
	Rating        *float64    `json:"rating"`
	ReviewCount   *int        `json:"reviewCount"`
	InStock       *bool       `json:"inStock"`
	ReleaseDate   *string     `json:"releaseDate"`
	Developer     *string     `json:"developer"`
	Publisher     *string     `json:"publisher"`
}

// AdminStore owns the four admin-side collections: the product
// catalog, issued gift cards, registered users and orders. Each
// collection hydrates from its own storage key (falling back to the
// seed data) and re-persists as a whole after every mutation. The
// product collection here is the single authoritative catalog; the
// public browse path reads it as a projection.
type AdminStore struct {
	mu        sync.Mutex
	kv        KVStore
	products  []Product
	giftCards []GiftCard
	users     []StoreUser
	orders    []Order
	hydrated  bool
}

func NewAdminStore(kv KVStore) *AdminStore {
	a := &AdminStore{kv: kv}
	a.products = hydrateOrSeed(kv, adminProductsKey, seedProducts)
	a.giftCards = hydrateOrSeed(kv, adminGiftCardsKey, seedGiftCards)
	a.users = hydrateOrSeed(kv, adminUsersKey, seedUsers)
	a.orders = hydrateOrSeed(kv, adminOrdersKey, seedOrders)
	a.hydrated = true
	return a
}

// hydrateOrSeed loads a collection from storage, falling back to a
// copy of its seed list.
func hydrateOrSeed[T any](kv KVStore, key string, seed []T) []T {
	if items, ok := loadJSON[[]T](kv, key); ok {
		return items
	}
	cp := make([]T, len(seed))
	copy(cp, seed)
	return cp
}

// persistLocked writes one collection back. Guarded by the hydrated
// flag rather than a non-empty check, so clearing a collection to
// empty persists correctly.
func persistLocked[T any](a *AdminStore, key string, items []T) {
	if !a.hydrated {
		return
	}
	saveJSON(a.kv, key, items)
}

// Products returns a copy of the catalog.
func (a *AdminStore) Products() []Product {
	a.mu.Lock()
	defer a.mu.Unlock()
	cp := make([]Product, len(a.products))
	copy(cp, a.products)
	return cp
}

// ProductByID returns the product, or false.
func (a *AdminStore) ProductByID(id string) (Product, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.products {
		if a.products[i].ID == id {
			return a.products[i], true
		}
	}
	return Product{}, false
}

// AddProduct appends the product under a fresh time-derived id and
// returns it.
func (a *AdminStore) AddProduct(p Product) Product {
	a.mu.Lock()
	defer a.mu.Unlock()
	p.ID = fmt.Sprintf("product_%d", time.Now().UnixMilli())
	a.products = append(a.products, p)
	persistLocked(a, adminProductsKey, a.products)
	return p
}

// UpdateProduct shallow-merges the partial into the product with the
// given id. Unknown ids are a no-op; returns whether a product was
// touched.
func (a *AdminStore) UpdateProduct(id string, upd ProductUpdate) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.products {
		if a.products[i].ID != id {
			continue
		}
		p := &a.products[i]
		if upd.Title != nil {
			p.Title = *upd.Title
		}
		if upd.TitleKa != nil {
			p.TitleKa = *upd.TitleKa
		}
		if upd.TitleRu != nil {
			p.TitleRu = *upd.TitleRu
		}
		if upd.Description != nil {
			p.Description = *upd.Description
		}
		if upd.DescriptionKa != nil {
			p.DescriptionKa = *upd.DescriptionKa
		}
		if upd.DescriptionRu != nil {
			p.DescriptionRu = *upd.DescriptionRu
		}
		if upd.Price != nil {
			p.Price = *upd.Price
		}
		if upd.OriginalPrice != nil {
			p.OriginalPrice = *upd.OriginalPrice
		}
		if upd.Image != nil {
			p.Image = *upd.Image
		}
		if upd.Images != nil {
			p.Images = *upd.Images
		}
		if upd.Category != nil {
			p.Category = *upd.Category
		}
		if upd.Platform != nil {
			p.Platform = *upd.Platform
		}
		if upd.Tags != nil {
			p.Tags = *upd.Tags
		}
		if upd.Rating != nil {
			p.Rating = *upd.Rating
		}
		if upd.ReviewCount != nil {
			p.ReviewCount = *upd.ReviewCount
		}
		if upd.InStock != nil {
			p.InStock = *upd.InStock
		}
		if upd.ReleaseDate != nil {
			p.ReleaseDate = *upd.ReleaseDate
		}
		if upd.Developer != nil {
			p.Developer = *upd.Developer
		}
		if upd.Publisher != nil {
			p.Publisher = *upd.Publisher
		}
		persistLocked(a, adminProductsKey, a.products)
		return true
	}
	return false
}

// DeleteProduct removes by id; unknown ids are a no-op.
func (a *AdminStore) DeleteProduct(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.products {
		if a.products[i].ID == id {
			a.products = append(a.products[:i], a.products[i+1:]...)
			persistLocked(a, adminProductsKey, a.products)
			return true
		}
	}
	return false
}

// GiftCards returns a copy of the issued gift cards.
func (a *AdminStore) GiftCards() []GiftCard {
	a.mu.Lock()
	defer a.mu.Unlock()
	cp := make([]GiftCard, len(a.giftCards))
	copy(cp, a.giftCards)
	return cp
}

// AddGiftCard issues a new active card for the given value with a
// generated code and today's date.
func (a *AdminStore) AddGiftCard(value float64) GiftCard {
	a.mu.Lock()
	defer a.mu.Unlock()
	card := GiftCard{
		ID:        "gc_" + uuid.NewString(),
		Value:     value,
		Code:      newGiftCardCode(value),
		Status:    GiftCardActive,
		CreatedAt: time.Now().UTC().Format("2006-01-02"),
	}
	a.giftCards = append(a.giftCards, card)
	persistLocked(a, adminGiftCardsKey, a.giftCards)
	return card
}

// DeleteGiftCard removes by id; unknown ids are a no-op.
func (a *AdminStore) DeleteGiftCard(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.giftCards {
		if a.giftCards[i].ID == id {
			a.giftCards = append(a.giftCards[:i], a.giftCards[i+1:]...)
			persistLocked(a, adminGiftCardsKey, a.giftCards)
			return true
		}
	}
	return false
}

// Users returns a copy of the registered users.
func (a *AdminStore) Users() []StoreUser {
	a.mu.Lock()
	defer a.mu.Unlock()
	cp := make([]StoreUser, len(a.users))
	copy(cp, a.users)
	return cp
}

// UpdateUserStatus sets the status field. Any status is reachable
// from any other; unknown ids are a no-op.
func (a *AdminStore) UpdateUserStatus(id string, status StoreUserStatus) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.users {
		if a.users[i].ID == id {
			a.users[i].Status = status
			persistLocked(a, adminUsersKey, a.users)
			return true
		}
	}
	return false
}

// Orders returns a copy of the orders.
func (a *AdminStore) Orders() []Order {
	a.mu.Lock()
	defer a.mu.Unlock()
	cp := make([]Order, len(a.orders))
	copy(cp, a.orders)
	return cp
}

// UpdateOrderStatus sets the status field. The store accepts any
// value; which transitions are offered is a UI concern.
func (a *AdminStore) UpdateOrderStatus(id string, status OrderStatus) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.orders {
		if a.orders[i].ID == id {
			a.orders[i].Status = status
			persistLocked(a, adminOrdersKey, a.orders)
			return true
		}
	}
	return false
}

// Stats computes the dashboard aggregates from the live collections.
func (a *AdminStore) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	s := Stats{
		TotalOrders:   len(a.orders),
		TotalUsers:    len(a.users),
		TotalProducts: len(a.products),
	}
	for i := range a.orders {
		if a.orders[i].Status == OrderCompleted {
			s.TotalRevenue += a.orders[i].Price
		}
	}
	return s
}
