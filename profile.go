package main

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	purchasesKeyPrefix = "gamestore_purchases"
	referralKeyPrefix  = "gamestore_referral"
)

// ProfileStore holds the signed-in user's purchase history and
// referral program state, keyed in storage by user id. It follows the
// auth store: signing in hydrates (or seeds) the slices for that
// identity, signing out clears them in memory without touching
// storage.
type ProfileStore struct {
	mu        sync.Mutex
	kv        KVStore
	userID    string
	purchases []Purchase
	referral  *ReferralData
	hydrated  bool
}

func NewProfileStore(kv KVStore, auth *AuthStore) *ProfileStore {
	p := &ProfileStore{kv: kv}
	auth.Subscribe(p.setIdentity)
	if u, ok := auth.CurrentUser(); ok {
		p.setIdentity(&u)
	}
	return p
}

// setIdentity re-initializes the store for the given user, or clears
// it on sign-out.
func (p *ProfileStore) setIdentity(u *User) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if u == nil {
		p.userID = ""
		p.purchases = nil
		p.referral = nil
		p.hydrated = false
		return
	}

	p.userID = u.ID
	p.hydrated = false

	if purchases, ok := loadJSON[[]Purchase](p.kv, purchasesKeyPrefix+"_"+u.ID); ok {
		p.purchases = purchases
	} else {
		// First sign-in for this id: seed the demo history.
		p.purchases = make([]Purchase, len(seedPurchases))
		copy(p.purchases, seedPurchases)
		saveJSON(p.kv, purchasesKeyPrefix+"_"+u.ID, p.purchases)
	}

	if ref, ok := loadJSON[ReferralData](p.kv, referralKeyPrefix+"_"+u.ID); ok {
		p.referral = &ref
	} else {
		code := referralCodeForUser(u.ID)
		ref := ReferralData{
			ReferralCode:        code,
			ReferralLink:        referralLinkFor(code),
			InvitedUsers:        3,
			SuccessfulReferrals: 2,
			HasActiveDiscount:   true,
			DiscountPercentage:  10,
		}
		p.referral = &ref
		saveJSON(p.kv, referralKeyPrefix+"_"+u.ID, ref)
	}

	p.hydrated = true
}

func (p *ProfileStore) persistPurchasesLocked() {
	if !p.hydrated || p.userID == "" {
		return
	}
	saveJSON(p.kv, purchasesKeyPrefix+"_"+p.userID, p.purchases)
}

func (p *ProfileStore) persistReferralLocked() {
	if !p.hydrated || p.userID == "" || p.referral == nil {
		return
	}
	saveJSON(p.kv, referralKeyPrefix+"_"+p.userID, *p.referral)
}

// AddPurchase records a new purchase at the head of the history (most
// recent first) with a fresh id and download key. No-op when signed
// out.
func (p *ProfileStore) AddPurchase(product Product, platform Platform, price float64, originalPrice float64) Purchase {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.userID == "" {
		return Purchase{}
	}
	purchase := Purchase{
		ID:            "p" + uuid.NewString(),
		ProductID:     product.ID,
		ProductTitle:  product.Title,
		ProductImage:  product.Image,
		Platform:      platform,
		Price:         price,
		OriginalPrice: originalPrice,
		PurchaseDate:  time.Now().UTC().Format(time.RFC3339),
		DownloadKey:   newDownloadKey(product.Title),
	}
	p.purchases = append([]Purchase{purchase}, p.purchases...)
	p.persistPurchasesLocked()
	return purchase
}

// Purchases returns a copy of the purchase history, most recent first.
func (p *ProfileStore) Purchases() []Purchase {
	p.mu.Lock()
	defer p.mu.Unlock()
	cp := make([]Purchase, len(p.purchases))
	copy(cp, p.purchases)
	return cp
}

// Referral returns the current referral data, or false when signed
// out.
func (p *ProfileStore) Referral() (ReferralData, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.referral == nil {
		return ReferralData{}, false
	}
	return *p.referral, true
}

// ApplyReferralDiscount returns the discounted price when an active
// discount is held, and the input price unchanged otherwise. Pure with
// respect to store state.
func (p *ProfileStore) ApplyReferralDiscount(price float64) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.referral != nil && p.referral.HasActiveDiscount {
		return price * (1 - p.referral.DiscountPercentage/100)
	}
	return price
}

// GenerateReferralCode replaces the referral code and link with a
// freshly randomized pair and persists. No-op when signed out.
func (p *ProfileStore) GenerateReferralCode() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.referral == nil {
		return
	}
	code := newReferralCode()
	p.referral.ReferralCode = code
	p.referral.ReferralLink = referralLinkFor(code)
	p.persistReferralLocked()
}
