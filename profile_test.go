package main

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedInProfile(t *testing.T, kv *memStore) (*AuthStore, *ProfileStore) {
	t.Helper()
	auth := NewAuthStore(kv)
	profile := NewProfileStore(kv, auth)
	require.True(t, auth.Login("gamer@example.com", "pw"))
	return auth, profile
}

func TestProfileSeedsOnFirstSignIn(t *testing.T) {
	_, profile := signedInProfile(t, newMemStore())

	purchases := profile.Purchases()
	require.Len(t, purchases, 3)
	assert.Equal(t, "Cyber Nexus 2077", purchases[0].ProductTitle)

	ref, ok := profile.Referral()
	require.True(t, ok)
	assert.Equal(t, 3, ref.InvitedUsers)
	assert.Equal(t, 2, ref.SuccessfulReferrals)
	assert.True(t, ref.HasActiveDiscount)
	assert.InDelta(t, 10, ref.DiscountPercentage, 1e-9)
	assert.Regexp(t, `^GV[A-Z0-9-]{6}$`, ref.ReferralCode)
	assert.Equal(t, referralLinkFor(ref.ReferralCode), ref.ReferralLink)
}

func TestApplyReferralDiscount(t *testing.T) {
	_, profile := signedInProfile(t, newMemStore())

	assert.InDelta(t, 90, profile.ApplyReferralDiscount(100), 1e-9)
}

func TestApplyReferralDiscountInactive(t *testing.T) {
	kv := newMemStore()
	_, profile := signedInProfile(t, kv)

	profile.mu.Lock()
	profile.referral.HasActiveDiscount = false
	profile.mu.Unlock()

	assert.InDelta(t, 100, profile.ApplyReferralDiscount(100), 1e-9)
}

func TestApplyReferralDiscountSignedOut(t *testing.T) {
	kv := newMemStore()
	auth, profile := signedInProfile(t, kv)
	auth.Logout()

	assert.InDelta(t, 100, profile.ApplyReferralDiscount(100), 1e-9)
}

func TestAddPurchasePrepends(t *testing.T) {
	_, profile := signedInProfile(t, newMemStore())

	p := profile.AddPurchase(seedProducts[4], PlatformPS5, 119.99, 0)
	purchases := profile.Purchases()
	require.Len(t, purchases, 4)
	assert.Equal(t, p.ID, purchases[0].ID)
	assert.Equal(t, "Empire Builders IV", purchases[0].ProductTitle)
	assert.Regexp(t, regexp.MustCompile(`^EMPIR-[A-Z0-9]{4}-[A-Z0-9]{4}-[A-Z0-9]{4}$`), purchases[0].DownloadKey)
}

func TestAddPurchaseSignedOutIsNoop(t *testing.T) {
	kv := newMemStore()
	auth, profile := signedInProfile(t, kv)
	auth.Logout()

	profile.AddPurchase(seedProducts[0], PlatformPS5, 10, 0)
	assert.Empty(t, profile.Purchases())
}

func TestGenerateReferralCodeReplacesCodeAndLink(t *testing.T) {
	kv := newMemStore()
	_, profile := signedInProfile(t, kv)

	before, _ := profile.Referral()
	profile.GenerateReferralCode()
	after, ok := profile.Referral()
	require.True(t, ok)

	assert.NotEqual(t, before.ReferralCode, after.ReferralCode)
	assert.Regexp(t, `^GV[A-Z0-9]{6}$`, after.ReferralCode)
	assert.Equal(t, referralLinkFor(after.ReferralCode), after.ReferralLink)
	// counters survive regeneration
	assert.Equal(t, before.InvitedUsers, after.InvitedUsers)
}

func TestProfileRoundTripPerUser(t *testing.T) {
	kv := newMemStore()
	auth, profile := signedInProfile(t, kv)
	added := profile.AddPurchase(seedProducts[2], PlatformXbox, 179.99, 0)
	u, _ := auth.CurrentUser()

	// simulated restart: same persisted identity rehydrates the same
	// purchase history
	auth2 := NewAuthStore(kv)
	profile2 := NewProfileStore(kv, auth2)
	u2, ok := auth2.CurrentUser()
	require.True(t, ok)
	require.Equal(t, u.ID, u2.ID)

	purchases := profile2.Purchases()
	require.Len(t, purchases, 4)
	assert.Equal(t, added.ID, purchases[0].ID)
	assert.Equal(t, added.DownloadKey, purchases[0].DownloadKey)
}

func TestProfileIsolatesUsers(t *testing.T) {
	kv := newMemStore()
	auth, profile := signedInProfile(t, kv)
	profile.AddPurchase(seedProducts[0], PlatformPS5, 159.99, 199.99)

	// a different identity gets its own freshly seeded history
	require.True(t, auth.Login("other@example.com", "pw"))
	assert.Len(t, profile.Purchases(), 3)
}

func TestProfileClearsOnSignOut(t *testing.T) {
	auth, profile := signedInProfile(t, newMemStore())

	auth.Logout()
	assert.Empty(t, profile.Purchases())
	_, ok := profile.Referral()
	assert.False(t, ok)
}
