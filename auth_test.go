package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRejectsMalformedEmail(t *testing.T) {
	auth := NewAuthStore(newMemStore())

	assert.False(t, auth.Login("not-an-email", "whatever"))
	assert.False(t, auth.IsAuthenticated())
}

func TestLoginDerivesUsernameFromEmail(t *testing.T) {
	auth := NewAuthStore(newMemStore())

	require.True(t, auth.Login("a@b.com", "anything"))
	u, ok := auth.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "a", u.Username)
	assert.Equal(t, "a@b.com", u.Email)
	assert.Equal(t, AccountActive, u.AccountStatus)
	assert.NotEmpty(t, u.ID)
}

func TestRegisterAlwaysSucceeds(t *testing.T) {
	auth := NewAuthStore(newMemStore())

	require.True(t, auth.Register("gamer", "gamer@example.com", "pw"))
	u, ok := auth.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "gamer", u.Username)
}

func TestLogoutClearsSession(t *testing.T) {
	kv := newMemStore()
	auth := NewAuthStore(kv)
	require.True(t, auth.Login("a@b.com", "pw"))

	auth.Logout()
	assert.False(t, auth.IsAuthenticated())

	// the persisted record is gone too
	_, ok := kv.Load(authKey)
	assert.False(t, ok)
}

func TestAuthRoundTrip(t *testing.T) {
	kv := newMemStore()
	first := NewAuthStore(kv)
	require.True(t, first.Login("night@example.com", "pw"))
	want, _ := first.CurrentUser()

	second := NewAuthStore(kv)
	got, ok := second.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestUpdateProfileMergesFields(t *testing.T) {
	auth := NewAuthStore(newMemStore())
	require.True(t, auth.Login("a@b.com", "pw"))

	name := "renamed"
	auth.UpdateProfile(ProfileUpdate{Username: &name})

	u, _ := auth.CurrentUser()
	assert.Equal(t, "renamed", u.Username)
	assert.Equal(t, "a@b.com", u.Email)
}

func TestUpdateProfileNoopWhenSignedOut(t *testing.T) {
	auth := NewAuthStore(newMemStore())
	name := "ghost"
	auth.UpdateProfile(ProfileUpdate{Username: &name})
	assert.False(t, auth.IsAuthenticated())
}

func TestAuthNotifiesSubscribersOnIdentityChange(t *testing.T) {
	auth := NewAuthStore(newMemStore())

	var events []*User
	auth.Subscribe(func(u *User) { events = append(events, u) })

	require.True(t, auth.Login("a@b.com", "pw"))
	auth.Logout()

	require.Len(t, events, 2)
	assert.NotNil(t, events[0])
	assert.Nil(t, events[1])
}
