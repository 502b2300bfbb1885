package main

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const authKey = "gamestore_auth"

// ProfileUpdate is a partial user update; nil fields are left as-is.
type ProfileUpdate struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Avatar   *string `json:"avatar"`
}

// AuthStore holds the current session identity: at most one User.
// Login and registration are mocked, there is no credential
// verification beyond the email shape (by contract with the
// storefront UI, which translates a false return into a localized
// error message). The record is persisted under a fixed key on every
// change and removed on logout.
type AuthStore struct {
	mu          sync.Mutex
	kv          KVStore
	user        *User
	hydrated    bool
	subscribers []func(*User)
}

func NewAuthStore(kv KVStore) *AuthStore {
	a := &AuthStore{kv: kv}
	if u, ok := loadJSON[User](kv, authKey); ok {
		a.user = &u
	}
	a.hydrated = true
	return a
}

// Subscribe registers a callback invoked after every identity change
// (login, register, logout). The callback receives the new user, or
// nil on sign-out, and runs outside the store lock.
func (a *AuthStore) Subscribe(fn func(*User)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.subscribers = append(a.subscribers, fn)
}

func (a *AuthStore) setUser(u *User) {
	a.mu.Lock()
	if u != nil {
		cp := *u
		a.user = &cp
	} else {
		a.user = nil
	}
	a.persistLocked()
	subs := make([]func(*User), len(a.subscribers))
	copy(subs, a.subscribers)
	a.mu.Unlock()

	for _, fn := range subs {
		fn(u)
	}
}

func (a *AuthStore) persistLocked() {
	if !a.hydrated {
		return
	}
	if a.user != nil {
		saveJSON(a.kv, authKey, *a.user)
	} else {
		a.kv.Delete(authKey)
	}
}

// Login succeeds iff the email looks like an email; the password is
// accepted unconditionally. The username is the email's local part.
func (a *AuthStore) Login(email, _ string) bool {
	if !strings.Contains(email, "@") {
		return false
	}
	u := User{
		ID:            "user_" + uuid.NewString(),
		Username:      strings.SplitN(email, "@", 2)[0],
		Email:         email,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		AccountStatus: AccountActive,
	}
	a.setUser(&u)
	return true
}

// Register always succeeds and signs the new user in.
func (a *AuthStore) Register(username, email, _ string) bool {
	u := User{
		ID:            "user_" + uuid.NewString(),
		Username:      username,
		Email:         email,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		AccountStatus: AccountActive,
	}
	a.setUser(&u)
	return true
}

// Logout clears the session identity.
func (a *AuthStore) Logout() {
	a.setUser(nil)
}

// UpdateProfile shallow-merges the provided fields into the current
// user. No-op when signed out.
func (a *AuthStore) UpdateProfile(upd ProfileUpdate) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.user == nil {
		return
	}
	if upd.Username != nil {
		a.user.Username = *upd.Username
	}
	if upd.Email != nil {
		a.user.Email = *upd.Email
	}
	if upd.Avatar != nil {
		a.user.Avatar = *upd.Avatar
	}
	a.persistLocked()
}

// CurrentUser returns a copy of the signed-in user, or false.
func (a *AuthStore) CurrentUser() (User, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.user == nil {
		return User{}, false
	}
	return *a.user, true
}

// IsAuthenticated reports whether a user is signed in.
func (a *AuthStore) IsAuthenticated() bool {
	_, ok := a.CurrentUser()
	return ok
}
