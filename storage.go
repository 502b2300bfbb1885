package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// KVStore is the persistence bridge the state stores hydrate from and
// mirror into. Implementations never surface failures to callers: a
// missing or unreadable key loads as absent, a failed write is logged
// and dropped while the in-memory state stays correct for the session.
// Last write wins; no two stores share a key.
type KVStore interface {
	Load(key string) ([]byte, bool)
	Save(key string, value []byte)
	Delete(key string)
}

// loadJSON reads and unmarshals the value under key. A corrupt payload
// is treated the same as a missing key.
func loadJSON[T any](kv KVStore, key string) (T, bool) {
	var v T
	raw, ok := kv.Load(key)
	if !ok {
		return v, false
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		slog.Warn("discarding corrupt persisted value", "key", key, "error", err)
		return v, false
	}
	return v, true
}

// saveJSON marshals and writes the value under key.
func saveJSON[T any](kv KVStore, key string, value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		slog.Error("marshal persisted value", "key", key, "error", err)
		return
	}
	kv.Save(key, raw)
}

// memStore is an in-memory KVStore for tests and ephemeral runs.
type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Load(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.data[key]
	if !ok {
		return nil, false
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return cp, true
}

func (m *memStore) Save(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
}

func (m *memStore) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
}

// fileStore keeps each key as <dir>/<key>.json. Good enough for a
// single-instance deployment; writes go through a temp file rename so
// a crash never leaves a half-written value behind.
type fileStore struct {
	mu  sync.Mutex
	dir string
}

func newFileStore(dir string) (*fileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &fileStore{dir: dir}, nil
}

func (f *fileStore) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *fileStore) Load(key string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	raw, err := os.ReadFile(f.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("read persisted value", "key", key, "error", err)
		}
		return nil, false
	}
	return raw, true
}

func (f *fileStore) Save(key string, value []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		slog.Error("write persisted value", "key", key, "error", err)
		return
	}
	if err := os.Rename(tmp, f.path(key)); err != nil {
		slog.Error("rename persisted value", "key", key, "error", err)
	}
}

func (f *fileStore) Delete(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		slog.Warn("delete persisted value", "key", key, "error", err)
	}
}
