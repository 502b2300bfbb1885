package main

import (
	"database/sql"
	"log/slog"
)

// ensureTable creates the key-value state table if it doesn't exist.
func ensureTable(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv_state (
        k VARCHAR(191) PRIMARY KEY,
        v MEDIUMTEXT NOT NULL,
        updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
    )`)
	return err
}

// sqlStore is the MySQL-backed KVStore. Same absorb-and-log contract
// as the file store: callers never see storage errors.
type sqlStore struct {
	db *sql.DB
}

func newSQLStore(db *sql.DB) (*sqlStore, error) {
	if err := ensureTable(db); err != nil {
		return nil, err
	}
	return &sqlStore{db: db}, nil
}

func (s *sqlStore) Load(key string) ([]byte, bool) {
	var raw []byte
	err := s.db.QueryRow("SELECT v FROM kv_state WHERE k = ?", key).Scan(&raw)
	if err != nil {
		if err != sql.ErrNoRows {
			slog.Warn("load persisted value", "key", key, "error", err)
		}
		return nil, false
	}
	return raw, true
}

func (s *sqlStore) Save(key string, value []byte) {
	_, err := s.db.Exec("INSERT INTO kv_state (k, v) VALUES (?, ?) ON DUPLICATE KEY UPDATE v = VALUES(v)", key, value)
	if err != nil {
		slog.Error("save persisted value", "key", key, "error", err)
	}
}

func (s *sqlStore) Delete(key string) {
	if _, err := s.db.Exec("DELETE FROM kv_state WHERE k = ?", key); err != nil {
		slog.Warn("delete persisted value", "key", key, "error", err)
	}
}
