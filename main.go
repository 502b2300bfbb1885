package main

import (
	"crypto/tls"
	"crypto/x509"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"strings"

	mysql "github.com/go-sql-driver/mysql"
)

// registerTiDBTLS registers a TLS config named "tidb" when the DSN
// asks for it, loading the CA bundle from TIDB_CA or the system path.
func registerTiDBTLS() {
	caPath := os.Getenv("TIDB_CA")
	if caPath == "" {
		caPath = "/etc/ssl/certs/ca-certificates.crt"
	}
	pool := x509.NewCertPool()
	b, err := os.ReadFile(caPath)
	if err != nil {
		slog.Warn("could not read CA file, falling back to InsecureSkipVerify", "path", caPath, "error", err)
		_ = mysql.RegisterTLSConfig("tidb", &tls.Config{InsecureSkipVerify: true})
		return
	}
	if !pool.AppendCertsFromPEM(b) {
		slog.Warn("could not parse CA file, falling back to InsecureSkipVerify", "path", caPath)
		_ = mysql.RegisterTLSConfig("tidb", &tls.Config{InsecureSkipVerify: true})
		return
	}
	_ = mysql.RegisterTLSConfig("tidb", &tls.Config{RootCAs: pool})
}

// openKV picks the persistence backend: MySQL when a DSN is set,
// plain in-memory in dev mode, a directory of JSON files otherwise.
func openKV(cfg Config) (KVStore, func(), error) {
	if cfg.DevMode {
		slog.Info("DEV_MODE: state is in-memory only")
		return newMemStore(), func() {}, nil
	}
	if cfg.MySQLDSN != "" {
		if strings.Contains(cfg.MySQLDSN, "tls=tidb") {
			registerTiDBTLS()
		}
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, nil, err
		}
		kv, err := newSQLStore(db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return kv, func() { db.Close() }, nil
	}
	kv, err := newFileStore(cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}
	return kv, func() {}, nil
}

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	kv, closeKV, err := openKV(cfg)
	if err != nil {
		slog.Error("open state store", "error", err)
		os.Exit(1)
	}
	defer closeKV()

	admin := NewAdminStore(kv)
	cart := NewCartStore()
	wishlist := NewWishlistStore(kv)
	auth := NewAuthStore(kv)
	profile := NewProfileStore(kv, auth)

	mux := newMux(cfg, admin, cart, wishlist, auth, profile)

	slog.Info("server listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		slog.Error("server", "error", err)
		os.Exit(1)
	}
}
