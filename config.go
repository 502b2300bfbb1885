package main

import (
	"os"
	"strings"

	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
)

// Config is the process configuration, sourced from the environment
// (optionally via a .env file) with struct defaults as fallback.
type Config struct {
	Addr          string `default:":8000"`
	DataDir       string `default:"./data"`
	MySQLDSN      string
	CloudinaryURL string
	AdminToken    string
	// DevMode runs with an in-memory store and placeholder images,
	// no MySQL or Cloudinary required.
	DevMode bool
}

// LoadConfig reads the environment into a Config.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return cfg, err
	}
	if v := os.Getenv("ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	cfg.MySQLDSN = os.Getenv("MYSQL_DSN")
	cfg.CloudinaryURL = os.Getenv("CLOUDINARY_URL")
	cfg.AdminToken = os.Getenv("ADMIN_TOKEN")
	if v := os.Getenv("DEV_MODE"); v == "1" || strings.ToLower(v) == "true" {
		cfg.DevMode = true
	}
	return cfg, nil
}
