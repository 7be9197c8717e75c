package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	AuthModeStatic = "static"
	AuthModeJWT    = "jwt"
)

type Config struct {
	Port      string
	DBPath    string
	SecretKey string
	AuthMode  string
	Timezone  string
}

// Load reads a .env file when present, then the environment, with defaults
// suitable for local development.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	get := func(key string, fallback string) string {
		if value := os.Getenv(key); value != "" {
			return value
		}
		return fallback
	}

	cfg := Config{
		Port:      get("PORT", "8080"),
		DBPath:    get("DB_PATH", filepath.Join("data", "breadlog.db")),
		SecretKey: get("SECRET_KEY", "change_me_in_production"),
		AuthMode:  get("AUTH_MODE", AuthModeStatic),
		Timezone:  get("TZ", "UTC"),
	}
	return cfg
}
