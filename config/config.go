package config

import (
	"os"

	"github.com/joho/godotenv"
)

// JWTSecret used to sign tokens, read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "food_preorder_super_secret_2024"))

// Config holds the runtime settings. The default DSN is an in-memory
// sqlite database, so all users, restaurants and orders live only for
// the process lifetime.
type Config struct {
	Env   string
	Port  string
	DBDSN string
}

func Load() Config {
	// best effort: a missing .env file is fine
	_ = godotenv.Load()

	return Config{
		Env:   getEnv("APP_ENV", "development"),
		Port:  getEnv("PORT", "5000"),
		DBDSN: getEnv("DB_DSN", "file::memory:?cache=shared"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
