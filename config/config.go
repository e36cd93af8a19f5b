package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process-wide settings resolved once at startup. Domain code
// receives this struct instead of reading the environment directly.
type Config struct {
	Env            string
	Port           string
	JWTSecret      string
	JWTExpiry      time.Duration
	GoogleClientID string
}

var App *Config

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file, using system environment: %v", err)
	}
}

// LoadConfig resolves the Config struct from the environment.
func LoadConfig() *Config {
	cfg := &Config{
		Env:            getEnv("ENV", "dev"),
		Port:           getEnv("PORT", "5000"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTExpiry:      7 * 24 * time.Hour,
		GoogleClientID: os.Getenv("GOOGLE_CLIENT_ID"),
	}

	if raw := os.Getenv("JWT_EXPIRE"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("Warning: invalid JWT_EXPIRE %q, keeping default 168h", raw)
		} else {
			cfg.JWTExpiry = d
		}
	}

	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET is not set")
	}

	App = cfg
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
