package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port         string
	DBPath       string
	JWTSecret    string
	QueryTimeout time.Duration // bound on a single data store call
	RateLimit    int           // requests per window, per client IP
	RateWindow   time.Duration
}

// Load reads configuration from .env (if present) and environment variables
func Load() *Config {
	// A missing .env is fine, plain environment variables still apply
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/taxi.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	queryTimeout := 10 * time.Second
	if v := os.Getenv("QUERY_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			queryTimeout = time.Duration(n) * time.Second
		}
	}

	rateLimit := 120
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			rateLimit = n
		}
	}

	return &Config{
		Port:         port,
		DBPath:       dbPath,
		JWTSecret:    jwtSecret,
		QueryTimeout: queryTimeout,
		RateLimit:    rateLimit,
		RateWindow:   time.Minute,
	}
}
