package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// HTTPTimeout bounds outbound calls to the pageviews API.
	HTTPTimeout time.Duration

	// PageviewsBaseURL overrides the Wikimedia REST root (used in tests).
	PageviewsBaseURL string

	// UserAgent identifies this client to the Wikimedia API, which rejects
	// anonymous traffic.
	UserAgent string

	// Dashboard defaults for fresh sessions.
	DefaultArticle    string
	DefaultWindowDays int

	// Session retention.
	SessionMaxAge        time.Duration
	SessionSweepInterval time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.PageviewsBaseURL = os.Getenv("PAGEVIEWS_BASE_URL")
	cfg.UserAgent = getenvDefault("USER_AGENT", "traffic-analytics/1.0 (https://github.com/akarpov91/traffic-analytics)")

	cfg.DefaultArticle = getenvDefault("DEFAULT_ARTICLE", "Streamlit")
	cfg.DefaultWindowDays = getenvInt("DEFAULT_WINDOW_DAYS", 30)

	maxAgeStr := getenvDefault("SESSION_MAX_AGE", "24h")
	maxAge, err := time.ParseDuration(maxAgeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_MAX_AGE: %w", err)
	}
	cfg.SessionMaxAge = maxAge

	sweepStr := getenvDefault("SESSION_SWEEP_INTERVAL", "15m")
	sweep, err := time.ParseDuration(sweepStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_SWEEP_INTERVAL: %w", err)
	}
	cfg.SessionSweepInterval = sweep

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
