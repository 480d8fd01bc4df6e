// Package config loads runtime configuration from the environment. Shared by
// fpl-server and cmd/dev; flags in either binary override these values.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/aatrey56/fpl-monthly-standings/internal/model"
)

const (
	DefaultBaseURL  = "https://fantasy.premierleague.com/api"
	DefaultLeagueID = 610588
)

type Config struct {
	// Upstream
	BaseURL           string
	LeagueID          int
	IdentityMode      model.IdentityMode
	UserAgent         string
	HTTPTimeout       time.Duration
	RequestsPerSecond float64
	MaxStandingsPages int

	// Presentation
	Title string

	// HTTP server
	Addr             string
	CORSAllowOrigins []string

	// Logging
	LogLevel  string
	LogFormat string
}

// Load reads an optional .env file and then the environment. Unparseable
// numbers keep their defaults; an unknown identity mode is an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	mode, err := model.ParseIdentityMode(envOr("FPL_IDENTITY_MODE", string(model.IdentityTeam)))
	if err != nil {
		return nil, fmt.Errorf("FPL_IDENTITY_MODE: %w", err)
	}

	return &Config{
		BaseURL:           strings.TrimRight(envOr("FPL_BASE_URL", DefaultBaseURL), "/"),
		LeagueID:          envInt("FPL_LEAGUE_ID", DefaultLeagueID),
		IdentityMode:      mode,
		UserAgent:         envOr("FPL_USER_AGENT", "fpl-monthly-standings/1.0"),
		HTTPTimeout:       time.Duration(envInt("FPL_HTTP_TIMEOUT_SECONDS", 20)) * time.Second,
		RequestsPerSecond: envFloat("FPL_REQUESTS_PER_SECOND", 4),
		MaxStandingsPages: envInt("FPL_MAX_STANDINGS_PAGES", 20),

		Title: envOr("DASHBOARD_TITLE", ""),

		Addr:             envOr("API_ADDR", ":8080"),
		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{"*"}),

		LogLevel:  envOr("LOG_LEVEL", "info"),
		LogFormat: envOr("LOG_FORMAT", "text"),
	}, nil
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
