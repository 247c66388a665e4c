package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken   string
	DiscordGuildID string

	// Database configuration
	DatabaseURL string

	// Valuation settings
	PackGemValue   float64 // gem-equivalent value of one unopened pack
	DefaultWinRate float64 // assumed win rate when a player has no profile

	// Environment
	Environment string // "development", "production", or "test"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Discord
		DiscordToken:   os.Getenv("DISCORD_TOKEN"),
		DiscordGuildID: os.Getenv("DISCORD_GUILD_ID"),

		// Database
		DatabaseURL: os.Getenv("DATABASE_URL"),

		// Valuation defaults: a pack is worth its store price in gems, and
		// an unknown player is assumed to win half their games
		PackGemValue:   200,
		DefaultWinRate: 0.5,

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if packValue := os.Getenv("PACK_GEM_VALUE"); packValue != "" {
		parsed, err := strconv.ParseFloat(packValue, 64)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("PACK_GEM_VALUE must be a positive number, got %q", packValue)
		}
		config.PackGemValue = parsed
	}
	if winRate := os.Getenv("DEFAULT_WIN_RATE"); winRate != "" {
		parsed, err := strconv.ParseFloat(winRate, 64)
		if err != nil || parsed < 0 || parsed > 1 {
			return nil, fmt.Errorf("DEFAULT_WIN_RATE must be within [0,1], got %q", winRate)
		}
		config.DefaultWinRate = parsed
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
	}

	return config, nil
}
