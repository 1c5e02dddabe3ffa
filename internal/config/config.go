// Package config loads arcade settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/aaronzipp/classroom-arcade/internal/game"
)

// Environment keys
const (
	EnvMaxMisses = "ARCADE_MAX_MISSES"
	EnvWordsFile = "ARCADE_WORDS_FILE"
	EnvSeed      = "ARCADE_SEED"
	EnvLogFile   = "ARCADE_LOG_FILE"
	EnvDebug     = "DEBUG"

	DefaultLogFile = "arcade.log"
)

// Config holds runtime settings
type Config struct {
	MaxMisses int    // hangman miss limit, 1..game.GallowsStages
	WordsFile string // optional JSON word list replacing the built-in pool
	Seed      int64
	Seeded    bool // Seed was set explicitly
	LogFile   string
	Debug     bool
}

// Load reads .env files (if present) and then the process environment
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only
func FromEnv() (*Config, error) {
	cfg := &Config{
		MaxMisses: game.DefaultMaxMisses,
		WordsFile: os.Getenv(EnvWordsFile),
		LogFile:   DefaultLogFile,
		Debug:     os.Getenv(EnvDebug) != "",
	}

	if v := os.Getenv(EnvMaxMisses); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", EnvMaxMisses, err)
		}
		if n < 1 || n > game.GallowsStages {
			return nil, fmt.Errorf("%s must be between 1 and %d, got %d", EnvMaxMisses, game.GallowsStages, n)
		}
		cfg.MaxMisses = n
	}

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
		cfg.Seeded = true
	}

	if v, ok := os.LookupEnv(EnvLogFile); ok {
		cfg.LogFile = v
	}

	return cfg, nil
}
