// Package config loads game settings from .env files and the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvPlayer1   = "CRIBBAGE_PLAYER1"
	EnvPlayer2   = "CRIBBAGE_PLAYER2"
	EnvDealer    = "CRIBBAGE_DEALER"
	EnvWinScore  = "CRIBBAGE_WIN_SCORE"
	EnvSeed      = "CRIBBAGE_SEED"
	EnvLogLevel  = "CRIBBAGE_LOG_LEVEL"
	defaultLevel = slog.LevelInfo
)

// Config holds the settings of a session. Dealer is a player index (0 or 1).
type Config struct {
	Players  [2]string
	Dealer   int
	WinScore int
	Seed     []byte // nil for an unpredictable shuffle
	LogLevel slog.Level
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Players:  [2]string{"Player 1", "Player 2"},
		Dealer:   0,
		WinScore: 121,
		LogLevel: defaultLevel,
	}
}

// Load reads the given .env files (".env" when none is given) into the
// process environment without overriding variables already set, then builds
// the configuration from the environment. Missing files are ignored.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// Parse builds a configuration from the key/value pairs of a .env formatted
// string without touching the process environment.
func Parse(dotenv string) (Config, error) {
	env, err := godotenv.Unmarshal(dotenv)
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return FromEnv(func(key string) string { return env[key] })
}

// FromEnv builds a configuration from getenv. Unset variables keep their
// defaults.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()
	if v := strings.TrimSpace(getenv(EnvPlayer1)); v != "" {
		cfg.Players[0] = v
	}
	if v := strings.TrimSpace(getenv(EnvPlayer2)); v != "" {
		cfg.Players[1] = v
	}
	if v := strings.TrimSpace(getenv(EnvDealer)); v != "" {
		switch v {
		case "1":
			cfg.Dealer = 0
		case "2":
			cfg.Dealer = 1
		default:
			return Config{}, fmt.Errorf("%s must be 1 or 2, got %q", EnvDealer, v)
		}
	}
	if v := strings.TrimSpace(getenv(EnvWinScore)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || (n != 61 && n != 121) {
			return Config{}, fmt.Errorf("%s must be 61 or 121, got %q", EnvWinScore, v)
		}
		cfg.WinScore = n
	}
	if v := getenv(EnvSeed); v != "" {
		cfg.Seed = []byte(v)
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}
	return cfg, nil
}
