package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	ShoeCrypto = "crypto"
	ShoeSeeded = "seeded"

	StyleModern  = "modern"
	StyleClassic = "classic"
)

// Config holds the trainer settings read from the environment.
type Config struct {
	Seed          int64         `env:"BACCARAT_SEED"            envDefault:"0"`
	Shoe          string        `env:"BACCARAT_SHOE"            envDefault:"crypto"`
	CardStyle     string        `env:"BACCARAT_CARD_STYLE"      envDefault:"modern"`
	HistorySize   int           `env:"BACCARAT_HISTORY_SIZE"    envDefault:"24"`
	NextHandDelay time.Duration `env:"BACCARAT_NEXT_HAND_DELAY" envDefault:"2500ms"`
	PrefsPath     string        `env:"BACCARAT_PREFS_PATH"`
	LogLevel      string        `env:"BACCARAT_LOG_LEVEL"       envDefault:"info"`
}

// Load parses the environment into a Config, fills the preference path and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.PrefsPath == "" {
		cfg.PrefsPath = DefaultPrefsPath()
	}
	cfg.Shoe = strings.ToLower(strings.TrimSpace(cfg.Shoe))
	cfg.CardStyle = strings.ToLower(strings.TrimSpace(cfg.CardStyle))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPrefsPath returns ~/.baccarat-master/prefs.db, or a path in the
// working directory when the home directory is unknown.
func DefaultPrefsPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".baccarat-master", "prefs.db")
	}
	return filepath.Join(home, ".baccarat-master", "prefs.db")
}

func (c Config) Validate() error {
	switch c.Shoe {
	case ShoeCrypto, ShoeSeeded:
	default:
		return fmt.Errorf("BACCARAT_SHOE must be %q or %q, got %q", ShoeCrypto, ShoeSeeded, c.Shoe)
	}
	switch c.CardStyle {
	case StyleModern, StyleClassic:
	default:
		return fmt.Errorf("BACCARAT_CARD_STYLE must be %q or %q, got %q", StyleModern, StyleClassic, c.CardStyle)
	}
	if c.HistorySize <= 0 {
		return fmt.Errorf("BACCARAT_HISTORY_SIZE must be > 0")
	}
	if c.NextHandDelay < 0 {
		return fmt.Errorf("BACCARAT_NEXT_HAND_DELAY must be >= 0")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("BACCARAT_LOG_LEVEL must be debug, info, warn or error, got %q", c.LogLevel)
	}
	return nil
}

// UseSeededShoe reports whether hands must be reproducible: either the seeded
// shoe was chosen or a non-zero seed was given.
func (c Config) UseSeededShoe() bool {
	return c.Shoe == ShoeSeeded || c.Seed != 0
}
