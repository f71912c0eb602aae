package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/yeremiapane/menu-app/services"
)

const defaultSnapshotSecret = "menu-app-dev-snapshot-secret"

type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	GinMode  string `env:"GIN_MODE" envDefault:"debug"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	SnapshotSecret string        `env:"SNAPSHOT_SECRET" envDefault:"menu-app-dev-snapshot-secret"`
	SnapshotTTL    time.Duration `env:"SNAPSHOT_TTL" envDefault:"24h"`

	IncludeSamples bool   `env:"MENU_INCLUDE_SAMPLES" envDefault:"false"`
	SeedFile       string `env:"MENU_SEED_FILE"`
	GroupByCourse  bool   `env:"MENU_GROUP_BY_COURSE" envDefault:"true"`

	RateLimit     int    `env:"RATE_LIMIT" envDefault:"50"`
	RateInterval  int    `env:"RATE_INTERVAL" envDefault:"1"`
	ChangesPerMin int    `env:"MENU_CHANGES_PER_MINUTE" envDefault:"120"`
	ChangesBurst  int    `env:"MENU_CHANGES_BURST" envDefault:"20"`
	CORSOrigin    string `env:"CORS_ORIGIN" envDefault:"http://127.0.0.1:5500"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// UsesDefaultSecret reports whether snapshot tokens are signed with the built-in development key.
func (c *Config) UsesDefaultSecret() bool {
	return c.SnapshotSecret == defaultSnapshotSecret
}

// StoreConfig builds the seed for new sessions, reading MENU_SEED_FILE when set.
func (c *Config) StoreConfig() (services.StoreConfig, error) {
	storeCfg := services.StoreConfig{IncludeSamples: c.IncludeSamples}
	if c.SeedFile == "" {
		return storeCfg, nil
	}

	entries, err := services.LoadSeedFile(c.SeedFile)
	if err != nil {
		return services.StoreConfig{}, err
	}
	storeCfg.InitialEntries = entries
	return storeCfg, nil
}

func (c *Config) ViewConfig() services.ViewConfig {
	return services.ViewConfig{GroupByCourse: c.GroupByCourse}
}
