// Package config loads runtime configuration from the environment
package config

import (
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-table/internal/confirm"
	"github.com/KirkDiggler/rpg-table/internal/engine/dice"
	"github.com/KirkDiggler/rpg-table/internal/errors"
)

// Storage backends
const (
	StorageFile  = "file"
	StorageRedis = "redis"
)

// Config holds every runtime setting. Each field maps to an RPG_* variable.
type Config struct {
	DataDir        string `env:"RPG_DATA_DIR" envDefault:"."`
	ProfilesFile   string `env:"RPG_PROFILES_FILE" envDefault:"database.json"`
	InitiativeFile string `env:"RPG_INITIATIVE_FILE" envDefault:"initiative.json"`

	Storage       string `env:"RPG_STORAGE" envDefault:"file"`
	RedisAddr     string `env:"RPG_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"RPG_REDIS_PASSWORD"`
	RedisDB       int    `env:"RPG_REDIS_DB" envDefault:"0"`

	Prefix         string        `env:"RPG_PREFIX" envDefault:"pd."`
	ConfirmTimeout time.Duration `env:"RPG_CONFIRM_TIMEOUT" envDefault:"30s"`
	LogLevel       string        `env:"RPG_LOG_LEVEL" envDefault:"info"`

	MaxRepeat int `env:"RPG_MAX_REPEAT" envDefault:"20"`
	MaxDice   int `env:"RPG_MAX_DICE" envDefault:"100"`
	MaxSides  int `env:"RPG_MAX_SIDES" envDefault:"1000"`
}

// Parse reads the environment without validating, so callers can apply
// overrides first
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	return cfg, nil
}

// Load parses the environment and validates the result
func Load() (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when no variables are set
func Default() *Config {
	return &Config{
		DataDir:        ".",
		ProfilesFile:   "database.json",
		InitiativeFile: "initiative.json",
		Storage:        StorageFile,
		RedisAddr:      "localhost:6379",
		Prefix:         "pd.",
		ConfirmTimeout: confirm.DefaultTimeout,
		LogLevel:       "info",
		MaxRepeat:      dice.DefaultMaxRepeat,
		MaxDice:        dice.DefaultMaxDice,
		MaxSides:       dice.DefaultMaxSides,
	}
}

// Validate checks every field
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("Storage", c.Storage, []string{StorageFile, StorageRedis}, vb)
	errors.ValidateEnum("LogLevel", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateRequired("Prefix", strings.TrimSpace(c.Prefix), vb)

	switch c.Storage {
	case StorageFile:
		errors.ValidateRequired("ProfilesFile", c.ProfilesFile, vb)
		errors.ValidateRequired("InitiativeFile", c.InitiativeFile, vb)
	case StorageRedis:
		errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	}

	if c.ConfirmTimeout <= 0 {
		vb.Field("ConfirmTimeout", "must be positive")
	}
	errors.ValidateRange("MaxRepeat", c.MaxRepeat, 1, 1000, vb)
	errors.ValidateRange("MaxDice", c.MaxDice, 1, 10000, vb)
	errors.ValidateRange("MaxSides", c.MaxSides, 1, 1000000, vb)

	return vb.Build()
}

// ProfilesPath is the profiles snapshot file
func (c *Config) ProfilesPath() string {
	return filepath.Join(c.DataDir, c.ProfilesFile)
}

// InitiativePath is the initiative snapshot file
func (c *Config) InitiativePath() string {
	return filepath.Join(c.DataDir, c.InitiativeFile)
}

// Limits returns the roll limits for the dice engine
func (c *Config) Limits() dice.Limits {
	return dice.Limits{
		MaxRepeat: c.MaxRepeat,
		MaxDice:   c.MaxDice,
		MaxSides:  c.MaxSides,
	}
}

// SlogLevel converts LogLevel for slog
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
