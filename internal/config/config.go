package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/PendemixAI/vax-tracker/internal/dataset"
	"github.com/goccy/go-yaml"
)

// Common errors
var (
	ErrInvalidPort      = errors.New("PORT must be a number between 1 and 65535")
	ErrInvalidTTL       = errors.New("SESSION_TTL must be a positive duration")
	ErrInvalidRate      = errors.New("DOWNLOAD_RATE and DOWNLOAD_BURST must be positive")
	ErrInvalidCacheSize = errors.New("DATASET_CACHE_SIZE must be at least 1")
)

// Config holds runtime configuration for the tracker service.
type Config struct {
	Port        string `yaml:"port"`
	DatabaseURL string `yaml:"database_url"`

	// Seed pins every session to one dataset when set.
	Seed         *int64               `yaml:"seed"`
	ProgressMode dataset.ProgressMode `yaml:"progress_mode"`
	CacheSize    int                  `yaml:"dataset_cache_size"`

	SessionTTL     time.Duration `yaml:"session_ttl"`
	AllowedOrigins []string      `yaml:"allowed_origins"`

	DownloadRate  float64 `yaml:"download_rate"`
	DownloadBurst int     `yaml:"download_burst"`

	RegionsFile      string `yaml:"regions_file"`
	MapLocationsFile string `yaml:"map_locations_file"`

	LogLevel string `yaml:"log_level"`
	DevLog   bool   `yaml:"dev_log"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Port:         "5050",
		ProgressMode: dataset.ProgressMonotonic,
		CacheSize:    16,
		SessionTTL:   6 * time.Hour,
		AllowedOrigins: []string{
			"http://localhost:5173",
			"http://localhost:5174",
		},
		DownloadRate:  2,
		DownloadBurst: 5,
		LogLevel:      "info",
	}
}

// Load builds the configuration: defaults, then the YAML file named by
// CONFIG_FILE (if any), then environment variables.
//
// Environment variables:
//   - PORT: listen port (default: 5050)
//   - DATABASE_URL: Postgres DSN for the session store (default: in-memory store)
//   - VAX_SEED: fixed dataset seed shared by all sessions (default: per-session time seed)
//   - VAX_PROGRESS_MODE: "monotonic" or "legacy" (default: monotonic)
//   - DATASET_CACHE_SIZE: number of seeds kept in memory (default: 16)
//   - SESSION_TTL: session lifetime, e.g. "6h"
//   - ALLOWED_ORIGINS: comma-separated CORS allow-list
//   - DOWNLOAD_RATE / DOWNLOAD_BURST: per-client CSV download limit
//   - REGIONS_FILE / MAP_LOCATIONS_FILE: overrides for the embedded tables
//   - LOG_LEVEL: debug, info, warn, error; LOG_DEV=true for console output
func Load() (Config, error) {
	cfg := Default()
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.mergeEnv(); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() error {
	if v := env("PORT"); v != "" {
		c.Port = v
	}
	if v := env("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := env("VAX_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid VAX_SEED %q: %w", v, err)
		}
		c.Seed = &seed
	}
	if v := env("VAX_PROGRESS_MODE"); v != "" {
		mode, err := dataset.ParseProgressMode(v)
		if err != nil {
			return fmt.Errorf("invalid VAX_PROGRESS_MODE: %w", err)
		}
		c.ProgressMode = mode
	}
	if v := env("DATASET_CACHE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid DATASET_CACHE_SIZE %q: %w", v, err)
		}
		c.CacheSize = n
	}
	if v := env("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid SESSION_TTL %q: %w", v, err)
		}
		c.SessionTTL = d
	}
	if v := env("ALLOWED_ORIGINS"); v != "" {
		c.AllowedOrigins = splitList(v)
	}
	if v := env("DOWNLOAD_RATE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid DOWNLOAD_RATE %q: %w", v, err)
		}
		c.DownloadRate = f
	}
	if v := env("DOWNLOAD_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid DOWNLOAD_BURST %q: %w", v, err)
		}
		c.DownloadBurst = n
	}
	if v := env("REGIONS_FILE"); v != "" {
		c.RegionsFile = v
	}
	if v := env("MAP_LOCATIONS_FILE"); v != "" {
		c.MapLocationsFile = v
	}
	if v := env("LOG_LEVEL"); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := env("LOG_DEV"); v != "" {
		c.DevLog, _ = strconv.ParseBool(v)
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return ErrInvalidPort
	}
	if c.SessionTTL <= 0 {
		return ErrInvalidTTL
	}
	if c.DownloadRate <= 0 || c.DownloadBurst < 1 {
		return ErrInvalidRate
	}
	if c.CacheSize < 1 {
		return ErrInvalidCacheSize
	}
	if _, err := dataset.ParseProgressMode(string(c.ProgressMode)); err != nil {
		return err
	}
	return nil
}

// UsesDatabase reports whether sessions should be kept in Postgres.
func (c Config) UsesDatabase() bool { return c.DatabaseURL != "" }

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
