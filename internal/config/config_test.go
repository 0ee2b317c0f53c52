package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/PendemixAI/vax-tracker/internal/config"
	"github.com/PendemixAI/vax-tracker/internal/dataset"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CONFIG_FILE", "PORT", "DATABASE_URL", "VAX_SEED", "VAX_PROGRESS_MODE", "DATASET_CACHE_SIZE",
		"SESSION_TTL", "ALLOWED_ORIGINS", "DOWNLOAD_RATE", "DOWNLOAD_BURST", "REGIONS_FILE",
		"MAP_LOCATIONS_FILE", "LOG_LEVEL", "LOG_DEV",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "5050" || cfg.Seed != nil || cfg.ProgressMode != dataset.ProgressMonotonic {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.UsesDatabase() {
		t.Error("expected memory store by default")
	}
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("VAX_SEED", "1234")
	t.Setenv("VAX_PROGRESS_MODE", "legacy")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("DATABASE_URL", "postgres://localhost/vax")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" || cfg.Seed == nil || *cfg.Seed != 1234 {
		t.Errorf("unexpected port/seed: %+v", cfg)
	}
	if cfg.ProgressMode != dataset.ProgressLegacy {
		t.Errorf("expected legacy mode, got %s", cfg.ProgressMode)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("expected 30m TTL, got %s", cfg.SessionTTL)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("unexpected origins: %v", cfg.AllowedOrigins)
	}
	if !cfg.UsesDatabase() {
		t.Error("expected database store")
	}
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "tracker.yaml")
	doc := "port: \"9090\"\nseed: 77\ndataset_cache_size: 3\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("DATASET_CACHE_SIZE", "5")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" || cfg.Seed == nil || *cfg.Seed != 77 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.CacheSize != 5 {
		t.Errorf("expected env to override file, got cache size %d", cfg.CacheSize)
	}
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("VAX_SEED", "not-a-number")
	if _, err := config.Load(); err == nil {
		t.Error("expected error for bad seed")
	}

	clearEnv(t)
	t.Setenv("PORT", "70000")
	if _, err := config.Load(); !errors.Is(err, config.ErrInvalidPort) {
		t.Errorf("expected ErrInvalidPort, got %v", err)
	}

	clearEnv(t)
	t.Setenv("DOWNLOAD_BURST", "0")
	if _, err := config.Load(); !errors.Is(err, config.ErrInvalidRate) {
		t.Errorf("expected ErrInvalidRate, got %v", err)
	}
}
