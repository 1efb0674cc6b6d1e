// ABOUTME: Application configuration from .env and environment variables
// ABOUTME: Handles latency scaling and the XDG-located seed override directory
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

// Config holds runtime settings for the application.
type Config struct {
	// LatencyScale multiplies every simulated service delay.
	// 0 disables simulated latency entirely.
	LatencyScale float64

	// SeedDir is a directory whose JSON files override the bundled
	// seed snapshots. Empty means bundled data only.
	SeedDir string
}

// DefaultSeedDir returns the XDG-compliant location checked for seed
// overrides when PIPELINEPRO_SEED_DIR is not set.
func DefaultSeedDir() string {
	return filepath.Join(xdg.DataHome, "pipelinepro", "seed")
}

// Load reads configuration from an optional .env file and the
// environment. Environment variables:
//   - PIPELINEPRO_LATENCY_SCALE (float, default 1.0; 0 disables delays)
//   - PIPELINEPRO_SEED_DIR (path, default XDG data dir if it exists)
func Load() *Config {
	// Missing .env is fine; it is purely a convenience.
	_ = godotenv.Load()

	cfg := &Config{LatencyScale: 1.0}

	if v := os.Getenv("PIPELINEPRO_LATENCY_SCALE"); v != "" {
		if scale, err := strconv.ParseFloat(v, 64); err == nil && scale >= 0 {
			cfg.LatencyScale = scale
		}
	}

	if v := os.Getenv("PIPELINEPRO_SEED_DIR"); v != "" {
		cfg.SeedDir = v
	} else if dir := DefaultSeedDir(); dirExists(dir) {
		cfg.SeedDir = dir
	}

	return cfg
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
