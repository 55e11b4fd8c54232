// Package config handles loading and managing Grahabala configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for Grahabala.
type Config struct {
	Ephemeris EphemerisConfig `yaml:"ephemeris"`
	Output    OutputConfig    `yaml:"output"`
	Storage   StorageConfig   `yaml:"storage"`
	Database  DatabaseConfig  `yaml:"database"`
}

// EphemerisConfig controls where sidereal longitudes come from.
type EphemerisConfig struct {
	// Source selects the provider: "file", "http", or "static".
	Source string `yaml:"source"`
	// Endpoint is the positions service URL for the http provider.
	Endpoint string `yaml:"endpoint"`
	// Timeout is the http provider timeout in seconds.
	Timeout int `yaml:"timeout"`
	// Ayanamsa names the sidereal convention the provider uses. Informational:
	// the engine never applies a correction itself.
	Ayanamsa string `yaml:"ayanamsa"`
	// Longitudes are the fixed positions for the static provider, degrees
	// ordered [Sun..Saturn, Ascendant].
	Longitudes []float64 `yaml:"longitudes"`
}

// OutputConfig controls rendering defaults for the CLI.
type OutputConfig struct {
	Format string `yaml:"format"` // text or json
}

// StorageConfig selects the report blob storage backend.
type StorageConfig struct {
	Backend   string `yaml:"backend"` // local, s3, or gcs
	LocalPath string `yaml:"local_path"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"` // S3-compatible endpoint override (MinIO)
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// DatabaseConfig holds the registry database settings for the daemon.
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Ephemeris: EphemerisConfig{
			Source:   "file",
			Timeout:  30,
			Ayanamsa: "lahiri",
		},
		Output: OutputConfig{
			Format: "text",
		},
		Storage: StorageConfig{
			Backend: "local",
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// FindConfigFile looks for .grahabala/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".grahabala", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// CacheDir returns the local cache directory.
// Uses ~/.cache/grahabala/ to avoid polluting working directories.
func CacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to temp dir if HOME isn't available
		home = os.TempDir()
	}
	return filepath.Join(home, ".cache", "grahabala")
}

// ReportDir returns the directory where the CLI persists computed reports.
func ReportDir() string {
	return filepath.Join(CacheDir(), "reports")
}

// ChartDir returns the directory where the CLI persists chart inputs.
func ChartDir() string {
	return filepath.Join(CacheDir(), "charts")
}
