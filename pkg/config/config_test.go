package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Ephemeris.Source != "file" {
		t.Errorf("expected default source 'file', got %q", cfg.Ephemeris.Source)
	}
	if cfg.Ephemeris.Timeout != 30 {
		t.Errorf("expected default timeout 30, got %d", cfg.Ephemeris.Timeout)
	}
	if cfg.Ephemeris.Ayanamsa != "lahiri" {
		t.Errorf("expected default ayanamsa 'lahiri', got %q", cfg.Ephemeris.Ayanamsa)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("expected default format 'text', got %q", cfg.Output.Format)
	}
	if cfg.Storage.Backend != "local" {
		t.Errorf("expected default backend 'local', got %q", cfg.Storage.Backend)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "non-existent file returns defaults",
			yaml: "", // signal: don't create a file
			check: func(t *testing.T, cfg *Config) {
				if cfg.Ephemeris.Source != "file" {
					t.Errorf("expected default source, got %q", cfg.Ephemeris.Source)
				}
			},
		},
		{
			name: "valid YAML overrides defaults",
			yaml: `
ephemeris:
  source: http
  endpoint: "https://positions.example.com/v1"
  timeout: 10
output:
  format: json
storage:
  backend: s3
  bucket: grahabala-reports
  region: ap-south-1
database:
  url: "postgres://localhost:5432/grahabala?sslmode=disable"
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Ephemeris.Source != "http" {
					t.Errorf("expected source 'http', got %q", cfg.Ephemeris.Source)
				}
				if cfg.Ephemeris.Endpoint != "https://positions.example.com/v1" {
					t.Errorf("unexpected endpoint %q", cfg.Ephemeris.Endpoint)
				}
				if cfg.Ephemeris.Timeout != 10 {
					t.Errorf("expected timeout 10, got %d", cfg.Ephemeris.Timeout)
				}
				if cfg.Output.Format != "json" {
					t.Errorf("expected format 'json', got %q", cfg.Output.Format)
				}
				if cfg.Storage.Backend != "s3" || cfg.Storage.Bucket != "grahabala-reports" {
					t.Errorf("unexpected storage config %+v", cfg.Storage)
				}
				if !strings.Contains(cfg.Database.URL, "grahabala") {
					t.Errorf("unexpected database url %q", cfg.Database.URL)
				}
			},
		},
		{
			name: "static source with fixed longitudes",
			yaml: `
ephemeris:
  source: static
  longitudes: [10, 40, 70, 100, 130, 160, 190, 220]
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Ephemeris.Source != "static" {
					t.Errorf("expected source 'static', got %q", cfg.Ephemeris.Source)
				}
				if len(cfg.Ephemeris.Longitudes) != 8 || cfg.Ephemeris.Longitudes[7] != 220 {
					t.Errorf("unexpected longitudes %v", cfg.Ephemeris.Longitudes)
				}
			},
		},
		{
			name:    "invalid YAML returns error",
			yaml:    "ephemeris: [not: a: mapping",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			if tt.yaml != "" {
				if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
					t.Fatalf("write config: %v", err)
				}
			}

			cfg, err := Load(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cfgDir := filepath.Join(root, ".grahabala")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	cfgPath := filepath.Join(cfgDir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("output:\n  format: json\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	found := FindConfigFile(nested)
	if found != cfgPath {
		t.Errorf("FindConfigFile = %q, want %q", found, cfgPath)
	}
}
