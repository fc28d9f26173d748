package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"invalid", "soon", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want text", cfg.Log.Format)
	}
	if cfg.Store.Path != "lineage.db" {
		t.Errorf("Store.Path = %q, want lineage.db", cfg.Store.Path)
	}
	if cfg.Store.Timeout.Duration != 5*time.Minute {
		t.Errorf("Store.Timeout = %v, want 5m", cfg.Store.Timeout.Duration)
	}
	if cfg.Parse.Verbose {
		t.Error("Parse.Verbose should default to false")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("LINEAGE_TEST_DIR", "/data/trees")
	path := writeConfig(t, `
[parse]
verbose = true

[log]
level = "debug"

[store]
path = "${LINEAGE_TEST_DIR}/tree.db"
timeout = "30s"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Parse.Verbose {
		t.Error("Parse.Verbose = false, want true")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want default text", cfg.Log.Format)
	}
	if cfg.Store.Path != "/data/trees/tree.db" {
		t.Errorf("Store.Path = %q, want expanded path", cfg.Store.Path)
	}
	if cfg.Store.Timeout.Duration != 30*time.Second {
		t.Errorf("Store.Timeout = %v, want 30s", cfg.Store.Timeout.Duration)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
	if _, err := Load(writeConfig(t, "[log\nlevel = ")); err == nil {
		t.Error("Load() of invalid TOML should fail")
	}
}

func TestDiscover(t *testing.T) {
	t.Run("env var", func(t *testing.T) {
		t.Setenv(EnvVar, writeConfig(t, "[log]\nformat = \"json\"\n"))
		cfg, err := Discover()
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if cfg.Log.Format != "json" {
			t.Errorf("Log.Format = %q, want json", cfg.Log.Format)
		}
	})

	t.Run("home directory", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv(EnvVar, "")
		t.Setenv("HOME", home)
		dir := filepath.Join(home, ".config", "lineage")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[parse]\nverbose = true\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		cfg, err := Discover()
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if !cfg.Parse.Verbose {
			t.Error("Parse.Verbose = false, want true from home config")
		}
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv(EnvVar, "")
		t.Setenv("HOME", t.TempDir())
		cfg, err := Discover()
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if cfg.Log.Level != "warn" {
			t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
		}
	})
}
