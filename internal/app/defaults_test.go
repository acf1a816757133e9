package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetDefaults(t *testing.T) {
	t.Run("uses env vars when set", func(t *testing.T) {
		t.Setenv("PHOTOSORT_CONFIG_PATH", "/custom/config.toml")
		t.Setenv("PHOTOSORT_HOME", "/custom/photosort")

		defaults, err := GetDefaults()
		if err != nil {
			t.Fatalf("GetDefaults() error = %v", err)
		}

		if defaults.ConfigPath != "/custom/config.toml" {
			t.Errorf("ConfigPath = %q, want %q", defaults.ConfigPath, "/custom/config.toml")
		}
		if defaults.BaseDir != "/custom/photosort" {
			t.Errorf("BaseDir = %q, want %q", defaults.BaseDir, "/custom/photosort")
		}
		if defaults.LogDir != "/custom/photosort/log" {
			t.Errorf("LogDir = %q, want %q", defaults.LogDir, "/custom/photosort/log")
		}
	})

	t.Run("falls back to home dir defaults", func(t *testing.T) {
		t.Setenv("PHOTOSORT_CONFIG_PATH", "")
		t.Setenv("PHOTOSORT_HOME", "")

		defaults, err := GetDefaults()
		if err != nil {
			t.Fatalf("GetDefaults() error = %v", err)
		}

		homeDir, _ := os.UserHomeDir()

		wantConfig := filepath.Join(homeDir, ".config", "photosort.toml")
		if defaults.ConfigPath != wantConfig {
			t.Errorf("ConfigPath = %q, want %q", defaults.ConfigPath, wantConfig)
		}

		wantBase := filepath.Join(homeDir, ".local", "share", "photosort")
		if defaults.BaseDir != wantBase {
			t.Errorf("BaseDir = %q, want %q", defaults.BaseDir, wantBase)
		}

		wantLog := filepath.Join(wantBase, "log")
		if defaults.LogDir != wantLog {
			t.Errorf("LogDir = %q, want %q", defaults.LogDir, wantLog)
		}
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file yields defaults under PHOTOSORT_HOME", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("PHOTOSORT_HOME", home)
		t.Setenv("PHOTOSORT_CONFIG_PATH", filepath.Join(home, "missing.toml"))

		cfg, err := LoadConfig("")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.BaseDir != home {
			t.Errorf("BaseDir = %q, want %q", cfg.BaseDir, home)
		}
		if cfg.LogDir != filepath.Join(home, "log") {
			t.Errorf("LogDir = %q", cfg.LogDir)
		}
	})

	t.Run("explicit path wins over env", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("PHOTOSORT_HOME", home)
		t.Setenv("PHOTOSORT_CONFIG_PATH", filepath.Join(home, "missing.toml"))

		path := filepath.Join(home, "custom.toml")
		if err := os.WriteFile(path, []byte("[defaults]\ngroup_by = \"month\"\n"), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Defaults.GroupBy != "month" {
			t.Errorf("Defaults.GroupBy = %q, want month", cfg.Defaults.GroupBy)
		}
	})
}
