package app

import (
	"fmt"
	"os"
	"path/filepath"

	"photosort/internal/config"
)

// Defaults are the application paths used when nothing is configured.
type Defaults struct {
	ConfigPath string
	BaseDir    string
	LogDir     string
}

// GetDefaults returns application default paths, checking environment variables first.
// Environment variables:
//   - PHOTOSORT_CONFIG_PATH: config file location (default: ~/.config/photosort.toml)
//   - PHOTOSORT_HOME: base directory for the journal and logs (default: ~/.local/share/photosort)
func GetDefaults() (*Defaults, error) {
	configPath, err := envOrHome("PHOTOSORT_CONFIG_PATH", ".config", "photosort.toml")
	if err != nil {
		return nil, err
	}

	baseDir, err := envOrHome("PHOTOSORT_HOME", ".local", "share", "photosort")
	if err != nil {
		return nil, err
	}

	return &Defaults{
		ConfigPath: configPath,
		BaseDir:    baseDir,
		LogDir:     filepath.Join(baseDir, "log"),
	}, nil
}

// LoadConfig reads the config file at configPath, or the default location
// when configPath is empty. A missing file yields the default config.
func LoadConfig(configPath string) (*config.Config, error) {
	d, err := GetDefaults()
	if err != nil {
		return nil, err
	}
	if configPath == "" {
		configPath = d.ConfigPath
	}
	return config.Load(configPath, d.BaseDir)
}

// envOrHome returns the value of env if set, else the path elems joined under
// the user's home directory.
func envOrHome(env string, elems ...string) (string, error) {
	if path := os.Getenv(env); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(append([]string{homeDir}, elems...)...), nil
}
