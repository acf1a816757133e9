package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the main configuration for photosort.
type Config struct {
	BaseDir    string           `toml:"base_dir"`
	LogDir     string           `toml:"log_dir"`
	Defaults   DefaultsConfig   `toml:"defaults"`
	Database   DatabaseConfig   `toml:"database"`
	Target     TargetConfig     `toml:"target"`
	Filesystem FilesystemConfig `toml:"filesystem"`
}

// DefaultsConfig holds the values used when a sort flag is not given.
type DefaultsConfig struct {
	GroupBy    string `toml:"group_by"`    // "year", "month" or "date"
	DateFormat string `toml:"date_format"` // strftime pattern for renamed files
	Rename     bool   `toml:"rename"`
}

// FilesystemConfig holds filesystem-related settings.
type FilesystemConfig struct {
	Ignore []string `toml:"ignore"`
}

// DatabaseConfig represents configuration for the run journal.
// This uses a tagged union pattern - the Type field determines which other fields are relevant.
type DatabaseConfig struct {
	Type    string `toml:"type"`               // "sqlite", "memory" or "none"
	DataDir string `toml:"data_dir,omitempty"` // only used for type=sqlite
}

// TargetConfig represents configuration for where sorted files are written.
// This uses a tagged union pattern - the Type field determines which other fields are relevant.
type TargetConfig struct {
	Type string `toml:"type"` // "filesystem", "memory" or "s3"

	// S3-specific fields (only used when Type == "s3")
	S3Bucket          string `toml:"s3_bucket,omitempty"`
	S3Prefix          string `toml:"s3_prefix,omitempty"`
	S3Region          string `toml:"s3_region,omitempty"`
	S3Endpoint        string `toml:"s3_endpoint,omitempty"`
	S3AccessKeyID     string `toml:"s3_access_key_id,omitempty"`
	S3SecretAccessKey string `toml:"s3_secret_access_key,omitempty"`
}

// NewConfig creates a new Config rooted at baseDir with default settings.
func NewConfig(baseDir string) *Config {
	return &Config{
		BaseDir: baseDir,
		LogDir:  filepath.Join(baseDir, "log"),
		Defaults: DefaultsConfig{
			GroupBy:    "year",
			DateFormat: "%Y%m%d",
		},
		Database: DatabaseConfig{
			Type:    "sqlite",
			DataDir: filepath.Join(baseDir, "db"),
		},
		Target: TargetConfig{Type: "filesystem"},
	}
}

// Manager handles reading and writing configuration.
type Manager struct{}

// Read decodes a Config from the provided reader.
func (m *Manager) Read(r io.Reader) (*Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Write encodes a Config to the provided writer.
func (m *Manager) Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ReadFromFile reads a Config from the specified file path.
func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	cfg, err := m.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

// Load reads the config at path, falling back to NewConfig(baseDir) when the
// file does not exist. Fields left empty in the file take their defaults.
func Load(path, baseDir string) (*Config, error) {
	cfg, err := ReadFromFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewConfig(baseDir), nil
	}
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults(baseDir)
	return cfg, nil
}

// applyDefaults fills empty fields from NewConfig.
func (c *Config) applyDefaults(baseDir string) {
	if c.BaseDir == "" {
		c.BaseDir = baseDir
	}
	d := NewConfig(c.BaseDir)
	if c.LogDir == "" {
		c.LogDir = d.LogDir
	}
	if c.Defaults.GroupBy == "" {
		c.Defaults.GroupBy = d.Defaults.GroupBy
	}
	if c.Defaults.DateFormat == "" {
		c.Defaults.DateFormat = d.Defaults.DateFormat
	}
	if c.Database.Type == "" {
		c.Database.Type = d.Database.Type
	}
	if c.Database.Type == "sqlite" && c.Database.DataDir == "" {
		c.Database.DataDir = d.Database.DataDir
	}
	if c.Target.Type == "" {
		c.Target.Type = d.Target.Type
	}
}

// writeToFile writes a Config to the specified file path.
func writeToFile(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	if err := m.Write(f, cfg); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Init initializes a new config file at the specified path with the provided Config.
func Init(path string, cfg *Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := writeToFile(path, cfg); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}
	return nil
}
