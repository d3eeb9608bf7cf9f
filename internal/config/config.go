// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/resume-studio/internal/types"
)

// Storage backends
const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or environment variables.
type Config struct {
	// Storage
	Storage       string `json:"storage,omitempty"`        // memory, file or postgres
	DataDir       string `json:"data_dir,omitempty"`       // Directory for the file backend
	DatabaseURL   string `json:"database_url,omitempty"`   // PostgreSQL connection URL
	QuotaBytes    int    `json:"quota_bytes,omitempty"`    // Largest value a slot may hold
	CollectionKey string `json:"collection_key,omitempty"` // Slot holding the collection
	LegacyKey     string `json:"legacy_key,omitempty"`     // Slot holding a pre-collection document

	// Documents
	DefaultTemplate string            `json:"default_template,omitempty"` // Template for new documents
	Profile         types.UserProfile `json:"profile,omitempty"`          // Stamped into new documents

	// Logging
	LogLevel  string `json:"log_level,omitempty"`  // debug, info, warn or error
	LogFormat string `json:"log_format,omitempty"` // text or json

	// Preview server
	Port         int    `json:"port,omitempty"`
	PollInterval string `json:"poll_interval,omitempty"` // How often to look for writes by other processes, e.g. "2s"

	// Export
	ChromePath string `json:"chrome_path,omitempty"` // Headless Chrome binary for PDF export
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Storage:         StorageFile,
		DataDir:         defaultDataDir(),
		QuotaBytes:      5 * 1024 * 1024,
		CollectionKey:   "cv_collection_data",
		LegacyKey:       "cv_backup_data",
		DefaultTemplate: types.CanonicalTemplate,
		LogLevel:        "info",
		LogFormat:       "text",
		Port:            8080,
		PollInterval:    "2s",
	}
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "resume-studio")
	}
	return ".resume-studio"
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Load reads path when it is set, then fills the rest from the environment
// and the defaults. The result is validated.
func Load(path string) (Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return Config{}, err
	}
	return merged, nil
}

// ApplyEnv fills empty fields from environment variables
func (c *Config) ApplyEnv() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.DataDir == "" {
		c.DataDir = os.Getenv("RESUME_DATA_DIR")
	}
	if c.Storage == "" {
		c.Storage = os.Getenv("RESUME_STORAGE")
	}
	if c.ChromePath == "" {
		c.ChromePath = os.Getenv("CHROME_PATH")
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	switch c.Storage {
	case "", StorageMemory, StorageFile:
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config error: 'database_url' is required for postgres storage")
		}
	default:
		return fmt.Errorf("config error: unknown storage %q (want memory, file or postgres)", c.Storage)
	}

	if c.QuotaBytes < 0 {
		return fmt.Errorf("config error: 'quota_bytes' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.CollectionKey != "" && c.CollectionKey == c.LegacyKey {
		return fmt.Errorf("config error: 'collection_key' and 'legacy_key' must differ")
	}
	if c.DefaultTemplate != "" && !types.IsKnownTemplate(c.DefaultTemplate) {
		return fmt.Errorf("config error: unknown default_template %q", c.DefaultTemplate)
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config error: unknown log_level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("config error: unknown log_format %q", c.LogFormat)
	}

	if c.PollInterval != "" {
		if _, err := c.PollDuration(); err != nil {
			return err
		}
	}
	return nil
}

// PollDuration parses PollInterval
func (c *Config) PollDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.PollInterval)
	if err != nil {
		return 0, fmt.Errorf("config error: invalid poll_interval %q: %w", c.PollInterval, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("config error: 'poll_interval' must be positive")
	}
	return d, nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Storage == "" {
		result.Storage = defaults.Storage
	}
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.CollectionKey == "" {
		result.CollectionKey = defaults.CollectionKey
	}
	if result.LegacyKey == "" {
		result.LegacyKey = defaults.LegacyKey
	}
	if result.DefaultTemplate == "" {
		result.DefaultTemplate = defaults.DefaultTemplate
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}
	if result.PollInterval == "" {
		result.PollInterval = defaults.PollInterval
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.Profile == (types.UserProfile{}) {
		result.Profile = defaults.Profile
	}

	// Int fields: use default if zero
	if result.QuotaBytes == 0 {
		result.QuotaBytes = defaults.QuotaBytes
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	return result
}
