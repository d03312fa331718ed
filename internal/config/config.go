// Package config loads and persists the paginator CLI configuration.
// Configuration lives at ~/.paginator/config.yaml and may be overridden
// per-invocation via PAGINATOR_* environment variables and CLI flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

// Built-in defaults.
const (
	DefaultPerPage = 25
	DefaultFormat  = "table"

	configDirName  = ".paginator"
	configFileName = "config.yaml"
)

// Output formats accepted by Defaults.Format.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Environment variable overrides.
const (
	EnvHome      = "PAGINATOR_HOME"
	EnvPerPage   = "PAGINATOR_PER_PAGE"
	EnvFormat    = "PAGINATOR_FORMAT"
	EnvLogLevel  = "PAGINATOR_LOG_LEVEL"
	EnvLogFormat = "PAGINATOR_LOG_FORMAT"
)

// Validation errors.
var (
	ErrInvalidPerPage = errors.New("defaults.per_page must be >= 1")
	ErrInvalidFormat  = errors.New("defaults.format must be 'table' or 'json'")
)

// Config is the root configuration document.
type Config struct {
	Defaults Defaults `yaml:"defaults"`
	Logging  Logging  `yaml:"logging"`
}

// Defaults holds the paging defaults applied when flags are omitted.
type Defaults struct {
	// PerPage is the default page size for pages, slice, and browse.
	PerPage int `yaml:"per_page"`

	// Format is the default output format: table or json.
	Format string `yaml:"format"`
}

// Logging holds logger settings.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// New returns a Config populated with built-in defaults.
func New() *Config {
	return &Config{
		Defaults: Defaults{
			PerPage: DefaultPerPage,
			Format:  DefaultFormat,
		},
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultPath returns the global config file path, honoring PAGINATOR_HOME
// for test isolation.
func DefaultPath() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return filepath.Join(home, configDirName, configFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Load reads the config file at path. An empty path means the default
// location. A missing file is not an error — built-in defaults are
// returned, so the CLI works without any setup.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg := New()
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the user's own flag or home dir.
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the parent directory as needed. An
// empty path means the default location.
func (c *Config) Save(path string) error {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays PAGINATOR_* environment variables onto cfg. Malformed
// numeric values are ignored rather than failing the whole invocation.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvPerPage); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Defaults.PerPage = n
		}
	}
	if v, ok := lookupEnv(EnvFormat); ok && v != "" {
		c.Defaults.Format = v
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
}

// Validate checks the config for out-of-domain values.
func (c *Config) Validate() error {
	if c.Defaults.PerPage < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPerPage, c.Defaults.PerPage)
	}
	if c.Defaults.Format != FormatTable && c.Defaults.Format != FormatJSON {
		return fmt.Errorf("%w: got %q", ErrInvalidFormat, c.Defaults.Format)
	}
	return nil
}

// globalConfig is the process-wide config loaded once by the root command.
var (
	globalConfig   *Config      //nolint:gochecknoglobals // Set once at startup by the root command.
	globalConfigMu sync.RWMutex //nolint:gochecknoglobals // Guards globalConfig.
)

// SetGlobalConfig stores the config for access by subcommands.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// GetGlobalConfig returns the stored config, or built-in defaults if the
// root command has not loaded one yet.
func GetGlobalConfig() *Config {
	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	if globalConfig == nil {
		return New()
	}
	return globalConfig
}

// ResetGlobalConfigForTest clears the stored config between tests.
func ResetGlobalConfigForTest() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
}
