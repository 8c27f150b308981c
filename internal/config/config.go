// Package config provides reading and writing of safercmd configuration.
// Supports both global (~/.safercmd/config.yaml) and local (.safercmd/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Dir is the name of the per-user and per-project configuration directory.
const Dir = ".safercmd"

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.safercmd/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is project-specific config in .safercmd/config.yaml
	ScopeLocal
)

// Limits holds size limit configuration options.
type Limits struct {
	MaxValue *int `yaml:"max_value,omitempty"`
}

// Audit controls the audit log.
type Audit struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// Catalog points at the template catalog file.
type Catalog struct {
	Path string `yaml:"path,omitempty"`
}

// DefaultMaxValue is the replacement length limit applied when not configured.
const DefaultMaxValue = 4096

// Validation bounds for configuration values.
const (
	MinMaxValue = 1
	MaxMaxValue = 1024 * 1024 // 1 MB - well past ARG_MAX on most systems
)

// Config contains configuration for safercmd.
type Config struct {
	Limits  Limits  `yaml:"limits,omitempty"`
	Audit   Audit   `yaml:"audit,omitempty"`
	Catalog Catalog `yaml:"catalog,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Limits.MaxValue != nil {
		v := *c.Limits.MaxValue
		if v < MinMaxValue || v > MaxMaxValue {
			return fmt.Errorf("%w: max_value must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxValue, MaxMaxValue, v)
		}
	}
	return nil
}

// MaxValue returns the maximum replacement length in bytes (defaults to 4096).
func (c *Config) MaxValue() int {
	if c.Limits.MaxValue == nil {
		return DefaultMaxValue
	}
	return *c.Limits.MaxValue
}

// AuditEnabled returns whether fills and checks are recorded (defaults to true).
func (c *Config) AuditEnabled() bool {
	if c.Audit.Enabled == nil {
		return true
	}
	return *c.Audit.Enabled
}

// LocalPath returns the path to the local (project) config file.
func LocalPath() string {
	return filepath.Join(Dir, "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.safercmd/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, Dir, "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}
	return loadPath(path, scope)
}

func loadPath(path string, scope Scope) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
