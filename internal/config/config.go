// Package config loads the keywarden configuration file. All settings
// have working defaults so the file is optional; when present it
// overrides only the fields it names.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/keywarden/keywarden/pkg/standard"
)

// EnvConfigPath names the environment variable that overrides the
// configuration file path.
const EnvConfigPath = "KEYWARDEN_CONFIG"

// Config is the root of the configuration file.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	Server   ServerConfig   `yaml:"server"`
	Store    StoreConfig    `yaml:"store"`
	Audit    AuditConfig    `yaml:"audit"`
}

// DefaultsConfig sets the assessment parameters used when a command
// or request leaves them out.
type DefaultsConfig struct {
	Standard string `yaml:"standard"`
	Security uint16 `yaml:"security"`
	Year     uint16 `yaml:"year"`
}

// ServerConfig configures the REST API listener.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StoreConfig configures assessment history persistence.
type StoreConfig struct {
	// Path is the SQLite database file. Empty disables history.
	Path string `yaml:"path"`
}

// AuditConfig configures the tamper-evident audit log.
type AuditConfig struct {
	// Path is the JSONL audit log file. Empty disables auditing.
	Path string `yaml:"path"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Standard: "nist",
			Security: standard.DefaultSecurity,
			Year:     standard.DefaultYear,
		},
		Server: ServerConfig{
			Host: "",
			Port: 8080,
		},
	}
}

// Load reads the configuration file at path over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by KEYWARDEN_CONFIG, or the
// defaults when the variable is unset.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks the configuration for values no component could
// accept.
func (c *Config) Validate() error {
	if _, ok := standard.ByName(c.Defaults.Standard); !ok {
		return fmt.Errorf("defaults.standard: unknown standard %q", c.Defaults.Standard)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	return nil
}

// Context builds the standard.Context the defaults describe.
func (c *Config) Context() standard.Context {
	return standard.NewContext(
		standard.WithSecurity(c.Defaults.Security),
		standard.WithYear(c.Defaults.Year),
	)
}

// Address returns the listen address for the REST API.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
