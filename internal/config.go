package internal

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application-level settings that affect route resolution
// and the serving behavior. A zero Config is usable after Validate applies
// the defaults.
type Config struct {
	// RootNamespace is the import path prefix stripped from route packages
	// when deriving URL paths, e.g. "example/views".
	RootNamespace string `yaml:"root_namespace"`

	// Port is the TCP port the server listens on. Defaults to 8080.
	Port int `yaml:"port"`

	// LocalTimezone is the IANA zone name used for the local timestamp in
	// request log records. Defaults to the process-local zone.
	LocalTimezone string `yaml:"local_timezone"`

	// PrettyHTML enables reindenting of HTML responses.
	PrettyHTML bool `yaml:"pretty_html"`

	// PrintStartup controls the single startup line logged when the server
	// begins accepting connections. Defaults to true.
	PrintStartup bool `yaml:"print_startup"`
}

// DefaultConfig returns the settings used when no config option is given.
func DefaultConfig() Config {
	return Config{
		Port:         8080,
		PrintStartup: true,
	}
}

// Validate checks the configuration and resolves the local timezone.
// It returns the resolved location so callers validate and load in one step.
func (c Config) Validate() (*time.Location, error) {
	if c.Port < 1 || c.Port > 65535 {
		return nil, fmt.Errorf("config: port %d out of range 1-65535", c.Port)
	}

	if c.LocalTimezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.LocalTimezone)
	if err != nil {
		return nil, &InvalidTimezoneError{Zone: c.LocalTimezone, Err: err}
	}
	return loc, nil
}

// ConfigFromFile loads a Config from a YAML file. Fields absent from the
// file keep their defaults.
func ConfigFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
