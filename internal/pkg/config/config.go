package config

import (
	"fmt"
	"os"

	"golang-ipconfig/internal/pkg/logging"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by the report command.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// OutputConfig holds report output defaults.
type OutputConfig struct {
	Format     string `yaml:"format,omitempty"`      // table, json, or yaml
	ResolvConf string `yaml:"resolv_conf,omitempty"` // resolver configuration path
}

// Config represents the main configuration structure
type Config struct {
	Logging logging.LogConfig `yaml:"logging"`
	Output  OutputConfig      `yaml:"output"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Logging: logging.LogConfig{
			Level:  "info",
			Format: "text",
		},
		Output: OutputConfig{
			Format: FormatTable,
		},
	}
}

// Load loads configuration from a YAML file. An empty path yields the
// default configuration.
func Load(configPath string) (*Config, error) {
	config := Default()
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatTable, FormatJSON, FormatYAML:
	case "":
		c.Output.Format = FormatTable
	default:
		return fmt.Errorf("invalid output format %q: must be one of table, json, yaml", c.Output.Format)
	}
	return nil
}
