package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the default config file looked up in the working directory.
const FileName = "lloyds2ofx.yaml"

// Config represents the lloyds2ofx.yaml configuration. The core parser
// treats all of these as opaque pass-through values for the downstream
// OFX serializer; none of them are derived from statement data.
type Config struct {
	Currency    string `yaml:"currency"`
	AccountType string `yaml:"account_type"`
	BankID      string `yaml:"bank_id,omitempty"`
}

// Load reads a lloyds2ofx.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with defaults for a UK current account.
func Default() *Config {
	return &Config{
		Currency:    "GBP",
		AccountType: "CHECKING",
	}
}
