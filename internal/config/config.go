package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Defaults applied when a field is absent from the config file.
const (
	DefaultRegion     = "us-east-2"
	DefaultTable      = "vpc-metadata"
	DefaultCIDR       = "10.0.0.0/16"
	DefaultListenAddr = ":8080"

	// CreatedBy is the creator tag stamped on every record and resource.
	CreatedBy = "vpcd"
)

// DefaultConfigFile is the config file looked up when no --config flag is given.
const DefaultConfigFile = "vpcd.yaml"

// Config holds the application configuration.
type Config struct {
	// Region is the AWS region VPCs are provisioned in.
	Region string `mapstructure:"region" yaml:"region"`

	// Table is the DynamoDB table holding VPC metadata.
	Table string `mapstructure:"table" yaml:"table"`

	// DefaultCIDR is used when a create request carries no CIDR block.
	DefaultCIDR string `mapstructure:"default_cidr" yaml:"default_cidr"`

	// ListenAddr is the bind address of the HTTP API (serve command).
	ListenAddr string `mapstructure:"listen_addr" yaml:"listen_addr"`
}

// LoadFile reads and parses the configuration from a YAML file.
// A missing file is not an error: defaults and environment overrides
// still produce a usable configuration.
func LoadFile(path string) (*Config, error) {
	cfg := &Config{}

	// #nosec G304
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Fall through to defaults.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		var rawConfig map[string]interface{}
		if err := yaml.Unmarshal(data, &rawConfig); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
		if err := mapstructure.Decode(rawConfig, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// applyEnv overrides file values with their environment variable
// counterparts.
func (c *Config) applyEnv() {
	if region := os.Getenv("AWS_REGION"); region != "" {
		c.Region = region
	}
	if table := os.Getenv("VPC_TABLE_NAME"); table != "" {
		c.Table = table
	}
}

func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.Table == "" {
		c.Table = DefaultTable
	}
	if c.DefaultCIDR == "" {
		c.DefaultCIDR = DefaultCIDR
	}
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Region == "" {
		return fmt.Errorf("region is required")
	}
	if c.Table == "" {
		return fmt.Errorf("table is required")
	}
	if err := ValidateVPCCIDR(c.DefaultCIDR); err != nil {
		return fmt.Errorf("default_cidr: %w", err)
	}
	return nil
}
