// Package config provides centralized configuration management.
//
// Configuration can be loaded from:
//  1. YAML file (config.yaml)
//  2. Environment variables (fallback)
//
// Example usage:
//
//	cfg := config.LoadOrEnv()
//	ledgerPath := cfg.Input.LedgerPath
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the entire application configuration
type Config struct {
	Input         InputConfig         `yaml:"input"`
	Report        ReportConfig        `yaml:"report"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// InputConfig holds the paths of the two extracts
type InputConfig struct {
	LedgerPath     string `yaml:"ledger_path"`
	SettlementPath string `yaml:"settlement_path"`
}

// ReportConfig holds output settings
type ReportConfig struct {
	// Filter is one of ALL, ANOMALIES, MATCHED, UNMATCHED.
	Filter string `yaml:"filter"`
}

// ObservabilityConfig holds observability settings
type ObservabilityConfig struct {
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads and parses the config file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Expand environment variables (e.g., ${RECON_DATA_DIR})
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration from environment variables only
func LoadFromEnv() *Config {
	return &Config{
		Input: InputConfig{
			LedgerPath:     os.Getenv("RECON_LEDGER_PATH"),
			SettlementPath: os.Getenv("RECON_SETTLEMENT_PATH"),
		},
		Report: ReportConfig{
			Filter: getEnv("RECON_FILTER", "ALL"),
		},
		Observability: ObservabilityConfig{
			Logging: LoggingConfig{
				Level:  getEnv("LOG_LEVEL", "info"),
				Format: getEnv("LOG_FORMAT", "text"),
			},
		},
	}
}

// LoadOrEnv tries to load from config.yaml, falls back to environment variables
func LoadOrEnv() *Config {
	return LoadOrEnvWithPath("config.yaml")
}

// LoadOrEnvWithPath tries to load from specified path, falls back to environment variables
func LoadOrEnvWithPath(path string) *Config {
	if cfg, err := Load(path); err == nil {
		return cfg
	}
	return LoadFromEnv()
}

// getEnv retrieves an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
