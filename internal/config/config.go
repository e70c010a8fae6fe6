package config

import (
	"os"
	"strconv"

	"namestat/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data     DataConfig
	Analysis AnalysisConfig
	Database DatabaseConfig
	Server   ServerConfig
}

// DataConfig holds input and output paths for the pipeline
type DataConfig struct {
	NamesFile string
	OutputDir string
}

// AnalysisConfig holds tunables for the statistics step
type AnalysisConfig struct {
	TopN       int
	IgnoreCase bool
	Reverse    bool
}

// DatabaseConfig holds the optional run-ledger connection settings
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds report server settings
type ServerConfig struct {
	Port string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Data:     loadDataConfig(),
		Analysis: loadAnalysisConfig(),
		Database: loadDatabaseConfig(),
		Server:   loadServerConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadDataConfig() DataConfig {
	return DataConfig{
		NamesFile: getEnvOrDefault("NAMES_FILE", "Navneliste.txt"),
		OutputDir: getEnvOrDefault("OUTPUT_DIR", "Data/analysis"),
	}
}

func loadAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		TopN:       getEnvIntOrDefault("TOP_N", 10),
		IgnoreCase: getEnvBoolOrDefault("IGNORE_CASE", true),
		Reverse:    getEnvBoolOrDefault("REVERSE_SORT", false),
	}
}

func loadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URL: getEnvOrDefault("DATABASE_URL", ""),
	}
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port: getEnvOrDefault("PORT", "8080"),
	}
}

func validateConfig(config *Config) error {
	if config.Data.NamesFile == "" {
		return errors.ConfigInvalid("names file path is required")
	}
	if config.Data.OutputDir == "" {
		return errors.ConfigInvalid("output directory is required")
	}
	if config.Analysis.TopN <= 0 {
		return errors.ConfigInvalid("TOP_N must be a positive integer")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
