// Package config provides configuration management using the Singleton pattern.
// It loads configuration from environment variables and config.yaml using Viper.
package config

import (
	"fmt"
	"sync"

	"github.com/kulina/kulina-ai/internal/domain"
	"github.com/kulina/kulina-ai/internal/provider"
)

// Configuration holds all application configuration values.
type Configuration struct {
	// Server configuration
	Server ServerConfig `json:"server" mapstructure:"server"`

	// Providers configuration, keyed by provider identifier.
	Providers map[string]ProviderConfig `json:"providers" mapstructure:"providers"`

	// Features maps each AI feature name to the provider that serves it.
	Features map[string]string `json:"features" mapstructure:"features"`

	// Logging configuration
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	// Host is the server bind address.
	Host string `json:"host" mapstructure:"host"`

	// Port is the server port number.
	Port int `json:"port" mapstructure:"port"`

	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeoutSeconds int `json:"read_timeout_seconds" mapstructure:"read_timeout_seconds"`

	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeoutSeconds int `json:"write_timeout_seconds" mapstructure:"write_timeout_seconds"`

	// ShutdownTimeout is the maximum duration to wait for active connections to finish.
	ShutdownTimeoutSeconds int `json:"shutdown_timeout_seconds" mapstructure:"shutdown_timeout_seconds"`
}

// ProviderConfig holds one provider's endpoint settings. The credential
// itself is never part of the file config; APIKeyEnv names the environment
// variable it is resolved from at startup.
type ProviderConfig struct {
	// BaseURL overrides the provider's default endpoint.
	BaseURL string `json:"base_url" mapstructure:"base_url"`

	// Model is the default model identifier for this provider.
	Model string `json:"model" mapstructure:"model"`

	// APIKeyEnv is the environment variable holding the credential.
	APIKeyEnv string `json:"api_key_env" mapstructure:"api_key_env"`

	// TimeoutSeconds bounds each outbound call.
	TimeoutSeconds int `json:"timeout_seconds" mapstructure:"timeout_seconds"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `json:"level" mapstructure:"level"`

	// Format is the log format (json, text).
	Format string `json:"format" mapstructure:"format"`
}

// requiredFeatures lists the features that must be routed for the server
// to start.
var requiredFeatures = domain.Features

// knownProviders lists the provider identifiers a feature may route to.
var knownProviders = map[string]bool{
	provider.NameKolosal:    true,
	provider.NameGoogleAI:   true,
	provider.NameOpenRouter: true,
}

// configInstance holds the singleton configuration instance.
var (
	configInstance *Configuration
	configOnce     sync.Once
	configErr      error
)

// GetConfig returns the singleton Configuration instance.
// It initializes the configuration on first call using the default config path.
// Returns an error if configuration loading fails.
func GetConfig() (*Configuration, error) {
	configOnce.Do(func() {
		configInstance, configErr = loadConfig("")
	})
	return configInstance, configErr
}

// GetConfigWithPath returns the singleton Configuration instance with a custom
// config path. Use when a non-default configuration file path is needed.
func GetConfigWithPath(configPath string) (*Configuration, error) {
	configOnce.Do(func() {
		configInstance, configErr = loadConfig(configPath)
	})
	return configInstance, configErr
}

// ResetConfig resets the singleton instance.
// This is primarily used for testing purposes.
func ResetConfig() {
	configOnce = sync.Once{}
	configInstance = nil
	configErr = nil
}

// Validate validates the configuration and returns an error if required
// fields are missing or inconsistent.
func (c *Configuration) Validate() error {
	var validationErrors []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		validationErrors = append(validationErrors, "server.port must be between 1 and 65535")
	}

	for _, feature := range requiredFeatures {
		providerName, ok := c.Features[feature]
		if !ok || providerName == "" {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"features.%s must route to a provider", feature))
			continue
		}
		if !knownProviders[providerName] {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"features.%s routes to unknown provider '%s', must be one of: kolosal, googleai, openrouter",
				feature, providerName))
		}
	}

	for name, pc := range c.Providers {
		if !knownProviders[name] {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"providers.%s is not a known provider", name))
		}
		if pc.APIKeyEnv == "" {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"providers.%s.api_key_env is required", name))
		}
	}

	if c.Logging.Level != "" && !isValidLogLevel(c.Logging.Level) {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level '%s' is invalid, must be one of: debug, info, warn, error",
			c.Logging.Level,
		))
	}

	if len(validationErrors) > 0 {
		return &ValidationError{Errors: validationErrors}
	}

	return nil
}

// isValidLogLevel checks if the log level is valid.
func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// RoutedProviders returns the distinct provider identifiers the feature
// routing refers to. Only these need a resolvable credential at startup.
func (c *Configuration) RoutedProviders() []string {
	seen := make(map[string]bool)
	names := make([]string, 0, len(knownProviders))
	for _, feature := range requiredFeatures {
		name := c.Features[feature]
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// ProviderSettings returns the settings for a provider, zero-valued when
// the config file does not mention it (client defaults then apply).
func (c *Configuration) ProviderSettings(name string) ProviderConfig {
	return c.Providers[name]
}
