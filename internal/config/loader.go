// Package config provides configuration management using the Singleton pattern.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/kulina/kulina-ai/internal/provider"
)

const (
	defaultConfigName = "config"
	defaultConfigType = "yaml"
	envPrefix         = "KULINA"
)

// Default credential environment variable names, matching the deployment
// documentation. Only the variables for routed providers must be set.
const (
	EnvKolosalKey    = "KOLOSAL_API_KEY"
	EnvGoogleAIKey   = "GOOGLE_AI_API_KEY"
	EnvOpenRouterKey = "OPENROUTER_API_KEY"
)

// loadConfig loads the configuration from environment variables and files.
// Priority order (highest to lowest):
// 1. Environment variables (prefixed with KULINA_)
// 2. config.yaml (local development)
// 3. Default values
//
// Credentials are NOT read here: they are resolved per provider via
// ResolveCredential, which fails closed when the variable is absent.
func loadConfig(configPath string) (*Configuration, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName(defaultConfigName)
	v.SetConfigType(defaultConfigType)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/kulina-ai")
		v.AddConfigPath("$HOME/.kulina-ai")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, &ConfigError{
				Op:  "read",
				Err: fmt.Errorf("failed to read config file: %w", err),
			}
		}
		// No config file is fine, defaults plus env vars carry everything.
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &ConfigError{
			Op:  "unmarshal",
			Err: fmt.Errorf("failed to unmarshal config: %w", err),
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.read_timeout_seconds", 30)
	v.SetDefault("server.write_timeout_seconds", 60)
	v.SetDefault("server.shutdown_timeout_seconds", 15)

	// Provider defaults: endpoint and model fall back to the client
	// defaults when left empty.
	v.SetDefault("providers.kolosal.api_key_env", EnvKolosalKey)
	v.SetDefault("providers.kolosal.model", provider.DefaultKolosalModel)
	v.SetDefault("providers.googleai.api_key_env", EnvGoogleAIKey)
	v.SetDefault("providers.googleai.model", provider.DefaultGoogleAIModel)
	v.SetDefault("providers.openrouter.api_key_env", EnvOpenRouterKey)
	v.SetDefault("providers.openrouter.model", provider.DefaultOpenRouterModel)

	// Feature routing defaults: OpenRouter is the designated primary for
	// every feature, swappable per feature without touching callers.
	v.SetDefault("features.chatbot", provider.NameOpenRouter)
	v.SetDefault("features.analyze-reviews", provider.NameOpenRouter)
	v.SetDefault("features.generate-promo", provider.NameOpenRouter)
	v.SetDefault("features.menu-recommendations", provider.NameOpenRouter)
	v.SetDefault("features.price-stock-recommendations", provider.NameOpenRouter)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
