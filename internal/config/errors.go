// Package config provides configuration management using the Singleton pattern.
package config

import (
	"fmt"
	"strings"
)

// ConfigError represents a configuration loading error.
type ConfigError struct {
	Op  string // Operation that failed (read, unmarshal, validate)
	Err error  // Underlying error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s error: %v", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ValidationError represents configuration validation errors.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0])
	}
	return fmt.Sprintf("configuration validation failed with %d errors:\n  - %s",
		len(e.Errors), strings.Join(e.Errors, "\n  - "))
}

// HasError checks if a specific field has a validation error.
func (e *ValidationError) HasError(field string) bool {
	for _, err := range e.Errors {
		if strings.Contains(err, field) {
			return true
		}
	}
	return false
}

// CredentialError is a fatal configuration error: a provider credential is
// missing or malformed. It is raised at startup, never caught by feature
// adapters, and never carries the credential value itself.
type CredentialError struct {
	Provider string
	EnvVar   string
	Reason   string
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("credential for provider %q (%s): %s", e.Provider, e.EnvVar, e.Reason)
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// IsConfigError checks if an error is a ConfigError.
func IsConfigError(err error) bool {
	_, ok := err.(*ConfigError)
	return ok
}

// IsCredentialError checks if an error is a CredentialError.
func IsCredentialError(err error) bool {
	_, ok := err.(*CredentialError)
	return ok
}
