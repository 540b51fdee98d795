// Package config provides configuration management using the Singleton pattern.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/kulina/kulina-ai/internal/provider"
)

// keyShape describes the expected shape of one provider's credential.
// A credential that fails its shape check is a fatal configuration error,
// not a retryable one.
type keyShape struct {
	Prefix    string
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
}

// keyShapes holds the per-provider credential shapes.
// Kolosal issues JWT-like tokens with a kol_ prefix; Google AI Studio keys
// start with AIza; OpenRouter keys start with sk-or-.
var keyShapes = map[string]keyShape{
	provider.NameKolosal: {
		Prefix:    "kol_",
		MinLength: 440,
		MaxLength: 500,
		Pattern:   regexp.MustCompile(`^kol_[A-Za-z0-9._-]+$`),
	},
	provider.NameGoogleAI: {
		Prefix:    "AIza",
		MinLength: 30,
		MaxLength: 100,
		Pattern:   regexp.MustCompile(`^AIza[A-Za-z0-9_-]+$`),
	},
	provider.NameOpenRouter: {
		Prefix:    "sk-or-",
		MinLength: 20,
		MaxLength: 200,
		Pattern:   regexp.MustCompile(`^sk-or-[A-Za-z0-9_-]+$`),
	},
}

// credPrefixLen is how many leading credential characters String/LogValue expose.
const credPrefixLen = 6

// Credential is an opaque secret bound to one provider, resolved once from
// the environment at startup. It is never persisted; String and LogValue
// expose only length and a fixed-width prefix.
type Credential struct {
	provider string
	value    string
}

// Value returns the raw secret for use in an outbound request.
func (c Credential) Value() string { return c.value }

// Provider returns the provider the credential is bound to.
func (c Credential) Provider() string { return c.provider }

// String renders a diagnostic form without the secret.
func (c Credential) String() string {
	prefix := c.value
	if len(prefix) > credPrefixLen {
		prefix = prefix[:credPrefixLen]
	}
	return fmt.Sprintf("%s credential (prefix %s…, length %d)", c.provider, prefix, len(c.value))
}

// LogValue implements slog.LogValuer so a Credential logged by accident
// still never leaks its value.
func (c Credential) LogValue() slog.Value {
	prefix := c.value
	if len(prefix) > credPrefixLen {
		prefix = prefix[:credPrefixLen]
	}
	return slog.GroupValue(
		slog.String("provider", c.provider),
		slog.String("prefix", prefix),
		slog.Int("length", len(c.value)),
	)
}

// ResolveCredential reads and validates a provider credential from the
// environment. There is no built-in fallback value: a missing or malformed
// credential fails closed with a CredentialError.
func ResolveCredential(providerName, envVar string) (Credential, error) {
	raw := os.Getenv(envVar)
	if raw == "" {
		return Credential{}, &CredentialError{
			Provider: providerName,
			EnvVar:   envVar,
			Reason:   "environment variable is not set",
		}
	}

	// Tolerate stray whitespace and newlines from copy-pasted secrets.
	cleaned := strings.Join(strings.Fields(raw), "")

	if err := validateShape(providerName, cleaned); err != nil {
		return Credential{}, &CredentialError{
			Provider: providerName,
			EnvVar:   envVar,
			Reason:   err.Error(),
		}
	}

	return Credential{provider: providerName, value: cleaned}, nil
}

// validateShape checks a cleaned credential against the provider's shape.
// The returned error describes the mismatch without quoting the value.
func validateShape(providerName, value string) error {
	shape, ok := keyShapes[providerName]
	if !ok {
		return fmt.Errorf("unknown provider %q", providerName)
	}
	if !strings.HasPrefix(value, shape.Prefix) {
		return fmt.Errorf("must start with %q", shape.Prefix)
	}
	if len(value) < shape.MinLength || len(value) > shape.MaxLength {
		return fmt.Errorf("length %d outside expected range [%d, %d]",
			len(value), shape.MinLength, shape.MaxLength)
	}
	if !shape.Pattern.MatchString(value) {
		return fmt.Errorf("contains characters outside %s", shape.Pattern.String())
	}
	return nil
}
