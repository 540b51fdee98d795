// Package security provides data leakage prevention utilities for log output.
package security

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
)

// RedactedPlaceholder replaces sensitive data in log output.
const RedactedPlaceholder = "[REDACTED]"

// sensitivePatterns matches the credential formats this service handles.
var sensitivePatterns = []*regexp.Regexp{
	// Kolosal JWT-style tokens: kol_...
	regexp.MustCompile(`kol_[A-Za-z0-9._-]{20,}`),
	// Google AI Studio keys: AIza...
	regexp.MustCompile(`AIza[A-Za-z0-9_-]{20,}`),
	// OpenRouter keys: sk-or-...
	regexp.MustCompile(`sk-or-[A-Za-z0-9_-]{14,}`),
	// Bearer tokens embedded in strings
	regexp.MustCompile(`Bearer\s+[A-Za-z0-9._-]{20,}`),
	// Keys leaked through query params: key=...
	regexp.MustCompile(`key=[A-Za-z0-9_-]{20,}`),
}

// sensitiveKeys are attribute names known to hold secrets.
var sensitiveKeys = []string{
	"authorization",
	"api_key",
	"apikey",
	"api-key",
	"secret",
	"password",
	"token",
	"bearer",
	"credential",
}

// Redact scans a string for credential patterns and replaces them.
func Redact(s string) string {
	result := s
	for _, pattern := range sensitivePatterns {
		result = pattern.ReplaceAllString(result, RedactedPlaceholder)
	}
	return result
}

// MaskCredential returns a loggable form of a credential: first 8 and last 4
// characters. Short values are masked entirely.
func MaskCredential(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 12 {
		return "***"
	}
	return key[:8] + "..." + key[len(key)-4:]
}

// RedactedHandler wraps an slog.Handler and redacts sensitive data from
// every record before it reaches the sink.
type RedactedHandler struct {
	inner slog.Handler
}

// NewRedactedHandler wraps an existing handler with credential redaction.
func NewRedactedHandler(inner slog.Handler) *RedactedHandler {
	return &RedactedHandler{inner: inner}
}

// Enabled reports whether the handler handles records at the given level.
func (h *RedactedHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle processes a log record, redacting message and attributes.
func (h *RedactedHandler) Handle(ctx context.Context, r slog.Record) error {
	clean := slog.Record{
		Time:    r.Time,
		Message: Redact(r.Message),
		Level:   r.Level,
		PC:      r.PC,
	}

	r.Attrs(func(a slog.Attr) bool {
		clean.AddAttrs(redactAttr(a))
		return true
	})

	return h.inner.Handle(ctx, clean)
}

// WithAttrs returns a new handler with the given attributes added.
func (h *RedactedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = redactAttr(a)
	}
	return &RedactedHandler{inner: h.inner.WithAttrs(redacted)}
}

// WithGroup returns a new handler with the given group name.
func (h *RedactedHandler) WithGroup(name string) slog.Handler {
	return &RedactedHandler{inner: h.inner.WithGroup(name)}
}

// redactAttr redacts sensitive data from a single attribute.
func redactAttr(a slog.Attr) slog.Attr {
	if isSensitiveKey(strings.ToLower(a.Key)) {
		return slog.String(a.Key, RedactedPlaceholder)
	}

	switch v := a.Value.Any().(type) {
	case string:
		return slog.String(a.Key, Redact(v))
	case []string:
		redacted := make([]string, len(v))
		for i, s := range v {
			redacted[i] = Redact(s)
		}
		return slog.Any(a.Key, redacted)
	}

	return a
}

// isSensitiveKey checks if an attribute key is known to contain secrets.
func isSensitiveKey(key string) bool {
	for _, k := range sensitiveKeys {
		if strings.Contains(key, k) {
			return true
		}
	}
	return false
}
