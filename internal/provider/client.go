// Package provider contains the clients for external text-generation APIs.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout is the default HTTP client timeout for provider calls.
// Expiry surfaces as a KindUnknown failure.
const DefaultTimeout = 30 * time.Second

// credPrefixLen is how many leading credential characters may appear in logs.
const credPrefixLen = 6

// clientCore holds the state shared by every provider client.
type clientCore struct {
	name       string
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option is a functional option applied to any provider client.
type Option func(*clientCore)

// WithBaseURL sets a custom base URL for the provider endpoint.
func WithBaseURL(url string) Option {
	return func(c *clientCore) {
		c.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithModel sets the default model used when the request does not name one.
func WithModel(model string) Option {
	return func(c *clientCore) {
		if model != "" {
			c.model = model
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientCore) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientCore) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientCore) {
		c.logger = logger
	}
}

func newClientCore(name, apiKey, baseURL, model string, opts ...Option) clientCore {
	c := clientCore{
		name:    name,
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// resolveModel returns the request model, falling back to the client default.
func (c *clientCore) resolveModel(opts Options) string {
	if opts.Model != "" {
		return opts.Model
	}
	return c.model
}

// credAttrs returns log attributes describing the credential without
// exposing its value. Only the length and a fixed-width prefix are emitted.
func (c *clientCore) credAttrs() []any {
	prefix := c.apiKey
	if len(prefix) > credPrefixLen {
		prefix = prefix[:credPrefixLen]
	}
	return []any{
		slog.Int("credential_length", len(c.apiKey)),
		slog.String("credential_prefix", prefix),
	}
}

// postJSON performs one JSON POST round trip and returns the response body.
// Non-2xx statuses and transport failures are returned as *TransportError.
func (c *clientCore) postJSON(ctx context.Context, url string, headers map[string]string, payload any) ([]byte, *TransportError) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, transportError(c.name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, transportError(c.name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(c.name, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(c.name, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		terr := statusError(c.name, resp.StatusCode, respBody)
		c.logger.Warn("provider request failed",
			slog.String("provider", c.name),
			slog.Int("status", resp.StatusCode),
			slog.String("kind", string(terr.Kind)),
		)
		return nil, terr
	}

	return respBody, nil
}

// logRequest emits the diagnostic line preceding every provider call.
func (c *clientCore) logRequest(model string, messageCount int) {
	attrs := []any{
		slog.String("provider", c.name),
		slog.String("model", model),
		slog.Int("messages", messageCount),
	}
	attrs = append(attrs, c.credAttrs()...)
	c.logger.Debug("provider request", attrs...)
}

// emptyConversationError is returned when a caller passes no messages.
func emptyConversationError(providerName string) *TransportError {
	return &TransportError{
		Provider: providerName,
		Kind:     KindBadRequest,
		Excerpt:  "conversation must not be empty",
	}
}
