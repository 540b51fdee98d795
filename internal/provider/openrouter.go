// Package provider contains the clients for external text-generation APIs.
package provider

import (
	"context"
	"encoding/json"
	"log/slog"
)

const (
	// DefaultOpenRouterBaseURL is the default OpenRouter endpoint.
	DefaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

	// DefaultOpenRouterModel is the model used when none is requested.
	DefaultOpenRouterModel = "amazon/nova-2-lite-v1:free"

	// Attribution headers OpenRouter uses for request tracking.
	openRouterReferer = "https://kulina.ai"
	openRouterTitle   = "KULINA.AI"
)

// OpenRouter implements Provider for the OpenRouter aggregation API,
// which is wire-compatible with the OpenAI chat completion format.
type OpenRouter struct {
	clientCore
}

// NewOpenRouter creates an OpenRouter client. The apiKey must already be
// validated by the configuration layer (sk-or- prefix).
func NewOpenRouter(apiKey string, opts ...Option) *OpenRouter {
	return &OpenRouter{
		clientCore: newClientCore(NameOpenRouter, apiKey, DefaultOpenRouterBaseURL, DefaultOpenRouterModel, opts...),
	}
}

// Name returns the provider identifier.
func (o *OpenRouter) Name() string { return NameOpenRouter }

// Complete performs one chat completion round trip.
func (o *OpenRouter) Complete(ctx context.Context, conv Conversation, opts Options) (string, error) {
	if len(conv) == 0 {
		return "", emptyConversationError(o.name)
	}

	model := o.resolveModel(opts)
	req := ChatRequest{
		Model:       model,
		Messages:    conv,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}

	o.logRequest(model, len(conv))

	headers := map[string]string{
		"Authorization": "Bearer " + o.apiKey,
		"HTTP-Referer":  openRouterReferer,
		"X-Title":       openRouterTitle,
	}

	body, terr := o.postJSON(ctx, o.baseURL+"/chat/completions", headers, req)
	if terr != nil {
		return "", terr
	}

	var resp ChatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", transportError(o.name, err)
	}

	o.logger.Debug("provider request successful",
		slog.String("provider", o.name),
		slog.String("model", resp.Model),
	)

	return firstChoiceText(resp), nil
}
