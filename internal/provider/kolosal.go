// Package provider contains the clients for external text-generation APIs.
package provider

import (
	"context"
	"encoding/json"
	"log/slog"
)

const (
	// DefaultKolosalBaseURL is the default Kolosal AI endpoint.
	DefaultKolosalBaseURL = "https://api.kolosal.ai/v1"

	// DefaultKolosalModel is the model used when none is requested.
	DefaultKolosalModel = "glm-4-6"
)

// Kolosal implements Provider for the Kolosal AI chat completion API.
// Kolosal speaks the OpenAI chat format with bearer-token authentication.
type Kolosal struct {
	clientCore
}

// NewKolosal creates a Kolosal client. The apiKey must already be validated
// by the configuration layer (kol_ prefix, bounded length).
func NewKolosal(apiKey string, opts ...Option) *Kolosal {
	return &Kolosal{
		clientCore: newClientCore(NameKolosal, apiKey, DefaultKolosalBaseURL, DefaultKolosalModel, opts...),
	}
}

// Name returns the provider identifier.
func (k *Kolosal) Name() string { return NameKolosal }

// Complete performs one chat completion round trip.
func (k *Kolosal) Complete(ctx context.Context, conv Conversation, opts Options) (string, error) {
	if len(conv) == 0 {
		return "", emptyConversationError(k.name)
	}

	model := k.resolveModel(opts)
	req := ChatRequest{
		Model:       model,
		Messages:    conv,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}

	k.logRequest(model, len(conv))

	headers := map[string]string{
		"Authorization": "Bearer " + k.apiKey,
	}

	body, terr := k.postJSON(ctx, k.baseURL+"/chat/completions", headers, req)
	if terr != nil {
		return "", terr
	}

	var resp ChatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", transportError(k.name, err)
	}

	k.logger.Debug("provider request successful",
		slog.String("provider", k.name),
		slog.String("model", resp.Model),
	)

	return firstChoiceText(resp), nil
}
