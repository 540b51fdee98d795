// Package provider contains the clients for external text-generation APIs.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

const (
	// DefaultGoogleAIBaseURL is the default Google AI Studio endpoint.
	DefaultGoogleAIBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultGoogleAIModel is the model used when none is requested.
	DefaultGoogleAIModel = "gemini-1.5-flash"
)

// GoogleAI implements Provider for the Google AI Studio generateContent API.
// The API uses a binary user/model role scheme with no system role, so system
// prompts are folded into the first user turn. Authentication uses the
// x-goog-api-key header; the key never appears in the URL, which keeps it out
// of url.Error values on transport failures.
type GoogleAI struct {
	clientCore
}

// NewGoogleAI creates a GoogleAI client. The apiKey must already be
// validated by the configuration layer (AIza prefix).
func NewGoogleAI(apiKey string, opts ...Option) *GoogleAI {
	return &GoogleAI{
		clientCore: newClientCore(NameGoogleAI, apiKey, DefaultGoogleAIBaseURL, DefaultGoogleAIModel, opts...),
	}
}

// Name returns the provider identifier.
func (g *GoogleAI) Name() string { return NameGoogleAI }

// Complete performs one generateContent round trip.
func (g *GoogleAI) Complete(ctx context.Context, conv Conversation, opts Options) (string, error) {
	if len(conv) == 0 {
		return "", emptyConversationError(g.name)
	}

	model := g.resolveModel(opts)
	req := generateContentRequest{
		Contents: buildContents(conv),
		GenerationConfig: &generationConfig{
			Temperature:     opts.Temperature,
			MaxOutputTokens: opts.MaxTokens,
		},
	}

	g.logRequest(model, len(conv))

	url := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, model)
	headers := map[string]string{"x-goog-api-key": g.apiKey}

	body, terr := g.postJSON(ctx, url, headers, req)
	if terr != nil {
		return "", terr
	}

	var resp generateContentResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", transportError(g.name, err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &TransportError{
			Provider: g.name,
			Kind:     KindUnknown,
			Excerpt:  "no candidates in response",
		}
	}

	g.logger.Debug("provider request successful",
		slog.String("provider", g.name),
		slog.String("model", model),
	)

	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// buildContents maps a conversation onto the binary user/model role scheme.
// System messages have no native slot and are folded into the first user
// turn; assistant maps to model.
func buildContents(conv Conversation) []content {
	var systemParts []string
	contents := make([]content, 0, len(conv))

	for _, msg := range conv {
		switch msg.Role {
		case RoleSystem:
			systemParts = append(systemParts, msg.Content)
		case RoleAssistant:
			contents = append(contents, content{
				Role:  "model",
				Parts: []part{{Text: msg.Content}},
			})
		default:
			contents = append(contents, content{
				Role:  "user",
				Parts: []part{{Text: msg.Content}},
			})
		}
	}

	if len(systemParts) == 0 {
		return contents
	}

	system := strings.Join(systemParts, "\n\n")
	for i := range contents {
		if contents[i].Role == "user" {
			contents[i].Parts[0].Text = system + "\n\n" + contents[i].Parts[0].Text
			return contents
		}
	}

	// Conversation held only assistant turns; carry the system prompt as its
	// own user turn so the request stays valid.
	return append([]content{{Role: "user", Parts: []part{{Text: system}}}}, contents...)
}

// Google AI generateContent wire types.

type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text,omitempty"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content      content `json:"content"`
	FinishReason string  `json:"finishReason"`
}
