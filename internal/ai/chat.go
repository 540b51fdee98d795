// Package ai contains the feature adapters and the gateway facade that sit
// between the HTTP layer and the provider clients. Every adapter catches
// provider and parse failures and answers with a deterministic fallback, so
// callers above this package never observe an error during provider
// flakiness.
package ai

import (
	"context"
	"log/slog"

	"github.com/kulina/kulina-ai/internal/provider"
	"github.com/kulina/kulina-ai/internal/sanitize"
)

const chatSystemPrompt = `Kamu adalah asisten kuliner AI untuk aplikasi KULINA.AI. Tugasmu membantu pelanggan rumah makan dengan:
- Menjawab pertanyaan tentang menu makanan dan minuman
- Memberikan rekomendasi menu berdasarkan preferensi
- Menjelaskan promo dan diskon yang tersedia
- Menjawab pertanyaan tentang estimasi harga
- Memberikan saran menu sesuai waktu makan (sarapan, makan siang, makan malam)

Gunakan bahasa Indonesia yang ramah, santai, dan mudah dipahami. Jawab dengan teks polos tanpa formatting markdown. Jika tidak tahu jawabannya, akui dengan jujur dan tawarkan alternatif.`

// chatFallback is returned whenever the provider fails or answers nothing.
const chatFallback = "Maaf, saya sedang mengalami gangguan teknis. Silakan coba lagi dalam beberapa saat atau hubungi admin."

// ChatAssistant answers free-form consumer questions. Conversation
// continuity comes from caller-supplied history; no session state is kept
// server side.
type ChatAssistant struct {
	provider provider.Provider
	logger   *slog.Logger
}

// NewChatAssistant creates a chat adapter backed by the given provider.
func NewChatAssistant(p provider.Provider, logger *slog.Logger) *ChatAssistant {
	return &ChatAssistant{provider: p, logger: logger}
}

// Execute sends the user message with sanitized history and returns display
// text. It never returns an error; failures degrade to chatFallback.
func (a *ChatAssistant) Execute(ctx context.Context, message string, history []provider.Message) string {
	conv := provider.Conversation{
		{Role: provider.RoleSystem, Content: chatSystemPrompt},
	}
	conv = append(conv, normalizeHistory(history)...)
	conv = append(conv, provider.Message{Role: provider.RoleUser, Content: message})

	raw, err := a.provider.Complete(ctx, conv, provider.Options{
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		a.logger.Warn("chat completion failed",
			slog.String("provider", a.provider.Name()),
			slog.String("error", err.Error()),
		)
		return chatFallback
	}

	text := sanitize.Clean(raw)
	if text == "" {
		return chatFallback
	}
	return text
}

// normalizeHistory prepares caller-supplied history for the provider:
// system turns are stripped (the adapter owns the system prompt), roles are
// coerced to user/assistant, and a leading assistant turn is dropped since
// some providers forbid a conversation that opens with one.
func normalizeHistory(history []provider.Message) []provider.Message {
	out := make([]provider.Message, 0, len(history))
	for _, msg := range history {
		if msg.Role == provider.RoleSystem {
			continue
		}
		role := provider.RoleUser
		if msg.Role == provider.RoleAssistant {
			role = provider.RoleAssistant
		}
		if len(out) == 0 && role == provider.RoleAssistant {
			continue
		}
		out = append(out, provider.Message{Role: role, Content: msg.Content})
	}
	return out
}
