package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kulina/kulina-ai/internal/provider"
	"github.com/kulina/kulina-ai/internal/sanitize"
)

const menuSystemPrompt = `Kamu adalah asisten rekomendasi menu untuk rumah makan KULINA.AI. Berikan satu rekomendasi menu yang singkat, personal, dan menggugah selera dalam bahasa Indonesia. Maksimal 2 kalimat, sertakan emoji yang sesuai. Jawab dengan teks polos tanpa markdown.`

// maxOrderHistory caps how much order history goes into the prompt.
const maxOrderHistory = 10

// MenuContext carries the personalization signals for a recommendation.
type MenuContext struct {
	OrderHistory []string
	Preferences  []string
	TimeOfDay    string
	CurrentMood  string
}

// MenuRecommender produces a short menu suggestion for the home screen.
type MenuRecommender struct {
	provider provider.Provider
	logger   *slog.Logger

	// now is injectable so the time-of-day fallback is testable.
	now func() time.Time
}

// NewMenuRecommender creates a menu recommendation adapter.
func NewMenuRecommender(p provider.Provider, logger *slog.Logger) *MenuRecommender {
	return &MenuRecommender{provider: p, logger: logger, now: time.Now}
}

// Execute returns a one-line recommendation. Provider failures degrade to
// a time-of-day greeting so the home screen never shows an error.
func (a *MenuRecommender) Execute(ctx context.Context, mc MenuContext) string {
	history := mc.OrderHistory
	if len(history) > maxOrderHistory {
		history = history[len(history)-maxOrderHistory:]
	}

	var sb strings.Builder
	sb.WriteString("Berikan satu rekomendasi menu untuk pelanggan ini:\n")
	if len(history) > 0 {
		fmt.Fprintf(&sb, "- Riwayat pesanan terakhir: %s\n", strings.Join(history, ", "))
	}
	if len(mc.Preferences) > 0 {
		fmt.Fprintf(&sb, "- Preferensi: %s\n", strings.Join(mc.Preferences, ", "))
	}
	if mc.TimeOfDay != "" {
		fmt.Fprintf(&sb, "- Waktu: %s\n", mc.TimeOfDay)
	}
	if mc.CurrentMood != "" {
		fmt.Fprintf(&sb, "- Mood: %s\n", mc.CurrentMood)
	}

	conv := provider.Conversation{
		{Role: provider.RoleSystem, Content: menuSystemPrompt},
		{Role: provider.RoleUser, Content: sb.String()},
	}

	raw, err := a.provider.Complete(ctx, conv, provider.Options{
		Temperature: 0.7,
		MaxTokens:   400,
	})
	if err != nil {
		a.logger.Warn("menu recommendation failed",
			slog.String("provider", a.provider.Name()),
			slog.String("error", err.Error()),
		)
		return fallbackForHour(a.now().Hour())
	}

	cleaned := sanitize.Clean(raw)
	if cleaned == "" {
		return fallbackForHour(a.now().Hour())
	}
	return cleaned
}

// fallbackForHour picks a canned recommendation by local hour.
func fallbackForHour(hour int) string {
	switch {
	case hour >= 5 && hour < 11:
		return "Sarapan pagi yang sehat? Coba menu favorit kami untuk memulai hari! 🍳"
	case hour >= 11 && hour < 15:
		return "Waktunya makan siang! Coba menu terlaris kami hari ini! 🍽️"
	case hour >= 15 && hour < 18:
		return "Sore hari yang pas untuk minuman segar! Coba menu minuman favorit kami! 🧊"
	default:
		return "Malam yang sempurna untuk makan malam! Coba menu spesial kami! 🌙"
	}
}
