package ai

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/kulina/kulina-ai/internal/provider"
	"github.com/kulina/kulina-ai/internal/sanitize"
)

const promoSystemPrompt = `Kamu adalah copywriter profesional untuk konten promosi makanan. Buatkan caption Instagram/Facebook/WhatsApp yang menarik, kreatif, dan persuasif untuk promosi menu rumah makan.

Format output HARUS JSON dengan struktur:
{
  "caption": "caption lengkap dengan emoji yang menarik (teks polos tanpa markdown)",
  "hashtags": ["#hashtag1", "#hashtag2"]
}

Gunakan bahasa Indonesia yang sesuai dengan target pasar dan tone yang diminta.`

// DefaultTone is used when the caller does not specify one.
const DefaultTone = "Santai"

// minCaptionLen guards against degenerate one-word captions; anything
// shorter falls back to the template.
const minCaptionLen = 10

var hashtagRe = regexp.MustCompile(`#\w+`)

// defaultHashtags is the fixed fallback hashtag list.
var defaultHashtags = []string{"#KulinaAI", "#PromoMakanan", "#Foodie"}

// PromoInput describes the menu being promoted.
type PromoInput struct {
	MenuName       string
	Price          int
	TargetMarket   string
	Tone           string
	AdditionalInfo string
}

// PromoCaption is the always-populated promo generation result.
type PromoCaption struct {
	Caption  string   `json:"caption"`
	Hashtags []string `json:"hashtags"`
}

// PromoGenerator writes social media promo captions for the admin.
type PromoGenerator struct {
	provider provider.Provider
	logger   *slog.Logger
}

// NewPromoGenerator creates a promo caption adapter.
func NewPromoGenerator(p provider.Provider, logger *slog.Logger) *PromoGenerator {
	return &PromoGenerator{provider: p, logger: logger}
}

// Execute generates a promo caption. It never returns an error: provider
// or parse failures degrade to a templated caption with fixed hashtags.
func (a *PromoGenerator) Execute(ctx context.Context, in PromoInput) PromoCaption {
	tone := in.Tone
	if tone == "" {
		tone = DefaultTone
	}

	userPrompt := fmt.Sprintf(`Buatkan caption promosi yang KREATIF dan SPESIFIK untuk menu ini:
- Menu: %s
- Harga: Rp %s
- Target Pasar: %s
- Tone: %s`, in.MenuName, formatRupiah(in.Price), in.TargetMarket, tone)
	if in.AdditionalInfo != "" {
		userPrompt += "\n- Info Tambahan: " + in.AdditionalInfo
	}

	conv := provider.Conversation{
		{Role: provider.RoleSystem, Content: promoSystemPrompt},
		{Role: provider.RoleUser, Content: userPrompt},
	}

	raw, err := a.provider.Complete(ctx, conv, provider.Options{
		Temperature: 0.9,
		MaxTokens:   600,
	})
	if err != nil || strings.TrimSpace(raw) == "" {
		if err != nil {
			a.logger.Warn("promo generation failed",
				slog.String("provider", a.provider.Name()),
				slog.String("error", err.Error()),
			)
		}
		return fallbackPromo(in)
	}

	// A completion carrying a JSON object is never salvaged as prose: if
	// its caption is unusable the templated fallback takes over.
	if obj, ok := sanitize.ExtractJSONObject(raw); ok && gjson.Valid(obj) {
		if result, ok := promoFromObject(obj); ok {
			return result
		}
		return fallbackPromo(in)
	}
	if result, ok := promoFromPlainText(raw); ok {
		return result
	}
	return fallbackPromo(in)
}

// promoFromObject pulls {caption, hashtags} out of a JSON object.
func promoFromObject(obj string) (PromoCaption, bool) {
	caption := sanitize.Clean(gjson.Get(obj, "caption").String())
	if len(caption) <= minCaptionLen {
		return PromoCaption{}, false
	}

	hashtags := []string{}
	for _, tag := range stringList(gjson.Get(obj, "hashtags")) {
		if hashtagRe.MatchString(tag) {
			hashtags = append(hashtags, tag)
		}
	}
	if len(hashtags) == 0 {
		hashtags = fallbackHashtags()
	}

	return PromoCaption{Caption: caption, Hashtags: hashtags}, true
}

// promoFromPlainText salvages an unstructured completion: hashtag-shaped
// tokens are separated out and the remaining prose becomes the caption.
func promoFromPlainText(raw string) (PromoCaption, bool) {
	cleaned := sanitize.Clean(raw)
	tags := hashtagRe.FindAllString(cleaned, -1)

	caption := hashtagRe.ReplaceAllString(cleaned, "")
	caption = strings.Join(strings.Fields(caption), " ")
	if len(caption) <= minCaptionLen {
		return PromoCaption{}, false
	}

	if len(tags) == 0 {
		tags = fallbackHashtags()
	}
	return PromoCaption{Caption: caption, Hashtags: tags}, true
}

// fallbackPromo is the deterministic templated result.
func fallbackPromo(in PromoInput) PromoCaption {
	caption := fmt.Sprintf(
		"🔥 PROMO SPESIAL! 🔥\n\n%s dengan harga spesial Rp %s! Jangan sampai kehabisan! 🍽️",
		in.MenuName, formatRupiah(in.Price),
	)
	return PromoCaption{Caption: caption, Hashtags: fallbackHashtags()}
}

// fallbackHashtags returns a fresh copy so callers cannot mutate the
// shared default.
func fallbackHashtags() []string {
	return append([]string(nil), defaultHashtags...)
}

// formatRupiah renders an amount in the Indonesian convention with dots as
// thousand separators: 25000 becomes "25.000".
func formatRupiah(n int) string {
	if n < 0 {
		return "-" + formatRupiah(-n)
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
