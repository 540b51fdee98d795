package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/kulina/kulina-ai/internal/provider"
	"github.com/kulina/kulina-ai/internal/sanitize"
)

const reviewSystemPrompt = `Kamu adalah analis data untuk rumah makan. Analisis review pelanggan dan berikan insight serta rekomendasi.

Format output JSON:
{
  "sentiment": { "positive": 0, "neutral": 0, "negative": 0 },
  "insights": ["insight1", "insight2"],
  "recommendations": ["rekomendasi1", "rekomendasi2"]
}

Gunakan bahasa Indonesia.`

// Canned strings used when the provider output is unusable.
const (
	reviewPendingInsight = "Analisis review sedang diproses"
	reviewOutageInsight  = "Sistem sedang mengalami gangguan. Pastikan koneksi internet stabil dan coba refresh halaman."
	reviewDefaultRec     = "Terus tingkatkan kualitas pelayanan"
)

// Review is one customer review submitted for analysis.
type Review struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Name    string `json:"name"`
}

// Sentiment buckets reviews into three counts.
type Sentiment struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// ReviewAnalysis is the always-populated result of review analysis.
type ReviewAnalysis struct {
	Sentiment       Sentiment `json:"sentiment"`
	Insights        []string  `json:"insights"`
	Recommendations []string  `json:"recommendations"`
}

// SentimentFromRatings computes sentiment buckets directly from numeric
// ratings: rating >= 4 is positive, rating <= 2 is negative, the rest is
// neutral. This doubles as the deterministic fallback and as a sanity
// check against model output.
func SentimentFromRatings(reviews []Review) Sentiment {
	var s Sentiment
	for _, r := range reviews {
		switch {
		case r.Rating >= 4:
			s.Positive++
		case r.Rating <= 2:
			s.Negative++
		default:
			s.Neutral++
		}
	}
	return s
}

// ReviewAnalyzer summarizes customer reviews for the admin dashboard.
type ReviewAnalyzer struct {
	provider provider.Provider
	logger   *slog.Logger
}

// NewReviewAnalyzer creates a review analysis adapter.
func NewReviewAnalyzer(p provider.Provider, logger *slog.Logger) *ReviewAnalyzer {
	return &ReviewAnalyzer{provider: p, logger: logger}
}

// Execute analyzes the given reviews. It never returns an error: provider
// or parse failures degrade to the rating-derived sentiment plus canned
// insight text.
func (a *ReviewAnalyzer) Execute(ctx context.Context, reviews []Review) ReviewAnalysis {
	var lines []string
	for _, r := range reviews {
		lines = append(lines, fmt.Sprintf("- %s: Rating %d/5 - %q", r.Name, r.Rating, r.Comment))
	}
	userPrompt := fmt.Sprintf(
		"Analisis review berikut:\n\n%s\n\nBerikan analisis sentiment, insight, dan rekomendasi dalam format JSON.",
		strings.Join(lines, "\n"),
	)

	conv := provider.Conversation{
		{Role: provider.RoleSystem, Content: reviewSystemPrompt},
		{Role: provider.RoleUser, Content: userPrompt},
	}

	raw, err := a.provider.Complete(ctx, conv, provider.Options{
		Temperature: 0.3,
		MaxTokens:   1000,
	})
	if err != nil || strings.TrimSpace(raw) == "" {
		if err != nil {
			a.logger.Warn("review analysis failed",
				slog.String("provider", a.provider.Name()),
				slog.String("error", err.Error()),
			)
		}
		return ReviewAnalysis{
			Sentiment:       SentimentFromRatings(reviews),
			Insights:        []string{reviewOutageInsight},
			Recommendations: []string{},
		}
	}

	return parseReviewAnalysis(raw, reviews)
}

// parseReviewAnalysis extracts the analysis JSON from raw model output.
// Missing fields get per-field defaults rather than rejecting the whole
// result.
func parseReviewAnalysis(raw string, reviews []Review) ReviewAnalysis {
	obj, ok := sanitize.ExtractJSONObject(raw)
	if !ok || !gjson.Valid(obj) {
		return ReviewAnalysis{
			Sentiment:       SentimentFromRatings(reviews),
			Insights:        []string{reviewPendingInsight},
			Recommendations: []string{reviewDefaultRec},
		}
	}

	analysis := ReviewAnalysis{
		Sentiment:       SentimentFromRatings(reviews),
		Insights:        []string{},
		Recommendations: []string{},
	}

	if sentiment := gjson.Get(obj, "sentiment"); sentiment.IsObject() {
		analysis.Sentiment = Sentiment{
			Positive: int(sentiment.Get("positive").Int()),
			Neutral:  int(sentiment.Get("neutral").Int()),
			Negative: int(sentiment.Get("negative").Int()),
		}
	}

	analysis.Insights = stringList(gjson.Get(obj, "insights"))
	if len(analysis.Insights) == 0 {
		analysis.Insights = []string{reviewPendingInsight}
	}

	analysis.Recommendations = stringList(gjson.Get(obj, "recommendations"))
	if len(analysis.Recommendations) == 0 {
		analysis.Recommendations = []string{reviewDefaultRec}
	}

	return analysis
}

// stringList converts a gjson array into a []string, skipping non-string
// and empty elements. Returns an empty slice, never nil.
func stringList(result gjson.Result) []string {
	out := []string{}
	if !result.IsArray() {
		return out
	}
	for _, el := range result.Array() {
		if s := strings.TrimSpace(el.String()); s != "" {
			out = append(out, s)
		}
	}
	return out
}
