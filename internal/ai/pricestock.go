package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/kulina/kulina-ai/internal/provider"
	"github.com/kulina/kulina-ai/internal/sanitize"
)

const priceStockSystemPrompt = `Kamu adalah konsultan bisnis kuliner yang ahli dalam analisis harga dan manajemen stok rumah makan. Analisis data penjualan, review pelanggan, dan level stok yang diberikan.

Format output HARUS JSON dengan struktur:
{
  "priceRecommendations": [
    {"menuName": "...", "currentPrice": 0, "suggestedPrice": 0, "reason": "..."}
  ],
  "stockRecommendations": [
    {"menuName": "...", "action": "tambah|kurangi|pertahankan", "reason": "..."}
  ],
  "insights": ["..."]
}

Gunakan bahasa Indonesia untuk semua alasan dan insight.`

// priceStockParseInsight is shown when the model answered but its output
// could not be parsed as structured advice.
const priceStockParseInsight = "AI sedang menganalisis data penjualan dan review..."

// SalesRecord summarizes sales for one menu item.
type SalesRecord struct {
	MenuName  string `json:"menuName"`
	UnitsSold int    `json:"unitsSold"`
	Revenue   int    `json:"revenue"`
	Price     int    `json:"price"`
}

// MenuReview is a customer review attached to a menu item.
type MenuReview struct {
	MenuName string `json:"menuName"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// StockLevel is the current stock position for a menu item.
type StockLevel struct {
	MenuName string `json:"menuName"`
	Quantity int    `json:"quantity"`
}

// PriceRecommendation suggests a price adjustment for one item.
type PriceRecommendation struct {
	MenuName       string `json:"menuName"`
	CurrentPrice   int    `json:"currentPrice"`
	SuggestedPrice int    `json:"suggestedPrice"`
	Reason         string `json:"reason"`
}

// StockRecommendation suggests a stock action for one item.
type StockRecommendation struct {
	MenuName string `json:"menuName"`
	Action   string `json:"action"`
	Reason   string `json:"reason"`
}

// PriceStockAdvice is the structured advisory result. All three slices
// are always non-nil so the JSON encoding never emits null arrays.
type PriceStockAdvice struct {
	PriceRecommendations []PriceRecommendation `json:"priceRecommendations"`
	StockRecommendations []StockRecommendation `json:"stockRecommendations"`
	Insights             []string              `json:"insights"`
}

// PriceStockAdvisor turns sales, review, and stock data into advice.
type PriceStockAdvisor struct {
	provider provider.Provider
	logger   *slog.Logger
}

// NewPriceStockAdvisor creates a price and stock advisory adapter.
func NewPriceStockAdvisor(p provider.Provider, logger *slog.Logger) *PriceStockAdvisor {
	return &PriceStockAdvisor{provider: p, logger: logger}
}

// Execute analyzes the given business data. It never returns an error:
// failures degrade to empty recommendation lists with a status insight.
func (a *PriceStockAdvisor) Execute(ctx context.Context, sales []SalesRecord, reviews []MenuReview, stock []StockLevel) PriceStockAdvice {
	prompt, err := buildPriceStockPrompt(sales, reviews, stock)
	if err != nil {
		a.logger.Warn("price stock prompt build failed", slog.String("error", err.Error()))
		return emptyAdvice(priceStockParseInsight)
	}

	conv := provider.Conversation{
		{Role: provider.RoleSystem, Content: priceStockSystemPrompt},
		{Role: provider.RoleUser, Content: prompt},
	}

	raw, err := a.provider.Complete(ctx, conv, provider.Options{
		Temperature: 0.3,
		MaxTokens:   1500,
	})
	if err != nil || strings.TrimSpace(raw) == "" {
		if err != nil {
			a.logger.Warn("price stock analysis failed",
				slog.String("provider", a.provider.Name()),
				slog.String("error", err.Error()),
			)
		}
		return emptyAdvice(priceStockParseInsight)
	}

	return parsePriceStockAdvice(raw)
}

func buildPriceStockPrompt(sales []SalesRecord, reviews []MenuReview, stock []StockLevel) (string, error) {
	salesJSON, err := json.Marshal(sales)
	if err != nil {
		return "", err
	}
	reviewsJSON, err := json.Marshal(reviews)
	if err != nil {
		return "", err
	}
	stockJSON, err := json.Marshal(stock)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`Analisis data bisnis rumah makan berikut dan berikan rekomendasi harga dan stok:

Data penjualan:
%s

Review pelanggan:
%s

Level stok:
%s`, salesJSON, reviewsJSON, stockJSON), nil
}

// parsePriceStockAdvice extracts structured advice from model output.
// Missing or malformed sections degrade individually.
func parsePriceStockAdvice(raw string) PriceStockAdvice {
	obj, ok := sanitize.ExtractJSONObject(raw)
	if !ok || !gjson.Valid(obj) {
		return emptyAdvice(priceStockParseInsight)
	}

	advice := PriceStockAdvice{
		PriceRecommendations: []PriceRecommendation{},
		StockRecommendations: []StockRecommendation{},
		Insights:             []string{},
	}

	gjson.Get(obj, "priceRecommendations").ForEach(func(_, item gjson.Result) bool {
		advice.PriceRecommendations = append(advice.PriceRecommendations, PriceRecommendation{
			MenuName:       item.Get("menuName").String(),
			CurrentPrice:   int(item.Get("currentPrice").Int()),
			SuggestedPrice: int(item.Get("suggestedPrice").Int()),
			Reason:         sanitize.Clean(item.Get("reason").String()),
		})
		return true
	})

	gjson.Get(obj, "stockRecommendations").ForEach(func(_, item gjson.Result) bool {
		advice.StockRecommendations = append(advice.StockRecommendations, StockRecommendation{
			MenuName: item.Get("menuName").String(),
			Action:   item.Get("action").String(),
			Reason:   sanitize.Clean(item.Get("reason").String()),
		})
		return true
	})

	advice.Insights = stringList(gjson.Get(obj, "insights"))
	return advice
}

func emptyAdvice(insight string) PriceStockAdvice {
	return PriceStockAdvice{
		PriceRecommendations: []PriceRecommendation{},
		StockRecommendations: []StockRecommendation{},
		Insights:             []string{insight},
	}
}
