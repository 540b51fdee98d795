package ai

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kulina/kulina-ai/internal/domain"
	"github.com/kulina/kulina-ai/internal/provider"
)

// Gateway is the single entry point the HTTP layer uses for AI features.
// Each feature is routed to exactly one configured provider; there is no
// server-side retry or cross-provider fallback.
type Gateway struct {
	chat       *ChatAssistant
	reviews    *ReviewAnalyzer
	promo      *PromoGenerator
	menu       *MenuRecommender
	priceStock *PriceStockAdvisor
}

// NewGateway wires one adapter per feature from the provider registry and
// the feature routing table. Every feature must map to a registered
// provider or construction fails.
func NewGateway(providers map[string]provider.Provider, routing map[string]string, logger *slog.Logger) (*Gateway, error) {
	pick := func(feature string) (provider.Provider, error) {
		name, ok := routing[feature]
		if !ok {
			return nil, fmt.Errorf("no provider routed for feature %q", feature)
		}
		p, ok := providers[name]
		if !ok {
			return nil, fmt.Errorf("feature %q routed to unknown provider %q", feature, name)
		}
		return p, nil
	}

	g := &Gateway{}
	var err error
	var p provider.Provider

	if p, err = pick(domain.FeatureChatbot); err != nil {
		return nil, err
	}
	g.chat = NewChatAssistant(p, logger)

	if p, err = pick(domain.FeatureAnalyzeReviews); err != nil {
		return nil, err
	}
	g.reviews = NewReviewAnalyzer(p, logger)

	if p, err = pick(domain.FeatureGeneratePromo); err != nil {
		return nil, err
	}
	g.promo = NewPromoGenerator(p, logger)

	if p, err = pick(domain.FeatureMenuRecs); err != nil {
		return nil, err
	}
	g.menu = NewMenuRecommender(p, logger)

	if p, err = pick(domain.FeaturePriceStockRecs); err != nil {
		return nil, err
	}
	g.priceStock = NewPriceStockAdvisor(p, logger)

	return g, nil
}

// Chat answers a customer message with conversation history.
func (g *Gateway) Chat(ctx context.Context, message string, history []provider.Message) string {
	return g.chat.Execute(ctx, message, history)
}

// AnalyzeReviews summarizes customer reviews for the admin dashboard.
func (g *Gateway) AnalyzeReviews(ctx context.Context, reviews []Review) ReviewAnalysis {
	return g.reviews.Execute(ctx, reviews)
}

// GeneratePromo writes a social media caption for a menu promotion.
func (g *Gateway) GeneratePromo(ctx context.Context, in PromoInput) PromoCaption {
	return g.promo.Execute(ctx, in)
}

// MenuRecommendation suggests a menu item for the current customer.
func (g *Gateway) MenuRecommendation(ctx context.Context, mc MenuContext) string {
	return g.menu.Execute(ctx, mc)
}

// PriceStockAdvice analyzes sales, reviews, and stock for the admin.
func (g *Gateway) PriceStockAdvice(ctx context.Context, sales []SalesRecord, reviews []MenuReview, stock []StockLevel) PriceStockAdvice {
	return g.priceStock.Execute(ctx, sales, reviews, stock)
}
