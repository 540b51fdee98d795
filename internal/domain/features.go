// Package domain contains the core business entities and value objects.
package domain

// AI feature identifiers, used as routing keys from feature to provider.
const (
	FeatureChatbot        = "chatbot"
	FeatureAnalyzeReviews = "analyze-reviews"
	FeatureGeneratePromo  = "generate-promo"
	FeatureMenuRecs       = "menu-recommendations"
	FeaturePriceStockRecs = "price-stock-recommendations"
)

// Features lists every AI feature the gateway serves.
var Features = []string{
	FeatureChatbot,
	FeatureAnalyzeReviews,
	FeatureGeneratePromo,
	FeatureMenuRecs,
	FeaturePriceStockRecs,
}
