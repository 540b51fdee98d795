// Package handler provides the gin HTTP handlers for the KULINA.AI API.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kulina/kulina-ai/internal/ai"
	"github.com/kulina/kulina-ai/internal/provider"
)

// AIHandler serves the AI feature endpoints. Validation failures return
// 400; provider failures never reach the client because every adapter
// degrades to a usable fallback.
type AIHandler struct {
	gateway *ai.Gateway
	logger  *slog.Logger
}

// AIHandlerOption is a functional option for configuring AIHandler.
type AIHandlerOption func(*AIHandler)

// WithAILogger sets a custom logger.
func WithAILogger(logger *slog.Logger) AIHandlerOption {
	return func(h *AIHandler) {
		h.logger = logger
	}
}

// NewAIHandler creates an AIHandler backed by the feature gateway.
func NewAIHandler(gateway *ai.Gateway, opts ...AIHandlerOption) *AIHandler {
	h := &AIHandler{
		gateway: gateway,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type chatbotRequest struct {
	Message             string             `json:"message"`
	ConversationHistory []provider.Message `json:"conversationHistory"`
}

// HandleChatbot handles POST /api/ai/chatbot
func (h *AIHandler) HandleChatbot(c *gin.Context) {
	var req chatbotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Message == "" {
		sendError(c, http.StatusBadRequest, "message is required and must be a string")
		return
	}

	response := h.gateway.Chat(c.Request.Context(), req.Message, req.ConversationHistory)
	c.JSON(http.StatusOK, gin.H{"response": response})
}

type analyzeReviewsRequest struct {
	Reviews []ai.Review `json:"reviews"`
}

// HandleAnalyzeReviews handles POST /api/ai/analyze-reviews
func (h *AIHandler) HandleAnalyzeReviews(c *gin.Context) {
	var req analyzeReviewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Reviews == nil {
		sendError(c, http.StatusBadRequest, "reviews array is required")
		return
	}

	analysis := h.gateway.AnalyzeReviews(c.Request.Context(), req.Reviews)
	c.JSON(http.StatusOK, analysis)
}

type generatePromoRequest struct {
	MenuName       string `json:"menuName"`
	Price          int    `json:"price"`
	TargetMarket   string `json:"targetMarket"`
	Tone           string `json:"tone"`
	AdditionalInfo string `json:"additionalInfo"`
}

// HandleGeneratePromo handles POST /api/ai/generate-promo
func (h *AIHandler) HandleGeneratePromo(c *gin.Context) {
	var req generatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.MenuName == "" || req.Price == 0 || req.TargetMarket == "" {
		sendError(c, http.StatusBadRequest, "menuName, price, and targetMarket are required")
		return
	}

	result := h.gateway.GeneratePromo(c.Request.Context(), ai.PromoInput{
		MenuName:       req.MenuName,
		Price:          req.Price,
		TargetMarket:   req.TargetMarket,
		Tone:           req.Tone,
		AdditionalInfo: req.AdditionalInfo,
	})
	c.JSON(http.StatusOK, result)
}

type menuRecommendationsRequest struct {
	OrderHistory []string `json:"orderHistory"`
	Preferences  []string `json:"preferences"`
	TimeOfDay    string   `json:"timeOfDay"`
	CurrentMood  string   `json:"currentMood"`
}

// HandleMenuRecommendations handles POST /api/ai/menu-recommendations
func (h *AIHandler) HandleMenuRecommendations(c *gin.Context) {
	var req menuRecommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	recommendation := h.gateway.MenuRecommendation(c.Request.Context(), ai.MenuContext{
		OrderHistory: req.OrderHistory,
		Preferences:  req.Preferences,
		TimeOfDay:    req.TimeOfDay,
		CurrentMood:  req.CurrentMood,
	})
	c.JSON(http.StatusOK, gin.H{"recommendation": recommendation})
}

type priceStockRequest struct {
	SalesData   []ai.SalesRecord `json:"salesData"`
	Reviews     []ai.MenuReview  `json:"reviews"`
	StockLevels []ai.StockLevel  `json:"stockLevels"`
}

// HandlePriceStockRecommendations handles POST /api/ai/price-stock-recommendations
func (h *AIHandler) HandlePriceStockRecommendations(c *gin.Context) {
	var req priceStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	advice := h.gateway.PriceStockAdvice(c.Request.Context(), req.SalesData, req.Reviews, req.StockLevels)
	c.JSON(http.StatusOK, advice)
}

// sendError sends a JSON error body matching the API convention.
func sendError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
