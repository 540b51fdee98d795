package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// NewRouter assembles the gin engine with middleware and all routes.
// It is shared by main and by the end-to-end tests.
func NewRouter(aiHandler *AIHandler, storeHandler *StoreHandler, logger *slog.Logger) *gin.Engine {
	router := gin.New()

	router.Use(RecoveryMiddleware(logger))
	router.Use(CORSMiddleware())
	router.Use(LoggingMiddleware(logger))

	// AI features
	router.POST("/api/ai/chatbot", aiHandler.HandleChatbot)
	router.POST("/api/ai/analyze-reviews", aiHandler.HandleAnalyzeReviews)
	router.POST("/api/ai/generate-promo", aiHandler.HandleGeneratePromo)
	router.POST("/api/ai/menu-recommendations", aiHandler.HandleMenuRecommendations)
	router.POST("/api/ai/price-stock-recommendations", aiHandler.HandlePriceStockRecommendations)

	// Menus
	router.GET("/api/menus", storeHandler.HandleListMenus)
	router.GET("/api/menus/:id", storeHandler.HandleGetMenu)
	router.POST("/api/menus", storeHandler.HandleCreateMenu)
	router.PUT("/api/menus/:id", storeHandler.HandleUpdateMenu)
	router.DELETE("/api/menus/:id", storeHandler.HandleDeleteMenu)

	// Cart
	router.GET("/api/cart/:userId", storeHandler.HandleGetCart)
	router.POST("/api/cart/:userId/add", storeHandler.HandleAddToCart)
	router.PUT("/api/cart/:userId/update", storeHandler.HandleUpdateCartItem)
	router.DELETE("/api/cart/:userId/:menuId", storeHandler.HandleRemoveFromCart)
	router.DELETE("/api/cart/:userId", storeHandler.HandleClearCart)

	// Orders
	router.GET("/api/orders", storeHandler.HandleListOrders)
	router.GET("/api/orders/user/:userId", storeHandler.HandleOrdersByUser)
	router.POST("/api/orders", storeHandler.HandleCreateOrder)
	router.PUT("/api/orders/:id/status", storeHandler.HandleUpdateOrderStatus)

	// Reviews
	router.GET("/api/reviews", storeHandler.HandleListReviews)
	router.POST("/api/reviews", storeHandler.HandleCreateReview)
	router.GET("/api/reviews/for-analysis", storeHandler.HandleReviewsForAnalysis)

	// Favorites
	router.GET("/api/favorites/:userId", storeHandler.HandleListFavorites)
	router.POST("/api/favorites/:userId/:menuId", storeHandler.HandleAddFavorite)
	router.DELETE("/api/favorites/:userId/:menuId", storeHandler.HandleRemoveFavorite)
	router.GET("/api/favorites/:userId/check/:menuId", storeHandler.HandleCheckFavorite)

	// AI data preparation
	router.GET("/api/users/:userId/order-history", storeHandler.HandleOrderHistory)

	router.GET("/health", storeHandler.HandleHealth)

	return router
}
