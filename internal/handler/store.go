package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kulina/kulina-ai/internal/domain"
	"github.com/kulina/kulina-ai/internal/storage"
)

// StoreHandler serves the menu, cart, order, review, and favorite CRUD
// endpoints backed by the storage layer.
type StoreHandler struct {
	store  storage.Store
	logger *slog.Logger
}

// StoreHandlerOption is a functional option for configuring StoreHandler.
type StoreHandlerOption func(*StoreHandler)

// WithStoreLogger sets a custom logger.
func WithStoreLogger(logger *slog.Logger) StoreHandlerOption {
	return func(h *StoreHandler) {
		h.logger = logger
	}
}

// NewStoreHandler creates a StoreHandler.
func NewStoreHandler(store storage.Store, opts ...StoreHandlerOption) *StoreHandler {
	h := &StoreHandler{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Menus

// HandleListMenus handles GET /api/menus with an optional ?category filter.
func (h *StoreHandler) HandleListMenus(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		c.JSON(http.StatusOK, h.store.MenusByCategory(category))
		return
	}
	c.JSON(http.StatusOK, h.store.AllMenus())
}

// HandleGetMenu handles GET /api/menus/:id
func (h *StoreHandler) HandleGetMenu(c *gin.Context) {
	menu, err := h.store.Menu(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusNotFound, "Menu not found")
		return
	}
	c.JSON(http.StatusOK, menu)
}

type createMenuRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int    `json:"price" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Image       string `json:"image"`
	Available   *bool  `json:"available"`
}

// HandleCreateMenu handles POST /api/menus
func (h *StoreHandler) HandleCreateMenu(c *gin.Context) {
	var req createMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	menu := h.store.CreateMenu(domain.Menu{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Available:   available,
	})
	c.JSON(http.StatusOK, menu)
}

// HandleUpdateMenu handles PUT /api/menus/:id
func (h *StoreHandler) HandleUpdateMenu(c *gin.Context) {
	var update storage.MenuUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	menu, err := h.store.UpdateMenu(c.Param("id"), update)
	if err != nil {
		sendError(c, http.StatusNotFound, "Menu not found")
		return
	}
	c.JSON(http.StatusOK, menu)
}

// HandleDeleteMenu handles DELETE /api/menus/:id
func (h *StoreHandler) HandleDeleteMenu(c *gin.Context) {
	if err := h.store.DeleteMenu(c.Param("id")); err != nil {
		sendError(c, http.StatusNotFound, "Menu not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Cart

// HandleGetCart handles GET /api/cart/:userId
func (h *StoreHandler) HandleGetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Cart(c.Param("userId")))
}

type addToCartRequest struct {
	MenuID   string `json:"menuId" binding:"required"`
	MenuName string `json:"menuName" binding:"required"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity" binding:"required"`
	Image    string `json:"image"`
}

// HandleAddToCart handles POST /api/cart/:userId/add and returns the
// updated cart.
func (h *StoreHandler) HandleAddToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	userID := c.Param("userId")
	h.store.AddToCart(userID, domain.CartItem{
		MenuID:   req.MenuID,
		MenuName: req.MenuName,
		Price:    req.Price,
		Quantity: req.Quantity,
		Image:    req.Image,
	})
	c.JSON(http.StatusOK, h.store.Cart(userID))
}

type updateCartRequest struct {
	MenuID   string `json:"menuId" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
}

// HandleUpdateCartItem handles PUT /api/cart/:userId/update
func (h *StoreHandler) HandleUpdateCartItem(c *gin.Context) {
	var req updateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	userID := c.Param("userId")
	if err := h.store.UpdateCartItem(userID, req.MenuID, req.Quantity); err != nil {
		sendError(c, http.StatusNotFound, "Cart item not found")
		return
	}
	c.JSON(http.StatusOK, h.store.Cart(userID))
}

// HandleRemoveFromCart handles DELETE /api/cart/:userId/:menuId
func (h *StoreHandler) HandleRemoveFromCart(c *gin.Context) {
	userID := c.Param("userId")
	h.store.RemoveFromCart(userID, c.Param("menuId"))
	c.JSON(http.StatusOK, h.store.Cart(userID))
}

// HandleClearCart handles DELETE /api/cart/:userId
func (h *StoreHandler) HandleClearCart(c *gin.Context) {
	h.store.ClearCart(c.Param("userId"))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Orders

// HandleListOrders handles GET /api/orders
func (h *StoreHandler) HandleListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.AllOrders())
}

// HandleOrdersByUser handles GET /api/orders/user/:userId
func (h *StoreHandler) HandleOrdersByUser(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.OrdersByUser(c.Param("userId")))
}

type createOrderRequest struct {
	UserID string             `json:"userId" binding:"required"`
	Items  []domain.CartItem  `json:"items" binding:"required"`
	Total  int                `json:"total"`
	Status domain.OrderStatus `json:"status"`
}

// HandleCreateOrder handles POST /api/orders. Placing an order clears
// the user's cart.
func (h *StoreHandler) HandleCreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Status != "" && !req.Status.IsValid() {
		sendError(c, http.StatusBadRequest, "invalid order status")
		return
	}
	order := h.store.CreateOrder(domain.Order{
		UserID: req.UserID,
		Items:  req.Items,
		Total:  req.Total,
		Status: req.Status,
	})
	h.store.ClearCart(req.UserID)
	c.JSON(http.StatusOK, order)
}

type updateOrderStatusRequest struct {
	Status domain.OrderStatus `json:"status" binding:"required"`
}

// HandleUpdateOrderStatus handles PUT /api/orders/:id/status
func (h *StoreHandler) HandleUpdateOrderStatus(c *gin.Context) {
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if !req.Status.IsValid() {
		sendError(c, http.StatusBadRequest, "invalid order status")
		return
	}
	order, err := h.store.UpdateOrderStatus(c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			sendError(c, http.StatusNotFound, "Order not found")
			return
		}
		sendError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, order)
}

// Reviews

// HandleListReviews handles GET /api/reviews
func (h *StoreHandler) HandleListReviews(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.AllReviews())
}

type createReviewRequest struct {
	OrderID  string `json:"orderId"`
	UserID   string `json:"userId" binding:"required"`
	UserName string `json:"userName" binding:"required"`
	MenuName string `json:"menuName" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment"`
}

// HandleCreateReview handles POST /api/reviews
func (h *StoreHandler) HandleCreateReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	review := h.store.CreateReview(domain.Review{
		OrderID:  req.OrderID,
		UserID:   req.UserID,
		UserName: req.UserName,
		MenuName: req.MenuName,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	c.JSON(http.StatusOK, review)
}

// Favorites

// HandleListFavorites handles GET /api/favorites/:userId
func (h *StoreHandler) HandleListFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Favorites(c.Param("userId")))
}

// HandleAddFavorite handles POST /api/favorites/:userId/:menuId
func (h *StoreHandler) HandleAddFavorite(c *gin.Context) {
	h.store.AddFavorite(c.Param("userId"), c.Param("menuId"))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// HandleRemoveFavorite handles DELETE /api/favorites/:userId/:menuId
func (h *StoreHandler) HandleRemoveFavorite(c *gin.Context) {
	h.store.RemoveFavorite(c.Param("userId"), c.Param("menuId"))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// HandleCheckFavorite handles GET /api/favorites/:userId/check/:menuId
func (h *StoreHandler) HandleCheckFavorite(c *gin.Context) {
	isFavorite := h.store.IsFavorite(c.Param("userId"), c.Param("menuId"))
	c.JSON(http.StatusOK, gin.H{"isFavorite": isFavorite})
}

// Data preparation for the AI features

// HandleOrderHistory handles GET /api/users/:userId/order-history and
// flattens the user's orders into a list of menu names for the menu
// recommendation feature.
func (h *StoreHandler) HandleOrderHistory(c *gin.Context) {
	orders := h.store.OrdersByUser(c.Param("userId"))
	history := []string{}
	for _, order := range orders {
		for _, item := range order.Items {
			history = append(history, item.MenuName)
		}
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}

type reviewForAnalysis struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// HandleReviewsForAnalysis handles GET /api/reviews/for-analysis and
// projects stored reviews into the shape the review analyzer expects.
func (h *StoreHandler) HandleReviewsForAnalysis(c *gin.Context) {
	reviews := h.store.AllReviews()
	formatted := make([]reviewForAnalysis, 0, len(reviews))
	for _, r := range reviews {
		formatted = append(formatted, reviewForAnalysis{
			Name:    r.UserName,
			Rating:  r.Rating,
			Comment: r.Comment,
		})
	}
	c.JSON(http.StatusOK, formatted)
}

// HandleHealth handles GET /health
func (h *StoreHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"menus":  len(h.store.AllMenus()),
	})
}
