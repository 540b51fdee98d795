// Package storage provides the persistence layer for menus, carts,
// orders, reviews, and favorites. The in-memory implementation is the
// only backend today.
package storage

import (
	"errors"

	"github.com/kulina/kulina-ai/internal/domain"
)

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = errors.New("storage: not found")

// Store is the persistence contract the HTTP layer depends on.
type Store interface {
	// Menus
	AllMenus() []domain.Menu
	MenusByCategory(category string) []domain.Menu
	Menu(id string) (domain.Menu, error)
	CreateMenu(m domain.Menu) domain.Menu
	UpdateMenu(id string, update MenuUpdate) (domain.Menu, error)
	DeleteMenu(id string) error

	// Cart
	Cart(userID string) []domain.CartItem
	AddToCart(userID string, item domain.CartItem)
	UpdateCartItem(userID, menuID string, quantity int) error
	RemoveFromCart(userID, menuID string)
	ClearCart(userID string)

	// Orders
	CreateOrder(o domain.Order) domain.Order
	Order(id string) (domain.Order, error)
	OrdersByUser(userID string) []domain.Order
	AllOrders() []domain.Order
	UpdateOrderStatus(id string, status domain.OrderStatus) (domain.Order, error)

	// Reviews
	CreateReview(r domain.Review) domain.Review
	ReviewsByMenu(menuName string) []domain.Review
	AllReviews() []domain.Review

	// Favorites
	AddFavorite(userID, menuID string)
	RemoveFavorite(userID, menuID string)
	Favorites(userID string) []domain.Menu
	IsFavorite(userID, menuID string) bool
}

// MenuUpdate carries a partial menu update. Nil fields are left as-is.
type MenuUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int    `json:"price"`
	Category    *string `json:"category"`
	Image       *string `json:"image"`
	Available   *bool   `json:"available"`
}
