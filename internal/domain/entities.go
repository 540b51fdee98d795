// Package domain contains the core business entities and value objects.
// These structs are framework-agnostic and represent the heart of the application.
package domain

import "time"

// Menu represents a single item on the restaurant menu.
type Menu struct {
	// ID is the unique identifier assigned by the storage layer.
	ID string `json:"id"`

	// Name is the display name of the dish or drink.
	Name string `json:"name"`

	// Description is a short marketing description.
	Description string `json:"description"`

	// Price is the price in the smallest currency unit (Rupiah).
	Price int `json:"price"`

	// Category groups menus for browsing (e.g. "Makanan Utama", "Minuman").
	Category string `json:"category"`

	// Image is a URL to the menu photo.
	Image string `json:"image"`

	// Available indicates whether the item can currently be ordered.
	Available bool `json:"available"`

	// CreatedAt is when the menu was first registered.
	CreatedAt time.Time `json:"createdAt"`
}

// CartItem is one line in a consumer's shopping cart.
type CartItem struct {
	MenuID   string `json:"menuId"`
	MenuName string `json:"menuName"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
	Image    string `json:"image"`
}

// OrderStatus describes the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

// IsValid reports whether the status is one of the known lifecycle states.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderCompleted, OrderCancelled:
		return true
	default:
		return false
	}
}

// Order represents a placed order.
type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Items     []CartItem  `json:"items"`
	Total     int         `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Review is customer feedback for an ordered menu item.
type Review struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	MenuName  string    `json:"menuName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
