package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kulina/kulina-ai/internal/domain"
)

// MemStorage is a mutex-guarded in-memory Store. All accessors return
// copies so callers never share internal state.
type MemStorage struct {
	mu        sync.RWMutex
	menus     map[string]domain.Menu
	carts     map[string][]domain.CartItem
	orders    map[string]domain.Order
	reviews   map[string]domain.Review
	favorites map[string]map[string]bool
}

// NewMemStorage creates an empty store.
func NewMemStorage() *MemStorage {
	return &MemStorage{
		menus:     make(map[string]domain.Menu),
		carts:     make(map[string][]domain.CartItem),
		orders:    make(map[string]domain.Order),
		reviews:   make(map[string]domain.Review),
		favorites: make(map[string]map[string]bool),
	}
}

// NewSeededStorage creates a store preloaded with the sample catalog.
func NewSeededStorage() *MemStorage {
	s := NewMemStorage()
	for _, m := range sampleMenus() {
		s.CreateMenu(m)
	}
	return s
}

// Menus

func (s *MemStorage) AllMenus() []domain.Menu {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Menu, 0, len(s.menus))
	for _, m := range s.menus {
		out = append(out, m)
	}
	sortMenus(out)
	return out
}

func (s *MemStorage) MenusByCategory(category string) []domain.Menu {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Menu{}
	for _, m := range s.menus {
		if m.Category == category {
			out = append(out, m)
		}
	}
	sortMenus(out)
	return out
}

func (s *MemStorage) Menu(id string) (domain.Menu, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.menus[id]
	if !ok {
		return domain.Menu{}, ErrNotFound
	}
	return m, nil
}

func (s *MemStorage) CreateMenu(m domain.Menu) domain.Menu {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = uuid.NewString()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	s.menus[m.ID] = m
	return m
}

func (s *MemStorage) UpdateMenu(id string, update MenuUpdate) (domain.Menu, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.menus[id]
	if !ok {
		return domain.Menu{}, ErrNotFound
	}
	if update.Name != nil {
		m.Name = *update.Name
	}
	if update.Description != nil {
		m.Description = *update.Description
	}
	if update.Price != nil {
		m.Price = *update.Price
	}
	if update.Category != nil {
		m.Category = *update.Category
	}
	if update.Image != nil {
		m.Image = *update.Image
	}
	if update.Available != nil {
		m.Available = *update.Available
	}
	s.menus[id] = m
	return m, nil
}

func (s *MemStorage) DeleteMenu(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.menus[id]; !ok {
		return ErrNotFound
	}
	delete(s.menus, id)
	return nil
}

// Cart

func (s *MemStorage) Cart(userID string) []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.CartItem{}, s.carts[userID]...)
}

// AddToCart merges quantity into an existing line for the same menu item.
func (s *MemStorage) AddToCart(userID string, item domain.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.carts[userID]
	for i := range cart {
		if cart[i].MenuID == item.MenuID {
			cart[i].Quantity += item.Quantity
			s.carts[userID] = cart
			return
		}
	}
	s.carts[userID] = append(cart, item)
}

func (s *MemStorage) UpdateCartItem(userID, menuID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.carts[userID]
	for i := range cart {
		if cart[i].MenuID == menuID {
			cart[i].Quantity = quantity
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemStorage) RemoveFromCart(userID, menuID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.carts[userID]
	out := cart[:0]
	for _, item := range cart {
		if item.MenuID != menuID {
			out = append(out, item)
		}
	}
	s.carts[userID] = out
}

func (s *MemStorage) ClearCart(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// Orders

func (s *MemStorage) CreateOrder(o domain.Order) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.ID = uuid.NewString()
	if o.Status == "" {
		o.Status = domain.OrderPending
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	s.orders[o.ID] = o
	return o
}

func (s *MemStorage) Order(id string) (domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return domain.Order{}, ErrNotFound
	}
	return o, nil
}

func (s *MemStorage) OrdersByUser(userID string) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Order{}
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sortOrders(out)
	return out
}

func (s *MemStorage) AllOrders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	sortOrders(out)
	return out
}

func (s *MemStorage) UpdateOrderStatus(id string, status domain.OrderStatus) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return domain.Order{}, ErrNotFound
	}
	o.Status = status
	s.orders[id] = o
	return o, nil
}

// Reviews

func (s *MemStorage) CreateReview(r domain.Review) domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = uuid.NewString()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	s.reviews[r.ID] = r
	return r
}

func (s *MemStorage) ReviewsByMenu(menuName string) []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Review{}
	for _, r := range s.reviews {
		if r.MenuName == menuName {
			out = append(out, r)
		}
	}
	sortReviews(out)
	return out
}

func (s *MemStorage) AllReviews() []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Review, 0, len(s.reviews))
	for _, r := range s.reviews {
		out = append(out, r)
	}
	sortReviews(out)
	return out
}

// Favorites

func (s *MemStorage) AddFavorite(userID, menuID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.favorites[userID] == nil {
		s.favorites[userID] = make(map[string]bool)
	}
	s.favorites[userID][menuID] = true
}

func (s *MemStorage) RemoveFavorite(userID, menuID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.favorites[userID], menuID)
}

func (s *MemStorage) Favorites(userID string) []domain.Menu {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Menu{}
	for id := range s.favorites[userID] {
		if m, ok := s.menus[id]; ok {
			out = append(out, m)
		}
	}
	sortMenus(out)
	return out
}

func (s *MemStorage) IsFavorite(userID, menuID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.favorites[userID][menuID]
}

// Map iteration order is random; sort so list handlers are stable.

func sortMenus(menus []domain.Menu) {
	sort.Slice(menus, func(i, j int) bool {
		if menus[i].Category != menus[j].Category {
			return menus[i].Category < menus[j].Category
		}
		return menus[i].Name < menus[j].Name
	})
}

func sortOrders(orders []domain.Order) {
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

func sortReviews(reviews []domain.Review) {
	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
}
