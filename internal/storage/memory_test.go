package storage

import (
	"errors"
	"sync"
	"testing"

	"github.com/kulina/kulina-ai/internal/domain"
)

func TestMenuCRUD(t *testing.T) {
	s := NewMemStorage()

	created := s.CreateMenu(domain.Menu{
		Name:      "Ayam Geprek Level 5",
		Price:     25000,
		Category:  "Makanan Utama",
		Available: true,
	})
	if created.ID == "" {
		t.Fatal("CreateMenu did not assign an ID")
	}
	if created.CreatedAt.IsZero() {
		t.Error("CreateMenu did not set CreatedAt")
	}

	got, err := s.Menu(created.ID)
	if err != nil {
		t.Fatalf("Menu: %v", err)
	}
	if got.Name != "Ayam Geprek Level 5" {
		t.Errorf("name = %q", got.Name)
	}

	newPrice := 27000
	updated, err := s.UpdateMenu(created.ID, MenuUpdate{Price: &newPrice})
	if err != nil {
		t.Fatalf("UpdateMenu: %v", err)
	}
	if updated.Price != 27000 {
		t.Errorf("price = %d", updated.Price)
	}
	if updated.Name != created.Name {
		t.Errorf("partial update touched name: %q", updated.Name)
	}

	if err := s.DeleteMenu(created.ID); err != nil {
		t.Fatalf("DeleteMenu: %v", err)
	}
	if _, err := s.Menu(created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted menu still readable: %v", err)
	}
	if err := s.DeleteMenu(created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("double delete = %v, want ErrNotFound", err)
	}
}

func TestMenusByCategory(t *testing.T) {
	s := NewMemStorage()
	s.CreateMenu(domain.Menu{Name: "Es Teh Manis", Category: "Minuman"})
	s.CreateMenu(domain.Menu{Name: "Soto Ayam", Category: "Makanan Utama"})

	drinks := s.MenusByCategory("Minuman")
	if len(drinks) != 1 || drinks[0].Name != "Es Teh Manis" {
		t.Errorf("drinks = %+v", drinks)
	}
	if got := s.MenusByCategory("Snack"); len(got) != 0 {
		t.Errorf("empty category returned %+v", got)
	}
}

func TestSeededStorage(t *testing.T) {
	s := NewSeededStorage()
	menus := s.AllMenus()
	if len(menus) == 0 {
		t.Fatal("seeded store is empty")
	}
	categories := map[string]bool{}
	for _, m := range menus {
		if m.ID == "" {
			t.Errorf("seeded menu %q has no ID", m.Name)
		}
		categories[m.Category] = true
	}
	for _, want := range []string{"Makanan Utama", "Minuman", "Snack"} {
		if !categories[want] {
			t.Errorf("seed missing category %q", want)
		}
	}
}

func TestCartMergesQuantities(t *testing.T) {
	s := NewMemStorage()

	item := domain.CartItem{MenuID: "m1", MenuName: "Bakso Urat", Price: 18000, Quantity: 1}
	s.AddToCart("user1", item)
	s.AddToCart("user1", domain.CartItem{MenuID: "m1", MenuName: "Bakso Urat", Price: 18000, Quantity: 2})

	cart := s.Cart("user1")
	if len(cart) != 1 {
		t.Fatalf("cart lines = %d, want 1", len(cart))
	}
	if cart[0].Quantity != 3 {
		t.Errorf("quantity = %d, want 3", cart[0].Quantity)
	}

	if err := s.UpdateCartItem("user1", "m1", 5); err != nil {
		t.Fatalf("UpdateCartItem: %v", err)
	}
	if got := s.Cart("user1")[0].Quantity; got != 5 {
		t.Errorf("quantity after update = %d", got)
	}

	if err := s.UpdateCartItem("user1", "missing", 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("update of missing item = %v", err)
	}

	s.RemoveFromCart("user1", "m1")
	if got := s.Cart("user1"); len(got) != 0 {
		t.Errorf("cart after remove = %+v", got)
	}
}

func TestCartIsolationBetweenUsers(t *testing.T) {
	s := NewMemStorage()
	s.AddToCart("user1", domain.CartItem{MenuID: "m1", Quantity: 1})

	if got := s.Cart("user2"); len(got) != 0 {
		t.Errorf("user2 cart = %+v", got)
	}

	s.ClearCart("user1")
	if got := s.Cart("user1"); len(got) != 0 {
		t.Errorf("cart after clear = %+v", got)
	}
}

func TestOrders(t *testing.T) {
	s := NewMemStorage()

	order := s.CreateOrder(domain.Order{
		UserID: "user1",
		Items:  []domain.CartItem{{MenuID: "m1", MenuName: "Rendang", Quantity: 1}},
		Total:  35000,
	})
	if order.ID == "" {
		t.Fatal("CreateOrder did not assign an ID")
	}
	if order.Status != domain.OrderPending {
		t.Errorf("default status = %q, want pending", order.Status)
	}

	byUser := s.OrdersByUser("user1")
	if len(byUser) != 1 {
		t.Fatalf("orders by user = %d", len(byUser))
	}
	if got := s.OrdersByUser("user2"); len(got) != 0 {
		t.Errorf("user2 orders = %+v", got)
	}

	updated, err := s.UpdateOrderStatus(order.ID, domain.OrderCompleted)
	if err != nil {
		t.Fatalf("UpdateOrderStatus: %v", err)
	}
	if updated.Status != domain.OrderCompleted {
		t.Errorf("status = %q", updated.Status)
	}

	if _, err := s.UpdateOrderStatus("missing", domain.OrderCancelled); !errors.Is(err, ErrNotFound) {
		t.Errorf("update of missing order = %v", err)
	}
}

func TestReviews(t *testing.T) {
	s := NewMemStorage()

	s.CreateReview(domain.Review{UserID: "u1", UserName: "Budi", MenuName: "Soto Ayam", Rating: 5, Comment: "enak"})
	s.CreateReview(domain.Review{UserID: "u2", UserName: "Sari", MenuName: "Rendang", Rating: 4, Comment: "mantap"})

	if got := s.AllReviews(); len(got) != 2 {
		t.Errorf("all reviews = %d", len(got))
	}
	byMenu := s.ReviewsByMenu("Soto Ayam")
	if len(byMenu) != 1 || byMenu[0].UserName != "Budi" {
		t.Errorf("reviews by menu = %+v", byMenu)
	}
}

func TestFavorites(t *testing.T) {
	s := NewMemStorage()
	menu := s.CreateMenu(domain.Menu{Name: "Gado-Gado", Category: "Makanan Utama"})

	if s.IsFavorite("user1", menu.ID) {
		t.Error("fresh store reports favorite")
	}

	s.AddFavorite("user1", menu.ID)
	if !s.IsFavorite("user1", menu.ID) {
		t.Error("favorite not recorded")
	}

	favs := s.Favorites("user1")
	if len(favs) != 1 || favs[0].ID != menu.ID {
		t.Errorf("favorites = %+v", favs)
	}

	// Favorite of a since-deleted menu is not returned.
	s.DeleteMenu(menu.ID)
	if got := s.Favorites("user1"); len(got) != 0 {
		t.Errorf("favorites after menu delete = %+v", got)
	}

	s.RemoveFavorite("user1", menu.ID)
	if s.IsFavorite("user1", menu.ID) {
		t.Error("favorite not removed")
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := NewMemStorage()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.CreateMenu(domain.Menu{Name: "Menu", Category: "Snack"})
		}()
		go func() {
			defer wg.Done()
			s.AllMenus()
		}()
	}
	wg.Wait()

	if got := len(s.AllMenus()); got != 50 {
		t.Errorf("menus = %d, want 50", got)
	}
}
