package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kulina/kulina-ai/internal/ai"
	"github.com/kulina/kulina-ai/internal/domain"
	"github.com/kulina/kulina-ai/internal/provider"
	"github.com/kulina/kulina-ai/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubProvider answers every completion with a fixed reply or error.
type stubProvider struct {
	reply string
	err   error
}

func (s *stubProvider) Complete(ctx context.Context, conv provider.Conversation, opts provider.Options) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func (s *stubProvider) Name() string { return "stub" }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter(t *testing.T, p provider.Provider) (*gin.Engine, storage.Store) {
	t.Helper()

	routing := make(map[string]string)
	for _, f := range domain.Features {
		routing[f] = "stub"
	}
	gateway, err := ai.NewGateway(map[string]provider.Provider{"stub": p}, routing, testLogger())
	if err != nil {
		t.Fatalf("NewGateway: %v", err)
	}

	store := storage.NewMemStorage()
	aiHandler := NewAIHandler(gateway, WithAILogger(testLogger()))
	storeHandler := NewStoreHandler(store, WithStoreLogger(testLogger()))
	return NewRouter(aiHandler, storeHandler, testLogger()), store
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestChatbotEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, &stubProvider{reply: "Menu terlaris kami adalah Ayam Geprek!"})

	w := doJSON(t, router, http.MethodPost, "/api/ai/chatbot", map[string]any{
		"message": "apa menu terlaris?",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	resp := decodeBody(t, w)
	if resp["response"] != "Menu terlaris kami adalah Ayam Geprek!" {
		t.Errorf("response = %v", resp["response"])
	}
}

func TestChatbotEndpointValidation(t *testing.T) {
	router, _ := newTestRouter(t, &stubProvider{reply: "ok"})

	// Missing message field.
	w := doJSON(t, router, http.MethodPost, "/api/ai/chatbot", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing message: status = %d", w.Code)
	}

	// Malformed body.
	req := httptest.NewRequest(http.MethodPost, "/api/ai/chatbot", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body: status = %d", rec.Code)
	}
}

func TestChatbotEndpointProviderDownStillOK(t *testing.T) {
	router, _ := newTestRouter(t, &stubProvider{err: errors.New("upstream down")})

	w := doJSON(t, router, http.MethodPost, "/api/ai/chatbot", map[string]any{
		"message": "halo",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, provider outages must not surface", w.Code)
	}
	resp := decodeBody(t, w)
	response, _ := resp["response"].(string)
	if !strings.Contains(response, "gangguan teknis") {
		t.Errorf("response = %q, want fallback text", response)
	}
}

func TestAnalyzeReviewsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, &stubProvider{err: errors.New("down")})

	w := doJSON(t, router, http.MethodPost, "/api/ai/analyze-reviews", map[string]any{
		"reviews": []map[string]any{
			{"rating": 5, "comment": "enak", "name": "Budi"},
			{"rating": 1, "comment": "dingin", "name": "Sari"},
			{"rating": 3, "comment": "biasa", "name": "Andi"},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	resp := decodeBody(t, w)
	sentiment, _ := resp["sentiment"].(map[string]any)
	if sentiment["positive"] != float64(1) || sentiment["neutral"] != float64(1) || sentiment["negative"] != float64(1) {
		t.Errorf("sentiment = %v", sentiment)
	}

	// Missing reviews array is a client error.
	w = doJSON(t, router, http.MethodPost, "/api/ai/analyze-reviews", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing reviews: status = %d", w.Code)
	}
}

func TestGeneratePromoEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, &stubProvider{err: errors.New("down")})

	w := doJSON(t, router, http.MethodPost, "/api/ai/generate-promo", map[string]any{
		"menuName":     "Ayam Geprek",
		"price":        25000,
		"targetMarket": "mahasiswa",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	resp := decodeBody(t, w)
	caption, _ := resp["caption"].(string)
	if !strings.Contains(caption, "Ayam Geprek") || !strings.Contains(caption, "25.000") {
		t.Errorf("caption = %q", caption)
	}
	hashtags, _ := resp["hashtags"].([]any)
	if len(hashtags) != 3 {
		t.Errorf("hashtags = %v", hashtags)
	}

	// Required fields enforced.
	w = doJSON(t, router, http.MethodPost, "/api/ai/generate-promo", map[string]any{
		"menuName": "Ayam Geprek",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing fields: status = %d", w.Code)
	}
}

func TestMenuRecommendationsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, &stubProvider{reply: "Coba Rendang kami hari ini! 🍛"})

	w := doJSON(t, router, http.MethodPost, "/api/ai/menu-recommendations", map[string]any{
		"orderHistory": []string{"Nasi Goreng Spesial"},
		"timeOfDay":    "siang",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	resp := decodeBody(t, w)
	if resp["recommendation"] != "Coba Rendang kami hari ini! 🍛" {
		t.Errorf("recommendation = %v", resp["recommendation"])
	}
}

func TestPriceStockEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, &stubProvider{err: errors.New("down")})

	w := doJSON(t, router, http.MethodPost, "/api/ai/price-stock-recommendations", map[string]any{
		"salesData":   []map[string]any{{"menuName": "Rendang", "unitsSold": 40}},
		"reviews":     []map[string]any{},
		"stockLevels": []map[string]any{},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "null") {
		t.Errorf("response contains null arrays: %s", w.Body.String())
	}
}

func TestMenuCRUDEndpoints(t *testing.T) {
	router, _ := newTestRouter(t, &stubProvider{reply: "ok"})

	// Create
	w := doJSON(t, router, http.MethodPost, "/api/menus", map[string]any{
		"name":     "Soto Ayam",
		"price":    20000,
		"category": "Makanan Utama",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create: status = %d, body %s", w.Code, w.Body.String())
	}
	created := decodeBody(t, w)
	id, _ := created["id"].(string)
	if id == "" {
		t.Fatal("create: no id assigned")
	}
	if created["available"] != true {
		t.Errorf("create: available = %v, want default true", created["available"])
	}

	// Read
	w = doJSON(t, router, http.MethodGet, "/api/menus/"+id, nil)
	if w.Code != http.StatusOK {
		t.Errorf("get: status = %d", w.Code)
	}

	// List with category filter
	w = doJSON(t, router, http.MethodGet, "/api/menus?category=Makanan+Utama", nil)
	if w.Code != http.StatusOK {
		t.Errorf("list: status = %d", w.Code)
	}
	var menus []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &menus); err != nil || len(menus) != 1 {
		t.Errorf("list = %s", w.Body.String())
	}

	// Update
	w = doJSON(t, router, http.MethodPut, "/api/menus/"+id, map[string]any{"price": 22000})
	if w.Code != http.StatusOK {
		t.Errorf("update: status = %d", w.Code)
	}
	if got := decodeBody(t, w)["price"]; got != float64(22000) {
		t.Errorf("update: price = %v", got)
	}

	// Delete
	w = doJSON(t, router, http.MethodDelete, "/api/menus/"+id, nil)
	if w.Code != http.StatusOK {
		t.Errorf("delete: status = %d", w.Code)
	}
	w = doJSON(t, router, http.MethodGet, "/api/menus/"+id, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete: status = %d", w.Code)
	}
}

func TestOrderFlowClearsCart(t *testing.T) {
	router, store := newTestRouter(t, &stubProvider{reply: "ok"})

	w := doJSON(t, router, http.MethodPost, "/api/cart/user1/add", map[string]any{
		"menuId":   "m1",
		"menuName": "Bakso Urat",
		"price":    18000,
		"quantity": 2,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("add to cart: status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodPost, "/api/orders", map[string]any{
		"userId": "user1",
		"items":  []map[string]any{{"menuId": "m1", "menuName": "Bakso Urat", "price": 18000, "quantity": 2}},
		"total":  36000,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create order: status = %d, body %s", w.Code, w.Body.String())
	}
	order := decodeBody(t, w)
	if order["status"] != "pending" {
		t.Errorf("order status = %v", order["status"])
	}

	if cart := store.Cart("user1"); len(cart) != 0 {
		t.Errorf("cart not cleared after order: %+v", cart)
	}
}

func TestOrderStatusValidation(t *testing.T) {
	router, store := newTestRouter(t, &stubProvider{reply: "ok"})

	order := store.CreateOrder(domain.Order{UserID: "user1"})

	w := doJSON(t, router, http.MethodPut, "/api/orders/"+order.ID+"/status", map[string]any{
		"status": "teleported",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid status accepted: %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPut, "/api/orders/"+order.ID+"/status", map[string]any{
		"status": "completed",
	})
	if w.Code != http.StatusOK {
		t.Errorf("valid status rejected: %d, body %s", w.Code, w.Body.String())
	}
}

func TestOrderHistoryEndpoint(t *testing.T) {
	router, store := newTestRouter(t, &stubProvider{reply: "ok"})

	store.CreateOrder(domain.Order{
		UserID: "user1",
		Items: []domain.CartItem{
			{MenuID: "m1", MenuName: "Rendang", Quantity: 1},
			{MenuID: "m2", MenuName: "Es Teh Manis", Quantity: 2},
		},
	})

	w := doJSON(t, router, http.MethodGet, "/api/users/user1/order-history", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	resp := decodeBody(t, w)
	history, _ := resp["history"].([]any)
	if len(history) != 2 {
		t.Errorf("history = %v", history)
	}
}

func TestReviewsForAnalysisEndpoint(t *testing.T) {
	router, store := newTestRouter(t, &stubProvider{reply: "ok"})

	store.CreateReview(domain.Review{UserID: "u1", UserName: "Budi", MenuName: "Soto Ayam", Rating: 5, Comment: "enak"})

	w := doJSON(t, router, http.MethodGet, "/api/reviews/for-analysis", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var formatted []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &formatted); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(formatted) != 1 {
		t.Fatalf("formatted = %v", formatted)
	}
	if formatted[0]["name"] != "Budi" || formatted[0]["rating"] != float64(5) {
		t.Errorf("projection = %v", formatted[0])
	}
	if _, has := formatted[0]["userId"]; has {
		t.Errorf("projection leaks storage fields: %v", formatted[0])
	}
}

func TestFavoritesEndpoints(t *testing.T) {
	router, store := newTestRouter(t, &stubProvider{reply: "ok"})

	menu := store.CreateMenu(domain.Menu{Name: "Gado-Gado", Category: "Makanan Utama"})

	w := doJSON(t, router, http.MethodPost, "/api/favorites/user1/"+menu.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("add favorite: status = %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/favorites/user1/check/"+menu.ID, nil)
	if got := decodeBody(t, w)["isFavorite"]; got != true {
		t.Errorf("isFavorite = %v", got)
	}

	w = doJSON(t, router, http.MethodDelete, "/api/favorites/user1/"+menu.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("remove favorite: status = %d", w.Code)
	}
	w = doJSON(t, router, http.MethodGet, "/api/favorites/user1/check/"+menu.ID, nil)
	if got := decodeBody(t, w)["isFavorite"]; got != false {
		t.Errorf("isFavorite after remove = %v", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t, &stubProvider{reply: "ok"})

	req := httptest.NewRequest(http.MethodOptions, "/api/menus", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("missing CORS header")
	}
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, &stubProvider{reply: "ok"})

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if decodeBody(t, w)["status"] != "healthy" {
		t.Errorf("body = %s", w.Body.String())
	}
}
