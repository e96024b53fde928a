package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"merobazar-backend/controllers"
	"merobazar-backend/models"
	"merobazar-backend/repository"
	"merobazar-backend/routes"
	"merobazar-backend/service"
	"merobazar-backend/token"
)

type testEnv struct {
	router *gin.Engine
	store  *repository.MemoryStore
	maker  *token.Maker
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	maker, err := token.NewMaker([]byte("01234567890123456789012345678901"))
	if err != nil {
		t.Fatalf("NewMaker: %v", err)
	}

	users := store.Users()
	products := store.Products()
	orders := store.Orders()

	ctrl := &controllers.Controller{
		Auth:       service.NewAuthService(users, maker),
		Users:      service.NewUserService(users),
		Products:   service.NewProductService(products),
		Categories: service.NewCategoryService(store.Categories()),
		Carts:      service.NewCartService(store.Carts(), products),
		Orders:     service.NewOrderService(orders),
		Favourites: service.NewFavouriteService(store.Favourites()),
		Reviews:    service.NewReviewService(store.Reviews(), orders),
		Stats:      service.NewStatsService(users, products, orders),
	}
	return &testEnv{router: routes.Setup(ctrl, maker, users, "test"), store: store, maker: maker}
}

func (e *testEnv) do(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// signup registers an account and returns its bearer token.
func (e *testEnv) signup(t *testing.T, username string, role models.Role) string {
	t.Helper()
	email := username + "@example.com"
	w := e.do(t, http.MethodPost, "/api/register", "", gin.H{
		"username": username, "email": email, "password": "secret99", "role": role,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d body %s", username, w.Code, w.Body.String())
	}

	w = e.do(t, http.MethodPost, "/api/login", "", gin.H{"email": email, "password": "secret99"})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", username, w.Code, w.Body.String())
	}
	tok, _ := decode(t, w)["token"].(string)
	if tok == "" {
		t.Fatalf("login %s returned no token", username)
	}
	return tok
}

// createProduct posts a multipart product form as the given admin and
// returns the new product id.
func (e *testEnv) createProduct(t *testing.T, adminToken, name string, price float64, stock int) string {
	t.Helper()
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	fields := map[string]string{
		"name":        name,
		"description": "test product",
		"price":       fmt.Sprintf("%g", price),
		"stock":       fmt.Sprintf("%d", stock),
		"category":    "misc",
	}
	for k, v := range fields {
		if err := form.WriteField(k, v); err != nil {
			t.Fatalf("write form field: %v", err)
		}
	}
	form.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/products", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create product: status %d body %s", w.Code, w.Body.String())
	}

	data, _ := decode(t, w)["data"].(map[string]any)
	id, _ := data["id"].(string)
	if id == "" {
		t.Fatalf("create product returned no id: %s", w.Body.String())
	}
	return id
}

func (e *testEnv) placeOrder(t *testing.T, userToken, productID string) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/orders", userToken, gin.H{
		"products":         []gin.H{{"product_id": productID, "quantity": 1}},
		"shipping_address": "Lalitpur 44700",
		"phone_number":     "9800000000",
		"total_amount":     25,
		"payment_method":   "cod",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("place order: status %d body %s", w.Code, w.Body.String())
	}
	data, _ := decode(t, w)["data"].(map[string]any)
	id, _ := data["id"].(string)
	if id == "" {
		t.Fatalf("place order returned no id: %s", w.Body.String())
	}
	return id
}

func TestAuthGate(t *testing.T) {
	env := newTestEnv(t)

	// No header at all.
	if w := env.do(t, http.MethodGet, "/api/profile", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("no header: status %d, want 401", w.Code)
	}
	// Header present but not a bearer token.
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong scheme: status %d, want 401", w.Code)
	}
	// Bearer token that fails verification.
	if w := env.do(t, http.MethodGet, "/api/profile", "not-a-real-token", nil); w.Code != http.StatusForbidden {
		t.Fatalf("garbage token: status %d, want 403", w.Code)
	}
	// Valid token whose subject does not exist.
	ghost, err := env.maker.CreateToken("64f0c9e2a1b2c3d4e5f60718", models.RoleUser)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if w := env.do(t, http.MethodGet, "/api/profile", ghost, nil); w.Code != http.StatusNotFound {
		t.Fatalf("ghost subject: status %d, want 404", w.Code)
	}
}

func TestRoleGate(t *testing.T) {
	env := newTestEnv(t)
	userToken := env.signup(t, "plainuser", models.RoleUser)
	adminToken := env.signup(t, "theadmin", models.RoleAdmin)

	if w := env.do(t, http.MethodGet, "/api/admin/users", userToken, nil); w.Code != http.StatusForbidden {
		t.Fatalf("user on admin route: status %d, want 403", w.Code)
	}
	if w := env.do(t, http.MethodGet, "/api/admin/users", adminToken, nil); w.Code != http.StatusOK {
		t.Fatalf("admin on admin route: status %d body %s", w.Code, w.Body.String())
	}
}

func TestUnknownEndpoint(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/api/nope", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", w.Code)
	}
	if msg, _ := decode(t, w)["error"].(string); msg != "Endpoint not found" {
		t.Fatalf("error = %q, want Endpoint not found", msg)
	}
}

func TestCartStockLimitEndToEnd(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.signup(t, "shopadmin", models.RoleAdmin)
	userToken := env.signup(t, "shopper", models.RoleUser)
	productID := env.createProduct(t, adminToken, "Backpack", 25, 5)

	w := env.do(t, http.MethodPost, "/api/cart", userToken, gin.H{"product_id": productID, "quantity": 3})
	if w.Code != http.StatusCreated {
		t.Fatalf("first add: status %d body %s", w.Code, w.Body.String())
	}

	w = env.do(t, http.MethodPost, "/api/cart", userToken, gin.H{"product_id": productID, "quantity": 3})
	if w.Code != http.StatusConflict {
		t.Fatalf("second add: status %d, want 409; body %s", w.Code, w.Body.String())
	}

	w = env.do(t, http.MethodGet, "/api/cart", userToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get cart: status %d", w.Code)
	}
	body := decode(t, w)
	items, _ := body["data"].([]any)
	if len(items) != 1 {
		t.Fatalf("cart has %d lines, want 1", len(items))
	}
	line, _ := items[0].(map[string]any)
	if qty, _ := line["quantity"].(float64); qty != 3 {
		t.Fatalf("quantity = %v, want 3 after rejected add", line["quantity"])
	}
	if total, _ := body["totalAmount"].(float64); total != 75 {
		t.Fatalf("totalAmount = %v, want 75", body["totalAmount"])
	}
}

func TestReviewEndToEnd(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.signup(t, "revadmin", models.RoleAdmin)
	userToken := env.signup(t, "reviewer", models.RoleUser)
	productID := env.createProduct(t, adminToken, "Headphones", 60, 10)
	orderID := env.placeOrder(t, userToken, productID)

	// A review before delivery is rejected.
	w := env.do(t, http.MethodPost, "/api/reviews", userToken, gin.H{
		"product_id": productID, "order_id": orderID, "rating": 4, "review": "great sound",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("review pending order: status %d, want 400; body %s", w.Code, w.Body.String())
	}

	w = env.do(t, http.MethodPatch, "/api/admin/orders/"+orderID+"/status", adminToken, gin.H{"status": "delivered"})
	if w.Code != http.StatusOK {
		t.Fatalf("set delivered: status %d body %s", w.Code, w.Body.String())
	}

	w = env.do(t, http.MethodPost, "/api/reviews", userToken, gin.H{
		"product_id": productID, "order_id": orderID, "rating": 4, "review": "great sound",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("review delivered order: status %d body %s", w.Code, w.Body.String())
	}

	w = env.do(t, http.MethodPost, "/api/reviews", userToken, gin.H{
		"product_id": productID, "order_id": orderID, "rating": 2, "review": "changed my mind",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate review: status %d, want 409; body %s", w.Code, w.Body.String())
	}

	// The review is publicly visible without a token.
	w = env.do(t, http.MethodGet, "/api/reviews/product/"+productID, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("public reviews: status %d", w.Code)
	}
	if reviews, _ := decode(t, w)["data"].([]any); len(reviews) != 1 {
		t.Fatalf("product has %d reviews, want 1", len(reviews))
	}
}

func TestOrderCancelEndToEnd(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.signup(t, "orderadmin", models.RoleAdmin)
	userToken := env.signup(t, "buyer", models.RoleUser)
	productID := env.createProduct(t, adminToken, "Notebook", 5, 20)

	// A pending order can be cancelled by its owner.
	pending := env.placeOrder(t, userToken, productID)
	if w := env.do(t, http.MethodDelete, "/api/orders/"+pending, userToken, nil); w.Code != http.StatusOK {
		t.Fatalf("cancel pending: status %d body %s", w.Code, w.Body.String())
	}

	// A delivered order cannot.
	delivered := env.placeOrder(t, userToken, productID)
	w := env.do(t, http.MethodPatch, "/api/admin/orders/"+delivered+"/status", adminToken, gin.H{"status": "delivered"})
	if w.Code != http.StatusOK {
		t.Fatalf("set delivered: status %d body %s", w.Code, w.Body.String())
	}
	w = env.do(t, http.MethodDelete, "/api/orders/"+delivered, userToken, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("cancel delivered: status %d, want 404; body %s", w.Code, w.Body.String())
	}
	if msg, _ := decode(t, w)["message"].(string); msg != "order not found or cannot be cancelled unless pending" {
		t.Fatalf("message = %q", msg)
	}
}

func TestFavouritesEndToEnd(t *testing.T) {
	env := newTestEnv(t)
	adminToken := env.signup(t, "favadmin", models.RoleAdmin)
	userToken := env.signup(t, "collector", models.RoleUser)
	productID := env.createProduct(t, adminToken, "Poster", 8, 3)

	if w := env.do(t, http.MethodPost, "/api/favourites/"+productID, userToken, nil); w.Code != http.StatusCreated {
		t.Fatalf("add favourite: status %d body %s", w.Code, w.Body.String())
	}
	if w := env.do(t, http.MethodPost, "/api/favourites/"+productID, userToken, nil); w.Code != http.StatusConflict {
		t.Fatalf("duplicate favourite: status %d, want 409", w.Code)
	}

	w := env.do(t, http.MethodGet, "/api/favourites/check/"+productID, userToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("check favourite: status %d", w.Code)
	}
	if is, _ := decode(t, w)["isFavourite"].(bool); !is {
		t.Fatalf("isFavourite = false, want true")
	}

	if w := env.do(t, http.MethodDelete, "/api/favourites/"+productID, userToken, nil); w.Code != http.StatusOK {
		t.Fatalf("remove favourite: status %d body %s", w.Code, w.Body.String())
	}
	if w := env.do(t, http.MethodDelete, "/api/favourites/"+productID, userToken, nil); w.Code != http.StatusNotFound {
		t.Fatalf("remove absent favourite: status %d, want 404", w.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/api/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	if status, _ := decode(t, w)["status"].(string); status != "ok" {
		t.Fatalf("status field = %q, want ok", status)
	}
}
