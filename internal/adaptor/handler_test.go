package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pizza-delivery/internal/data/entity"
	"pizza-delivery/internal/data/repository"
	"pizza-delivery/internal/data/store"
	"pizza-delivery/internal/provider"
	"pizza-delivery/internal/router"
	"pizza-delivery/internal/usecase"
	"pizza-delivery/pkg/middleware"
	"pizza-delivery/pkg/utils"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type stubPayment struct{}

func (stubPayment) CreatePaymentMethod(ctx context.Context, method *entity.PaymentMethod) (string, error) {
	return "pm_test", nil
}

func (stubPayment) CreatePaymentIntent(ctx context.Context, options provider.PaymentIntentOptions) (string, error) {
	return "pi_test", nil
}

type stubEmail struct{}

func (stubEmail) SendReceipt(ctx context.Context, order *entity.Order, owner *entity.User) error {
	return nil
}

// newTestServer wires the whole API surface over an in-memory store.
func newTestServer(t *testing.T) (*httptest.Server, *repository.Repository) {
	t.Helper()

	db := store.New(afero.NewMemMapFs(), ".data", zap.NewNop())
	for _, collection := range repository.Collections {
		if err := db.EnsureCollection(collection); err != nil {
			t.Fatalf("EnsureCollection %s: %v", collection, err)
		}
	}

	repo := repository.NewRepository(db, zap.NewNop())
	if err := repo.Menu.Replace(context.Background(), []entity.MenuItem{
		{ID: "pz-0001", Name: "Margherita", Price: 8.50},
		{ID: "pz-0002", Name: "Pepperoni", Price: 9.50},
	}); err != nil {
		t.Fatalf("seed menu: %v", err)
	}

	config := &utils.Config{Auth: utils.AuthConfig{TokenExpiryHours: 1}}
	service := usecase.NewService(repo, config, stubPayment{}, stubEmail{}, zap.NewNop())
	handler := NewHandler(service, zap.NewNop())
	guard := middleware.WithAuthentication(service.Auth, repo.User, zap.NewNop())

	routes := &router.Routes{
		API:    handler.APIRoutes(guard),
		Pages:  map[string]router.PageHandler{},
		Assets: router.NewAssetResolver(afero.NewMemMapFs(), "public", zap.NewNop()),
	}

	server := httptest.NewServer(router.NewServer(routes, zap.NewNop()))
	t.Cleanup(server.Close)
	return server, repo
}

func call(t *testing.T, server *httptest.Server, method, path, token, body string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, server.URL+path, reader)
	if err != nil {
		t.Fatal(err)
	}
	if token != "" {
		req.Header.Set("token", token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]any
	if len(raw) > 0 {
		json.Unmarshal(raw, &decoded)
	}
	return resp.StatusCode, decoded
}

func signupAndLogin(t *testing.T, server *httptest.Server) (userID, token string) {
	t.Helper()

	payload := `{
		"email": "jane@example.com",
		"password": "secret123",
		"name": "Jane",
		"address": "1 Pizza Lane",
		"paymentMethod": {
			"type": "card",
			"cardNumber": "4242424242424242",
			"cardExpMonth": "12",
			"cardExpYear": "2030",
			"cardCVC": "123"
		}
	}`
	code, body := call(t, server, http.MethodPost, "/api/users", "", payload)
	if code != http.StatusCreated {
		t.Fatalf("signup: got %d, body %v", code, body)
	}
	userID, _ = body["id"].(string)

	code, body = call(t, server, http.MethodPost, "/api/login", "",
		`{"email":"jane@example.com","password":"secret123"}`)
	if code != http.StatusOK {
		t.Fatalf("login: got %d, body %v", code, body)
	}
	token, _ = body["token"].(string)
	if userID == "" || token == "" {
		t.Fatalf("missing id or token: %q %q", userID, token)
	}
	return userID, token
}

func TestGuardedRouteWithoutToken(t *testing.T) {
	server, _ := newTestServer(t)

	code, body := call(t, server, http.MethodGet, "/api/menu", "", "")
	if code != http.StatusForbidden {
		t.Fatalf("got %d, want 403", code)
	}
	if body["message"] != "Unauthorized access." {
		t.Errorf("got body %v", body)
	}
}

func TestGuardedRouteWithBogusToken(t *testing.T) {
	server, _ := newTestServer(t)

	code, body := call(t, server, http.MethodGet, "/api/menu", "not-a-real-token", "")
	if code != http.StatusForbidden {
		t.Fatalf("got %d, want 403", code)
	}
	if body["message"] != "Unauthorized access." {
		t.Errorf("got body %v", body)
	}
}

func TestLoginMissingFields(t *testing.T) {
	server, _ := newTestServer(t)

	code, body := call(t, server, http.MethodPost, "/api/login", "", `{"password":"x"}`)
	if code != http.StatusBadRequest || body["message"] != "Missing email." {
		t.Errorf("got %d %v", code, body)
	}

	code, body = call(t, server, http.MethodPost, "/api/login", "", `{"email":"a@b.c"}`)
	if code != http.StatusBadRequest || body["message"] != "Missing password." {
		t.Errorf("got %d %v", code, body)
	}
}

func TestUserCannotReadAnotherUser(t *testing.T) {
	server, _ := newTestServer(t)
	_, token := signupAndLogin(t, server)

	code, body := call(t, server, http.MethodGet, "/api/users?id=someone-else", token, "")
	if code != http.StatusForbidden {
		t.Fatalf("got %d, want 403", code)
	}
	if body["message"] != "Could not get the user." {
		t.Errorf("got body %v", body)
	}
}

func TestUserReadsOwnProfileWithoutPassword(t *testing.T) {
	server, _ := newTestServer(t)
	userID, token := signupAndLogin(t, server)

	code, body := call(t, server, http.MethodGet, "/api/users?id="+userID, token, "")
	if code != http.StatusOK {
		t.Fatalf("got %d, body %v", code, body)
	}
	if body["email"] != "jane@example.com" {
		t.Errorf("got body %v", body)
	}
	if _, leaked := body["password"]; leaked {
		t.Error("password leaked in response")
	}
}

func TestMenuWithToken(t *testing.T) {
	server, _ := newTestServer(t)
	_, token := signupAndLogin(t, server)

	code, body := call(t, server, http.MethodGet, "/api/menu", token, "")
	if code != http.StatusOK {
		t.Fatalf("got %d, body %v", code, body)
	}
	items, ok := body["items"].([]any)
	if !ok || len(items) != 2 {
		t.Errorf("got items %v", body["items"])
	}
}

func TestCartLifecycleAndCheckout(t *testing.T) {
	server, _ := newTestServer(t)
	_, token := signupAndLogin(t, server)

	// Create
	code, body := call(t, server, http.MethodPost, "/api/cart", token,
		`{"items":[{"itemId":"pz-0001","quantity":2},{"itemId":"pz-0002","quantity":1}]}`)
	if code != http.StatusCreated {
		t.Fatalf("create cart: got %d, body %v", code, body)
	}
	cartID, _ := body["id"].(string)
	if cartID == "" {
		t.Fatal("missing cart id")
	}

	// Read it back
	code, body = call(t, server, http.MethodGet, "/api/cart?id="+cartID, token, "")
	if code != http.StatusOK {
		t.Fatalf("get cart: got %d, body %v", code, body)
	}

	// Checkout
	code, body = call(t, server, http.MethodPost, "/api/checkout?cart_id="+cartID, token, "")
	if code != http.StatusCreated {
		t.Fatalf("checkout: got %d, body %v", code, body)
	}
	if body["status"] != string(entity.StatusToDeliver) {
		t.Errorf("got status %v, want %s", body["status"], entity.StatusToDeliver)
	}
	if body["totalQuantity"] != float64(3) {
		t.Errorf("got quantity %v, want 3", body["totalQuantity"])
	}
	if body["totalAmount"] != 26.50 {
		t.Errorf("got amount %v, want 26.50", body["totalAmount"])
	}

	// The order is readable afterwards
	orderID, _ := body["id"].(string)
	code, body = call(t, server, http.MethodGet, "/api/orders?id="+orderID, token, "")
	if code != http.StatusOK {
		t.Fatalf("get order: got %d, body %v", code, body)
	}
}

func TestGetMissingCartIs404(t *testing.T) {
	server, _ := newTestServer(t)
	_, token := signupAndLogin(t, server)

	code, _ := call(t, server, http.MethodGet, "/api/cart?id=no-such-cart", token, "")
	if code != http.StatusNotFound {
		t.Fatalf("got %d, want 404", code)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	server, _ := newTestServer(t)
	_, token := signupAndLogin(t, server)

	code, _ := call(t, server, http.MethodGet, "/api/logout", token, "")
	if code != http.StatusOK {
		t.Fatalf("logout: got %d", code)
	}

	code, _ = call(t, server, http.MethodGet, "/api/menu", token, "")
	if code != http.StatusForbidden {
		t.Fatalf("revoked token still works: got %d", code)
	}
}

func TestCheckoutMissingCartID(t *testing.T) {
	server, _ := newTestServer(t)
	_, token := signupAndLogin(t, server)

	code, body := call(t, server, http.MethodPost, "/api/checkout", token, "")
	if code != http.StatusBadRequest || body["message"] != "Missing cart ID." {
		t.Errorf("got %d %v", code, body)
	}
}

func TestUnsupportedMethodOnAPIRoute(t *testing.T) {
	server, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodPatch, server.URL+"/api/login", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("got %d, want 405", resp.StatusCode)
	}
	raw, _ := io.ReadAll(resp.Body)
	if want := fmt.Sprintf("%s method not supported.", http.MethodPatch); string(raw) != want {
		t.Errorf("got body %q, want %q", raw, want)
	}
}
