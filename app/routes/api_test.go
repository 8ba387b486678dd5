package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetdelights/bakery/app/routes"
	"github.com/sweetdelights/bakery/config"
	"github.com/sweetdelights/bakery/internal/server"
	"github.com/sweetdelights/bakery/pkg/storage"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	config.Set("STORAGE_LOCAL_ROOT", t.TempDir())
	config.Set("ADMIN_PASSWORD", "demo123")
	storage.Connect()
	return server.BuildHandler(routes.RegisterAPI)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	return rec, env
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)

	rec, env := doJSON(t, h, http.MethodGet, "/api/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "API is healthy", env.Message)
}

func TestUnknownRouteEnvelope(t *testing.T) {
	h := newTestHandler(t)

	rec, env := doJSON(t, h, http.MethodGet, "/api/nope", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Endpoint not found", env.Error)
}

func TestPlaceOrderFlow(t *testing.T) {
	h := newTestHandler(t)

	payload := map[string]interface{}{
		"items":   []map[string]interface{}{{"name": "Cake", "price": 500, "quantity": 2}},
		"address": "12 Main St",
		"phone":   "555-0100",
	}
	rec, env := doJSON(t, h, http.MethodPost, "/api/orders", payload, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.True(t, env.Success)
	assert.Equal(t, "Order placed successfully", env.Message)

	var order struct {
		ID     string  `json:"id"`
		Total  float64 `json:"total"`
		Status string  `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &order))
	assert.Equal(t, 1000.0, order.Total)
	assert.Equal(t, "pending", order.Status)
	assert.Regexp(t, regexp.MustCompile(`^ORD-\d+-[0-9A-Z]{4}$`), order.ID)

	// The stored record is retrievable and listed.
	rec, env = doJSON(t, h, http.MethodGet, "/api/orders/"+order.ID, nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	rec, env = doJSON(t, h, http.MethodGet, "/api/orders?status=pending", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, env.Count)
	assert.Equal(t, 1, *env.Count)
}

func TestPlaceOrderMissingFields(t *testing.T) {
	h := newTestHandler(t)

	rec, env := doJSON(t, h, http.MethodPost, "/api/orders",
		map[string]interface{}{"phone": "555-0100"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Items, address, and phone are required", env.Error)
}

func TestProductCRUD(t *testing.T) {
	h := newTestHandler(t)

	rec, env := doJSON(t, h, http.MethodPost, "/api/products", map[string]interface{}{
		"name":     "Butter Croissant",
		"price":    90,
		"category": "pastries",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Product created successfully", env.Message)

	var product struct {
		ID    string `json:"id"`
		Image string `json:"image"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &product))
	assert.Equal(t, "assets/placeholder.jpg", product.Image)

	rec, env = doJSON(t, h, http.MethodPut, "/api/products/"+product.ID,
		map[string]interface{}{"price": 95}, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Product updated successfully", env.Message)

	rec, env = doJSON(t, h, http.MethodDelete, "/api/products/"+product.ID, nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Product deleted successfully", env.Message)

	rec, env = doJSON(t, h, http.MethodGet, "/api/products/"+product.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product not found", env.Error)
}

func TestProductValidation(t *testing.T) {
	h := newTestHandler(t)

	rec, env := doJSON(t, h, http.MethodPost, "/api/products",
		map[string]interface{}{"name": "No Price"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Name, price, and category are required", env.Error)
}

func TestContactFormAndAdminListing(t *testing.T) {
	h := newTestHandler(t)

	rec, env := doJSON(t, h, http.MethodPost, "/api/contact", map[string]interface{}{
		"name":    "Asha",
		"email":   "asha@example.com",
		"message": "Do you deliver?",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Thank you for contacting us! We will get back to you soon.", env.Message)

	var data map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data["id"])

	// Listing requires an admin token.
	rec, env = doJSON(t, h, http.MethodGet, "/api/contact", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)

	token := loginToken(t, h)
	rec, env = doJSON(t, h, http.MethodGet, "/api/contact", nil, token)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, env.Count)
	assert.Equal(t, 1, *env.Count)
}

func loginToken(t *testing.T, h http.Handler) string {
	t.Helper()
	rec, env := doJSON(t, h, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "admin",
		"password": "demo123",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Login successful", env.Message)

	var result struct {
		Token     string `json:"token"`
		Username  string `json:"username"`
		ExpiresIn string `json:"expiresIn"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	require.NotEmpty(t, result.Token)
	assert.Equal(t, "admin", result.Username)
	assert.Equal(t, "24h", result.ExpiresIn)
	return result.Token
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	h := newTestHandler(t)

	rec, env := doJSON(t, h, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "admin",
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", env.Error)
}

func TestStatsRequiresAdmin(t *testing.T) {
	h := newTestHandler(t)

	rec, _ := doJSON(t, h, http.MethodGet, "/api/stats", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := loginToken(t, h)
	rec, env := doJSON(t, h, http.MethodGet, "/api/stats", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Contains(t, stats, "totalOrders")
	assert.Contains(t, stats, "unreadContacts")
}

func TestGraphQLQuery(t *testing.T) {
	h := newTestHandler(t)
	token := loginToken(t, h)

	_, _ = doJSON(t, h, http.MethodPost, "/api/products", map[string]interface{}{
		"name":     "Sourdough Loaf",
		"price":    220,
		"category": "breads",
	}, "")

	rec, env := doJSON(t, h, http.MethodPost, "/api/graphql", map[string]string{
		"query": `{ products { name category } stats { totalProducts } }`,
	}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), "Sourdough Loaf")
}
