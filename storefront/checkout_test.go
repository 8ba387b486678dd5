package storefront_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetdelights/bakery/storefront"

	"github.com/sweetdelights/bakery/app/routes"
	"github.com/sweetdelights/bakery/config"
	"github.com/sweetdelights/bakery/internal/server"
	"github.com/sweetdelights/bakery/pkg/storage"
)

func newSession(t *testing.T, baseURL string) (*storefront.Cart, *storefront.History, *storefront.Checkout) {
	t.Helper()
	cart := storefront.NewCart()
	history := storefront.NewHistory(storage.NewLocalDisk(t.TempDir()))
	return cart, history, storefront.NewCheckout(cart, history, baseURL)
}

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	config.Set("STORAGE_LOCAL_ROOT", t.TempDir())
	storage.Connect()
	srv := httptest.NewServer(server.BuildHandler(routes.RegisterAPI))
	t.Cleanup(srv.Close)
	return srv
}

func TestSubmitValidatesBeforeNetwork(t *testing.T) {
	cart, _, checkout := newSession(t, "http://127.0.0.1:0")

	_, err := checkout.Submit(context.Background(), "", "555-0100", "")
	assert.ErrorIs(t, err, storefront.ErrMissingFields)

	_, err = checkout.Submit(context.Background(), "12 Main St", "555-0100", "")
	assert.ErrorIs(t, err, storefront.ErrEmptyCart)
	assert.True(t, cart.IsEmpty())
}

func TestSubmitSuccessRecordsServerOrder(t *testing.T) {
	srv := newAPIServer(t)
	cart, history, checkout := newSession(t, srv.URL)

	require.NoError(t, cart.Add("Cake", 500, 2))

	result, err := checkout.Submit(context.Background(), "12 Main St", "555-0100", "ring the bell")
	require.NoError(t, err)

	assert.False(t, result.Offline)
	assert.Equal(t, 1000.0, result.Order.Total)
	assert.Equal(t, "pending", result.Order.Status)
	assert.Regexp(t, regexp.MustCompile(`^ORD-\d+-[0-9A-Z]{4}$`), result.Order.ID)

	// The cart is cleared and the server record mirrored into history.
	assert.True(t, cart.IsEmpty())
	orders, err := history.All()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, result.Order.ID, orders[0].ID)
}

func TestSubmitAPIErrorKeepsCart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"error":"Items, address, and phone are required"}`))
	}))
	t.Cleanup(srv.Close)

	cart, history, checkout := newSession(t, srv.URL)
	require.NoError(t, cart.Add("Cake", 500, 1))

	_, err := checkout.Submit(context.Background(), "12 Main St", "555-0100", "")
	require.Error(t, err)

	var apiErr *storefront.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Items, address, and phone are required", apiErr.Message)

	// Rejection keeps the cart so the customer can retry, and records nothing.
	assert.False(t, cart.IsEmpty())
	orders, err := history.All()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestSubmitTransportFailureFallsBackOffline(t *testing.T) {
	// A closed server guarantees a connection error, not an HTTP error.
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	cart, history, checkout := newSession(t, srv.URL)
	require.NoError(t, cart.Add("Cake", 500, 2))

	result, err := checkout.Submit(context.Background(), "12 Main St", "555-0100", "")
	require.NoError(t, err)

	assert.True(t, result.Offline)
	assert.Equal(t, "pending (offline)", result.Order.Status)
	assert.Equal(t, 1000.0, result.Order.Total)
	assert.Regexp(t, regexp.MustCompile(`^ORD\d{6}$`), result.Order.ID)
	assert.True(t, cart.IsEmpty())

	orders, err := history.All()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "pending (offline)", orders[0].Status)
}
