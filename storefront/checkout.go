package storefront

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sweetdelights/bakery/app/models"
	"github.com/sweetdelights/bakery/pkg/http"
	"github.com/sweetdelights/bakery/pkg/logger"
	"github.com/sweetdelights/bakery/pkg/metrics"
)

// submitTimeout bounds the wait on the order API; a request that takes longer
// is cancelled and treated as a transport failure. There is no retry.
const submitTimeout = 9 * time.Second

// Validation failures reported before any network call is made.
var (
	ErrEmptyCart     = errors.New("storefront: cart is empty")
	ErrMissingFields = errors.New("storefront: address and phone are required")
)

// APIError is an error the server explicitly signalled; the cart is kept so
// the customer can retry.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("storefront: order rejected (%d): %s", e.Status, e.Message)
}

// Result is the outcome of a successful checkout. Offline marks a degraded
// acceptance that was only recorded locally.
type Result struct {
	Order   models.Order
	Offline bool
}

// Checkout drives order submission: validate, post to the API with a bounded
// wait, and fall back to a local-only record when the API is unreachable.
type Checkout struct {
	cart    *Cart
	history *History
	baseURL string
}

func NewCheckout(cart *Cart, history *History, baseURL string) *Checkout {
	return &Checkout{cart: cart, history: history, baseURL: baseURL}
}

type orderEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    models.Order `json:"data"`
	Error   string       `json:"error"`
}

// Submit places the current cart as an order.
//
// Outcomes:
//   - validation failure: error, no network call, cart untouched
//   - API success: server record saved to history, cart cleared
//   - API-signalled error: *APIError, cart kept for retry
//   - transport failure or timeout: offline record saved to history,
//     cart cleared, Result.Offline = true
func (c *Checkout) Submit(ctx context.Context, address, phone, notes string) (Result, error) {
	if address == "" || phone == "" {
		return Result{}, ErrMissingFields
	}
	if c.cart.IsEmpty() {
		return Result{}, ErrEmptyCart
	}

	items := c.cart.Items()
	payload := models.OrderInput{
		Items:   items,
		Address: address,
		Phone:   phone,
		Notes:   notes,
	}

	resp, err := http.Post(c.baseURL+"/api/orders").
		Body(payload).
		Timeout(submitTimeout).
		WithContext(ctx).
		Send()
	if err != nil {
		return c.acceptOffline(items, address, phone)
	}

	var env orderEnvelope
	if jsonErr := resp.JSON(&env); jsonErr != nil || !resp.OK() || !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "order could not be placed"
		}
		metrics.CheckoutOutcomes.WithLabelValues("rejected").Inc()
		return Result{}, &APIError{Status: resp.StatusCode, Message: msg}
	}

	if err := c.history.Append(env.Data); err != nil {
		logger.Warn("storefront: record order history failed", "id", env.Data.ID, "error", err)
	}
	c.cart.Clear()
	metrics.CheckoutOutcomes.WithLabelValues("accepted").Inc()
	return Result{Order: env.Data}, nil
}

// acceptOffline records the order locally when the API cannot be reached.
// This is a degraded-mode acceptance; nothing reconciles it later.
func (c *Checkout) acceptOffline(items []models.OrderItem, address, phone string) (Result, error) {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	order := models.Order{
		ID:        fmt.Sprintf("ORD%06d", rand.IntN(1000000)),
		Items:     items,
		Address:   address,
		Phone:     phone,
		Total:     total,
		Status:    "pending (offline)",
		CreatedAt: time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
	if err := c.history.Append(order); err != nil {
		return Result{}, fmt.Errorf("storefront: save offline order: %w", err)
	}
	c.cart.Clear()
	metrics.CheckoutOutcomes.WithLabelValues("offline").Inc()
	return Result{Order: order, Offline: true}, nil
}
