package services

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/sweetdelights/bakery/app/models"
	"github.com/sweetdelights/bakery/app/repositories"
	"github.com/sweetdelights/bakery/pkg/cache"
	"github.com/sweetdelights/bakery/pkg/collection"
	"github.com/sweetdelights/bakery/pkg/event"
	"github.com/sweetdelights/bakery/pkg/metrics"
)

const statsCacheKey = "stats:dashboard"

// Order lifecycle events fired on the bus. The WebSocket feed relays them.
const (
	EventOrderCreated = "order.created"
	EventOrderUpdated = "order.updated"
	EventOrderDeleted = "order.deleted"
)

// OrderService implements order placement, listing and admin maintenance.
type OrderService struct {
	repo *repositories.OrderRepository
}

func NewOrderService(repo *repositories.OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// List returns orders, optionally filtered by exact status and by a date
// prefix on createdAt, sorted newest first.
func (s *OrderService) List(status, date string) ([]models.Order, error) {
	orders, err := s.repo.All()
	if err != nil {
		return nil, err
	}
	if status != "" {
		orders = collection.Filter(orders, func(o models.Order) bool {
			return o.Status == status
		})
	}
	if date != "" {
		orders = collection.Filter(orders, func(o models.Order) bool {
			return strings.HasPrefix(o.CreatedAt, date)
		})
	}
	// Timestamps are ISO strings, so lexicographic order is chronological.
	return collection.SortBy(orders, func(a, b models.Order) bool {
		return a.CreatedAt > b.CreatedAt
	}), nil
}

// Get returns a single order by id.
func (s *OrderService) Get(id string) (models.Order, error) {
	return s.repo.Find(id)
}

// Place creates an order from validated input. The total is recomputed from
// the items regardless of anything the client sent.
func (s *OrderService) Place(in models.OrderInput) (models.Order, error) {
	now := nowISO()
	o := models.Order{
		ID:           newOrderID(),
		Items:        in.Items,
		CustomerName: in.CustomerName,
		Address:      in.Address,
		Phone:        in.Phone,
		Email:        in.Email,
		Notes:        in.Notes,
		Total: collection.Sum(in.Items, func(it models.OrderItem) float64 {
			return it.Price * float64(it.Quantity)
		}),
		Status:    "pending",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if o.CustomerName == "" {
		o.CustomerName = "Guest"
	}
	if err := s.repo.Create(o); err != nil {
		return models.Order{}, err
	}
	metrics.OrdersPlaced.Inc()
	cache.Del(statsCacheKey)
	event.FireAsync(EventOrderCreated, o)
	return o, nil
}

// Update shallow-merges the patch onto the stored order. The id can never be
// changed and updatedAt is always refreshed.
func (s *OrderService) Update(id string, patch map[string]interface{}) (models.Order, error) {
	current, err := s.repo.Find(id)
	if err != nil {
		return models.Order{}, err
	}
	var merged models.Order
	if err := shallowMerge(current, patch, &merged); err != nil {
		return models.Order{}, fmt.Errorf("services: merge order %s: %w", id, err)
	}
	merged.ID = current.ID
	merged.UpdatedAt = nowISO()
	if err := s.repo.Save(merged); err != nil {
		return models.Order{}, err
	}
	cache.Del(statsCacheKey)
	event.FireAsync(EventOrderUpdated, merged)
	return merged, nil
}

// Delete removes an order and returns the removed record.
func (s *OrderService) Delete(id string) (models.Order, error) {
	removed, err := s.repo.Delete(id)
	if err != nil {
		return models.Order{}, err
	}
	cache.Del(statsCacheKey)
	event.FireAsync(EventOrderDeleted, removed)
	return removed, nil
}

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newOrderID produces ids like ORD-1756600000000-7KQ2: epoch milliseconds
// plus a short random suffix to break same-millisecond collisions.
func newOrderID() string {
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = base36[rand.IntN(len(base36))]
	}
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}
