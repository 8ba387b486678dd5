package services_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetdelights/bakery/app/models"
	"github.com/sweetdelights/bakery/app/repositories"
	"github.com/sweetdelights/bakery/app/services"
	"github.com/sweetdelights/bakery/pkg/storage"
)

var orderIDPattern = regexp.MustCompile(`^ORD-\d+-[0-9A-Z]{4}$`)

func newOrderService(t *testing.T) (*services.OrderService, *repositories.OrderRepository) {
	t.Helper()
	repo := repositories.NewOrderRepository(storage.NewLocalDisk(t.TempDir()))
	return services.NewOrderService(repo), repo
}

func TestPlaceComputesTotalServerSide(t *testing.T) {
	svc, _ := newOrderService(t)

	order, err := svc.Place(models.OrderInput{
		Items:   []models.OrderItem{{Name: "Cake", Price: 500, Quantity: 2}},
		Address: "12 Main St",
		Phone:   "555-0100",
	})
	require.NoError(t, err)

	assert.Equal(t, 1000.0, order.Total)
	assert.Equal(t, "pending", order.Status)
	assert.Equal(t, "Guest", order.CustomerName)
	assert.Regexp(t, orderIDPattern, order.ID)
	assert.NotEmpty(t, order.CreatedAt)
}

func TestPlaceSumsMultipleLines(t *testing.T) {
	svc, _ := newOrderService(t)

	order, err := svc.Place(models.OrderInput{
		Items: []models.OrderItem{
			{Name: "Croissant", Price: 90, Quantity: 3},
			{Name: "Eclair", Price: 110, Quantity: 1},
		},
		CustomerName: "Asha",
		Address:      "5 Baker Lane",
		Phone:        "555-0101",
	})
	require.NoError(t, err)

	assert.Equal(t, 380.0, order.Total)
	assert.Equal(t, "Asha", order.CustomerName)
}

func TestListFiltersAndSortsNewestFirst(t *testing.T) {
	svc, repo := newOrderService(t)

	seed := []models.Order{
		{ID: "ORD-1-AAAA", Status: "pending", CreatedAt: "2026-08-29T10:00:00.000Z"},
		{ID: "ORD-2-BBBB", Status: "completed", CreatedAt: "2026-08-30T09:00:00.000Z"},
		{ID: "ORD-3-CCCC", Status: "pending", CreatedAt: "2026-08-30T12:00:00.000Z"},
	}
	for _, o := range seed {
		require.NoError(t, repo.Create(o))
	}

	all, err := svc.List("", "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "ORD-3-CCCC", all[0].ID)
	assert.Equal(t, "ORD-1-AAAA", all[2].ID)

	pending, err := svc.List("pending", "")
	require.NoError(t, err)
	require.Len(t, pending, 2)

	byDate, err := svc.List("", "2026-08-30")
	require.NoError(t, err)
	require.Len(t, byDate, 2)
	assert.Equal(t, "ORD-3-CCCC", byDate[0].ID)

	both, err := svc.List("pending", "2026-08-30")
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "ORD-3-CCCC", both[0].ID)
}

func TestUpdateMergesButPreservesID(t *testing.T) {
	svc, _ := newOrderService(t)

	placed, err := svc.Place(models.OrderInput{
		Items:   []models.OrderItem{{Name: "Cake", Price: 500, Quantity: 1}},
		Address: "12 Main St",
		Phone:   "555-0100",
	})
	require.NoError(t, err)

	updated, err := svc.Update(placed.ID, map[string]interface{}{
		"status": "completed",
		"id":     "ORD-hijacked",
	})
	require.NoError(t, err)

	assert.Equal(t, placed.ID, updated.ID)
	assert.Equal(t, "completed", updated.Status)
	assert.Equal(t, placed.Total, updated.Total)
	assert.NotEmpty(t, updated.UpdatedAt)

	stored, err := svc.Get(placed.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", stored.Status)
}

func TestDeleteReturnsRemovedRecord(t *testing.T) {
	svc, _ := newOrderService(t)

	placed, err := svc.Place(models.OrderInput{
		Items:   []models.OrderItem{{Name: "Cake", Price: 500, Quantity: 1}},
		Address: "12 Main St",
		Phone:   "555-0100",
	})
	require.NoError(t, err)

	removed, err := svc.Delete(placed.ID)
	require.NoError(t, err)
	assert.Equal(t, placed.ID, removed.ID)

	_, err = svc.Get(placed.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
