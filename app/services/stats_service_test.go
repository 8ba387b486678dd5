package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetdelights/bakery/app/models"
	"github.com/sweetdelights/bakery/app/repositories"
	"github.com/sweetdelights/bakery/app/services"
	"github.com/sweetdelights/bakery/pkg/storage"
)

func TestDashboardAggregates(t *testing.T) {
	disk := storage.NewLocalDisk(t.TempDir())
	products := repositories.NewProductRepository(disk)
	orders := repositories.NewOrderRepository(disk)
	contacts := repositories.NewContactRepository(disk)

	require.NoError(t, products.Create(models.Product{ID: "p1", Name: "Cake"}))

	today := time.Now().UTC().Format("2006-01-02")
	seed := []models.Order{
		{ID: "ORD-1-AAAA", Status: "pending", Total: 500, CreatedAt: today + "T10:00:00.000Z"},
		{ID: "ORD-2-BBBB", Status: "completed", Total: 300, CreatedAt: "2026-01-15T10:00:00.000Z"},
	}
	for _, o := range seed {
		require.NoError(t, orders.Create(o))
	}

	require.NoError(t, contacts.Create(models.Contact{ID: "c1", Status: "unread"}))
	require.NoError(t, contacts.Create(models.Contact{ID: "c2", Status: "read"}))

	svc := services.NewStatsService(products, orders, contacts)
	stats, err := svc.Dashboard()
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalProducts)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 1, stats.TodayOrders)
	assert.Equal(t, 1, stats.PendingOrders)
	assert.Equal(t, 1, stats.CompletedOrders)
	assert.Equal(t, 800.0, stats.TotalRevenue)
	assert.Equal(t, 500.0, stats.TodayRevenue)
	assert.Equal(t, 1, stats.UnreadContacts)
}

func TestContactDefaults(t *testing.T) {
	repo := repositories.NewContactRepository(storage.NewLocalDisk(t.TempDir()))
	svc := services.NewContactService(repo)

	first, err := svc.Submit(models.ContactInput{
		Name:    "Asha",
		Email:   "asha@example.com",
		Message: "Do you deliver?",
	})
	require.NoError(t, err)
	assert.Equal(t, "General Inquiry", first.Subject)
	assert.Equal(t, "unread", first.Status)
	assert.NotEmpty(t, first.ID)
}
