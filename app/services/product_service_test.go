package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetdelights/bakery/app/models"
	"github.com/sweetdelights/bakery/app/repositories"
	"github.com/sweetdelights/bakery/app/services"
	"github.com/sweetdelights/bakery/pkg/storage"
)

func newProductService(t *testing.T) *services.ProductService {
	t.Helper()
	repo := repositories.NewProductRepository(storage.NewLocalDisk(t.TempDir()))
	return services.NewProductService(repo)
}

func floatPtr(f float64) *float64 { return &f }

func TestCreateAppliesDefaults(t *testing.T) {
	svc := newProductService(t)

	p, err := svc.Create(models.ProductInput{
		Name:     "Sourdough Loaf",
		Price:    floatPtr(220),
		Category: "breads",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "assets/placeholder.jpg", p.Image)
	assert.True(t, p.Available)
	assert.Equal(t, "", p.Description)
	assert.NotEmpty(t, p.CreatedAt)
}

func TestListFiltersByCategoryAndSearch(t *testing.T) {
	svc := newProductService(t)

	seed := []models.ProductInput{
		{Name: "Chocolate Truffle Cake", Description: "Rich dark chocolate sponge.", Price: floatPtr(720), Category: "cakes"},
		{Name: "Butter Croissant", Description: "Flaky and golden.", Price: floatPtr(90), Category: "pastries"},
		{Name: "Almond Biscotti", Description: "With roasted almonds and chocolate dips.", Price: floatPtr(160), Category: "cookies"},
	}
	for _, in := range seed {
		_, err := svc.Create(in)
		require.NoError(t, err)
	}

	cakes, err := svc.List("cakes", "")
	require.NoError(t, err)
	require.Len(t, cakes, 1)
	assert.Equal(t, "Chocolate Truffle Cake", cakes[0].Name)

	// Search is case-insensitive and matches descriptions too.
	choc, err := svc.List("", "CHOCOLATE")
	require.NoError(t, err)
	assert.Len(t, choc, 2)

	both, err := svc.List("cookies", "chocolate")
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "Almond Biscotti", both[0].Name)
}

func TestUpdateShallowMergePreservesID(t *testing.T) {
	svc := newProductService(t)

	created, err := svc.Create(models.ProductInput{
		Name:     "Vanilla Cake",
		Price:    floatPtr(560),
		Category: "cakes",
	})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, map[string]interface{}{
		"price":     600.0,
		"available": false,
		"id":        "forged",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 600.0, updated.Price)
	assert.False(t, updated.Available)
	assert.Equal(t, "Vanilla Cake", updated.Name)
}

func TestDeleteUnknownProduct(t *testing.T) {
	svc := newProductService(t)

	_, err := svc.Delete("nope")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
