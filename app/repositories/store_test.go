package repositories_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetdelights/bakery/app/models"
	"github.com/sweetdelights/bakery/app/repositories"
	"github.com/sweetdelights/bakery/config"
	"github.com/sweetdelights/bakery/pkg/storage"
)

func tempDisk(t *testing.T) storage.Disk {
	t.Helper()
	return storage.NewLocalDisk(t.TempDir())
}

func TestMissingFileIsEmptyCollection(t *testing.T) {
	repo := repositories.NewProductRepository(tempDisk(t))

	products, err := repo.All()
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCorruptFileSurfacesError(t *testing.T) {
	disk := tempDisk(t)
	path := filepath.Join(config.DataDir(), "products.json")
	require.NoError(t, disk.Put(path, []byte("{not json")))

	repo := repositories.NewProductRepository(disk)
	_, err := repo.All()
	require.Error(t, err)
	assert.ErrorIs(t, err, repositories.ErrCorrupt)
}

func TestCreateFindSaveDelete(t *testing.T) {
	repo := repositories.NewProductRepository(tempDisk(t))

	p := models.Product{ID: "p1", Name: "Croissant", Price: 90, Category: "pastries"}
	require.NoError(t, repo.Create(p))

	got, err := repo.Find("p1")
	require.NoError(t, err)
	assert.Equal(t, "Croissant", got.Name)

	got.Price = 95
	require.NoError(t, repo.Save(got))
	got, err = repo.Find("p1")
	require.NoError(t, err)
	assert.Equal(t, 95.0, got.Price)

	removed, err := repo.Delete("p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", removed.ID)

	_, err = repo.Find("p1")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestSaveUnknownIDFails(t *testing.T) {
	repo := repositories.NewOrderRepository(tempDisk(t))

	err := repo.Save(models.Order{ID: "ORD-1-AAAA"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCollectionSurvivesReopen(t *testing.T) {
	disk := tempDisk(t)

	first := repositories.NewContactRepository(disk)
	require.NoError(t, first.Create(models.Contact{ID: "c1", Name: "Asha", Status: "unread"}))

	second := repositories.NewContactRepository(disk)
	contacts, err := second.All()
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Asha", contacts[0].Name)
}
