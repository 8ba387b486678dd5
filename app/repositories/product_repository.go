package repositories

import (
	"github.com/sweetdelights/bakery/app/models"
	"github.com/sweetdelights/bakery/pkg/collection"
	"github.com/sweetdelights/bakery/pkg/storage"
)

// ProductRepository handles flat-file persistence for products.
type ProductRepository struct {
	store *collectionFile[models.Product]
}

func NewProductRepository(disk storage.Disk) *ProductRepository {
	return &ProductRepository{store: newCollectionFile[models.Product](disk, "products")}
}

// All returns every product in file order.
func (r *ProductRepository) All() ([]models.Product, error) {
	return r.store.All()
}

// Find looks up a product by id.
func (r *ProductRepository) Find(id string) (models.Product, error) {
	products, err := r.store.All()
	if err != nil {
		return models.Product{}, err
	}
	p, ok := collection.First(products, func(p models.Product) bool { return p.ID == id })
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

// Create appends a new product to the collection.
func (r *ProductRepository) Create(p models.Product) error {
	return r.store.Mutate(func(products []models.Product) ([]models.Product, error) {
		return append(products, p), nil
	})
}

// Save replaces the stored product with the same id.
func (r *ProductRepository) Save(p models.Product) error {
	return r.store.Mutate(func(products []models.Product) ([]models.Product, error) {
		for i := range products {
			if products[i].ID == p.ID {
				products[i] = p
				return products, nil
			}
		}
		return nil, ErrNotFound
	})
}

// Delete removes a product and returns the removed record.
func (r *ProductRepository) Delete(id string) (models.Product, error) {
	var removed models.Product
	err := r.store.Mutate(func(products []models.Product) ([]models.Product, error) {
		for i := range products {
			if products[i].ID == id {
				removed = products[i]
				return append(products[:i], products[i+1:]...), nil
			}
		}
		return nil, ErrNotFound
	})
	return removed, err
}

// Replace overwrites the whole collection (used by the seeder).
func (r *ProductRepository) Replace(products []models.Product) error {
	return r.store.Mutate(func([]models.Product) ([]models.Product, error) {
		return products, nil
	})
}
