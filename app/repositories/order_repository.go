package repositories

import (
	"github.com/sweetdelights/bakery/app/models"
	"github.com/sweetdelights/bakery/pkg/collection"
	"github.com/sweetdelights/bakery/pkg/storage"
)

// OrderRepository handles flat-file persistence for orders.
type OrderRepository struct {
	store *collectionFile[models.Order]
}

func NewOrderRepository(disk storage.Disk) *OrderRepository {
	return &OrderRepository{store: newCollectionFile[models.Order](disk, "orders")}
}

// All returns every order in file order.
func (r *OrderRepository) All() ([]models.Order, error) {
	return r.store.All()
}

// Find looks up an order by id.
func (r *OrderRepository) Find(id string) (models.Order, error) {
	orders, err := r.store.All()
	if err != nil {
		return models.Order{}, err
	}
	o, ok := collection.First(orders, func(o models.Order) bool { return o.ID == id })
	if !ok {
		return models.Order{}, ErrNotFound
	}
	return o, nil
}

// Create appends a new order to the collection.
func (r *OrderRepository) Create(o models.Order) error {
	return r.store.Mutate(func(orders []models.Order) ([]models.Order, error) {
		return append(orders, o), nil
	})
}

// Save replaces the stored order with the same id.
func (r *OrderRepository) Save(o models.Order) error {
	return r.store.Mutate(func(orders []models.Order) ([]models.Order, error) {
		for i := range orders {
			if orders[i].ID == o.ID {
				orders[i] = o
				return orders, nil
			}
		}
		return nil, ErrNotFound
	})
}

// Delete removes an order and returns the removed record.
func (r *OrderRepository) Delete(id string) (models.Order, error) {
	var removed models.Order
	err := r.store.Mutate(func(orders []models.Order) ([]models.Order, error) {
		for i := range orders {
			if orders[i].ID == id {
				removed = orders[i]
				return append(orders[:i], orders[i+1:]...), nil
			}
		}
		return nil, ErrNotFound
	})
	return removed, err
}
