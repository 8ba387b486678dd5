package repositories

import (
	"github.com/sweetdelights/bakery/app/models"
	"github.com/sweetdelights/bakery/pkg/storage"
)

// ContactRepository handles flat-file persistence for contact messages.
type ContactRepository struct {
	store *collectionFile[models.Contact]
}

func NewContactRepository(disk storage.Disk) *ContactRepository {
	return &ContactRepository{store: newCollectionFile[models.Contact](disk, "contacts")}
}

// All returns every contact message in file order.
func (r *ContactRepository) All() ([]models.Contact, error) {
	return r.store.All()
}

// Create appends a new contact message to the collection.
func (r *ContactRepository) Create(c models.Contact) error {
	return r.store.Mutate(func(contacts []models.Contact) ([]models.Contact, error) {
		return append(contacts, c), nil
	})
}
