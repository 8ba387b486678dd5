package services

import (
	"github.com/google/uuid"

	"github.com/sweetdelights/bakery/app/models"
	"github.com/sweetdelights/bakery/app/repositories"
	"github.com/sweetdelights/bakery/pkg/cache"
	"github.com/sweetdelights/bakery/pkg/collection"
)

// ContactService implements the contact form and its admin listing.
type ContactService struct {
	repo *repositories.ContactRepository
}

func NewContactService(repo *repositories.ContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

// Submit stores a contact message and returns the stored record.
func (s *ContactService) Submit(in models.ContactInput) (models.Contact, error) {
	c := models.Contact{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Subject:   in.Subject,
		Message:   in.Message,
		Status:    "unread",
		CreatedAt: nowISO(),
	}
	if c.Subject == "" {
		c.Subject = "General Inquiry"
	}
	if err := s.repo.Create(c); err != nil {
		return models.Contact{}, err
	}
	cache.Del(statsCacheKey)
	return c, nil
}

// List returns every contact message, newest first.
func (s *ContactService) List() ([]models.Contact, error) {
	contacts, err := s.repo.All()
	if err != nil {
		return nil, err
	}
	return collection.SortBy(contacts, func(a, b models.Contact) bool {
		return a.CreatedAt > b.CreatedAt
	}), nil
}
