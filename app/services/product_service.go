package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sweetdelights/bakery/app/models"
	"github.com/sweetdelights/bakery/app/repositories"
	"github.com/sweetdelights/bakery/pkg/cache"
	"github.com/sweetdelights/bakery/pkg/collection"
)

const productCacheKey = "products:list"

// ProductService implements catalogue operations.
type ProductService struct {
	repo *repositories.ProductRepository
}

func NewProductService(repo *repositories.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// List returns products filtered by exact category and/or a case-insensitive
// substring search over name and description. The unfiltered list is served
// from cache when Redis is available.
func (s *ProductService) List(category, search string) ([]models.Product, error) {
	var products []models.Product
	if category == "" && search == "" && cache.Get(productCacheKey, &products) {
		return products, nil
	}

	products, err := s.repo.All()
	if err != nil {
		return nil, err
	}
	if category == "" && search == "" {
		cache.Set(productCacheKey, products, 5*time.Minute)
		return products, nil
	}

	if category != "" {
		products = collection.Filter(products, func(p models.Product) bool {
			return p.Category == category
		})
	}
	if search != "" {
		needle := strings.ToLower(search)
		products = collection.Filter(products, func(p models.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), needle) ||
				strings.Contains(strings.ToLower(p.Description), needle)
		})
	}
	return products, nil
}

// Get returns a single product by id.
func (s *ProductService) Get(id string) (models.Product, error) {
	return s.repo.Find(id)
}

// Create builds a product from validated input, fills defaults and persists it.
func (s *ProductService) Create(in models.ProductInput) (models.Product, error) {
	now := nowISO()
	p := models.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		Category:    in.Category,
		Image:       in.Image,
		Available:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if p.Image == "" {
		p.Image = "assets/placeholder.jpg"
	}
	if in.Available != nil {
		p.Available = *in.Available
	}
	if err := s.repo.Create(p); err != nil {
		return models.Product{}, err
	}
	cache.Del(productCacheKey)
	return p, nil
}

// Update shallow-merges the patch onto the stored product. The id can never
// be changed and updatedAt is always refreshed.
func (s *ProductService) Update(id string, patch map[string]interface{}) (models.Product, error) {
	current, err := s.repo.Find(id)
	if err != nil {
		return models.Product{}, err
	}
	var merged models.Product
	if err := shallowMerge(current, patch, &merged); err != nil {
		return models.Product{}, fmt.Errorf("services: merge product %s: %w", id, err)
	}
	merged.ID = current.ID
	merged.UpdatedAt = nowISO()
	if err := s.repo.Save(merged); err != nil {
		return models.Product{}, err
	}
	cache.Del(productCacheKey)
	return merged, nil
}

// Delete removes a product and returns the removed record.
func (s *ProductService) Delete(id string) (models.Product, error) {
	removed, err := s.repo.Delete(id)
	if err == nil {
		cache.Del(productCacheKey)
	}
	return removed, err
}

// shallowMerge overlays patch fields onto base through their JSON form, so
// merge semantics match the persisted field names exactly.
func shallowMerge(base interface{}, patch map[string]interface{}, dest interface{}) error {
	raw, err := json.Marshal(base)
	if err != nil {
		return err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return err
	}
	for k, v := range patch {
		m[k] = v
	}
	raw, err = json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}
