package storefront

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sweetdelights/bakery/app/models"
	"github.com/sweetdelights/bakery/pkg/storage"
)

const historyFile = "orders.json"

// History is the client's local order record: every placed order is mirrored
// here, including offline fallbacks that never reached the API.
type History struct {
	mu   sync.Mutex
	disk storage.Disk
}

func NewHistory(disk storage.Disk) *History {
	return &History{disk: disk}
}

// All returns the recorded orders, oldest first.
func (h *History) All() ([]models.Order, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.load()
}

// Append adds an order to the history file.
func (h *History) Append(o models.Order) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	orders, err := h.load()
	if err != nil {
		return err
	}
	orders = append(orders, o)
	raw, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return fmt.Errorf("storefront: encode history: %w", err)
	}
	if err := h.disk.Put(historyFile, raw); err != nil {
		return fmt.Errorf("storefront: write history: %w", err)
	}
	return nil
}

func (h *History) load() ([]models.Order, error) {
	if h.disk.Missing(historyFile) {
		return []models.Order{}, nil
	}
	raw, err := h.disk.Get(historyFile)
	if err != nil {
		return nil, fmt.Errorf("storefront: read history: %w", err)
	}
	var orders []models.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, fmt.Errorf("storefront: parse history: %w", err)
	}
	return orders, nil
}
