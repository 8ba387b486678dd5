package services

import (
	"strings"
	"time"

	"github.com/sweetdelights/bakery/app/models"
	"github.com/sweetdelights/bakery/app/repositories"
	"github.com/sweetdelights/bakery/pkg/cache"
	"github.com/sweetdelights/bakery/pkg/collection"
)

// Stats is the admin dashboard aggregate.
type Stats struct {
	TotalProducts   int     `json:"totalProducts"`
	TotalOrders     int     `json:"totalOrders"`
	TodayOrders     int     `json:"todayOrders"`
	PendingOrders   int     `json:"pendingOrders"`
	CompletedOrders int     `json:"completedOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
	TodayRevenue    float64 `json:"todayRevenue"`
	UnreadContacts  int     `json:"unreadContacts"`
}

// StatsService aggregates the dashboard numbers across all three collections.
type StatsService struct {
	products *repositories.ProductRepository
	orders   *repositories.OrderRepository
	contacts *repositories.ContactRepository
}

func NewStatsService(p *repositories.ProductRepository, o *repositories.OrderRepository, c *repositories.ContactRepository) *StatsService {
	return &StatsService{products: p, orders: o, contacts: c}
}

// Dashboard computes the stats with a linear pass over each collection.
// Results are briefly cached; every write invalidates the cache.
func (s *StatsService) Dashboard() (Stats, error) {
	var stats Stats
	if cache.Get(statsCacheKey, &stats) {
		return stats, nil
	}

	products, err := s.products.All()
	if err != nil {
		return Stats{}, err
	}
	orders, err := s.orders.All()
	if err != nil {
		return Stats{}, err
	}
	contacts, err := s.contacts.All()
	if err != nil {
		return Stats{}, err
	}

	today := time.Now().UTC().Format("2006-01-02")
	todayOrders := collection.Filter(orders, func(o models.Order) bool {
		return strings.HasPrefix(o.CreatedAt, today)
	})

	stats = Stats{
		TotalProducts: len(products),
		TotalOrders:   len(orders),
		TodayOrders:   len(todayOrders),
		PendingOrders: len(collection.Filter(orders, func(o models.Order) bool {
			return o.Status == "pending"
		})),
		CompletedOrders: len(collection.Filter(orders, func(o models.Order) bool {
			return o.Status == "completed"
		})),
		TotalRevenue: collection.Sum(orders, func(o models.Order) float64 { return o.Total }),
		TodayRevenue: collection.Sum(todayOrders, func(o models.Order) float64 { return o.Total }),
		UnreadContacts: len(collection.Filter(contacts, func(c models.Contact) bool {
			return c.Status == "unread"
		})),
	}
	cache.Set(statsCacheKey, stats, 30*time.Second)
	return stats, nil
}
