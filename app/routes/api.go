// Package routes wires controllers onto the router.
package routes

import (
	"github.com/sweetdelights/bakery/app/controllers"
	"github.com/sweetdelights/bakery/app/graph"
	"github.com/sweetdelights/bakery/app/repositories"
	"github.com/sweetdelights/bakery/app/services"
	"github.com/sweetdelights/bakery/config"
	"github.com/sweetdelights/bakery/pkg/logger"
	"github.com/sweetdelights/bakery/pkg/middleware"
	"github.com/sweetdelights/bakery/pkg/router"
	"github.com/sweetdelights/bakery/pkg/storage"
)

// RegisterAPI mounts the full /api surface. Everything stays open except the
// admin surfaces: contact listing, stats, the order stream and GraphQL.
func RegisterAPI(r *router.Router) {
	disk := storage.Use(config.StorageDefault())

	productRepo := repositories.NewProductRepository(disk)
	orderRepo := repositories.NewOrderRepository(disk)
	contactRepo := repositories.NewContactRepository(disk)

	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo)
	contactService := services.NewContactService(contactRepo)
	statsService := services.NewStatsService(productRepo, orderRepo, contactRepo)

	productController := controllers.NewProductController(productService)
	orderController := controllers.NewOrderController(orderService)
	contactController := controllers.NewContactController(contactService)
	authController := controllers.NewAuthController(services.NewAuthService())
	statsController := controllers.NewStatsController(statsService)
	streamController := controllers.NewStreamController()

	api := r.Group("/api")

	api.Get("/health", "health", controllers.Health)

	api.Get("/products", "products.index", productController.Index)
	api.Get("/products/{id}", "products.show", productController.Show)
	api.Post("/products", "products.store", productController.Store)
	api.Put("/products/{id}", "products.update", productController.Update)
	api.Delete("/products/{id}", "products.destroy", productController.Destroy)

	api.Get("/orders", "orders.index", orderController.Index)
	api.Get("/orders/{id}", "orders.show", orderController.Show)
	api.Post("/orders", "orders.store", orderController.Store)
	api.Put("/orders/{id}", "orders.update", orderController.Update)
	api.Delete("/orders/{id}", "orders.destroy", orderController.Destroy)

	api.Post("/contact", "contact.store", contactController.Store)
	api.Post("/auth/login", "auth.login", authController.Login)

	admin := api.Group("", middleware.Auth)
	admin.Get("/contact", "contact.index", contactController.Index)
	admin.Get("/stats", "stats.dashboard", statsController.Dashboard)
	admin.Get("/orders/stream", "orders.stream", streamController.Orders)

	schema, err := graph.NewSchema(productService, orderService, statsService)
	if err != nil {
		logger.Error("routes: build graphql schema failed", "error", err)
	} else {
		admin.Post("/graphql", "graphql", graph.Handler(schema))
	}
}
