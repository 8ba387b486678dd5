package controllers

import (
	"errors"
	"net/http"

	"github.com/sweetdelights/bakery/app/models"
	"github.com/sweetdelights/bakery/app/repositories"
	"github.com/sweetdelights/bakery/app/services"
	"github.com/sweetdelights/bakery/pkg/bind"
	"github.com/sweetdelights/bakery/pkg/logger"
	"github.com/sweetdelights/bakery/pkg/response"
	"github.com/sweetdelights/bakery/pkg/router"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// Index handles GET /api/orders with optional status and date filters,
// newest first.
func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	orders, err := c.service.List(q.Get("status"), q.Get("date"))
	if err != nil {
		logger.WithCtx(r.Context()).Error("list orders failed", "error", err)
		response.ServerError(w)
		return
	}
	response.List(w, len(orders), orders)
}

// Show handles GET /api/orders/{id}.
func (c *OrderController) Show(w http.ResponseWriter, r *http.Request) {
	order, err := c.service.Get(router.Param(r, "id"))
	if err != nil {
		respondOrderErr(w, r, err)
		return
	}
	response.Success(w, order)
}

// Store handles POST /api/orders. The total is always recomputed server-side.
func (c *OrderController) Store(w http.ResponseWriter, r *http.Request) {
	var in models.OrderInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	} else if len(errs) > 0 {
		response.ValidationError(w, "Items, address, and phone are required", errs)
		return
	}
	order, err := c.service.Place(in)
	if err != nil {
		logger.WithCtx(r.Context()).Error("place order failed", "error", err)
		response.ServerError(w)
		return
	}
	logger.WithCtx(r.Context()).Info("order placed",
		"id", order.ID, "total", order.Total, "items", len(order.Items))
	response.Created(w, "Order placed successfully", order)
}

// Update handles PUT /api/orders/{id}: a shallow merge that typically just
// moves the status along.
func (c *OrderController) Update(w http.ResponseWriter, r *http.Request) {
	var patch map[string]interface{}
	if _, err := bind.JSON(r, &patch); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	order, err := c.service.Update(router.Param(r, "id"), patch)
	if err != nil {
		respondOrderErr(w, r, err)
		return
	}
	response.SuccessMessage(w, "Order updated successfully", order)
}

// Destroy handles DELETE /api/orders/{id}.
func (c *OrderController) Destroy(w http.ResponseWriter, r *http.Request) {
	order, err := c.service.Delete(router.Param(r, "id"))
	if err != nil {
		respondOrderErr(w, r, err)
		return
	}
	response.SuccessMessage(w, "Order deleted successfully", order)
}

func respondOrderErr(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, repositories.ErrNotFound) {
		response.NotFound(w, "Order not found")
		return
	}
	logger.WithCtx(r.Context()).Error("order operation failed", "error", err)
	response.ServerError(w)
}
