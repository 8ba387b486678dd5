// Package controllers translates HTTP requests into service calls and wraps
// every result in the standard response envelope.
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

type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

// Index handles GET /api/products with optional category and search filters.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	products, err := c.service.List(q.Get("category"), q.Get("search"))
	if err != nil {
		logger.WithCtx(r.Context()).Error("list products failed", "error", err)
		response.ServerError(w)
		return
	}
	response.List(w, len(products), products)
}

// Show handles GET /api/products/{id}.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	product, err := c.service.Get(router.Param(r, "id"))
	if err != nil {
		respondProductErr(w, r, err)
		return
	}
	response.Success(w, product)
}

// Store handles POST /api/products.
func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	var in models.ProductInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	} else if len(errs) > 0 {
		response.ValidationError(w, "Name, price, and category are required", errs)
		return
	}
	product, err := c.service.Create(in)
	if err != nil {
		logger.WithCtx(r.Context()).Error("create product failed", "error", err)
		response.ServerError(w)
		return
	}
	response.Created(w, "Product created successfully", product)
}

// Update handles PUT /api/products/{id}. The body is an arbitrary subset of
// product fields, shallow-merged onto the stored record.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	var patch map[string]interface{}
	if _, err := bind.JSON(r, &patch); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	product, err := c.service.Update(router.Param(r, "id"), patch)
	if err != nil {
		respondProductErr(w, r, err)
		return
	}
	response.SuccessMessage(w, "Product updated successfully", product)
}

// Destroy handles DELETE /api/products/{id}.
func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
	product, err := c.service.Delete(router.Param(r, "id"))
	if err != nil {
		respondProductErr(w, r, err)
		return
	}
	response.SuccessMessage(w, "Product deleted successfully", product)
}

func respondProductErr(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, repositories.ErrNotFound) {
		response.NotFound(w, "Product not found")
		return
	}
	logger.WithCtx(r.Context()).Error("product operation failed", "error", err)
	response.ServerError(w)
}
