package controllers

import (
	"net/http"

	"github.com/sweetdelights/bakery/app/models"
	"github.com/sweetdelights/bakery/app/services"
	"github.com/sweetdelights/bakery/pkg/bind"
	"github.com/sweetdelights/bakery/pkg/logger"
	"github.com/sweetdelights/bakery/pkg/response"
)

type ContactController struct {
	service *services.ContactService
}

func NewContactController(service *services.ContactService) *ContactController {
	return &ContactController{service: service}
}

// Store handles POST /api/contact. Only the new record's id is echoed back.
func (c *ContactController) Store(w http.ResponseWriter, r *http.Request) {
	var in models.ContactInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	} else if len(errs) > 0 {
		response.ValidationError(w, "Name, email, and message are required", errs)
		return
	}
	contact, err := c.service.Submit(in)
	if err != nil {
		logger.WithCtx(r.Context()).Error("store contact failed", "error", err)
		response.ServerError(w)
		return
	}
	response.Created(w, "Thank you for contacting us! We will get back to you soon.",
		map[string]string{"id": contact.ID})
}

// Index handles GET /api/contact (admin only), newest first.
func (c *ContactController) Index(w http.ResponseWriter, r *http.Request) {
	contacts, err := c.service.List()
	if err != nil {
		logger.WithCtx(r.Context()).Error("list contacts failed", "error", err)
		response.ServerError(w)
		return
	}
	response.List(w, len(contacts), contacts)
}
