package controllers

import (
	"errors"
	"net/http"

	"github.com/sweetdelights/bakery/app/services"
	"github.com/sweetdelights/bakery/pkg/bind"
	"github.com/sweetdelights/bakery/pkg/logger"
	"github.com/sweetdelights/bakery/pkg/response"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

type loginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /api/auth/login and hands out a signed session token.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	} else if len(errs) > 0 {
		response.ValidationError(w, "Username and password are required", errs)
		return
	}
	result, err := c.service.Login(in.Username, in.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Unauthorized(w, "Invalid credentials")
			return
		}
		logger.WithCtx(r.Context()).Error("login failed", "error", err)
		response.ServerError(w)
		return
	}
	response.SuccessMessage(w, "Login successful", result)
}
