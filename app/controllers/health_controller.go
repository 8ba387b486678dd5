package controllers

import (
	"net/http"
	"time"

	"github.com/sweetdelights/bakery/pkg/response"
)

// Health handles GET /api/health.
func Health(w http.ResponseWriter, _ *http.Request) {
	response.SuccessMessage(w, "API is healthy", map[string]string{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
