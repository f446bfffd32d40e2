// Package api exposes the HTTP surface of the sales agent.
package api

import (
	"os"

	"github.com/labstack/echo/v4"

	"github.com/lidorubov/neurosales/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
	version string
}

// NewHandler creates a new handler. version is the script version reported by
// the health endpoint.
func NewHandler(svc *service.Service, version string) *Handler {
	return &Handler{
		service: svc,
		version: version,
	}
}

// RegisterRoutes registers routes with the echo server. When staticDir exists
// it is served at the site root (the browser widget and demo page).
func (h *Handler) RegisterRoutes(e *echo.Echo, staticDir string) {
	e.POST("/api/chat", h.Chat)
	e.GET("/api/health", h.Health)

	if staticDir != "" {
		if _, err := os.Stat(staticDir); err == nil {
			e.Static("/", staticDir)
		}
	}
}
