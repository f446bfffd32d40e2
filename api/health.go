package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health reports service liveness. No side effects.
// GET /api/health
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "ok",
		"version":   h.version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
