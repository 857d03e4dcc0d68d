package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	storage Pinger
	driver  string
}

func NewHealthHandler(storage Pinger, driver string) *HealthHandler {
	return &HealthHandler{
		storage: storage,
		driver:  driver,
	}
}

func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	code, status, storageStatus := http.StatusOK, "ok", "ok"
	if err := h.storage.Ping(ctx); err != nil {
		code, status, storageStatus = http.StatusServiceUnavailable, "degraded", err.Error()
	}

	return c.JSON(code, map[string]interface{}{
		"status":    status,
		"storage":   map[string]string{"driver": h.driver, "status": storageStatus},
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
