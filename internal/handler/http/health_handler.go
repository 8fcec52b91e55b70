package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mazboy1/frasa-backend/internal/handler/http/dto"
)

// Pinger is the store connectivity probe behind the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store Pinger
}

func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health reports whether the document store is reachable.
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, dto.HealthResponse{
			Success:   false,
			Status:    "Error",
			Database:  "Disconnected",
			Timestamp: time.Now(),
			Error:     err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{
		Success:   true,
		Status:    "OK",
		Database:  "Connected",
		Timestamp: time.Now(),
	})
}
