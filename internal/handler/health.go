package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health reports service liveness; the status degrades when the database is
// unreachable but the endpoint itself stays 200.
func (h *HealthHandler) Health(c *gin.Context) {
	status := "ok"
	if h.db != nil {
		if err := h.db.Ping(c.Request.Context()); err != nil {
			status = "degraded"
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}
