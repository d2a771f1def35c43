package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stemsi/asistnet-backend/internal/response"
)

const healthTimeout = 2 * time.Second

// SystemHandler reports process health.
type SystemHandler struct {
	rdb       *redis.Client
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler. rdb may be nil when the audit
// queue is disabled.
func NewSystemHandler(rdb *redis.Client) *SystemHandler {
	return &SystemHandler{rdb: rdb, startTime: time.Now()}
}

// Health godoc
// GET /health
// Always 200 while the process serves requests; Redis state is informational
// because the API does not depend on it.
func (h *SystemHandler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(h.startTime).Round(time.Second).String(),
		"redis":  h.redisState(c.Request.Context()),
	})
}

func (h *SystemHandler) redisState(ctx context.Context) string {
	if h.rdb == nil {
		return "disabled"
	}
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()
	if err := h.rdb.Ping(ctx).Err(); err != nil {
		return "down"
	}
	return "ok"
}
