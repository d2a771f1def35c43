package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/asistnet-backend/internal/response"
	"github.com/stemsi/asistnet-backend/internal/service"
)

// NotificationHandler serves the notification centre.
type NotificationHandler struct {
	queryService *service.QueryService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(queryService *service.QueryService) *NotificationHandler {
	return &NotificationHandler{queryService: queryService}
}

// ListNotifications godoc
// GET /api/notifications
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	response.Success(c, http.StatusOK, h.queryService.ListNotifications(c.Request.Context()))
}
