package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/asistnet-backend/internal/model"
	"github.com/stemsi/asistnet-backend/internal/response"
	"github.com/stemsi/asistnet-backend/internal/service"
	"github.com/stemsi/asistnet-backend/internal/validator"
)

// SearchHandler serves keyword search over students and courses.
type SearchHandler struct {
	queryService *service.QueryService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(queryService *service.QueryService) *SearchHandler {
	return &SearchHandler{queryService: queryService}
}

// Search godoc
// GET /api/search?q=&type=all|students|courses
func (h *SearchHandler) Search(c *gin.Context) {
	var q model.SearchQuery
	if fields := validator.BindQuery(c, &q); fields != nil {
		failMalformed(c, fields)
		return
	}

	results := h.queryService.Search(c.Request.Context(), q.Q, q.Scope())
	response.SuccessWith(c, http.StatusOK, gin.H{
		"results": results,
		"count":   len(results),
	})
}
