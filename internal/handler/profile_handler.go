package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/asistnet-backend/internal/model"
	"github.com/stemsi/asistnet-backend/internal/response"
	"github.com/stemsi/asistnet-backend/internal/service"
	"github.com/stemsi/asistnet-backend/internal/validator"
)

const profileUpdatedMessage = "Perfil actualizado correctamente"

// ProfileHandler serves the demo student's profile.
type ProfileHandler struct {
	queryService *service.QueryService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(queryService *service.QueryService) *ProfileHandler {
	return &ProfileHandler{queryService: queryService}
}

// GetProfile godoc
// GET /api/user/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	student, err := h.queryService.GetProfile(c.Request.Context())
	if err != nil {
		response.FailWithMessage(c, http.StatusInternalServerError, err.Error())
		return
	}
	response.Success(c, http.StatusOK, student)
}

// UpdateProfile godoc
// POST /api/user/update
// Accepts any JSON object and reports success. Nothing is stored.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var update model.ProfileUpdate
	if fields := validator.Bind(c, &update); fields != nil {
		failMalformed(c, fields)
		return
	}

	h.queryService.UpdateProfile(c.Request.Context(), response.RequestID(c), update)
	response.SuccessMessage(c, http.StatusOK, profileUpdatedMessage)
}
