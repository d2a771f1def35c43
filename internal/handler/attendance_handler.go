package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/asistnet-backend/internal/config"
	"github.com/stemsi/asistnet-backend/internal/model"
	"github.com/stemsi/asistnet-backend/internal/response"
	"github.com/stemsi/asistnet-backend/internal/service"
	"github.com/stemsi/asistnet-backend/internal/validator"
)

// AttendanceHandler serves attendance history.
type AttendanceHandler struct {
	queryService *service.QueryService
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(queryService *service.QueryService) *AttendanceHandler {
	return &AttendanceHandler{queryService: queryService}
}

// GetAttendance godoc
// GET /api/user/attendance?student_id=&limit=
// Returns up to limit records for the student, newest first. Defaults apply
// only to absent parameters: an empty student_id matches nobody.
func (h *AttendanceHandler) GetAttendance(c *gin.Context) {
	var q model.AttendanceQuery
	if fields := validator.BindQuery(c, &q); fields != nil {
		failMalformed(c, fields)
		return
	}

	limit, err := q.MaxRecords()
	if err != nil {
		failMalformed(c, map[string]string{"limit": err.Error()})
		return
	}

	studentID := q.StudentOr(config.DefaultStudentID)
	records := h.queryService.GetAttendance(c.Request.Context(), studentID, limit)
	response.Success(c, http.StatusOK, records)
}
