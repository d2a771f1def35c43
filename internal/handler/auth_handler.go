package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/asistnet-backend/internal/metrics"
	"github.com/stemsi/asistnet-backend/internal/middleware"
	"github.com/stemsi/asistnet-backend/internal/model"
	"github.com/stemsi/asistnet-backend/internal/response"
	"github.com/stemsi/asistnet-backend/internal/service"
	"github.com/stemsi/asistnet-backend/internal/validator"
)

// AuthHandler handles login and token introspection.
type AuthHandler struct {
	queryService *service.QueryService
	authService  *service.AuthService
	metrics      *metrics.Metrics
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	queryService *service.QueryService,
	authService *service.AuthService,
	m *metrics.Metrics,
) *AuthHandler {
	return &AuthHandler{
		queryService: queryService,
		authService:  authService,
		metrics:      m,
	}
}

// Login godoc
// POST /api/login
// Checks username + password against the fixture accounts and returns the
// user together with a signed token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		h.metrics.LoginAttempts.WithLabelValues("malformed").Inc()
		failMalformed(c, fields)
		return
	}

	user, err := h.queryService.Authenticate(c.Request.Context(), *req.Username, *req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.metrics.LoginAttempts.WithLabelValues("invalid").Inc()
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		response.FailWithMessage(c, http.StatusInternalServerError, err.Error())
		return
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	h.metrics.LoginAttempts.WithLabelValues("success").Inc()
	response.SuccessWith(c, http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

// Me godoc
// GET /api/auth/me
// Returns the user carried by the bearer token.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	response.SuccessWith(c, http.StatusOK, gin.H{"user": claims.User()})
}

// failMalformed answers a request whose body or query does not match its
// schema. The validator detail is surfaced as the message.
func failMalformed(c *gin.Context, fields map[string]string) {
	msg := validator.Summary(fields)
	if msg == "" {
		msg = response.GetMessage(response.ErrMalformedRequest)
	}
	response.FailWithMessage(c, http.StatusInternalServerError, msg)
}
