package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/harentsoaR/carewave-api/internal/middleware"
	"github.com/harentsoaR/carewave-api/internal/services"
	"github.com/harentsoaR/carewave-api/internal/store"
)

const msgInternal = "Internal server error"

// Handler is the HTTP facade over the service layer. Every route is a method
// of this struct.
type Handler struct {
	Auth         *services.AuthService
	Patients     *services.PatientService
	Appointments *services.AppointmentService
	Staff        *services.StaffService
	Inventory    *services.InventoryService
	Billing      *services.BillingService
	Todos        *services.TodoService
	Stats        *services.StatsService
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

func respondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: true, Message: message})
}

// fail maps a service error onto a status code. Unclassified errors are
// logged and reported as a generic 500.
func (h *Handler) fail(c *gin.Context, err error) {
	_ = c.Error(err)

	var (
		validation *services.ValidationError
		auth       *services.AuthError
		missing    *services.NotFoundError
	)
	switch {
	case errors.As(err, &validation):
		respondError(c, http.StatusBadRequest, validation.Message)
	case errors.As(err, &auth):
		respondError(c, http.StatusUnauthorized, auth.Message)
	case errors.As(err, &missing):
		respondError(c, http.StatusNotFound, missing.Error())
	case errors.Is(err, store.ErrDuplicate):
		respondError(c, http.StatusConflict, "An account with this email already exists")
	case errors.Is(err, services.ErrMailerDisabled):
		respondError(c, http.StatusServiceUnavailable, "Email delivery is not configured")
	default:
		log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
		respondError(c, http.StatusInternalServerError, msgInternal)
	}
}

// bind decodes the JSON body into dst and answers 400 when it cannot.
func bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("invalid request body")
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func currentUserID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}

// @Summary      Service liveness
// @Tags         Health
// @Produce      json
// @Success      200  {object}  object
// @Router       /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Server is running"})
}

func (h *Handler) NotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound, "Route not found")
}
