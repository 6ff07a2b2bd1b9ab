package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/carewave-api/internal/models"
	"github.com/harentsoaR/carewave-api/internal/services"
)

// GetAppointments lists appointments with patient names, optionally filtered
// (e.g. /api/appointments?status=Scheduled&date=2025-06-01).
//
// @Summary      List appointments
// @Tags         Appointments
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "Appointment status"
// @Param        date  query  string  false  "Date (YYYY-MM-DD)"
// @Success      200  {array}   models.AppointmentWithPatient
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/appointments [get]
func (h *Handler) GetAppointments(c *gin.Context) {
	appointments, err := h.Appointments.List(c.Request.Context(), services.AppointmentFilter{
		Status: c.Query("status"),
		Date:   c.Query("date"),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// @Summary      Today's appointments
// @Tags         Appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.AppointmentWithPatient
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/appointments/today [get]
func (h *Handler) GetTodayAppointments(c *gin.Context) {
	appointments, err := h.Appointments.Today(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// @Summary      Upcoming scheduled appointments
// @Tags         Appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.AppointmentWithPatient
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/appointments/upcoming [get]
func (h *Handler) GetUpcomingAppointments(c *gin.Context) {
	appointments, err := h.Appointments.Upcoming(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// @Summary      Get an appointment
// @Tags         Appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Appointment ID"
// @Success      200  {object}  models.AppointmentWithPatient
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/appointments/{id} [get]
func (h *Handler) GetAppointment(c *gin.Context) {
	appointment, err := h.Appointments.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// CreateAppointment stores the appointment and, for scheduled ones, emails a
// confirmation to the patient in the background.
//
// @Summary      Create an appointment
// @Tags         Appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  models.Appointment  true  "Request body"
// @Success      201  {object}  models.Appointment
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/appointments [post]
func (h *Handler) CreateAppointment(c *gin.Context) {
	var appointment models.Appointment
	if !bind(c, &appointment) {
		return
	}
	if err := h.Appointments.Create(c.Request.Context(), &appointment); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

// @Summary      Update an appointment
// @Tags         Appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Appointment ID"
// @Param        body  body  models.AppointmentUpdate  true  "Request body"
// @Success      200  {object}  models.Appointment
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/appointments/{id} [put]
func (h *Handler) UpdateAppointment(c *gin.Context) {
	var update models.AppointmentUpdate
	if !bind(c, &update) {
		return
	}
	appointment, err := h.Appointments.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// @Summary      Delete an appointment
// @Tags         Appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Appointment ID"
// @Success      204  "No Content"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/appointments/{id} [delete]
func (h *Handler) DeleteAppointment(c *gin.Context) {
	if err := h.Appointments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
