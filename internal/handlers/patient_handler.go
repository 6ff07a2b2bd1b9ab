package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/carewave-api/internal/models"
)

// @Summary      List patients
// @Tags         Patients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Patient
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/patients [get]
func (h *Handler) GetPatients(c *gin.Context) {
	patients, err := h.Patients.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

// SearchPatients matches ?query= against patient names.
//
// @Summary      Search patients by name
// @Tags         Patients
// @Produce      json
// @Security     BearerAuth
// @Param        query  query  string  false  "Name fragment"
// @Success      200  {array}   models.Patient
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/patients/search [get]
func (h *Handler) SearchPatients(c *gin.Context) {
	patients, err := h.Patients.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

// @Summary      Get a patient
// @Tags         Patients
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Patient ID"
// @Success      200  {object}  models.Patient
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/patients/{id} [get]
func (h *Handler) GetPatient(c *gin.Context) {
	patient, err := h.Patients.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

// @Summary      Get a patient with its appointments
// @Tags         Patients
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Patient ID"
// @Success      200  {object}  models.PatientWithAppointments
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/patients/{id}/with-appointments [get]
func (h *Handler) GetPatientWithAppointments(c *gin.Context) {
	patient, err := h.Patients.GetWithAppointments(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

// @Summary      List a patient's appointments
// @Tags         Patients
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Patient ID"
// @Success      200  {array}   models.Appointment
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/patients/{id}/appointments [get]
func (h *Handler) GetPatientAppointments(c *gin.Context) {
	appointments, err := h.Patients.Appointments(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// @Summary      List a patient's billing records
// @Tags         Patients
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Patient ID"
// @Success      200  {array}   models.BillingRecord
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/patients/{id}/billing [get]
func (h *Handler) GetPatientBilling(c *gin.Context) {
	records, err := h.Patients.Billing(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// @Summary      Create a patient
// @Tags         Patients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  models.Patient  true  "Request body"
// @Success      201  {object}  models.Patient
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/patients [post]
func (h *Handler) CreatePatient(c *gin.Context) {
	var patient models.Patient
	if !bind(c, &patient) {
		return
	}
	if err := h.Patients.Create(c.Request.Context(), &patient); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, patient)
}

// @Summary      Update a patient
// @Tags         Patients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Patient ID"
// @Param        body  body  models.PatientUpdate  true  "Request body"
// @Success      200  {object}  models.Patient
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/patients/{id} [put]
func (h *Handler) UpdatePatient(c *gin.Context) {
	var update models.PatientUpdate
	if !bind(c, &update) {
		return
	}
	patient, err := h.Patients.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

// @Summary      Delete a patient and its appointments
// @Tags         Patients
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Patient ID"
// @Success      204  "No Content"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/patients/{id} [delete]
func (h *Handler) DeletePatient(c *gin.Context) {
	if err := h.Patients.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
