package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/carewave-api/internal/models"
)

// @Summary      List staff members
// @Tags         Staff
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Staff
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/staff [get]
func (h *Handler) GetStaff(c *gin.Context) {
	staff, err := h.Staff.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

// @Summary      Get a staff member
// @Tags         Staff
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Staff member ID"
// @Success      200  {object}  models.Staff
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/staff/{id} [get]
func (h *Handler) GetStaffMember(c *gin.Context) {
	member, err := h.Staff.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// @Summary      Create a staff member
// @Tags         Staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  models.Staff  true  "Request body"
// @Success      201  {object}  models.Staff
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/staff [post]
func (h *Handler) CreateStaffMember(c *gin.Context) {
	var member models.Staff
	if !bind(c, &member) {
		return
	}
	if err := h.Staff.Create(c.Request.Context(), &member); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

// @Summary      Update a staff member
// @Tags         Staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Staff member ID"
// @Param        body  body  models.StaffUpdate  true  "Request body"
// @Success      200  {object}  models.Staff
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/staff/{id} [put]
func (h *Handler) UpdateStaffMember(c *gin.Context) {
	var update models.StaffUpdate
	if !bind(c, &update) {
		return
	}
	member, err := h.Staff.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// @Summary      Delete a staff member
// @Tags         Staff
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Staff member ID"
// @Success      204  "No Content"
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/staff/{id} [delete]
func (h *Handler) DeleteStaffMember(c *gin.Context) {
	if err := h.Staff.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
