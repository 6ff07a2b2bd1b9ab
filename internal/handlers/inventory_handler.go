package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/carewave-api/internal/models"
)

// @Summary      List inventory items
// @Tags         Inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.InventoryItem
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/inventory [get]
func (h *Handler) GetInventory(c *gin.Context) {
	items, err := h.Inventory.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetLowStock lists items at or below their reorder level.
//
// @Summary      Items at or below their reorder level
// @Tags         Inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.InventoryItem
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/inventory/low-stock [get]
func (h *Handler) GetLowStock(c *gin.Context) {
	items, err := h.Inventory.LowStock(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary      Get an inventory item
// @Tags         Inventory
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Inventory item ID"
// @Success      200  {object}  models.InventoryItem
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *Handler) GetInventoryItem(c *gin.Context) {
	item, err := h.Inventory.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary      Create an inventory item
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  models.InventoryInput  true  "Request body"
// @Success      201  {object}  models.InventoryItem
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/inventory [post]
func (h *Handler) CreateInventoryItem(c *gin.Context) {
	var in models.InventoryInput
	if !bind(c, &in) {
		return
	}
	item, err := h.Inventory.Create(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// @Summary      Update an inventory item
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Inventory item ID"
// @Param        body  body  models.InventoryUpdate  true  "Request body"
// @Success      200  {object}  models.InventoryItem
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *Handler) UpdateInventoryItem(c *gin.Context) {
	var update models.InventoryUpdate
	if !bind(c, &update) {
		return
	}
	item, err := h.Inventory.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary      Delete an inventory item
// @Tags         Inventory
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Inventory item ID"
// @Success      204  "No Content"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/inventory/{id} [delete]
func (h *Handler) DeleteInventoryItem(c *gin.Context) {
	if err := h.Inventory.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
