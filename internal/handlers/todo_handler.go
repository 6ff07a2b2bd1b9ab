package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/carewave-api/internal/models"
)

// @Summary      List todos
// @Tags         Todos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Todo
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/todos [get]
func (h *Handler) GetTodos(c *gin.Context) {
	todos, err := h.Todos.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, todos)
}

// @Summary      Get a todo
// @Tags         Todos
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Todo ID"
// @Success      200  {object}  models.Todo
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/todos/{id} [get]
func (h *Handler) GetTodo(c *gin.Context) {
	todo, err := h.Todos.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

// @Summary      Create a todo
// @Tags         Todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  models.Todo  true  "Request body"
// @Success      201  {object}  models.Todo
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/todos [post]
func (h *Handler) CreateTodo(c *gin.Context) {
	var todo models.Todo
	if !bind(c, &todo) {
		return
	}
	if err := h.Todos.Create(c.Request.Context(), &todo); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, todo)
}

// @Summary      Update a todo
// @Tags         Todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Todo ID"
// @Param        body  body  models.TodoUpdate  true  "Request body"
// @Success      200  {object}  models.Todo
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/todos/{id} [put]
func (h *Handler) UpdateTodo(c *gin.Context) {
	var update models.TodoUpdate
	if !bind(c, &update) {
		return
	}
	todo, err := h.Todos.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, todo)
}

// @Summary      Delete a todo
// @Tags         Todos
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Todo ID"
// @Success      204  "No Content"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/todos/{id} [delete]
func (h *Handler) DeleteTodo(c *gin.Context) {
	if err := h.Todos.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
