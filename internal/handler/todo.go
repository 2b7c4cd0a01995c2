package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/todoboard/backend/internal/model"
	"github.com/todoboard/backend/internal/service"
)

type TodoHandler struct {
	svc *service.TodoService
	log *zap.Logger
}

func NewTodoHandler(svc *service.TodoService, log *zap.Logger) *TodoHandler {
	return &TodoHandler{svc: svc, log: log}
}

// Create inserts a new todo owned by the authenticated caller.
func (h *TodoHandler) Create(c *gin.Context) {
	claims := GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req model.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	todo, err := h.svc.Create(c.Request.Context(), claims.UserID, req.Title, req.Description)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, model.TodoResponse{Todo: todo})
}

// List returns the caller's todos, newest first.
func (h *TodoHandler) List(c *gin.Context) {
	claims := GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	todos, err := h.svc.List(c.Request.Context(), claims.UserID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, model.TodoListResponse{Todos: todos})
}

// Update applies a partial update to a todo the caller owns.
func (h *TodoHandler) Update(c *gin.Context) {
	claims := GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid todo id"})
		return
	}

	var req model.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	todo, err := h.svc.Update(c.Request.Context(), claims.UserID, id, model.TodoPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, model.TodoResponse{Todo: todo})
}

// Delete removes a todo the caller owns.
func (h *TodoHandler) Delete(c *gin.Context) {
	claims := GetAuthClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid todo id"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), claims.UserID, id); err != nil {
		writeError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
