// File: internal/handler/http/user_handler.go
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/overskilled/backend-movie-api/internal/domain/models"
	"github.com/overskilled/backend-movie-api/internal/service"
)

// UserHandler exposes user record management endpoints. Sensitive fields
// never reach the wire: the model strips them via json tags.
type UserHandler struct {
	users  *service.UserService
	logger *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// List handles GET /users. An empty store is reported as 404, not an empty
// array; clients rely on that.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		RespondWithError(c, err, h.logger)
		return
	}

	if len(users) == 0 {
		c.AbortWithStatusJSON(http.StatusNotFound, ResponseError{
			Error: "No users found",
			Code:  "NOT_FOUND",
		})
		return
	}

	c.JSON(http.StatusOK, users)
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		RespondWithError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Update handles PUT /users/:id.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithValidationError(c, err)
		return
	}

	user, err := h.users.Update(c.Request.Context(), id, req)
	if err != nil {
		RespondWithError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		RespondWithError(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func (h *UserHandler) idParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithValidationError(c, err)
		return uuid.Nil, false
	}
	return id, true
}
