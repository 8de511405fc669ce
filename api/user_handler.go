package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"promohub/internal/auth"
)

// userHandler implements the admin account-management endpoints.
type userHandler struct {
	authService *auth.Service
	logger      *zap.Logger
}

func newUserHandler(authService *auth.Service, logger *zap.Logger) *userHandler {
	return &userHandler{
		authService: authService,
		logger:      logger,
	}
}

type userRequest struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Role      auth.Role `json:"role"`
	PartnerID string    `json:"partner_id"`
}

func (h *userHandler) handleList(c *gin.Context) {
	users, err := h.authService.ListUsers()
	if err != nil {
		h.logger.Error("failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": users})
}

func (h *userHandler) handleCreate(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	u, err := h.authService.CreateUser(req.Name, req.Email, req.Password, req.Role, req.PartnerID)
	if err != nil {
		if isUserValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to create user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *userHandler) handleUpdate(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	u, err := h.authService.UpdateUser(c.Param("id"), req.Name, req.Email, req.Password, req.Role, req.PartnerID)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case isUserValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed to update user", zap.String("user_id", c.Param("id")), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		}
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *userHandler) handleDelete(c *gin.Context) {
	if err := h.authService.DeleteUser(c.Param("id")); err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.logger.Error("failed to delete user", zap.String("user_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user"})
		return
	}
	c.Status(http.StatusNoContent)
}

func isUserValidationError(err error) bool {
	return errors.Is(err, auth.ErrMissingFields) ||
		errors.Is(err, auth.ErrInvalidRole) ||
		errors.Is(err, auth.ErrEmailTaken)
}
