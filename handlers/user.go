package handlers

import (
	"errors"
	"net/http"

	"bookly/middleware"
	"bookly/models"
	"bookly/services/user"
	"bookly/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes account endpoints.
type UserHandler struct {
	Service user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// Register creates a new account.
func (h *UserHandler) Register(c *gin.Context) {
	var input struct {
		Name     string          `json:"name" binding:"required"`
		Email    string          `json:"email" binding:"required,email"`
		Password string          `json:"password" binding:"required"`
		Role     models.UserRole `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.Role == "" {
		input.Role = models.RoleClient
	}

	account, err := h.Service.Register(input.Name, input.Email, input.Password, input.Role)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			utils.JSONError(c, http.StatusConflict, "email already registered", "")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, account)
}

// Authenticate verifies credentials and returns a session token.
func (h *UserHandler) Authenticate(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	account, token, err := h.Service.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid email or password", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "login failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": account, "token": token})
}

// GetByID returns a user's public record.
func (h *UserHandler) GetByID(c *gin.Context) {
	account, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "user not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch user", err.Error())
		return
	}
	c.JSON(http.StatusOK, account)
}

// RevokeToken ends the caller's session.
func (h *UserHandler) RevokeToken(c *gin.Context) {
	if err := h.Service.RevokeToken(middleware.CallerID(c)); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to revoke session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "revoked"})
}
