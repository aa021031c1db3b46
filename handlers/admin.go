package handlers

import (
	"errors"
	"net/http"

	"salonbook/services/admin"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves admin authentication.
type AdminHandler struct {
	Auth admin.AuthService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(auth admin.AuthService) *AdminHandler {
	return &AdminHandler{Auth: auth}
}

type loginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler checks admin credentials and issues a bearer token. The same
// generic message covers unknown usernames and wrong passwords.
func (h *AdminHandler) LoginHandler(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	token, err := h.Auth.Authenticate(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		zap.L().Error("admin login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
