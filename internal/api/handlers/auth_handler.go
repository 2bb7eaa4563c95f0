package handlers

import (
	"net/http"

	"foodtrucks-maroc-api-server/internal/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	Verifier auth.CredentialVerifier
	JWT      *auth.JWT
	Log      *zap.Logger
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login issues an admin session token for valid credentials.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if !h.Verifier.Verify(req.Email, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Email ou mot de passe incorrect"})
		return
	}

	token, err := h.JWT.Generate(req.Email, "admin")
	if err != nil {
		h.Log.Error("failed to generate token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"token": token,
		"email": req.Email,
		"role":  "admin",
	}})
}
