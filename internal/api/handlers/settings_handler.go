package handlers

import (
	"net/http"

	"foodtrucks-maroc-api-server/internal/models"
	"foodtrucks-maroc-api-server/internal/storage"
	"foodtrucks-maroc-api-server/internal/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SettingsHandler struct {
	Store storage.SettingsStore
	Log   *zap.Logger
}

// GetSettings returns the site settings, falling back to defaults when
// nothing was ever saved.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.Store.Get(c.Request.Context())
	if err != nil {
		h.Log.Error("failed to fetch settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": settings})
}

// UpdateSettings validates and writes through the full settings document.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var settings models.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	fieldErrs := validation.Form(map[string]string{
		"siteName":     settings.SiteName,
		"contactEmail": settings.ContactEmail,
		"contactPhone": settings.ContactPhone,
		"address":      settings.Address,
		"description":  settings.SiteDescription,
	}, validation.SettingsFormRules)
	if !fieldErrs.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": fieldErrs.First(), "errors": fieldErrs})
		return
	}

	if err := h.Store.Save(c.Request.Context(), settings); err != nil {
		h.Log.Error("failed to save settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": settings})
}
