package handlers

import (
	"errors"
	"net/http"

	"foodtrucks-maroc-api-server/internal/intake"
	"foodtrucks-maroc-api-server/internal/models"
	"foodtrucks-maroc-api-server/internal/status"
	"foodtrucks-maroc-api-server/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// errRetry is the only failure message the public ever sees on a write.
const errRetry = "Une erreur est survenue. Veuillez réessayer ou nous contacter directement."

type DevisHandler struct {
	Store  storage.DevisStore
	Intake *intake.Workflow
	Log    *zap.Logger
}

// GetAllDevis lists every quote request for the back-office.
func (h *DevisHandler) GetAllDevis(c *gin.Context) {
	list, err := h.Store.GetAll(c.Request.Context())
	if err != nil {
		h.Log.Error("failed to fetch devis", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch devis"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

// CreateDevis is the public quote intake: validate, persist in "pending",
// notify best-effort.
func (h *DevisHandler) CreateDevis(c *gin.Context) {
	var form intake.QuoteForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	devis, fieldErrs, err := h.Intake.SubmitQuote(c.Request.Context(), form)
	if !fieldErrs.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": fieldErrs.First(), "errors": fieldErrs})
		return
	}
	if err != nil {
		h.Log.Error("failed to create devis", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": errRetry})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": devis})
}

// UpdateDevis applies admin triage: status and/or the quote fields. Status
// changes go through the transition table.
func (h *DevisHandler) UpdateDevis(c *gin.Context) {
	var updates models.DevisUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")

	if updates.Status != nil {
		current, err := h.Store.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Devis introuvable"})
				return
			}
			h.Log.Error("failed to fetch devis", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update devis"})
			return
		}
		if err := status.CheckDevis(current.Status, *updates.Status); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
	}

	devis, err := h.Store.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Devis introuvable"})
			return
		}
		h.Log.Error("failed to update devis", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update devis"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": devis})
}
