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

type MessageHandler struct {
	Store  storage.MessageStore
	Intake *intake.Workflow
	Log    *zap.Logger
}

// GetAllMessages lists every contact message for the back-office.
func (h *MessageHandler) GetAllMessages(c *gin.Context) {
	list, err := h.Store.GetAll(c.Request.Context())
	if err != nil {
		h.Log.Error("failed to fetch messages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch messages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

// GetMessageByID is the admin detail view. Opening an unread message marks
// it read; the ratchet never regresses.
func (h *MessageHandler) GetMessageByID(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	msg, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Message introuvable"})
			return
		}
		h.Log.Error("failed to fetch message", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch message"})
		return
	}

	if msg.Status == models.MessageUnread {
		updated, err := h.Store.UpdateStatus(ctx, id, models.MessageRead)
		if err != nil {
			// The detail view still renders; the ratchet will catch up
			// on the next open.
			h.Log.Warn("failed to mark message as read", zap.String("id", id), zap.Error(err))
		} else {
			msg = updated
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": msg})
}

// CreateMessage is the public contact intake.
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var form intake.ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	msg, fieldErrs, err := h.Intake.SubmitContact(c.Request.Context(), form)
	if !fieldErrs.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": fieldErrs.First(), "errors": fieldErrs})
		return
	}
	if err != nil {
		h.Log.Error("failed to create message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": errRetry})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": msg})
}

type UpdateMessageStatusRequest struct {
	Status models.MessageStatus `json:"status" binding:"required"`
}

// UpdateMessageStatus advances a message through the triage ratchet.
// Re-applying the current status is an idempotent no-op.
func (h *MessageHandler) UpdateMessageStatus(c *gin.Context) {
	var req UpdateMessageStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")

	current, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Message introuvable"})
			return
		}
		h.Log.Error("failed to fetch message", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update message"})
		return
	}
	if err := status.CheckMessage(current.Status, req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	msg, err := h.Store.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Message introuvable"})
			return
		}
		h.Log.Error("failed to update message", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": msg})
}
