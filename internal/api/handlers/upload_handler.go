package handlers

import (
	"fmt"
	"net/http"

	"foodtrucks-maroc-api-server/internal/upload"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UploadHandler struct {
	Storage upload.Storage
	Log     *zap.Logger
}

// Upload receives a listing image. Type and size are rejected before any
// write attempt.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No file provided"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	ext, ok := upload.ExtensionFor(contentType)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": fmt.Sprintf("Invalid file type: %s", contentType)})
		return
	}
	if fileHeader.Size > upload.MaxFileSize {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "File too large (max 5MB)"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.Log.Error("failed to open uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to upload file"})
		return
	}
	defer file.Close()

	fileName := fmt.Sprintf("%s.%s", uuid.New().String(), ext)
	url, err := h.Storage.Save(c.Request.Context(), fileName, contentType, file)
	if err != nil {
		h.Log.Error("failed to store uploaded file", zap.String("fileName", fileName), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to upload file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"url":          url,
		"fileName":     fileName,
		"originalName": fileHeader.Filename,
		"size":         fileHeader.Size,
		"type":         contentType,
	}})
}

// Delete removes a previously uploaded file by its generated name.
func (h *UploadHandler) Delete(c *gin.Context) {
	fileName := c.Query("fileName")
	if fileName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No file name provided"})
		return
	}

	if err := h.Storage.Delete(c.Request.Context(), fileName); err != nil {
		h.Log.Error("failed to delete uploaded file", zap.String("fileName", fileName), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete file"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
