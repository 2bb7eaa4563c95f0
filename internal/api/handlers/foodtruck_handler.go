package handlers

import (
	"errors"
	"net/http"

	"foodtrucks-maroc-api-server/internal/models"
	"foodtrucks-maroc-api-server/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FoodTruckHandler struct {
	Store storage.FoodTruckStore
	Log   *zap.Logger
}

type CreateFoodTruckRequest struct {
	Name             string                 `json:"name"`
	Description      string                 `json:"description"`
	ShortDescription string                 `json:"shortDescription"`
	Category         models.Category        `json:"category"`
	Images           []string               `json:"images"`
	Specifications   *models.Specifications `json:"specifications"`
	Featured         bool                   `json:"featured"`
}

// GetAllFoodTrucks lists every listing. Reads degrade to an empty list when
// both backends are down, so this never blocks the storefront.
func (h *FoodTruckHandler) GetAllFoodTrucks(c *gin.Context) {
	trucks, err := h.Store.GetAll(c.Request.Context())
	if err != nil {
		h.Log.Error("failed to fetch food trucks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch food trucks"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": trucks})
}

// GetFoodTruckByID fetches one listing; 404 with a French message when the
// id does not exist.
func (h *FoodTruckHandler) GetFoodTruckByID(c *gin.Context) {
	truck, err := h.Store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Food truck introuvable"})
			return
		}
		h.Log.Error("failed to fetch food truck", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch food truck"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": truck})
}

// CreateFoodTruck creates a listing from the admin form.
func (h *FoodTruckHandler) CreateFoodTruck(c *gin.Context) {
	var req CreateFoodTruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	for field, value := range map[string]string{
		"name":        req.Name,
		"description": req.Description,
		"category":    string(req.Category),
	} {
		if value == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing required field: " + field})
			return
		}
	}
	if !models.ValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid category: " + string(req.Category)})
		return
	}

	truck := models.FoodTruck{
		Name:             req.Name,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Category:         req.Category,
		Images:           req.Images,
		Featured:         req.Featured,
	}
	if truck.ShortDescription == "" {
		truck.ShortDescription = req.Description
	}
	if truck.Images == nil {
		truck.Images = []string{}
	}
	if req.Specifications != nil {
		truck.Specifications = *req.Specifications
	}
	if truck.Specifications.Equipment == nil {
		truck.Specifications.Equipment = []string{}
	}
	if truck.Specifications.Features == nil {
		truck.Specifications.Features = []string{}
	}

	created, err := h.Store.Create(c.Request.Context(), truck)
	if err != nil {
		h.Log.Error("failed to create food truck", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create food truck"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": created})
}

// UpdateFoodTruck applies a partial update to a listing.
func (h *FoodTruckHandler) UpdateFoodTruck(c *gin.Context) {
	var updates models.FoodTruckUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	// An explicit empty value may not blank out a required field.
	if (updates.Name != nil && *updates.Name == "") ||
		(updates.Description != nil && *updates.Description == "") ||
		(updates.Category != nil && *updates.Category == "") {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "name, description and category must not be empty"})
		return
	}
	if updates.Category != nil && !models.ValidCategory(*updates.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid category: " + string(*updates.Category)})
		return
	}

	truck, err := h.Store.Update(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Food truck introuvable"})
			return
		}
		h.Log.Error("failed to update food truck", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update food truck"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": truck})
}

// DeleteFoodTruck removes a listing.
func (h *FoodTruckHandler) DeleteFoodTruck(c *gin.Context) {
	err := h.Store.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Food truck introuvable"})
			return
		}
		h.Log.Error("failed to delete food truck", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete food truck"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
