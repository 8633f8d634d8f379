package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/FT-Key/Ravello-web-sub001/models"
	"github.com/FT-Key/Ravello-web-sub001/services"
	"github.com/FT-Key/Ravello-web-sub001/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// FavoriteController manages saved items. Uniqueness per (user, item) is
// backed by a compound index; the pre-check only gives a friendlier answer
// for the common case.
type FavoriteController struct {
	db *gorm.DB
}

func NewFavoriteController(db *gorm.DB) *FavoriteController {
	return &FavoriteController{db: db}
}

func favoriteUserID(c *gin.Context) (uint, bool) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid userId"})
		return 0, false
	}
	caller := c.GetInt("user_id")
	if caller != userID && c.GetString("role") != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Insufficient permissions"})
		return 0, false
	}
	return uint(userID), true
}

// Add saves one item. A duplicate (user, item) pair answers with a conflict
// and never creates a second record.
// POST /favorites/:userId
func (fc *FavoriteController) Add(c *gin.Context) {
	userID, ok := favoriteUserID(c)
	if !ok {
		return
	}

	var req models.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}
	itemID := strings.TrimSpace(req.ItemID)
	if itemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "itemId is required"})
		return
	}

	var existing models.Favorite
	if err := fc.db.Where("user_id = ? AND item_id = ?", userID, itemID).First(&existing).Error; err == nil {
		respondError(c, services.Conflict("Already in favorites"), "AddFavorite")
		return
	}

	fav := models.Favorite{UserID: userID, ItemID: itemID}
	if err := fc.db.Create(&fav).Error; err != nil {
		// Two concurrent adds can both pass the pre-check; the index decides
		if strings.Contains(err.Error(), "unique constraint") ||
			strings.Contains(err.Error(), "UNIQUE constraint failed") ||
			strings.Contains(err.Error(), "23505") {
			respondError(c, services.Conflict("Already in favorites"), "AddFavorite")
			return
		}
		utils.LogError(err, "AddFavorite")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to add favorite"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": fav})
}

// List returns the user's favorites, newest first.
// GET /favorites/:userId
func (fc *FavoriteController) List(c *gin.Context) {
	userID, ok := favoriteUserID(c)
	if !ok {
		return
	}

	var favorites []models.Favorite
	if err := fc.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&favorites).Error; err != nil {
		utils.LogError(err, "ListFavorites")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to list favorites"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": favorites})
}

// Remove deletes one favorite, reporting not-found when it was never saved.
// DELETE /favorites/:userId/:itemId
func (fc *FavoriteController) Remove(c *gin.Context) {
	userID, ok := favoriteUserID(c)
	if !ok {
		return
	}

	itemID := strings.TrimSpace(c.Param("itemId"))
	if itemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "itemId is required"})
		return
	}

	var fav models.Favorite
	if err := fc.db.Where("user_id = ? AND item_id = ?", userID, itemID).First(&fav).Error; err != nil {
		respondError(c, services.NotFound("Favorite not found"), "RemoveFavorite")
		return
	}

	if err := fc.db.Delete(&fav).Error; err != nil {
		utils.LogError(err, "RemoveFavorite")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to remove favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"id": fav.ID}})
}
