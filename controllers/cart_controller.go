package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/FT-Key/Ravello-web-sub001/models"
	"github.com/FT-Key/Ravello-web-sub001/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartController manages the one-per-user cart. Carts are created lazily on
// first access; item adds are atomic upserts so concurrent increments are
// never lost.
type CartController struct {
	db *gorm.DB
}

func NewCartController(db *gorm.DB) *CartController {
	return &CartController{db: db}
}

// cartUserID resolves the :userId path param and checks the caller owns the
// cart (admins may touch any cart).
func cartUserID(c *gin.Context) (uint, bool) {
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

// getOrCreateCart loads the user's cart with items, creating an empty one
// on first access.
func (cc *CartController) getOrCreateCart(userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := cc.db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	cart = models.Cart{UserID: userID}
	if err := cc.db.Create(&cart).Error; err != nil {
		// Lost a create race: another request made the cart first
		if loadErr := cc.db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; loadErr == nil {
			return &cart, nil
		}
		return nil, err
	}
	return &cart, nil
}

// Get returns the cart, creating it if needed.
// GET /cart/:userId
func (cc *CartController) Get(c *gin.Context) {
	userID, ok := cartUserID(c)
	if !ok {
		return
	}

	cart, err := cc.getOrCreateCart(userID)
	if err != nil {
		utils.LogError(err, "GetCart")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": cart})
}

// AddItem upserts one line item: quantity is incremented in the database
// when the product is already in the cart.
// POST /cart/:userId
func (cc *CartController) AddItem(c *gin.Context) {
	userID, ok := cartUserID(c)
	if !ok {
		return
	}

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request", "details": err.Error()})
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	cart, err := cc.getOrCreateCart(userID)
	if err != nil {
		utils.LogError(err, "AddCartItem cart")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load cart"})
		return
	}

	item := models.CartItem{
		CartID:    cart.ID,
		ProductID: req.ProductID,
		Name:      req.Name,
		Quantity:  req.Quantity,
		Price:     req.Price,
	}
	err = cc.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + ?", req.Quantity),
			"name":       req.Name,
			"price":      req.Price,
			"updated_at": time.Now(),
		}),
	}).Create(&item).Error
	if err != nil {
		utils.LogError(err, "AddCartItem upsert")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to add item"})
		return
	}

	cart, err = cc.getOrCreateCart(userID)
	if err != nil {
		utils.LogError(err, "AddCartItem reload")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": cart})
}

// RemoveItem deletes one product line. Removing an absent product leaves
// the cart unchanged and still succeeds.
// DELETE /cart/:userId/:productId
func (cc *CartController) RemoveItem(c *gin.Context) {
	userID, ok := cartUserID(c)
	if !ok {
		return
	}

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil || productID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid productId"})
		return
	}

	cart, err := cc.getOrCreateCart(userID)
	if err != nil {
		utils.LogError(err, "RemoveCartItem cart")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load cart"})
		return
	}

	if err := cc.db.Where("cart_id = ? AND product_id = ?", cart.ID, productID).Delete(&models.CartItem{}).Error; err != nil {
		utils.LogError(err, "RemoveCartItem delete")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to remove item"})
		return
	}

	cart, err = cc.getOrCreateCart(userID)
	if err != nil {
		utils.LogError(err, "RemoveCartItem reload")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": cart})
}

// Clear removes every item from the cart.
// DELETE /cart/:userId
func (cc *CartController) Clear(c *gin.Context) {
	userID, ok := cartUserID(c)
	if !ok {
		return
	}

	cart, err := cc.getOrCreateCart(userID)
	if err != nil {
		utils.LogError(err, "ClearCart cart")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load cart"})
		return
	}

	if err := cc.db.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		utils.LogError(err, "ClearCart delete")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to clear cart"})
		return
	}

	cart.Items = nil
	c.JSON(http.StatusOK, gin.H{"success": true, "data": cart})
}
