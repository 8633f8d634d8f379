package controllers

import (
	"net/http"
	"strconv"

	"github.com/FT-Key/Ravello-web-sub001/models"
	"github.com/FT-Key/Ravello-web-sub001/services"
	"github.com/FT-Key/Ravello-web-sub001/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OrderController exposes checkout and order lookups. The orchestration
// itself lives in services.OrderService.
type OrderController struct {
	db     *gorm.DB
	orders *services.OrderService
}

func NewOrderController(db *gorm.DB, orders *services.OrderService) *OrderController {
	return &OrderController{db: db, orders: orders}
}

// Create runs the checkout flow and returns the gateway redirect URL next
// to the persisted order and payment.
// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request", "details": err.Error()})
		return
	}

	// The token decides who is buying; the body's userId is legacy input
	if caller := c.GetInt("user_id"); caller > 0 {
		req.UserID = uint(caller)
	}

	result, err := oc.orders.CreateOrder(&req)
	if err != nil {
		respondError(c, err, "CreateOrder")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Order created",
		"init_point": result.InitPoint,
		"order":      result.Order,
		"payment":    result.Payment,
	})
}

// ListMine returns the caller's orders with pagination.
// GET /orders/my?page=1&limit=20
func (oc *OrderController) ListMine(c *gin.Context) {
	userID := c.GetInt("user_id")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := oc.db.Model(&models.Order{}).Where("user_id = ?", userID)

	var total int64
	query.Count(&total)

	var orders []models.Order
	if err := query.Preload("Items").Order("created_at DESC").Offset(offset).Limit(limit).Find(&orders).Error; err != nil {
		utils.LogError(err, "ListOrders")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to list orders"})
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	c.JSON(http.StatusOK, gin.H{"success": true, "data": models.OrderListResponse{
		Orders:     orders,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}})
}

// Get returns one order by its public number. Owners and admins only.
// GET /orders/:orderNumber
func (oc *OrderController) Get(c *gin.Context) {
	orderNumber := c.Param("orderNumber")

	var order models.Order
	if err := oc.db.Preload("Items").Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
		respondError(c, services.NotFound("Order not found"), "GetOrder")
		return
	}

	if uint(c.GetInt("user_id")) != order.UserID && c.GetString("role") != "admin" {
		respondError(c, services.Forbidden("Insufficient permissions"), "GetOrder")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
}

// UpdateStatus moves an order through its lifecycle (admin).
// PUT /orders/:orderNumber/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	orderNumber := c.Param("orderNumber")

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}
	if req.Status != "created" && req.Status != "confirmed" && req.Status != "cancelled" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "status must be created, confirmed or cancelled"})
		return
	}

	var order models.Order
	if err := oc.db.Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
		return
	}

	order.Status = req.Status
	if err := oc.db.Save(&order).Error; err != nil {
		utils.LogError(err, "UpdateOrderStatus")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
}
