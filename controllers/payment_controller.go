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

// PaymentController reads payment records and applies gateway status
// callbacks.
type PaymentController struct {
	db *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{db: db}
}

// UpdateStatus overwrites a payment's status by gateway preference id. The
// transition is not validated, and the caller is not authenticated; this
// mirrors how the gateway's status callback is wired today.
// POST /payments/update-status
func (pc *PaymentController) UpdateStatus(c *gin.Context) {
	var req models.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request", "details": err.Error()})
		return
	}

	var payment models.Payment
	if err := pc.db.Where("preference_id = ?", req.ID).First(&payment).Error; err != nil {
		respondError(c, services.NotFound("Payment not found"), "UpdatePaymentStatus")
		return
	}

	payment.Status = req.Status
	if err := pc.db.Save(&payment).Error; err != nil {
		utils.LogError(err, "UpdatePaymentStatus")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update payment"})
		return
	}

	// Keep the order's denormalized copy in sync
	if payment.OrderID != nil {
		if err := pc.db.Model(&models.Order{}).Where("id = ?", *payment.OrderID).
			Update("payment_status", payment.Status).Error; err != nil {
			utils.LogError(err, "UpdatePaymentStatus order sync")
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment updated", "payment": payment})
}

// Get returns one payment by numeric id or gateway preference id.
// GET /payments/:id
func (pc *PaymentController) Get(c *gin.Context) {
	id := c.Param("id")

	var payment models.Payment
	if paymentID, err := strconv.ParseUint(id, 10, 32); err == nil {
		if err := pc.db.First(&payment, paymentID).Error; err != nil {
			respondError(c, services.NotFound("Payment not found"), "GetPayment")
			return
		}
	} else {
		if err := pc.db.Where("preference_id = ?", id).First(&payment).Error; err != nil {
			respondError(c, services.NotFound("Payment not found"), "GetPayment")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": payment})
}

// List returns payments with status filter and pagination (admin).
// GET /payments?status=pending&limit=20&offset=0
func (pc *PaymentController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit > 100 {
		limit = 100
	}
	if limit < 1 {
		limit = 20
	}

	query := pc.db.Model(&models.Payment{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var payments []models.Payment
	query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&payments)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"payments": payments,
		"total":    total,
		"limit":    limit,
		"offset":   offset,
	}})
}
