package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/FT-Key/Ravello-web-sub001/config"
	"github.com/FT-Key/Ravello-web-sub001/models"
	"github.com/FT-Key/Ravello-web-sub001/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// QuoteController handles trip-request quotes from prospects.
type QuoteController struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewQuoteController(db *gorm.DB, cfg *config.Config) *QuoteController {
	return &QuoteController{db: db, cfg: cfg}
}

// Create stores a quote request from the storefront (no auth).
// POST /quotes
func (qc *QuoteController) Create(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request", "details": err.Error()})
		return
	}

	quote := models.Quote{
		Name:        req.Name,
		Email:       req.Email,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Message:     req.Message,
		Status:      "pending",
	}
	if err := qc.db.Create(&quote).Error; err != nil {
		utils.LogError(err, "CreateQuote")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create quote"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": quote})
}

// List returns quotes for the back office, optionally filtered by status.
// GET /quotes?status=pending&page=1&limit=20
func (qc *QuoteController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := qc.db.Model(&models.Quote{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var quotes []models.Quote
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&quotes).Error; err != nil {
		utils.LogError(err, "ListQuotes")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to list quotes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"quotes": quotes,
		"total":  total,
		"page":   page,
		"limit":  limit,
	}})
}

// UpdateStatus moves a quote between pending and responded. When a response
// text is attached, the prospect is notified by email (best effort).
// PUT /quotes/:id/status
func (qc *QuoteController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid id"})
		return
	}

	var req models.UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}
	if req.Status != "pending" && req.Status != "responded" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "status must be pending or responded"})
		return
	}

	var quote models.Quote
	if err := qc.db.First(&quote, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Quote not found"})
		return
	}

	quote.Status = req.Status
	if req.Response != "" {
		quote.Response = req.Response
	}
	if err := qc.db.Save(&quote).Error; err != nil {
		utils.LogError(err, "UpdateQuoteStatus")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update quote"})
		return
	}

	if req.Status == "responded" && req.Response != "" && qc.cfg.SMTPHost != "" {
		subject := fmt.Sprintf("Ravello: your quote for %s", quote.Destination)
		if err := utils.SendEmail(quote.Email, subject, req.Response,
			qc.cfg.SMTPHost, qc.cfg.SMTPPort, qc.cfg.SMTPUser, qc.cfg.SMTPPass); err != nil {
			utils.LogError(err, "QuoteResponseEmail")
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": quote})
}
