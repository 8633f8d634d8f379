package models

import (
	"time"

	"gorm.io/gorm"
)

// Quote is a prospect's trip request submitted from the storefront.
type Quote struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Email       string         `json:"email" gorm:"not null"`
	Destination string         `json:"destination" gorm:"not null"`
	StartDate   string         `json:"start_date"`
	EndDate     string         `json:"end_date"`
	Message     string         `json:"message"`
	Status      string         `json:"status" gorm:"default:'pending';index:idx_quote_status"` // pending, responded
	Response    string         `json:"response"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// QuoteRequest body for POST /quotes
type QuoteRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Destination string `json:"destination" binding:"required"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Message     string `json:"message"`
}

// UpdateQuoteStatusRequest body for PUT /quotes/:id/status
type UpdateQuoteStatusRequest struct {
	Status   string `json:"status" binding:"required"` // pending, responded
	Response string `json:"response"`
}
