package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment tracks one checkout preference created with the payment gateway.
// It is persisted "bare" before its Order exists; OrderID is back-filled in
// the same orchestration call.
type Payment struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	PreferenceID string         `json:"preference_id" gorm:"uniqueIndex;not null"` // gateway-issued id
	Amount       float64        `json:"amount" gorm:"not null"`
	Status       string         `json:"status" gorm:"default:'pending'"` // pending, approved, failed, cancelled, refunded
	Method       string         `json:"method"`
	OrderID      *uint          `json:"order" gorm:"index"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// UpdatePaymentStatusRequest body for POST /payments/update-status.
// Status transitions are driven by the caller; nothing is validated here.
type UpdatePaymentStatusRequest struct {
	ID     string `json:"id" binding:"required"`     // gateway preference id
	Status string `json:"status" binding:"required"` // new status, taken as-is
}
