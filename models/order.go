package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is a user's purchase. It references exactly one Payment; the payment
// is created first and back-filled with the order id (two-phase link).
type Order struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	OrderNumber   string         `json:"order_number" gorm:"uniqueIndex;not null"`
	UserID        uint           `json:"user_id" gorm:"not null;index:idx_user_orders"`
	Items         []OrderItem    `json:"items" gorm:"foreignKey:OrderID"`
	TotalAmount   float64        `json:"totalAmount" gorm:"not null"`
	PaymentID     uint           `json:"payment_id" gorm:"not null"`
	PaymentStatus string         `json:"payment_status" gorm:"default:'pending'"`
	Status        string         `json:"status" gorm:"default:'created';index:idx_order_status"` // created, confirmed, cancelled
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// OrderItem is one purchased line referencing a catalog package.
type OrderItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"order_id" gorm:"not null;index"`
	PackageID uint    `json:"packageId"`
	Title     string  `json:"title" gorm:"not null"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	UnitPrice float64 `json:"unit_price" gorm:"not null"`
}

// OrderItemInput is one incoming line item. Clients have shipped several
// field names for the same thing over time, so every alias is accepted and
// resolved during normalization.
type OrderItemInput struct {
	PackageID uint    `json:"packageId"`
	Title     string  `json:"title"`
	Name      string  `json:"name"`       // legacy alias of title
	Quantity  int     `json:"quantity"`
	Qty       int     `json:"qty"`        // legacy alias of quantity
	UnitPrice float64 `json:"unit_price"`
	Price     float64 `json:"price"`      // legacy alias of unit_price
	Currency  string  `json:"currency"`
}

// CreateOrderRequest body for POST /orders
type CreateOrderRequest struct {
	Items       []OrderItemInput `json:"items" binding:"required"`
	UserID      uint             `json:"userId"`
	TotalAmount float64          `json:"totalAmount" binding:"required,gt=0"`
	ReturnURL   string           `json:"returnUrl"`
}

// UpdateOrderStatusRequest body for PUT /orders/:orderNumber/status
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderListResponse paginated order listing
type OrderListResponse struct {
	Orders     []Order `json:"orders"`
	Total      int64   `json:"total"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalPages int     `json:"total_pages"`
}
