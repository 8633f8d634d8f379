package models

import (
	"time"

	"gorm.io/gorm"
)

// Cart is the one-per-user bag of line items, created lazily on first access.
type Cart struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"uniqueIndex;not null"`
	Items     []CartItem     `json:"items" gorm:"foreignKey:CartID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// CartItem is one product line inside a cart. No soft delete: the compound
// unique index must stay free once an item is removed.
type CartItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CartID    uint      `json:"cart_id" gorm:"not null;uniqueIndex:idx_cart_product"`
	ProductID uint      `json:"productId" gorm:"not null;uniqueIndex:idx_cart_product"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Price     float64   `json:"price" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AddCartItemRequest body for POST /cart/:userId
type AddCartItemRequest struct {
	ProductID uint    `json:"productId" binding:"required"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}
