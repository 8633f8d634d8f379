package models

import "time"

// Favorite marks one item saved by one user. Uniqueness per (user, item) is
// enforced by the compound index, so favorites are hard-deleted.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_item"`
	ItemID    string    `json:"item_id" gorm:"type:text;not null;uniqueIndex:idx_user_item"`
	CreatedAt time.Time `json:"created_at"`
}

// AddFavoriteRequest body for POST /favorites/:userId
type AddFavoriteRequest struct {
	ItemID string `json:"itemId" binding:"required"`
}
