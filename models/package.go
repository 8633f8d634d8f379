package models

import (
	"time"

	"gorm.io/gorm"
)

// Package is a sellable travel product. Identity is immutable, fields are
// editable by admins.
type Package struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null;index:idx_package_name"`
	Description string         `json:"description"`
	Destination string         `json:"destination" gorm:"index:idx_package_destination"`
	Category    string         `json:"category" gorm:"index:idx_package_category"`
	Price       float64        `json:"price" gorm:"not null"`
	ImageURL    string         `json:"image_url"`
	// No column default: gorm skips zero-value fields that carry one, so an
	// explicit false would never reach the database. The create path defaults
	// availability in code instead.
	Available   bool           `json:"available"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// PackageRequest body for create/update by admins
type PackageRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Destination string  `json:"destination" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	ImageURL    string  `json:"image_url"`
	Available   *bool   `json:"available"`
}

// PackageListResponse paginated catalog listing
type PackageListResponse struct {
	Packages   []Package `json:"packages"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"total_pages"`
}
