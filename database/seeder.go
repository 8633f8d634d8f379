package database

import (
	"log"
	"os"

	"github.com/FT-Key/Ravello-web-sub001/models"
	"github.com/FT-Key/Ravello-web-sub001/utils"

	"gorm.io/gorm"
)

// SeedAdmin creates the initial admin account when no admin exists yet.
// Credentials come from ADMIN_EMAIL / ADMIN_PASSWORD.
func SeedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	return db.Create(&models.User{
		Name:     "Administrator",
		Email:    email,
		Password: hash,
		Role:     "admin",
	}).Error
}

// SeedPackages inserts a starter catalog on an empty database.
func SeedPackages(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Package{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	packages := []models.Package{
		{Name: "Bariloche Classic", Description: "7 nights, lakes and mountains", Destination: "Bariloche", Category: "mountain", Price: 350000, Available: true},
		{Name: "Iguazu Falls Escape", Description: "4 nights, both sides of the falls", Destination: "Iguazu", Category: "nature", Price: 280000, Available: true},
		{Name: "Mendoza Wine Route", Description: "5 nights with winery tours", Destination: "Mendoza", Category: "gastronomy", Price: 310000, Available: true},
	}
	return db.Create(&packages).Error
}
