package database

import (
	"github.com/FT-Key/Ravello-web-sub001/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Package{},
		&models.Cart{},
		&models.CartItem{},
		&models.Favorite{},
		&models.Payment{},
		&models.Order{},
		&models.OrderItem{},
		&models.Quote{},
	)
}
