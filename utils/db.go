package utils

import "gorm.io/gorm"

var db *gorm.DB

// SetDB stores the shared gorm handle. Tests swap in a sqlite database here.
func SetDB(database *gorm.DB) {
	db = database
}

func GetDB() *gorm.DB {
	return db
}
