package migrations

import (
	"github.com/Alok-CS-2022/import-export-site/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Category{}, &models.Product{}, &models.Inquiry{}, &models.BlogStory{}, &models.SiteContent{})
}
