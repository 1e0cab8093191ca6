package seeders

import (
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	"github.com/Alok-CS-2022/import-export-site/app/db/fakers"
	"github.com/Alok-CS-2022/import-export-site/app/helpers"
	"github.com/Alok-CS-2022/import-export-site/app/models"
)

const productsPerCategory = 6

var categoryFixtures = []models.Category{
	{Name: "Singing Bowls", Slug: "singing-bowls", Description: "Hand-hammered bowls for meditation and sound healing.", DisplayOrder: 1, IsActive: true},
	{Name: "Thangka Art", Slug: "thangka-art", Description: "Traditional scroll paintings from the Himalayan region.", DisplayOrder: 2, IsActive: true},
	{Name: "Buddha Statues", Slug: "buddha-statues", Description: "Cast and carved statues in bronze, copper and wood.", DisplayOrder: 3, IsActive: true},
	{Name: "Artisan Jewelry", Slug: "artisan-jewelry", Description: "Silver and stone jewelry made by local artisans.", DisplayOrder: 4, IsActive: true},
}

// DBSeed fills an empty database with the category fixtures, faker
// products under each, a handful of blog stories and the admin account
// taken from ADMIN_EMAIL / ADMIN_PASSWORD.
func DBSeed(db *gorm.DB) error {
	for i := range categoryFixtures {
		category := categoryFixtures[i]
		if err := db.FirstOrCreate(&category, models.Category{Slug: category.Slug}).Error; err != nil {
			return fmt.Errorf("seed category %s: %w", category.Slug, err)
		}

		for j := 0; j < productsPerCategory; j++ {
			if err := db.Create(fakers.ProductFaker(&category)).Error; err != nil {
				return fmt.Errorf("seed products for %s: %w", category.Slug, err)
			}
		}
	}

	for i := 0; i < 4; i++ {
		if err := db.Create(fakers.BlogStoryFaker()).Error; err != nil {
			return fmt.Errorf("seed blog stories: %w", err)
		}
	}

	if err := seedAdminUser(db); err != nil {
		return err
	}

	log.Println("✅ Database seeding complete")
	return nil
}

func seedAdminUser(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("Warning: ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin user seed")
		return nil
	}

	hashed := helpers.HashPassword(password)
	if hashed == "" {
		return fmt.Errorf("seed admin user: failed to hash password")
	}

	admin := models.User{Email: email, Password: hashed, Role: models.RoleAdmin}
	if err := db.FirstOrCreate(&admin, models.User{Email: email}).Error; err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	log.Printf("✅ Admin user ready: %s", email)
	return nil
}
