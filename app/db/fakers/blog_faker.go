package fakers

import (
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"

	"github.com/Alok-CS-2022/import-export-site/app/models"
)

var blogCategories = []string{"Culture", "Craftsmanship", "Travel", "Behind the Scenes"}

func BlogStoryFaker() *models.BlogStory {
	return &models.BlogStory{
		Title:        faker.Sentence(),
		Description:  faker.Paragraph(),
		ImageURL:     sampleImages[rand.Intn(len(sampleImages))],
		Category:     blogCategories[rand.Intn(len(blogCategories))],
		IsFeatured:   rand.Intn(3) == 0,
		DisplayOrder: rand.Intn(20),
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}
