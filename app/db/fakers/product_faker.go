package fakers

import (
	"math"
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/shopspring/decimal"

	"github.com/Alok-CS-2022/import-export-site/app/models"
)

var sampleImages = []string{
	"/images/products/singing-bowl.jpg",
	"/images/products/thangka.jpg",
	"/images/products/buddha-statue.jpg",
	"/images/products/prayer-flags.jpg",
}

// ProductFaker builds a catalog entry under the given category. Roughly
// one in five products is left without a price so the quote-on-request
// path gets exercised by seeded data too.
func ProductFaker(category *models.Category) *models.Product {
	var price decimal.NullDecimal
	if rand.Intn(5) != 0 {
		price = decimal.NewNullDecimal(decimal.NewFromFloat(fakePrice()))
	}

	return &models.Product{
		Name:         faker.Name(),
		Description:  faker.Paragraph(),
		Price:        price,
		ImageURL:     sampleImages[rand.Intn(len(sampleImages))],
		CategoryID:   &category.ID,
		DisplayOrder: rand.Intn(50),
		IsActive:     true,
		IsFeatured:   rand.Intn(4) == 0,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func fakePrice() float64 {
	return precision(rand.Float64()*math.Pow10(rand.Intn(4)+1), 2)
}

func precision(val float64, pre int) float64 {
	a := math.Pow10(pre)
	return float64(int(val*a)) / a
}
