package services

import "github.com/Alok-CS-2022/import-export-site/app/models"

// DefaultContent is the built-in copy shown when neither the store nor
// the cache has a published document. Every region the frontend knows
// about has a value here.
func DefaultContent() models.JSONMap {
	return models.JSONMap{
		"hero": map[string]interface{}{
			"title":      "Authentic Himalayan Craftsmanship",
			"subtitle":   "Hand-picked singing bowls, thangkas, statues and jewelry, sourced directly from Nepali artisans.",
			"buttonText": "Explore the Collection",
			"buttonLink": "/catalog.html",
		},
		"whyChooseUs": map[string]interface{}{
			"title": "Why Choose Us",
			"items": []interface{}{
				map[string]interface{}{"title": "Direct from Artisans", "description": "Every purchase supports craftspeople in Kathmandu valley."},
				map[string]interface{}{"title": "Authenticity Guaranteed", "description": "Each piece is verified and documented before it ships."},
				map[string]interface{}{"title": "Worldwide Shipping", "description": "Careful packaging and tracked delivery to your door."},
			},
		},
		"stats": map[string]interface{}{
			"artisans":  120,
			"products":  450,
			"countries": 32,
			"years":     15,
		},
		"seo": map[string]interface{}{
			"metaTitle":       "Import From Nepal | Himalayan Handicrafts",
			"metaDescription": "Authentic Nepali singing bowls, thangka paintings, statues and artisan jewelry, shipped worldwide.",
			"keywords":        "nepal, handicraft, singing bowl, thangka, buddha statue, jewelry",
		},
		"testimonials": []interface{}{
			map[string]interface{}{
				"name":    "Sarah M.",
				"role":    "Collector",
				"content": "The singing bowl arrived beautifully packaged and sounds incredible.",
				"rating":  5,
			},
		},
		"blogStories": []interface{}{},
		"social": map[string]interface{}{
			"facebook":  "",
			"twitter":   "",
			"instagram": "",
			"linkedin":  "",
		},
		"footer": map[string]interface{}{
			"about":     "We bring authentic Himalayan craftsmanship to homes around the world.",
			"copyright": "© Import From Nepal. All rights reserved.",
		},
		"branding": map[string]interface{}{
			"logoUrl": "",
		},
		"himalayanSlider": []interface{}{},
		"categories":      []interface{}{},
	}
}
