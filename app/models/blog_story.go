package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogStory struct {
	ID           string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	ImageURL     string    `gorm:"size:500;not null" json:"image_url"`
	Category     string    `gorm:"size:100" json:"category"`
	IsFeatured   bool      `gorm:"default:false" json:"is_featured"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (b *BlogStory) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return
}
