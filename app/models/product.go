package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is the catalog item shoppers browse. Price is nullable: a
// product without a price is quoted individually ("custom pricing").
type Product struct {
	ID           string              `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name         string              `gorm:"size:255;not null" json:"name"`
	Description  string              `gorm:"type:text" json:"description"`
	Price        decimal.NullDecimal `gorm:"type:decimal(16,2)" json:"price"`
	ImageURL     string              `gorm:"size:500" json:"image_url"`
	CategoryID   *string             `gorm:"size:36;index" json:"category_id"`
	Category     *Category           `gorm:"foreignKey:CategoryID" json:"-"`
	DisplayOrder int                 `gorm:"default:0" json:"display_order"`
	IsActive     bool                `gorm:"default:true" json:"is_active"`
	IsFeatured   bool                `gorm:"default:false" json:"is_featured"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}
