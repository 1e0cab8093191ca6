package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// SiteContentID is the primary key of the one and only site_content
// row. The table is a singleton document, not a collection.
const SiteContentID = 1

// JSONMap stores an arbitrary JSON object in a single column.
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for JSONMap", value)
	}
	return json.Unmarshal(raw, m)
}

// SiteContent is the site-wide configuration document: hero copy,
// testimonials, SEO fields, social links, footer, slider and so on,
// keyed by region name.
type SiteContent struct {
	ID        int       `gorm:"primary_key" json:"id"`
	Content   JSONMap   `gorm:"type:json" json:"content"`
	UpdatedBy string    `gorm:"size:255" json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SiteContent) TableName() string {
	return "site_content"
}
