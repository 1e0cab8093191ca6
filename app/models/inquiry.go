package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	InquiryStatusPending    = "pending"
	InquiryStatusNew        = "new"
	InquiryStatusProcessing = "processing"
	InquiryStatusCompleted  = "completed"
	InquiryStatusCancelled  = "cancelled"
)

// Inquiry is a checkout or contact submission. It lives in the orders
// table; the storefront only ever inserts rows, admins only ever move
// the status forward. Items holds a JSON snapshot of the requested
// cart at submission time, it is never reconciled with live products.
type Inquiry struct {
	ID            string              `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	CustomerName  string              `gorm:"size:255;not null" json:"customer_name"`
	CustomerEmail string              `gorm:"size:255;not null" json:"customer_email"`
	CustomerPhone string              `gorm:"size:50" json:"customer_phone"`
	ProductName   string              `gorm:"size:255" json:"product_name"`
	Message       string              `gorm:"type:text" json:"message"`
	Items         string              `gorm:"type:text" json:"items"`
	TotalAmount   decimal.NullDecimal `gorm:"type:decimal(16,2)" json:"total_amount"`
	Status        string              `gorm:"size:50;default:'pending'" json:"status"`
	UserID        *string             `gorm:"size:36;index" json:"user_id"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func (Inquiry) TableName() string {
	return "orders"
}

func (i *Inquiry) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return
}
