package repositories

import (
	"context"
	"errors"

	"github.com/Alok-CS-2022/import-export-site/app/models"
	"gorm.io/gorm"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *models.Inquiry) error
	GetByID(ctx context.Context, id string) (*models.Inquiry, error)
	GetAll(ctx context.Context) ([]models.Inquiry, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Inquiry, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type gormInquiryRepository struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &gormInquiryRepository{db: db}
}

func (r *gormInquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) error {
	return r.db.WithContext(ctx).Create(inquiry).Error
}

func (r *gormInquiryRepository) GetByID(ctx context.Context, id string) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	err := r.db.WithContext(ctx).First(&inquiry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inquiry, nil
}

func (r *gormInquiryRepository) GetAll(ctx context.Context) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&inquiries).Error
	return inquiries, err
}

func (r *gormInquiryRepository) GetByUserID(ctx context.Context, userID string) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&inquiries).Error
	return inquiries, err
}

func (r *gormInquiryRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Inquiry{}).
		Where("id = ?", id).
		Update("status", status).Error
}
