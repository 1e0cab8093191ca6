package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Alok-CS-2022/import-export-site/app/models"
	"gorm.io/gorm"
)

type SiteContentRepository interface {
	Get(ctx context.Context) (*models.SiteContent, error)
	Upsert(ctx context.Context, content models.JSONMap, updatedBy string) (*models.SiteContent, error)
}

type gormSiteContentRepository struct {
	db *gorm.DB
}

func NewSiteContentRepository(db *gorm.DB) SiteContentRepository {
	return &gormSiteContentRepository{db: db}
}

// Get returns the singleton row, or (nil, nil) when no content has
// been published yet.
func (r *gormSiteContentRepository) Get(ctx context.Context) (*models.SiteContent, error) {
	var content models.SiteContent
	err := r.db.WithContext(ctx).First(&content, "id = ?", models.SiteContentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &content, nil
}

func (r *gormSiteContentRepository) Upsert(ctx context.Context, content models.JSONMap, updatedBy string) (*models.SiteContent, error) {
	existing, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		row := &models.SiteContent{
			ID:        models.SiteContentID,
			Content:   content,
			UpdatedBy: updatedBy,
		}
		if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
			return nil, err
		}
		return row, nil
	}

	existing.Content = content
	existing.UpdatedBy = updatedBy
	existing.UpdatedAt = time.Now()
	if err := r.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}
