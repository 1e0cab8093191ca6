package repositories

import (
	"context"
	"errors"

	"github.com/Alok-CS-2022/import-export-site/app/models"
	"gorm.io/gorm"
)

type BlogRepository interface {
	Create(ctx context.Context, story *models.BlogStory) error
	GetByID(ctx context.Context, id string) (*models.BlogStory, error)
	GetAll(ctx context.Context) ([]models.BlogStory, error)
	GetActive(ctx context.Context) ([]models.BlogStory, error)
	Update(ctx context.Context, story *models.BlogStory) error
	Delete(ctx context.Context, id string) error
}

type gormBlogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &gormBlogRepository{db: db}
}

func (r *gormBlogRepository) Create(ctx context.Context, story *models.BlogStory) error {
	return r.db.WithContext(ctx).Create(story).Error
}

func (r *gormBlogRepository) GetByID(ctx context.Context, id string) (*models.BlogStory, error) {
	var story models.BlogStory
	err := r.db.WithContext(ctx).First(&story, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &story, nil
}

func (r *gormBlogRepository) GetAll(ctx context.Context) ([]models.BlogStory, error) {
	var stories []models.BlogStory
	err := r.db.WithContext(ctx).Order("display_order ASC").Find(&stories).Error
	return stories, err
}

func (r *gormBlogRepository) GetActive(ctx context.Context) ([]models.BlogStory, error) {
	var stories []models.BlogStory
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC").
		Find(&stories).Error
	return stories, err
}

func (r *gormBlogRepository) Update(ctx context.Context, story *models.BlogStory) error {
	return r.db.WithContext(ctx).Save(story).Error
}

func (r *gormBlogRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.BlogStory{}, "id = ?", id).Error
}
