package repositories

import (
	"context"
	"strings"

	"github.com/Alok-CS-2022/import-export-site/app/models"
	"gorm.io/gorm"
)

// ProductFilter narrows the public catalog listing. Zero values mean
// "no filter". Sort accepts price_asc, price_desc, name or newest.
type ProductFilter struct {
	Category string
	Keyword  string
	Sort     string
}

type ProductRepositoryImpl interface {
	GetActive(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetFeatured(ctx context.Context, limit int) ([]models.Product, error)
	GetNewest(ctx context.Context, limit int) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) GetActive(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	var products []models.Product

	query := p.db.WithContext(ctx).Model(&models.Product{}).Where("is_active = ?", true)

	if filter.Category != "" {
		query = query.Where("category_id = ? OR category_id IN (SELECT id FROM categories WHERE slug = ?)", filter.Category, filter.Category)
	}

	if filter.Keyword != "" {
		keyword := "%" + strings.ToLower(filter.Keyword) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", keyword, keyword)
	}

	switch filter.Sort {
	case "price_asc":
		query = query.Order("price IS NULL, price ASC")
	case "price_desc":
		query = query.Order("price IS NULL, price DESC")
	case "name":
		query = query.Order("name ASC")
	default:
		query = query.Order("created_at DESC")
	}

	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (p *productRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := p.db.WithContext(ctx).Model(&models.Product{}).Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) GetFeatured(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Where("is_featured = ? AND is_active = ?", true, true).
		Order("display_order ASC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (p *productRepository) GetNewest(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Create(product).Error
}

func (p *productRepository) Update(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Save(product).Error
}

func (p *productRepository) Delete(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
}
