package repository

import (
	"context"

	"gorm.io/gorm"

	"kacameta/internal/model"
)

// ProductFilter narrows product listings. Zero values mean "no filter".
type ProductFilter struct {
	CategorySlug        string
	Search              string
	Slug                string
	Status              model.ProductStatus
	IncludeDiscontinued bool
}

// ProductRepository defines product persistence operations.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	FindBySlug(ctx context.Context, slug string, excludeID uint) (*model.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]model.Product, error)
	Count(ctx context.Context) (int64, error)
	SumStock(ctx context.Context) (int64, error)
	CountLowStock(ctx context.Context, threshold int) (int64, error)
	CountByStatus(ctx context.Context, status model.ProductStatus) (int64, error)
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository builds a GORM-backed repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, id).Error
}

func (r *productRepository) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).Preload("Category").First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindBySlug looks up a product by slug, optionally skipping excludeID so an
// update does not collide with its own record.
func (r *productRepository) FindBySlug(ctx context.Context, slug string, excludeID uint) (*model.Product, error) {
	var product model.Product
	q := r.db.WithContext(ctx).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context, filter ProductFilter) ([]model.Product, error) {
	q := r.db.WithContext(ctx).Model(&model.Product{}).Preload("Category")

	if filter.CategorySlug != "" && filter.CategorySlug != "all" {
		q = q.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("products.name LIKE ? OR products.description LIKE ?", like, like)
	}
	if filter.Slug != "" {
		q = q.Where("products.slug = ?", filter.Slug)
	}
	if filter.Status != "" {
		q = q.Where("products.status = ?", filter.Status)
	} else if !filter.IncludeDiscontinued {
		// The public catalog never shows discontinued products.
		q = q.Where("products.status <> ?", model.ProductStatusDiscontinued)
	}

	var products []model.Product
	if err := q.Order("products.created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&count).Error
	return count, err
}

func (r *productRepository) SumStock(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Select("COALESCE(SUM(stock), 0)").Scan(&total).Error
	return total, err
}

func (r *productRepository) CountLowStock(ctx context.Context, threshold int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("stock > 0 AND stock < ?", threshold).Count(&count).Error
	return count, err
}

func (r *productRepository) CountByStatus(ctx context.Context, status model.ProductStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *productRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}
