package repository

import (
	"context"

	"gorm.io/gorm"

	"kacameta/internal/model"
)

// OrderRepository defines order persistence operations. Orders are written
// by the storefront checkout; the back office only reads them.
type OrderRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	Count(ctx context.Context) (int64, error)
	CountItemsForProduct(ctx context.Context, productID uint) (int64, error)
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository builds a GORM-backed repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) FindByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	if err := r.db.WithContext(ctx).Preload("Items").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).Count(&count).Error
	return count, err
}

// CountItemsForProduct reports how many order lines reference a product.
// A non-zero count blocks product deletion.
func (r *orderRepository) CountItemsForProduct(ctx context.Context, productID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.OrderItem{}).
		Where("product_id = ?", productID).Count(&count).Error
	return count, err
}
