package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductStatus represents the availability of a product.
type ProductStatus string

const (
	ProductStatusAvailable    ProductStatus = "AVAILABLE"
	ProductStatusOutOfStock   ProductStatus = "OUT_OF_STOCK"
	ProductStatusDiscontinued ProductStatus = "DISCONTINUED"
)

// Product is a catalog item. Slug is derived from the name and unique, the
// public catalog addresses products by slug rather than id.
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"size:255;not null;index"`
	Slug        string          `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Description *string         `json:"description,omitempty" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Stock       int             `json:"stock" gorm:"not null;default:0"`
	Badge       *string         `json:"badge,omitempty" gorm:"size:50"`
	Status      ProductStatus   `json:"status" gorm:"type:varchar(20);not null;default:'AVAILABLE';index"`
	Images      *string         `json:"images,omitempty" gorm:"size:500"`
	CategoryID  uint            `json:"category_id" gorm:"not null;index"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relations
	Category   Category    `json:"category" gorm:"foreignKey:CategoryID"`
	OrderItems []OrderItem `json:"-" gorm:"foreignKey:ProductID"`
}
