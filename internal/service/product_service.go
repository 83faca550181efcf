package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"kacameta/internal/cache"
	apperrors "kacameta/internal/errors"
	"kacameta/internal/model"
	"kacameta/internal/repository"
)

const (
	productListCacheTTL = 1 * time.Minute
	productListCacheKey = "products:public"
)

// ImageStore persists an uploaded image and returns its public path.
type ImageStore interface {
	SaveDataURL(data string) (string, error)
}

// ProductInput carries the fields of a product create or update. Images
// holds either base64 data URLs (persisted on save) or already-uploaded
// public paths (kept as-is).
type ProductInput struct {
	Name        string
	Description *string
	Price       decimal.Decimal
	Stock       int
	CategoryID  uint
	Badge       *string
	Status      model.ProductStatus
	Images      []string
}

// ProductService handles catalog reads and admin CRUD.
type ProductService interface {
	List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error)
	Get(ctx context.Context, id uint) (*model.Product, error)
	Create(ctx context.Context, input ProductInput) (*model.Product, error)
	Update(ctx context.Context, id uint, input ProductInput) (*model.Product, error)
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	images      ImageStore
	cache       *cache.Client
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, orderRepo repository.OrderRepository, images ImageStore, cacheClient *cache.Client) ProductService {
	return &productService{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		images:      images,
		cache:       cacheClient,
	}
}

// List returns products matching the filter. The unfiltered public listing
// is served from cache when possible.
func (s *productService) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	cacheable := filter == repository.ProductFilter{}

	if cacheable {
		if data, _ := s.cache.Get(ctx, productListCacheKey); data != nil {
			var cached []model.Product
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	products, err := s.productRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	if cacheable {
		if payload, err := json.Marshal(products); err == nil {
			_ = s.cache.Set(ctx, productListCacheKey, payload, productListCacheTTL)
		}
	}

	return products, nil
}

func (s *productService) Get(ctx context.Context, id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return product, nil
}

func (s *productService) Create(ctx context.Context, input ProductInput) (*model.Product, error) {
	slug := slugify(input.Name)

	existing, err := s.productRepo.FindBySlug(ctx, slug, 0)
	if err == nil && existing != nil {
		return nil, apperrors.ErrProductExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check product existence: %w", err)
	}

	imagePath, err := s.resolveImage(input.Images)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = model.ProductStatusAvailable
	}

	product := &model.Product{
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		CategoryID:  input.CategoryID,
		Badge:       input.Badge,
		Status:      status,
		Images:      imagePath,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.invalidateListing(ctx)
	return s.Get(ctx, product.ID)
}

func (s *productService) Update(ctx context.Context, id uint, input ProductInput) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	// Renaming regenerates the slug, which must stay unique.
	if input.Name != product.Name {
		slug := slugify(input.Name)
		duplicate, err := s.productRepo.FindBySlug(ctx, slug, id)
		if err == nil && duplicate != nil {
			return nil, apperrors.ErrProductExists
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check product existence: %w", err)
		}
		product.Name = input.Name
		product.Slug = slug
	}

	imagePath, err := s.resolveImage(input.Images)
	if err != nil {
		return nil, err
	}

	product.Description = input.Description
	product.Price = input.Price
	product.Stock = input.Stock
	product.CategoryID = input.CategoryID
	product.Badge = input.Badge
	if input.Status != "" {
		product.Status = input.Status
	}
	product.Images = imagePath

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.invalidateListing(ctx)
	return s.Get(ctx, product.ID)
}

// Delete removes a product unless it appears on an order; ordered products
// should be discontinued instead so history keeps resolving.
func (s *productService) Delete(ctx context.Context, id uint) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProductNotFound
		}
		return fmt.Errorf("find product: %w", err)
	}

	ordered, err := s.orderRepo.CountItemsForProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("count order items: %w", err)
	}
	if ordered > 0 {
		return apperrors.ErrProductHasOrders
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	s.invalidateListing(ctx)
	return nil
}

// resolveImage persists a fresh data-URL upload or passes through an
// existing public path. Only the first image is kept.
func (s *productService) resolveImage(images []string) (*string, error) {
	if len(images) == 0 || images[0] == "" {
		return nil, nil
	}

	image := images[0]
	if strings.HasPrefix(image, "data:") {
		path, err := s.images.SaveDataURL(image)
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		return &path, nil
	}
	return &image, nil
}

func (s *productService) invalidateListing(ctx context.Context) {
	_ = s.cache.Delete(ctx, productListCacheKey)
}
