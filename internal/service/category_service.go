package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "kacameta/internal/errors"
	"kacameta/internal/model"
	"kacameta/internal/repository"
)

// CategoryWithCount pairs a category with its product count for listings.
type CategoryWithCount struct {
	model.Category
	ProductCount int64 `json:"product_count"`
}

// CategoryService handles category reads and admin CRUD.
type CategoryService interface {
	List(ctx context.Context) ([]CategoryWithCount, error)
	Create(ctx context.Context, name string, description *string) (*model.Category, error)
	Update(ctx context.Context, id uint, name string, description *string) (*model.Category, error)
	Delete(ctx context.Context, id uint) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

func (s *categoryService) List(ctx context.Context) ([]CategoryWithCount, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	counts, err := s.categoryRepo.ProductCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	result := make([]CategoryWithCount, 0, len(categories))
	for _, category := range categories {
		result = append(result, CategoryWithCount{
			Category:     category,
			ProductCount: counts[category.ID],
		})
	}
	return result, nil
}

func (s *categoryService) Create(ctx context.Context, name string, description *string) (*model.Category, error) {
	slug := slugify(name)

	existing, err := s.categoryRepo.FindByNameOrSlug(ctx, name, slug, 0)
	if err == nil && existing != nil {
		return nil, apperrors.ErrCategoryExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check category existence: %w", err)
	}

	category := &model.Category{
		Name:        name,
		Slug:        slug,
		Description: description,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id uint, name string, description *string) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}

	slug := slugify(name)
	duplicate, err := s.categoryRepo.FindByNameOrSlug(ctx, name, slug, id)
	if err == nil && duplicate != nil {
		return nil, apperrors.ErrCategoryExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check category existence: %w", err)
	}

	category.Name = name
	category.Slug = slug
	category.Description = description

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

// Delete removes a category only when no products reference it.
func (s *categoryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return fmt.Errorf("find category: %w", err)
	}

	products, err := s.productRepo.CountByCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if products > 0 {
		return apperrors.ErrCategoryHasProducts
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
