package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "kacameta/internal/errors"
	"kacameta/internal/model"
)

func TestCategoryService_ListMergesProductCounts(t *testing.T) {
	mockCategories := new(MockCategoryRepository)
	mockProducts := new(MockProductRepository)

	mockCategories.On("List", mock.Anything).Return([]model.Category{
		{ID: 1, Name: "Anti Radiasi", Slug: "anti-radiasi"},
		{ID: 2, Name: "Pria", Slug: "pria"},
	}, nil)
	mockCategories.On("ProductCounts", mock.Anything).
		Return(map[uint]int64{2: 4}, nil)

	svc := NewCategoryService(mockCategories, mockProducts)
	categories, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, int64(0), categories[0].ProductCount)
	assert.Equal(t, int64(4), categories[1].ProductCount)
}

func TestCategoryService_CreateRejectsDuplicate(t *testing.T) {
	mockCategories := new(MockCategoryRepository)
	mockProducts := new(MockProductRepository)

	mockCategories.On("FindByNameOrSlug", mock.Anything, "Anti Radiasi", "anti-radiasi", uint(0)).
		Return(&model.Category{ID: 1, Name: "Anti Radiasi"}, nil)

	svc := NewCategoryService(mockCategories, mockProducts)
	_, err := svc.Create(context.Background(), "Anti Radiasi", nil)

	assert.ErrorIs(t, err, apperrors.ErrCategoryExists)
	mockCategories.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCategoryService_CreateSlugifiesName(t *testing.T) {
	mockCategories := new(MockCategoryRepository)
	mockProducts := new(MockProductRepository)

	mockCategories.On("FindByNameOrSlug", mock.Anything, "Kacamata Sport", "kacamata-sport", uint(0)).
		Return(nil, gorm.ErrRecordNotFound)
	mockCategories.On("Create", mock.Anything, mock.AnythingOfType("*model.Category")).Return(nil)

	svc := NewCategoryService(mockCategories, mockProducts)
	category, err := svc.Create(context.Background(), "Kacamata Sport", nil)

	require.NoError(t, err)
	assert.Equal(t, "kacamata-sport", category.Slug)
	mockCategories.AssertExpectations(t)
}

func TestCategoryService_Delete(t *testing.T) {
	tests := []struct {
		name          string
		productCount  int64
		expectedError error
	}{
		{name: "category with products cannot be deleted", productCount: 3, expectedError: apperrors.ErrCategoryHasProducts},
		{name: "empty category is deleted", productCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCategories := new(MockCategoryRepository)
			mockProducts := new(MockProductRepository)

			mockCategories.On("FindByID", mock.Anything, uint(1)).
				Return(&model.Category{ID: 1}, nil)
			mockProducts.On("CountByCategory", mock.Anything, uint(1)).
				Return(tt.productCount, nil)
			if tt.expectedError == nil {
				mockCategories.On("Delete", mock.Anything, uint(1)).Return(nil)
			}

			svc := NewCategoryService(mockCategories, mockProducts)
			err := svc.Delete(context.Background(), 1)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				mockCategories.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}
			mockCategories.AssertExpectations(t)
			mockProducts.AssertExpectations(t)
		})
	}
}
