package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "kacameta/internal/errors"
	"kacameta/internal/model"
	"kacameta/internal/repository"
)

func TestProductService_CreateGeneratesSlugAndUploadsImage(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)
	images := &stubImageStore{path: "/uploads/abc.png"}

	var created *model.Product
	mockProducts.On("FindBySlug", mock.Anything, "classic-aviator", uint(0)).
		Return(nil, gorm.ErrRecordNotFound)
	mockProducts.On("Create", mock.Anything, mock.AnythingOfType("*model.Product")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*model.Product)
			created.ID = 7
		}).
		Return(nil)
	mockProducts.On("FindByID", mock.Anything, uint(7)).
		Return(&model.Product{ID: 7, Name: "Classic Aviator", Slug: "classic-aviator"}, nil)

	svc := NewProductService(mockProducts, mockOrders, images, nil)
	product, err := svc.Create(context.Background(), ProductInput{
		Name:       "Classic Aviator",
		Price:      decimal.NewFromInt(250000),
		Stock:      10,
		CategoryID: 1,
		Images:     []string{"data:image/png;base64,aGVsbG8="},
	})

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "classic-aviator", product.Slug)
	assert.Equal(t, []string{"data:image/png;base64,aGVsbG8="}, images.saved)

	require.NotNil(t, created)
	require.NotNil(t, created.Images)
	assert.Equal(t, "/uploads/abc.png", *created.Images)
	assert.Equal(t, model.ProductStatusAvailable, created.Status)

	mockProducts.AssertExpectations(t)
}

func TestProductService_CreateRejectsDuplicateSlug(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)

	mockProducts.On("FindBySlug", mock.Anything, "classic-aviator", uint(0)).
		Return(&model.Product{ID: 1, Slug: "classic-aviator"}, nil)

	svc := NewProductService(mockProducts, mockOrders, &stubImageStore{}, nil)
	_, err := svc.Create(context.Background(), ProductInput{
		Name:       "Classic Aviator",
		Price:      decimal.NewFromInt(250000),
		CategoryID: 1,
	})

	assert.ErrorIs(t, err, apperrors.ErrProductExists)
	mockProducts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_UpdateKeepsSlugWhenNameUnchanged(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)

	stored := &model.Product{ID: 7, Name: "Classic Aviator", Slug: "classic-aviator", Status: model.ProductStatusAvailable}
	mockProducts.On("FindByID", mock.Anything, uint(7)).Return(stored, nil)
	mockProducts.On("Update", mock.Anything, mock.AnythingOfType("*model.Product")).Return(nil)

	svc := NewProductService(mockProducts, mockOrders, &stubImageStore{}, nil)
	product, err := svc.Update(context.Background(), 7, ProductInput{
		Name:       "Classic Aviator",
		Price:      decimal.NewFromInt(199000),
		Stock:      3,
		CategoryID: 2,
		Images:     []string{"/uploads/existing.png"},
	})

	require.NoError(t, err)
	assert.Equal(t, "classic-aviator", product.Slug)
	require.NotNil(t, product.Images)
	assert.Equal(t, "/uploads/existing.png", *product.Images)

	// Unchanged name must not trigger a uniqueness probe.
	mockProducts.AssertNotCalled(t, "FindBySlug", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_Delete(t *testing.T) {
	tests := []struct {
		name          string
		orderedCount  int64
		expectedError error
	}{
		{name: "product on an order cannot be deleted", orderedCount: 2, expectedError: apperrors.ErrProductHasOrders},
		{name: "unordered product is deleted", orderedCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProducts := new(MockProductRepository)
			mockOrders := new(MockOrderRepository)

			mockProducts.On("FindByID", mock.Anything, uint(7)).
				Return(&model.Product{ID: 7}, nil)
			mockOrders.On("CountItemsForProduct", mock.Anything, uint(7)).
				Return(tt.orderedCount, nil)
			if tt.expectedError == nil {
				mockProducts.On("Delete", mock.Anything, uint(7)).Return(nil)
			}

			svc := NewProductService(mockProducts, mockOrders, &stubImageStore{}, nil)
			err := svc.Delete(context.Background(), 7)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				mockProducts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}
			mockProducts.AssertExpectations(t)
			mockOrders.AssertExpectations(t)
		})
	}
}

func TestProductService_ListPassesFilterThrough(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)

	filter := repository.ProductFilter{CategorySlug: "pria", Search: "aviator"}
	mockProducts.On("List", mock.Anything, filter).
		Return([]model.Product{{ID: 1, Name: "Classic Aviator"}}, nil)

	svc := NewProductService(mockProducts, mockOrders, &stubImageStore{}, nil)
	products, err := svc.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, products, 1)
	mockProducts.AssertExpectations(t)
}
