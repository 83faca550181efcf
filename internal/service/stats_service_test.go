package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kacameta/internal/model"
)

func TestStatsService_Dashboard(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	mockOrders := new(MockOrderRepository)

	mockProducts.On("Count", mock.Anything).Return(int64(12), nil)
	mockProducts.On("SumStock", mock.Anything).Return(int64(340), nil)
	mockProducts.On("CountLowStock", mock.Anything, lowStockThreshold).Return(int64(2), nil)
	mockProducts.On("CountByStatus", mock.Anything, model.ProductStatusOutOfStock).Return(int64(1), nil)
	mockCategories.On("Count", mock.Anything).Return(int64(5), nil)
	mockOrders.On("Count", mock.Anything).Return(int64(9), nil)

	svc := NewStatsService(mockProducts, mockCategories, mockOrders, nil)
	stats, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &DashboardStats{
		TotalProducts:    12,
		TotalStock:       340,
		LowStockProducts: 2,
		OutOfStock:       1,
		TotalCategories:  5,
		TotalOrders:      9,
	}, stats)

	mockProducts.AssertExpectations(t)
	mockCategories.AssertExpectations(t)
	mockOrders.AssertExpectations(t)
}
