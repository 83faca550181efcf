package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"kacameta/internal/cache"
	"kacameta/internal/model"
	"kacameta/internal/repository"
)

const (
	statsCacheTTL = 1 * time.Minute
	statsCacheKey = "stats:dashboard"

	// lowStockThreshold marks products worth restocking on the dashboard.
	lowStockThreshold = 10
)

// DashboardStats aggregates the numbers shown on the admin dashboard.
type DashboardStats struct {
	TotalProducts    int64 `json:"total_products"`
	TotalStock       int64 `json:"total_stock"`
	LowStockProducts int64 `json:"low_stock_products"`
	OutOfStock       int64 `json:"out_of_stock_products"`
	TotalCategories  int64 `json:"total_categories"`
	TotalOrders      int64 `json:"total_orders"`
}

// StatsService computes dashboard statistics.
type StatsService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type statsService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	orderRepo    repository.OrderRepository
	cache        *cache.Client
}

// NewStatsService creates a new stats service.
func NewStatsService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, orderRepo repository.OrderRepository, cacheClient *cache.Client) StatsService {
	return &statsService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		orderRepo:    orderRepo,
		cache:        cacheClient,
	}
}

// Dashboard returns the aggregate counts, served from cache when fresh.
func (s *statsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	if data, _ := s.cache.Get(ctx, statsCacheKey); data != nil {
		var cached DashboardStats
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	stats := &DashboardStats{}
	var err error

	if stats.TotalProducts, err = s.productRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}
	if stats.TotalStock, err = s.productRepo.SumStock(ctx); err != nil {
		return nil, fmt.Errorf("sum stock: %w", err)
	}
	if stats.LowStockProducts, err = s.productRepo.CountLowStock(ctx, lowStockThreshold); err != nil {
		return nil, fmt.Errorf("count low stock: %w", err)
	}
	if stats.OutOfStock, err = s.productRepo.CountByStatus(ctx, model.ProductStatusOutOfStock); err != nil {
		return nil, fmt.Errorf("count out of stock: %w", err)
	}
	if stats.TotalCategories, err = s.categoryRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}
	if stats.TotalOrders, err = s.orderRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	if payload, err := json.Marshal(stats); err == nil {
		_ = s.cache.Set(ctx, statsCacheKey, payload, statsCacheTTL)
	}

	return stats, nil
}
