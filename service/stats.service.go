package service

import (
	"context"

	"merobazar-backend/models"
	"merobazar-backend/repository"
)

// StatsService collects the counters shown on the admin dashboard.
type StatsService struct {
	users    repository.UserRepository
	products repository.ProductRepository
	orders   repository.OrderRepository
}

func NewStatsService(users repository.UserRepository, products repository.ProductRepository, orders repository.OrderRepository) *StatsService {
	return &StatsService{users: users, products: products, orders: orders}
}

func (s *StatsService) Collect(ctx context.Context) (*models.Stats, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalProducts, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalOrders, err := s.orders.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalValue, err := s.products.TotalValue(ctx)
	if err != nil {
		return nil, err
	}
	return &models.Stats{
		TotalUsers:    totalUsers,
		TotalProducts: totalProducts,
		TotalOrders:   totalOrders,
		TotalValue:    totalValue,
	}, nil
}
