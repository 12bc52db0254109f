package service

import (
	"context"

	"deal-pipeline-api/internal/domain"
)

// MockDealBackend is a mock implementation of DealBackend
type MockDealBackend struct {
	ListDealsFunc    func(ctx context.Context) ([]domain.Deal, error)
	ListProductsFunc func(ctx context.Context) ([]domain.Product, error)
	ListClientsFunc  func(ctx context.Context) ([]domain.Client, error)
	CreateDealFunc   func(ctx context.Context, deal domain.Deal) (domain.Deal, error)
	UpdateDealFunc   func(ctx context.Context, id string, patch domain.DealPatch) (domain.Deal, error)
	DeleteDealFunc   func(ctx context.Context, id string) error
}

func (m *MockDealBackend) ListDeals(ctx context.Context) ([]domain.Deal, error) {
	if m.ListDealsFunc != nil {
		return m.ListDealsFunc(ctx)
	}
	return nil, nil
}

func (m *MockDealBackend) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if m.ListProductsFunc != nil {
		return m.ListProductsFunc(ctx)
	}
	return nil, nil
}

func (m *MockDealBackend) ListClients(ctx context.Context) ([]domain.Client, error) {
	if m.ListClientsFunc != nil {
		return m.ListClientsFunc(ctx)
	}
	return nil, nil
}

func (m *MockDealBackend) CreateDeal(ctx context.Context, deal domain.Deal) (domain.Deal, error) {
	if m.CreateDealFunc != nil {
		return m.CreateDealFunc(ctx, deal)
	}
	return deal, nil
}

func (m *MockDealBackend) UpdateDeal(ctx context.Context, id string, patch domain.DealPatch) (domain.Deal, error) {
	if m.UpdateDealFunc != nil {
		return m.UpdateDealFunc(ctx, id, patch)
	}
	return domain.Deal{}, nil
}

func (m *MockDealBackend) DeleteDeal(ctx context.Context, id string) error {
	if m.DeleteDealFunc != nil {
		return m.DeleteDealFunc(ctx, id)
	}
	return nil
}
