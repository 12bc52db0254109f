package handler

import (
	"context"

	"deal-pipeline-api/internal/domain"
	"deal-pipeline-api/internal/dto"
	"deal-pipeline-api/internal/service"
)

// MockDealService is a mock implementation of service.DealService
type MockDealService struct {
	RefreshFunc    func(ctx context.Context) error
	CreateDealFunc func(ctx context.Context, req *dto.CreateDealRequest) (*domain.Deal, error)
	UpdateDealFunc func(ctx context.Context, id string, patch domain.DealPatch) (*domain.Deal, error)
	DeleteDealFunc func(ctx context.Context, id string) error
}

func (m *MockDealService) Refresh(ctx context.Context) error {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx)
	}
	return nil
}

func (m *MockDealService) CreateDeal(ctx context.Context, req *dto.CreateDealRequest) (*domain.Deal, error) {
	if m.CreateDealFunc != nil {
		return m.CreateDealFunc(ctx, req)
	}
	return &domain.Deal{}, nil
}

func (m *MockDealService) UpdateDeal(ctx context.Context, id string, patch domain.DealPatch) (*domain.Deal, error) {
	if m.UpdateDealFunc != nil {
		return m.UpdateDealFunc(ctx, id, patch)
	}
	return &domain.Deal{}, nil
}

func (m *MockDealService) DeleteDeal(ctx context.Context, id string) error {
	if m.DeleteDealFunc != nil {
		return m.DeleteDealFunc(ctx, id)
	}
	return nil
}

// MockKanbanService is a mock implementation of service.KanbanService
type MockKanbanService struct {
	BoardFunc    func(ctx context.Context) service.Board
	StatsFunc    func(ctx context.Context) service.PipelineStats
	RelocateFunc func(ctx context.Context, dealID string, target domain.DealStage) (*domain.Deal, error)
}

func (m *MockKanbanService) Board(ctx context.Context) service.Board {
	if m.BoardFunc != nil {
		return m.BoardFunc(ctx)
	}
	return service.Board{}
}

func (m *MockKanbanService) Stats(ctx context.Context) service.PipelineStats {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return service.PipelineStats{}
}

func (m *MockKanbanService) Relocate(ctx context.Context, dealID string, target domain.DealStage) (*domain.Deal, error) {
	if m.RelocateFunc != nil {
		return m.RelocateFunc(ctx, dealID, target)
	}
	return &domain.Deal{}, nil
}
