package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"deal-pipeline-api/internal/client"
	"deal-pipeline-api/internal/domain"
	"deal-pipeline-api/internal/metrics"
	"deal-pipeline-api/internal/response"
	"deal-pipeline-api/internal/store"
)

const msgMoveFailed = "Failed to move deal"

// BoardColumn is one fixed-order stage bucket on the board
type BoardColumn struct {
	Stage domain.DealStage `json:"stage"`
	Deals []domain.Deal    `json:"deals"`
	Count int              `json:"count"`
}

// Board is the kanban projection of the deal collection
type Board struct {
	Columns []BoardColumn `json:"columns"`
}

// PipelineStats summarizes the pipeline. Active excludes the terminal
// Completed and Lost stages.
type PipelineStats struct {
	TotalDeals  int     `json:"totalDeals"`
	ActiveDeals int     `json:"activeDeals"`
	TotalValue  float64 `json:"totalValue"`
}

// ProjectBoard partitions deals into the eight stage buckets. The partition
// is stable: within a bucket, deals keep the order they appear in the
// source sequence. Every deal lands in exactly one bucket.
func ProjectBoard(deals []domain.Deal) Board {
	board := Board{Columns: make([]BoardColumn, len(domain.PipelineStages))}
	index := make(map[domain.DealStage]int, len(domain.PipelineStages))
	for i, stage := range domain.PipelineStages {
		board.Columns[i] = BoardColumn{Stage: stage, Deals: []domain.Deal{}}
		index[stage] = i
	}
	for _, deal := range deals {
		i, ok := index[deal.Stage]
		if !ok {
			continue
		}
		board.Columns[i].Deals = append(board.Columns[i].Deals, deal)
		board.Columns[i].Count++
	}
	return board
}

// ProjectStats derives the pipeline statistics from the deal collection
func ProjectStats(deals []domain.Deal) PipelineStats {
	stats := PipelineStats{TotalDeals: len(deals)}
	for _, deal := range deals {
		stats.TotalValue += deal.Value
		if !deal.Stage.IsTerminal() {
			stats.ActiveDeals++
		}
	}
	return stats
}

// KanbanService handles the board projection and drag relocation intents
type KanbanService interface {
	Board(ctx context.Context) Board
	Stats(ctx context.Context) PipelineStats
	Relocate(ctx context.Context, dealID string, target domain.DealStage) (*domain.Deal, error)
}

type kanbanServiceImpl struct {
	backend DealBackend
	store   *store.Store
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewKanbanService creates a new instance of KanbanService
func NewKanbanService(backend DealBackend, st *store.Store, m *metrics.Metrics, logger *zap.Logger) KanbanService {
	return &kanbanServiceImpl{backend: backend, store: st, metrics: m, logger: logger}
}

func (s *kanbanServiceImpl) Board(ctx context.Context) Board {
	return ProjectBoard(s.store.Snapshot().Deals)
}

func (s *kanbanServiceImpl) Stats(ctx context.Context) PipelineStats {
	return ProjectStats(s.store.Snapshot().Deals)
}

// Relocate handles a drop intent (deal id, target stage), decoupled from
// any particular input mechanism. Dropping onto the deal's current stage is
// a no-op. Otherwise the stage change is confirmed remotely first and only
// then applied to the store; on remote failure the store is left unchanged
// and the error is surfaced.
func (s *kanbanServiceImpl) Relocate(ctx context.Context, dealID string, target domain.DealStage) (*domain.Deal, error) {
	snapshot := s.store.Snapshot()
	for i := range snapshot.Deals {
		if snapshot.Deals[i].ID == dealID && snapshot.Deals[i].Stage == target {
			deal := snapshot.Deals[i]
			return &deal, nil
		}
	}

	s.store.SetLoading(true)
	defer s.store.SetLoading(false)

	start := time.Now()
	patch := domain.DealPatch{Stage: &target}
	updated, err := s.backend.UpdateDeal(ctx, dealID, patch)
	if s.metrics != nil {
		s.metrics.RecordBackendCall("move", time.Since(start), err)
	}
	if err != nil {
		msg := msgMoveFailed
		s.store.SetError(&msg)
		if errors.Is(err, client.ErrDealNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Deal not found", dealID)
		}
		s.logger.Error("relocate failed",
			zap.String("deal_id", dealID),
			zap.String("target_stage", string(target)),
			zap.Error(err),
		)
		return nil, response.NewAppError(response.ErrCodeInternal, msgMoveFailed, err.Error())
	}

	s.store.MoveDeal(dealID, target)
	if s.metrics != nil {
		s.metrics.StageMoved()
	}
	return &updated, nil
}
