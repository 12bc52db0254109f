package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"deal-pipeline-api/internal/client"
	"deal-pipeline-api/internal/domain"
	"deal-pipeline-api/internal/dto"
	"deal-pipeline-api/internal/metrics"
	"deal-pipeline-api/internal/response"
	"deal-pipeline-api/internal/store"
)

// Fixed messages surfaced through the store's error field
const (
	msgLoadFailed   = "Failed to load data"
	msgCreateFailed = "Failed to create deal"
	msgUpdateFailed = "Failed to update deal"
	msgDeleteFailed = "Failed to delete deal"
)

// DealBackend is the remote facade contract. An alternate backend is a
// drop-in replacement as long as it satisfies these signatures.
type DealBackend interface {
	ListDeals(ctx context.Context) ([]domain.Deal, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	CreateDeal(ctx context.Context, deal domain.Deal) (domain.Deal, error)
	UpdateDeal(ctx context.Context, id string, patch domain.DealPatch) (domain.Deal, error)
	DeleteDeal(ctx context.Context, id string) error
}

// DealService defines the orchestration between the remote facade and the
// store. Local state changes only after remote confirmation; there is no
// optimistic apply and rollback.
type DealService interface {
	Refresh(ctx context.Context) error
	CreateDeal(ctx context.Context, req *dto.CreateDealRequest) (*domain.Deal, error)
	UpdateDeal(ctx context.Context, id string, patch domain.DealPatch) (*domain.Deal, error)
	DeleteDeal(ctx context.Context, id string) error
}

type dealServiceImpl struct {
	backend DealBackend
	store   *store.Store
	metrics *metrics.Metrics
	now     func() time.Time
	logger  *zap.Logger
}

// NewDealService creates a new instance of DealService
func NewDealService(backend DealBackend, st *store.Store, m *metrics.Metrics, logger *zap.Logger) DealService {
	return &dealServiceImpl{
		backend: backend,
		store:   st,
		metrics: m,
		now:     time.Now,
		logger:  logger,
	}
}

// beginLoading sets the loading flag and returns its release. The release
// runs on every exit path, including failures, so the flag can never stick.
func (s *dealServiceImpl) beginLoading() func() {
	s.store.SetLoading(true)
	return func() { s.store.SetLoading(false) }
}

func (s *dealServiceImpl) surfaceError(msg string) {
	s.store.SetError(&msg)
}

func (s *dealServiceImpl) observe(op string, start time.Time, err error) {
	if s.metrics != nil {
		s.metrics.RecordBackendCall(op, time.Since(start), err)
	}
}

// Refresh runs the all-or-nothing initial load: deals, products and clients
// are fetched in parallel, and if any fetch fails the partial results are
// discarded and nothing is applied to the store.
func (s *dealServiceImpl) Refresh(ctx context.Context) error {
	defer s.beginLoading()()
	start := time.Now()

	var (
		wg       sync.WaitGroup
		deals    []domain.Deal
		products []domain.Product
		clients  []domain.Client

		errDeals, errProducts, errClients error
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		deals, errDeals = s.backend.ListDeals(ctx)
	}()
	go func() {
		defer wg.Done()
		products, errProducts = s.backend.ListProducts(ctx)
	}()
	go func() {
		defer wg.Done()
		clients, errClients = s.backend.ListClients(ctx)
	}()
	wg.Wait()

	err := errors.Join(errDeals, errProducts, errClients)
	s.observe("refresh", start, err)
	if err != nil {
		s.logger.Error("initial load failed", zap.Error(err))
		s.surfaceError(msgLoadFailed)
		return response.NewAppError(response.ErrCodeLoadFailure, msgLoadFailed, err.Error())
	}

	s.store.SetDeals(deals)
	s.store.SetProducts(products)
	s.store.SetClients(clients)
	s.store.SetError(nil)
	s.logger.Info("data loaded",
		zap.Int("deals", len(deals)),
		zap.Int("products", len(products)),
		zap.Int("clients", len(clients)),
	)
	return nil
}

// CreateDeal resolves the selected product and client to a deal record,
// creates it remotely and appends it to the store on success. The deal's
// value is the selected product's price.
func (s *dealServiceImpl) CreateDeal(ctx context.Context, req *dto.CreateDealRequest) (*domain.Deal, error) {
	snapshot := s.store.Snapshot()

	var product *domain.Product
	for i := range snapshot.Products {
		if snapshot.Products[i].ID == req.ProductID {
			product = &snapshot.Products[i]
			break
		}
	}
	if product == nil {
		return nil, response.NewAppError(response.ErrCodeValidation, "Please select a product", "")
	}

	var cl *domain.Client
	for i := range snapshot.Clients {
		if snapshot.Clients[i].ID == req.ClientID {
			cl = &snapshot.Clients[i]
			break
		}
	}
	if cl == nil {
		return nil, response.NewAppError(response.ErrCodeValidation, "Please select a client", "")
	}

	stage := domain.StageLeadGenerated
	if req.Stage != "" {
		stage = req.Stage
	}

	deal := domain.Deal{
		ClientName:  cl.Name,
		ProductName: product.Name,
		Stage:       stage,
		CreatedDate: s.now().Format("2006-01-02"),
		AssignedTo:  req.AssignedTo,
		Value:       product.Price,
		Notes:       req.Notes,
	}

	defer s.beginLoading()()
	start := time.Now()
	created, err := s.backend.CreateDeal(ctx, deal)
	s.observe("create", start, err)
	if err != nil {
		s.logger.Error("create deal failed", zap.Error(err))
		s.surfaceError(msgCreateFailed)
		return nil, response.NewAppError(response.ErrCodeInternal, msgCreateFailed, err.Error())
	}

	s.store.AddDeal(created)
	if s.metrics != nil {
		s.metrics.DealCreated()
	}
	return &created, nil
}

// UpdateDeal applies a partial update remotely and mirrors it in the store
// only after remote confirmation.
func (s *dealServiceImpl) UpdateDeal(ctx context.Context, id string, patch domain.DealPatch) (*domain.Deal, error) {
	defer s.beginLoading()()
	start := time.Now()
	updated, err := s.backend.UpdateDeal(ctx, id, patch)
	s.observe("update", start, err)
	if err != nil {
		if errors.Is(err, client.ErrDealNotFound) {
			s.surfaceError(msgUpdateFailed)
			return nil, response.NewAppError(response.ErrCodeNotFound, "Deal not found", id)
		}
		s.logger.Error("update deal failed", zap.String("deal_id", id), zap.Error(err))
		s.surfaceError(msgUpdateFailed)
		return nil, response.NewAppError(response.ErrCodeInternal, msgUpdateFailed, err.Error())
	}

	s.store.UpdateDeal(id, patch)
	return &updated, nil
}

// DeleteDeal removes the deal remotely and then from the store
func (s *dealServiceImpl) DeleteDeal(ctx context.Context, id string) error {
	defer s.beginLoading()()
	start := time.Now()
	err := s.backend.DeleteDeal(ctx, id)
	s.observe("delete", start, err)
	if err != nil {
		if errors.Is(err, client.ErrDealNotFound) {
			s.surfaceError(msgDeleteFailed)
			return response.NewAppError(response.ErrCodeNotFound, "Deal not found", id)
		}
		s.logger.Error("delete deal failed", zap.String("deal_id", id), zap.Error(err))
		s.surfaceError(msgDeleteFailed)
		return response.NewAppError(response.ErrCodeInternal, msgDeleteFailed, err.Error())
	}

	s.store.DeleteDeal(id)
	return nil
}
