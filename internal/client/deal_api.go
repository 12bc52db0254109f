package client

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"deal-pipeline-api/internal/domain"
)

// ErrDealNotFound is returned when an update or delete targets an id the
// backend does not hold.
var ErrDealNotFound = errors.New("deal not found")

// DealAPI simulates the backend of record. It keeps its own copy of the
// deal collection, entirely separate from the store's copy; every call
// sleeps a simulated latency and returns defensive copies so neither side
// can mutate the other.
type DealAPI struct {
	mu       sync.Mutex
	deals    []domain.Deal
	products []domain.Product
	clients  []domain.Client

	minLatency time.Duration
	maxLatency time.Duration
	now        func() time.Time
	lastID     int64
	logger     *zap.Logger
}

// Option configures a DealAPI
type Option func(*DealAPI)

// WithLatency sets the simulated latency window for every call
func WithLatency(min, max time.Duration) Option {
	return func(a *DealAPI) {
		a.minLatency = min
		a.maxLatency = max
	}
}

// WithClock overrides the clock used for id generation and date stamping
func WithClock(now func() time.Time) Option {
	return func(a *DealAPI) {
		a.now = now
	}
}

// WithSeedData replaces the built-in mock collections
func WithSeedData(deals []domain.Deal, products []domain.Product, clients []domain.Client) Option {
	return func(a *DealAPI) {
		a.deals = deals
		a.products = products
		a.clients = clients
	}
}

// NewDealAPI creates a mock backend seeded with reference data
func NewDealAPI(logger *zap.Logger, opts ...Option) *DealAPI {
	a := &DealAPI{
		deals:      seedDeals(),
		products:   seedProducts(),
		clients:    seedClients(),
		minLatency: 300 * time.Millisecond,
		maxLatency: 500 * time.Millisecond,
		now:        time.Now,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// wait blocks for a random duration inside the latency window, or until the
// context is done.
func (a *DealAPI) wait(ctx context.Context) error {
	d := a.minLatency
	if a.maxLatency > a.minLatency {
		d += time.Duration(rand.Int63n(int64(a.maxLatency - a.minLatency)))
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ListDeals returns a snapshot copy of the backend's deal collection
func (a *DealAPI) ListDeals(ctx context.Context) ([]domain.Deal, error) {
	if err := a.wait(ctx); err != nil {
		return nil, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]domain.Deal, len(a.deals))
	copy(out, a.deals)
	return out, nil
}

// ListProducts returns a snapshot copy of the product reference data
func (a *DealAPI) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if err := a.wait(ctx); err != nil {
		return nil, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]domain.Product, len(a.products))
	copy(out, a.products)
	return out, nil
}

// ListClients returns a snapshot copy of the client reference data
func (a *DealAPI) ListClients(ctx context.Context) ([]domain.Client, error) {
	if err := a.wait(ctx); err != nil {
		return nil, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]domain.Client, len(a.clients))
	copy(out, a.clients)
	return out, nil
}

// CreateDeal assigns a fresh creation-time-derived id, appends the record
// to the backend collection and returns the stored deal.
func (a *DealAPI) CreateDeal(ctx context.Context, deal domain.Deal) (domain.Deal, error) {
	if err := a.wait(ctx); err != nil {
		return domain.Deal{}, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	deal.ID = a.nextID()
	a.deals = append(a.deals, deal)
	a.logger.Debug("deal created", zap.String("deal_id", deal.ID))
	return deal, nil
}

// nextID derives an id from the current timestamp in milliseconds. Ids must
// be distinguishable even when two creates land in the same millisecond, so
// the counter is bumped past the last issued id. Caller holds a.mu.
func (a *DealAPI) nextID() string {
	id := a.now().UnixMilli()
	if id <= a.lastID {
		id = a.lastID + 1
	}
	a.lastID = id
	return strconv.FormatInt(id, 10)
}

// UpdateDeal merges the patch over the stored record. Fails with
// ErrDealNotFound if the id is absent.
func (a *DealAPI) UpdateDeal(ctx context.Context, id string, patch domain.DealPatch) (domain.Deal, error) {
	if err := a.wait(ctx); err != nil {
		return domain.Deal{}, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.deals {
		if a.deals[i].ID == id {
			a.deals[i] = patch.Apply(a.deals[i])
			return a.deals[i], nil
		}
	}
	return domain.Deal{}, ErrDealNotFound
}

// DeleteDeal removes the record. Fails with ErrDealNotFound if the id is
// absent.
func (a *DealAPI) DeleteDeal(ctx context.Context, id string) error {
	if err := a.wait(ctx); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.deals {
		if a.deals[i].ID == id {
			a.deals = append(a.deals[:i], a.deals[i+1:]...)
			return nil
		}
	}
	return ErrDealNotFound
}
