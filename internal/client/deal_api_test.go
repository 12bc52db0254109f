package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"deal-pipeline-api/internal/domain"
)

func newTestAPI(opts ...Option) *DealAPI {
	opts = append([]Option{WithLatency(0, 0)}, opts...)
	return NewDealAPI(zap.NewNop(), opts...)
}

func TestListDealsReturnsSeedData(t *testing.T) {
	api := newTestAPI()

	deals, err := api.ListDeals(context.Background())
	if err != nil {
		t.Fatalf("ListDeals: %v", err)
	}
	if len(deals) != 4 {
		t.Fatalf("seeded %d deals, want 4", len(deals))
	}
	if deals[0].ClientName != "John Smith" || deals[0].ProductName != "Vobb OS Pro" {
		t.Errorf("unexpected first seed deal: %+v", deals[0])
	}
}

func TestListDealsReturnsCopies(t *testing.T) {
	api := newTestAPI()
	ctx := context.Background()

	first, _ := api.ListDeals(ctx)
	first[0].ClientName = "mutated"

	second, _ := api.ListDeals(ctx)
	if second[0].ClientName == "mutated" {
		t.Error("caller mutation leaked into the backend collection")
	}
}

func TestCreateDealAssignsTimestampID(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	api := newTestAPI(WithClock(func() time.Time { return fixed }))

	created, err := api.CreateDeal(context.Background(), domain.Deal{ClientName: "John Smith"})
	if err != nil {
		t.Fatalf("CreateDeal: %v", err)
	}
	if want := "1740830400000"; created.ID != want {
		t.Errorf("id %s, want %s", created.ID, want)
	}

	deals, _ := api.ListDeals(context.Background())
	if len(deals) != 5 {
		t.Errorf("created deal not appended, have %d", len(deals))
	}
}

func TestCreateDealIDsDistinctWithinSameMillisecond(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	api := newTestAPI(WithClock(func() time.Time { return fixed }))
	ctx := context.Background()

	a, _ := api.CreateDeal(ctx, domain.Deal{})
	b, _ := api.CreateDeal(ctx, domain.Deal{})
	c, _ := api.CreateDeal(ctx, domain.Deal{})

	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("ids collide: %s %s %s", a.ID, b.ID, c.ID)
	}
	if !(a.ID < b.ID && b.ID < c.ID) {
		t.Errorf("ids not monotonic: %s %s %s", a.ID, b.ID, c.ID)
	}
}

func TestUpdateDealMergesPatch(t *testing.T) {
	api := newTestAPI(WithSeedData(
		[]domain.Deal{{ID: "1", ClientName: "John Smith", Stage: domain.StageContacted, Notes: "keep"}},
		nil, nil,
	))

	stage := domain.StageCompleted
	updated, err := api.UpdateDeal(context.Background(), "1", domain.DealPatch{Stage: &stage})
	if err != nil {
		t.Fatalf("UpdateDeal: %v", err)
	}
	if updated.Stage != domain.StageCompleted {
		t.Errorf("stage %s, want %s", updated.Stage, domain.StageCompleted)
	}
	if updated.ClientName != "John Smith" || updated.Notes != "keep" {
		t.Errorf("unpatched fields changed: %+v", updated)
	}
}

func TestUpdateDealNotFound(t *testing.T) {
	api := newTestAPI()
	name := "x"
	_, err := api.UpdateDeal(context.Background(), "no-such-id", domain.DealPatch{ClientName: &name})
	if !errors.Is(err, ErrDealNotFound) {
		t.Errorf("err %v, want ErrDealNotFound", err)
	}
}

func TestDeleteDeal(t *testing.T) {
	api := newTestAPI(WithSeedData(
		[]domain.Deal{{ID: "1"}, {ID: "2"}},
		nil, nil,
	))
	ctx := context.Background()

	if err := api.DeleteDeal(ctx, "1"); err != nil {
		t.Fatalf("DeleteDeal: %v", err)
	}
	deals, _ := api.ListDeals(ctx)
	if len(deals) != 1 || deals[0].ID != "2" {
		t.Errorf("unexpected remainder: %+v", deals)
	}

	if err := api.DeleteDeal(ctx, "1"); !errors.Is(err, ErrDealNotFound) {
		t.Errorf("second delete err %v, want ErrDealNotFound", err)
	}
}

func TestWaitHonorsContextCancellation(t *testing.T) {
	api := NewDealAPI(zap.NewNop(), WithLatency(time.Minute, time.Minute))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := api.ListDeals(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err %v, want context.Canceled", err)
	}
}

func TestSeedReferenceData(t *testing.T) {
	api := newTestAPI()
	ctx := context.Background()

	products, err := api.ListProducts(ctx)
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(products) != 4 {
		t.Errorf("seeded %d products, want 4", len(products))
	}

	clients, err := api.ListClients(ctx)
	if err != nil {
		t.Fatalf("ListClients: %v", err)
	}
	if len(clients) != 4 {
		t.Errorf("seeded %d clients, want 4", len(clients))
	}
}
