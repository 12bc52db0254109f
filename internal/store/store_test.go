package store

import (
	"reflect"
	"testing"

	"deal-pipeline-api/internal/domain"
)

func boolPtr(b bool) *bool { return &b }

func TestAddThenDeleteRestoresSequence(t *testing.T) {
	st := New()
	st.SetDeals([]domain.Deal{{ID: "1"}, {ID: "2"}})
	original := st.Snapshot().Deals

	st.AddDeal(domain.Deal{ID: "3"})
	st.DeleteDeal("3")

	if !reflect.DeepEqual(st.Snapshot().Deals, original) {
		t.Errorf("add+delete did not round-trip: %v", st.Snapshot().Deals)
	}
}

func TestAddDealAppendsInInsertionOrder(t *testing.T) {
	st := New()
	st.AddDeal(domain.Deal{ID: "z"})
	st.AddDeal(domain.Deal{ID: "a"})

	deals := st.Snapshot().Deals
	if deals[0].ID != "z" || deals[1].ID != "a" {
		t.Errorf("deal order is not insertion order: %v", deals)
	}
}

func TestUpdateDealChangesOnlyPatchedFields(t *testing.T) {
	st := New()
	st.SetDeals([]domain.Deal{
		{ID: "1", ClientName: "John Smith", ProductName: "Vobb OS Pro", Stage: domain.StageContacted, CreatedDate: "2024-01-12"},
		{ID: "2", ClientName: "Sarah Johnson"},
	})

	name := "Jane Smith"
	st.UpdateDeal("1", domain.DealPatch{ClientName: &name})

	deals := st.Snapshot().Deals
	if deals[0].ClientName != "Jane Smith" {
		t.Error("patched field not applied")
	}
	if deals[0].ProductName != "Vobb OS Pro" || deals[0].Stage != domain.StageContacted || deals[0].CreatedDate != "2024-01-12" {
		t.Errorf("unpatched fields changed: %+v", deals[0])
	}
	if deals[1].ClientName != "Sarah Johnson" {
		t.Error("non-matching record touched")
	}
}

func TestUpdateDealAbsentIDIsNoOp(t *testing.T) {
	st := New()
	st.SetDeals([]domain.Deal{{ID: "1", Stage: domain.StageContacted}})
	before := st.Snapshot().Deals

	stage := domain.StageLost
	st.UpdateDeal("missing-id", domain.DealPatch{Stage: &stage})

	if !reflect.DeepEqual(st.Snapshot().Deals, before) {
		t.Error("update of absent id changed the sequence")
	}
}

func TestDeleteDealAbsentIDIsNoOp(t *testing.T) {
	st := New()
	st.SetDeals([]domain.Deal{{ID: "1"}})
	st.DeleteDeal("missing-id")
	if len(st.Snapshot().Deals) != 1 {
		t.Error("delete of absent id changed the sequence")
	}
}

func TestMoveDealEquivalentToStagePatch(t *testing.T) {
	st := New()
	st.SetDeals([]domain.Deal{{ID: "1", Stage: domain.StageContacted, Notes: "keep me"}})

	st.MoveDeal("1", domain.StagePaymentConfirmed)

	deal := st.Snapshot().Deals[0]
	if deal.Stage != domain.StagePaymentConfirmed {
		t.Errorf("stage %s, want %s", deal.Stage, domain.StagePaymentConfirmed)
	}
	if deal.Notes != "keep me" {
		t.Error("moveDeal touched a non-stage field")
	}
}

func TestSnapshotIsIsolatedFromLaterMutations(t *testing.T) {
	st := New()
	st.SetDeals([]domain.Deal{{ID: "1", Stage: domain.StageContacted}})

	before := st.Snapshot()
	stage := domain.StageLost
	st.UpdateDeal("1", domain.DealPatch{Stage: &stage})

	if before.Deals[0].Stage != domain.StageContacted {
		t.Error("previously returned snapshot was mutated")
	}

	// Mutating the snapshot must not leak back into the store
	before.Deals[0].ID = "hacked"
	if st.Snapshot().Deals[0].ID != "1" {
		t.Error("snapshot mutation leaked into the store")
	}
}

func TestSetViewPreferencesMergesRecursively(t *testing.T) {
	st := New()

	st.SetViewPreferences(domain.ViewPreferencesPatch{
		Tabular: &domain.TabularPreferencesPatch{ShowClientName: boolPtr(false)},
	})

	prefs := st.Snapshot().ViewPreferences
	if prefs.Tabular.ShowClientName {
		t.Error("patched field not applied")
	}
	// Every other field keeps its default
	if !prefs.Tabular.ShowProductName || !prefs.Tabular.ShowStage || !prefs.Tabular.ShowCreatedDate || !prefs.Tabular.ShowActions {
		t.Errorf("sibling tabular fields wiped: %+v", prefs.Tabular)
	}
	if !prefs.Kanban.ShowClientName || !prefs.Kanban.ShowProductName || !prefs.Kanban.ShowCreatedDate {
		t.Errorf("unrelated kanban fields wiped: %+v", prefs.Kanban)
	}
}

func TestLoginLogout(t *testing.T) {
	st := New()
	st.Login(domain.User{Name: "Jo", Email: "jo@example.com"})

	snapshot := st.Snapshot()
	if !snapshot.IsAuthenticated || snapshot.User == nil || snapshot.User.Email != "jo@example.com" {
		t.Errorf("login not applied: %+v", snapshot)
	}

	st.Logout()
	snapshot = st.Snapshot()
	if snapshot.IsAuthenticated || snapshot.User != nil {
		t.Errorf("logout not applied: %+v", snapshot)
	}
}

func TestSetActiveDealCopies(t *testing.T) {
	st := New()
	deal := domain.Deal{ID: "1", Notes: "original"}
	st.SetActiveDeal(&deal)

	deal.Notes = "mutated by caller"
	if st.Snapshot().ActiveDeal.Notes != "original" {
		t.Error("active deal aliases the caller's record")
	}

	st.SetActiveDeal(nil)
	if st.Snapshot().ActiveDeal != nil {
		t.Error("active deal not cleared")
	}
}

func TestSeedOnlyTouchesPersistedSubset(t *testing.T) {
	st := New()
	st.SetDeals([]domain.Deal{{ID: "1"}})

	prefs := domain.DefaultViewPreferences()
	prefs.Kanban.ShowCreatedDate = false
	st.Seed(domain.ViewKanban, prefs, true, &domain.User{Name: "Jo", Email: "jo@example.com"})

	snapshot := st.Snapshot()
	if snapshot.CurrentView != domain.ViewKanban || !snapshot.IsAuthenticated {
		t.Errorf("persisted subset not seeded: %+v", snapshot)
	}
	if snapshot.ViewPreferences.Kanban.ShowCreatedDate {
		t.Error("preferences not seeded")
	}
	if len(snapshot.Deals) != 1 {
		t.Error("seed touched the deal collection")
	}
}

func TestSubscribeReceivesEvents(t *testing.T) {
	st := New()
	var events []Event
	st.Subscribe(func(e Event) { events = append(events, e) })

	st.AddDeal(domain.Deal{ID: "1"})
	st.MoveDeal("1", domain.StageLost)
	st.DeleteDeal("1")
	st.SetCurrentView(domain.ViewKanban)
	st.SetProducts([]domain.Product{{ID: "p"}}) // reference data, no event

	kinds := make([]EventKind, len(events))
	for i, e := range events {
		kinds[i] = e.Kind
	}
	want := []EventKind{EventDealAdded, EventDealUpdated, EventDealDeleted, EventViewChanged}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("events %v, want %v", kinds, want)
	}
	if events[3].IsPersisted() != true || events[0].IsPersisted() {
		t.Error("IsPersisted misclassifies events")
	}
}
