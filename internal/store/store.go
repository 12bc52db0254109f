// Package store holds the single source of truth for the application.
// The store is an explicit context object constructed once at startup and
// injected into every consumer; reads go through deep-copy snapshots and
// writes go through the named operations below. Every operation is total
// and uses copy-on-write semantics, so a snapshot taken before a mutation
// is never affected by it.
package store

import (
	"sync"

	"deal-pipeline-api/internal/domain"
)

// EventKind classifies a store mutation for subscribers
type EventKind int

const (
	EventDealsReplaced EventKind = iota
	EventDealAdded
	EventDealUpdated
	EventDealDeleted
	EventViewChanged
	EventPreferencesChanged
	EventSessionChanged
)

// Event describes a completed mutation. Deal is set for single-deal events.
type Event struct {
	Kind   EventKind
	DealID string
	Deal   *domain.Deal
}

// IsPersisted reports whether the event touches the persisted state subset
// (current view, view preferences, auth flag, user).
func (e Event) IsPersisted() bool {
	switch e.Kind {
	case EventViewChanged, EventPreferencesChanged, EventSessionChanged:
		return true
	}
	return false
}

// Listener receives events synchronously after each mutation
type Listener func(Event)

// Store is the mutex-guarded application state container
type Store struct {
	mu        sync.RWMutex
	state     domain.AppState
	listeners []Listener
}

// New creates a store with the initial default state
func New() *Store {
	return &Store{state: domain.NewAppState()}
}

// Subscribe registers a listener for mutation events. Listeners run after
// the mutation commits, outside the state lock, in registration order.
// Not safe to call concurrently with mutations; register during wiring.
func (s *Store) Subscribe(fn Listener) {
	s.listeners = append(s.listeners, fn)
}

func (s *Store) notify(e Event) {
	for _, fn := range s.listeners {
		fn(e)
	}
}

// Snapshot returns a deep copy of the current state. Callers may mutate the
// returned value freely without affecting the store.
func (s *Store) Snapshot() domain.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyState(s.state)
}

func copyState(st domain.AppState) domain.AppState {
	out := st
	out.Deals = make([]domain.Deal, len(st.Deals))
	copy(out.Deals, st.Deals)
	out.Products = make([]domain.Product, len(st.Products))
	copy(out.Products, st.Products)
	out.Clients = make([]domain.Client, len(st.Clients))
	copy(out.Clients, st.Clients)
	if st.ActiveDeal != nil {
		deal := *st.ActiveDeal
		out.ActiveDeal = &deal
	}
	if st.Error != nil {
		msg := *st.Error
		out.Error = &msg
	}
	if st.User != nil {
		user := *st.User
		out.User = &user
	}
	return out
}

// SetDeals replaces the deal collection
func (s *Store) SetDeals(deals []domain.Deal) {
	s.mu.Lock()
	next := make([]domain.Deal, len(deals))
	copy(next, deals)
	s.state.Deals = next
	s.mu.Unlock()
	s.notify(Event{Kind: EventDealsReplaced})
}

// SetProducts replaces the product reference data
func (s *Store) SetProducts(products []domain.Product) {
	s.mu.Lock()
	next := make([]domain.Product, len(products))
	copy(next, products)
	s.state.Products = next
	s.mu.Unlock()
}

// SetClients replaces the client reference data
func (s *Store) SetClients(clients []domain.Client) {
	s.mu.Lock()
	next := make([]domain.Client, len(clients))
	copy(next, clients)
	s.state.Clients = next
	s.mu.Unlock()
}

// AddDeal appends a deal to the end of the sequence. Deal order is
// insertion order, never sorted.
func (s *Store) AddDeal(deal domain.Deal) {
	s.mu.Lock()
	next := make([]domain.Deal, len(s.state.Deals), len(s.state.Deals)+1)
	copy(next, s.state.Deals)
	s.state.Deals = append(next, deal)
	s.mu.Unlock()
	s.notify(Event{Kind: EventDealAdded, DealID: deal.ID, Deal: &deal})
}

// UpdateDeal merges the patch over the matching deal. Fields absent from
// the patch are retained; a missing id is a no-op, not an error.
func (s *Store) UpdateDeal(id string, patch domain.DealPatch) {
	var updated *domain.Deal
	s.mu.Lock()
	next := make([]domain.Deal, len(s.state.Deals))
	for i, deal := range s.state.Deals {
		if deal.ID == id {
			deal = patch.Apply(deal)
			updated = &deal
		}
		next[i] = deal
	}
	s.state.Deals = next
	s.mu.Unlock()
	if updated != nil {
		s.notify(Event{Kind: EventDealUpdated, DealID: id, Deal: updated})
	}
}

// DeleteDeal removes the matching deal. A missing id is a no-op.
func (s *Store) DeleteDeal(id string) {
	removed := false
	s.mu.Lock()
	next := make([]domain.Deal, 0, len(s.state.Deals))
	for _, deal := range s.state.Deals {
		if deal.ID == id {
			removed = true
			continue
		}
		next = append(next, deal)
	}
	s.state.Deals = next
	s.mu.Unlock()
	if removed {
		s.notify(Event{Kind: EventDealDeleted, DealID: id})
	}
}

// MoveDeal relocates a deal to a new pipeline stage. Equivalent to
// UpdateDeal(id, {stage}).
func (s *Store) MoveDeal(id string, stage domain.DealStage) {
	s.UpdateDeal(id, domain.DealPatch{Stage: &stage})
}

// SetCurrentView replaces the active view mode
func (s *Store) SetCurrentView(view domain.ViewMode) {
	s.mu.Lock()
	s.state.CurrentView = view
	s.mu.Unlock()
	s.notify(Event{Kind: EventViewChanged})
}

// SetViewPreferences applies a recursive partial merge: the tabular and
// kanban sub-objects merge independently, and any key omitted from the
// patch keeps its prior value.
func (s *Store) SetViewPreferences(patch domain.ViewPreferencesPatch) {
	s.mu.Lock()
	s.state.ViewPreferences = patch.Apply(s.state.ViewPreferences)
	s.mu.Unlock()
	s.notify(Event{Kind: EventPreferencesChanged})
}

// SetActiveDeal records the deal currently open for edit, or nil
func (s *Store) SetActiveDeal(deal *domain.Deal) {
	s.mu.Lock()
	if deal != nil {
		d := *deal
		s.state.ActiveDeal = &d
	} else {
		s.state.ActiveDeal = nil
	}
	s.mu.Unlock()
}

// SetLoading replaces the loading flag
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	s.state.IsLoading = loading
	s.mu.Unlock()
}

// SetError replaces the error message, or clears it with nil
func (s *Store) SetError(msg *string) {
	s.mu.Lock()
	if msg != nil {
		m := *msg
		s.state.Error = &m
	} else {
		s.state.Error = nil
	}
	s.mu.Unlock()
}

// Login marks the session authenticated and stores the user
func (s *Store) Login(user domain.User) {
	s.mu.Lock()
	s.state.IsAuthenticated = true
	s.state.User = &user
	s.mu.Unlock()
	s.notify(Event{Kind: EventSessionChanged})
}

// Logout clears the session
func (s *Store) Logout() {
	s.mu.Lock()
	s.state.IsAuthenticated = false
	s.state.User = nil
	s.mu.Unlock()
	s.notify(Event{Kind: EventSessionChanged})
}

// Seed overwrites the persisted subset with rehydrated values. Called once
// during startup, before any subscriber is registered; collections and
// transient fields are untouched.
func (s *Store) Seed(view domain.ViewMode, prefs domain.ViewPreferences, authenticated bool, user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentView = view
	s.state.ViewPreferences = prefs
	s.state.IsAuthenticated = authenticated
	if user != nil {
		u := *user
		s.state.User = &u
	} else {
		s.state.User = nil
	}
}
