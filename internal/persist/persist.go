// Package persist serializes the durable subset of application state to a
// key-value storage medium and rehydrates it on boot. Only the current
// view, view preferences, auth flag and user survive a restart; everything
// else always boots from defaults.
package persist

import (
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"deal-pipeline-api/internal/domain"
	"deal-pipeline-api/internal/store"
)

// DefaultNamespace is the fixed storage key for the serialized snapshot
const DefaultNamespace = "vobb-atlas-store"

// ErrKeyNotFound is returned by KV backends for absent keys
var ErrKeyNotFound = errors.New("key not found")

// KV is the durable storage medium contract
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// Snapshot is the persisted subset of application state, kept as an
// explicit type with explicit projections in both directions rather than a
// runtime key-picking mechanism.
type Snapshot struct {
	CurrentView     domain.ViewMode        `json:"currentView"`
	ViewPreferences domain.ViewPreferences `json:"viewPreferences"`
	IsAuthenticated bool                   `json:"isAuthenticated"`
	User            *domain.User           `json:"user"`
}

// Capture projects the persisted subset out of the full state
func Capture(state domain.AppState) Snapshot {
	return Snapshot{
		CurrentView:     state.CurrentView,
		ViewPreferences: state.ViewPreferences,
		IsAuthenticated: state.IsAuthenticated,
		User:            state.User,
	}
}

// defaultSnapshot is what a missing or corrupt payload falls back to
func defaultSnapshot() Snapshot {
	return Snapshot{
		CurrentView:     domain.ViewTabular,
		ViewPreferences: domain.DefaultViewPreferences(),
	}
}

// Adapter writes the snapshot on every persisted-subset change and reads it
// back once at boot. Storage failures are recovered silently: they are
// logged but never surfaced to the user.
type Adapter struct {
	kv     KV
	key    string
	logger *zap.Logger
}

// NewAdapter creates an adapter over the given storage medium. An empty
// namespace falls back to DefaultNamespace.
func NewAdapter(kv KV, namespace string, logger *zap.Logger) *Adapter {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Adapter{kv: kv, key: namespace, logger: logger}
}

// Load reads the stored snapshot. Missing or corrupt payloads fall back to
// defaults; a snapshot with an invalid view mode is treated as corrupt.
func (a *Adapter) Load() Snapshot {
	data, err := a.kv.Get(a.key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			a.logger.Warn("failed to read persisted state, using defaults", zap.Error(err))
		}
		return defaultSnapshot()
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		a.logger.Warn("corrupt persisted state, using defaults", zap.Error(err))
		return defaultSnapshot()
	}
	if !snap.CurrentView.IsValid() {
		a.logger.Warn("persisted state has unknown view mode, using defaults",
			zap.String("view", string(snap.CurrentView)))
		return defaultSnapshot()
	}
	return snap
}

// Save serializes and writes the snapshot under the namespace key
func (a *Adapter) Save(snap Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		a.logger.Warn("failed to serialize persisted state", zap.Error(err))
		return
	}
	if err := a.kv.Set(a.key, data); err != nil {
		a.logger.Warn("failed to write persisted state", zap.Error(err))
	}
}

// Rehydrate seeds the store from storage. Called before the store has any
// subscribers, so the seed itself is not re-persisted.
func (a *Adapter) Rehydrate(st *store.Store) {
	snap := a.Load()
	st.Seed(snap.CurrentView, snap.ViewPreferences, snap.IsAuthenticated, snap.User)
}

// Watch subscribes the adapter to the store: every mutation of the
// persisted subset triggers a write.
func (a *Adapter) Watch(st *store.Store) {
	st.Subscribe(func(e store.Event) {
		if !e.IsPersisted() {
			return
		}
		a.Save(Capture(st.Snapshot()))
	})
}
