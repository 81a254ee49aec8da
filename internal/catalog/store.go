// Package catalog owns the surf spot catalog and derives the visible list
// from the active difficulty filter and search query. It is the single
// mutator of spot state; the UI observes it through immutable snapshots.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/surfcheck/surf-terminal/internal/forecast"
	"github.com/surfcheck/surf-terminal/internal/models"
)

// Simulated latency for the mock data source
const (
	DefaultLoadDelay    = time.Second
	DefaultRefreshDelay = 500 * time.Millisecond
)

// SpotSource supplies the full spot catalog. Implementations live in the
// spots package (in-memory seed set, sqlite repository).
type SpotSource interface {
	Spots(ctx context.Context) ([]models.SurfSpot, error)
}

// Favoriter is the extension point for marking spots. The TUI reserves a key
// for it but no implementation ships yet.
type Favoriter interface {
	ToggleFavorite(spotID string) error
}

// Snapshot is an immutable view of the store handed to observers. Spots holds
// the visible list (post filter and search), never the raw catalog.
type Snapshot struct {
	Spots   []models.SurfSpot
	Loading bool
	Err     string // empty when healthy
}

// Store holds the authoritative spot catalog and recomputes the visible list
// whenever the catalog, filter or query changes. Load and Refresh are the
// only catalog mutators and are not meant to overlap; the mutex exists
// because observers and bubbletea commands run on their own goroutines.
type Store struct {
	source SpotSource
	gen    *forecast.Generator

	loadDelay    time.Duration
	refreshDelay time.Duration

	mu      sync.Mutex
	all     []models.SurfSpot
	visible []models.SurfSpot
	filter  *models.Difficulty
	query   string
	loading bool
	loadErr string

	subMu   sync.Mutex
	subs    map[int]func(Snapshot)
	nextSub int
}

// NewStore creates a store over the given source and condition generator
func NewStore(source SpotSource, gen *forecast.Generator) *Store {
	return &Store{
		source:       source,
		gen:          gen,
		loadDelay:    DefaultLoadDelay,
		refreshDelay: DefaultRefreshDelay,
		subs:         make(map[int]func(Snapshot)),
		visible:      []models.SurfSpot{},
	}
}

// SetDelays overrides the simulated latency. Tests pass zero.
func (s *Store) SetDelays(load, refresh time.Duration) {
	s.loadDelay = load
	s.refreshDelay = refresh
}

// Load populates the catalog from the source, attaching a freshly generated
// conditions snapshot to every spot, then reapplies the active filter and
// query. On failure the previous catalog and visible list are untouched and
// Err carries a human-readable message.
func (s *Store) Load(ctx context.Context) error {
	s.setLoading(true)

	if err := sleep(ctx, s.loadDelay); err != nil {
		s.fail(fmt.Sprintf("loading spots: %v", err))
		return err
	}

	loaded, err := s.source.Spots(ctx)
	if err != nil {
		s.fail(fmt.Sprintf("loading spots: %v", err))
		return fmt.Errorf("loading spots: %w", err)
	}

	for i := range loaded {
		loaded[i] = loaded[i].WithConditions(s.gen.Conditions())
	}

	s.mu.Lock()
	s.all = loaded
	s.loading = false
	s.loadErr = ""
	s.applyViewLocked()
	s.mu.Unlock()
	s.notify()
	return nil
}

// Refresh replaces every spot's conditions snapshot with a newly generated
// one, keeping identity fields untouched. A no-op on an empty catalog: the
// loading flag never toggles.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	empty := len(s.all) == 0
	s.mu.Unlock()
	if empty {
		return nil
	}

	s.setLoading(true)

	if err := sleep(ctx, s.refreshDelay); err != nil {
		s.fail(fmt.Sprintf("refreshing conditions: %v", err))
		return err
	}

	s.mu.Lock()
	refreshed := make([]models.SurfSpot, len(s.all))
	for i, spot := range s.all {
		refreshed[i] = spot.WithConditions(s.gen.Conditions())
	}
	s.all = refreshed
	s.loading = false
	s.loadErr = ""
	s.applyViewLocked()
	s.mu.Unlock()
	s.notify()
	return nil
}

// FilterSpots sets the active difficulty filter. A nil difficulty shows the
// full catalog. The search query, if any, still applies on top.
func (s *Store) FilterSpots(d *models.Difficulty) {
	s.mu.Lock()
	s.filter = d
	s.applyViewLocked()
	s.mu.Unlock()
	s.notify()
}

// SearchSpots sets the free-text query. An empty query restores the visible
// list to whatever the active filter implies. Matching is a case-insensitive
// substring test against name or description, applied after the filter.
func (s *Store) SearchSpots(query string) {
	s.mu.Lock()
	s.query = query
	s.applyViewLocked()
	s.mu.Unlock()
	s.notify()
}

// Filter returns the active difficulty filter, nil meaning all
func (s *Store) Filter() *models.Difficulty {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Query returns the active search query
func (s *Store) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Snapshot returns the current observable state. The spot slice is a copy;
// callers can hold it across updates.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	spots := make([]models.SurfSpot, len(s.visible))
	for i, spot := range s.visible {
		// Reattach a copied conditions snapshot so observers cannot write
		// through the shared pointer into store state
		if spot.Conditions != nil {
			spot = spot.WithConditions(*spot.Conditions)
		}
		spots[i] = spot
	}
	return Snapshot{Spots: spots, Loading: s.loading, Err: s.loadErr}
}

// Subscribe registers fn to be called with a fresh snapshot after every state
// change. The returned func unsubscribes.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// applyViewLocked recomputes the visible list: difficulty filter first, then
// the search query, preserving catalog insertion order. Callers hold s.mu.
func (s *Store) applyViewLocked() {
	q := strings.ToLower(s.query)

	visible := make([]models.SurfSpot, 0, len(s.all))
	for _, spot := range s.all {
		if s.filter != nil && spot.Difficulty != *s.filter {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(spot.Name), q) &&
			!strings.Contains(strings.ToLower(spot.Description), q) {
			continue
		}
		visible = append(visible, spot)
	}
	s.visible = visible
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.loadErr = ""
	s.mu.Unlock()
	s.notify()
}

// fail clears the loading flag and records the error without touching the
// catalog or the visible list.
func (s *Store) fail(msg string) {
	s.mu.Lock()
	s.loading = false
	s.loadErr = msg
	s.mu.Unlock()
	s.notify()
}

func (s *Store) notify() {
	snap := s.Snapshot()

	s.subMu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// sleep waits for d or until the context is canceled, whichever comes first
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
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
