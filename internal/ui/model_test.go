package ui

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/surfcheck/surf-terminal/internal/catalog"
	"github.com/surfcheck/surf-terminal/internal/forecast"
	"github.com/surfcheck/surf-terminal/internal/spots"
)

func newTestStore(t *testing.T) *catalog.Store {
	t.Helper()
	store := catalog.NewStore(spots.SeedSource{}, forecast.NewGenerator(rand.NewSource(1)))
	store.SetDelays(0, 0)
	return store
}

// browseModel returns a model in browse state with a loaded catalog
func browseModel(t *testing.T) Model {
	t.Helper()
	store := newTestStore(t)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	m := NewModel(store)
	m.width = 120
	m.height = 40

	updated, _ := m.Update(catalogLoadedMsg{snap: store.Snapshot()})
	return updated.(Model)
}

func TestNewModel(t *testing.T) {
	m := NewModel(newTestStore(t))

	if m.state != StateLoading {
		t.Errorf("NewModel() state = %v, want StateLoading", m.state)
	}
	if m.selected != nil {
		t.Error("NewModel() should have no selected spot")
	}
}

func TestModel_Init_ReturnsCommand(t *testing.T) {
	m := NewModel(newTestStore(t))
	if m.Init() == nil {
		t.Error("Init() should return a command to load the catalog")
	}
}

func TestModel_Update_WindowSize(t *testing.T) {
	m := NewModel(newTestStore(t))

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	if m.width != 120 {
		t.Errorf("After WindowSizeMsg, width = %d, want 120", m.width)
	}
	if m.height != 40 {
		t.Errorf("After WindowSizeMsg, height = %d, want 40", m.height)
	}
}

func TestModel_Update_CatalogLoaded(t *testing.T) {
	m := browseModel(t)

	if m.state != StateBrowse {
		t.Errorf("After catalogLoadedMsg, state = %v, want StateBrowse", m.state)
	}
	if got := len(m.spotList.Items()); got != 5 {
		t.Errorf("spot list has %d items, want 5", got)
	}
	if m.selected == nil {
		t.Fatal("expected the first spot to be selected after load")
	}
	if m.selected.Name != "Pipeline" {
		t.Errorf("selected spot = %q, want Pipeline", m.selected.Name)
	}
}

func TestModel_Update_CatalogLoadError(t *testing.T) {
	m := NewModel(newTestStore(t))

	updated, _ := m.Update(catalogLoadedMsg{err: errors.New("boom")})
	m = updated.(Model)

	if m.state != StateError {
		t.Errorf("After load error, state = %v, want StateError", m.state)
	}
	if m.err == nil {
		t.Error("After load error, err should not be nil")
	}
}

func TestModel_CtrlC_Quits(t *testing.T) {
	m := NewModel(newTestStore(t))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("Expected Ctrl+C to return quit command")
	}
}

func TestModel_DifficultyFilterKeys(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want []string
	}{
		{"expert filter", "4", []string{"Pipeline", "Mavericks"}},
		{"beginner filter", "1", []string{"Waikiki Beach"}},
		{"intermediate filter", "2", []string{"Malibu"}},
		{"advanced filter", "3", []string{"Trestles"}},
		{"all spots", "0", []string{"Pipeline", "Waikiki Beach", "Mavericks", "Malibu", "Trestles"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := browseModel(t)

			updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.key)})
			m = updated.(Model)

			items := m.spotList.Items()
			if len(items) != len(tt.want) {
				t.Fatalf("after key %q, list has %d items, want %d", tt.key, len(items), len(tt.want))
			}
			for i, want := range tt.want {
				got := items[i].(spotItem).spot.Name
				if got != want {
					t.Errorf("item[%d] = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestModel_SearchNarrowsList(t *testing.T) {
	m := browseModel(t)

	// Focus search and type "pipe"
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	m = updated.(Model)

	if !m.searchInput.Focused() {
		t.Fatal("expected search input to be focused after /")
	}

	for _, r := range "pipe" {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}

	items := m.spotList.Items()
	if len(items) != 1 {
		t.Fatalf("after searching 'pipe', list has %d items, want 1", len(items))
	}
	if got := items[0].(spotItem).spot.Name; got != "Pipeline" {
		t.Errorf("search result = %q, want Pipeline", got)
	}
}

func TestModel_EscClearsSearch(t *testing.T) {
	m := browseModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	m = updated.(Model)
	for _, r := range "pipe" {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	if m.searchInput.Focused() {
		t.Error("expected search input to blur on esc")
	}
	if m.searchInput.Value() != "" {
		t.Errorf("expected search input cleared on esc, got %q", m.searchInput.Value())
	}
	if got := len(m.spotList.Items()); got != 5 {
		t.Errorf("after clearing search, list has %d items, want 5", got)
	}
}

func TestModel_RefreshKey(t *testing.T) {
	m := browseModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = updated.(Model)

	if !m.refreshing {
		t.Error("expected refreshing flag after r")
	}
	if cmd == nil {
		t.Error("expected refresh command after r")
	}

	// A second refresh while one is in flight is ignored
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if cmd != nil {
		t.Error("expected no command while a refresh is in flight")
	}
}

func TestModel_Update_CatalogRefreshed(t *testing.T) {
	m := browseModel(t)
	m.refreshing = true

	updated, _ := m.Update(catalogRefreshedMsg{snap: m.store.Snapshot()})
	m = updated.(Model)

	if m.refreshing {
		t.Error("expected refreshing flag cleared after catalogRefreshedMsg")
	}
	if got := len(m.spotList.Items()); got != 5 {
		t.Errorf("after refresh, list has %d items, want 5", got)
	}
}

func TestModel_RefreshKeepsSelection(t *testing.T) {
	m := browseModel(t)

	// Move selection down to Waikiki Beach
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	if m.selected == nil || m.selected.Name != "Waikiki Beach" {
		t.Fatalf("selection setup failed, selected = %v", m.selected)
	}

	updated, _ = m.Update(catalogRefreshedMsg{snap: m.store.Snapshot()})
	m = updated.(Model)

	if m.selected == nil || m.selected.Name != "Waikiki Beach" {
		t.Errorf("selection lost after refresh, selected = %v", m.selected)
	}
}

func TestModel_View_States(t *testing.T) {
	tests := []struct {
		name  string
		state AppState
	}{
		{"loading", StateLoading},
		{"error", StateError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(newTestStore(t))
			m.state = tt.state
			m.width = 80
			m.height = 24

			if m.View() == "" {
				t.Errorf("View() returned empty string for state %v", tt.state)
			}
		})
	}
}

func TestModel_View_Browse(t *testing.T) {
	m := browseModel(t)
	if m.View() == "" {
		t.Error("View() returned empty string in browse state")
	}
}

func TestModel_View_InitialLoading(t *testing.T) {
	m := NewModel(newTestStore(t))

	if view := m.View(); view != "Loading..." {
		t.Errorf("View() before window size = %q, want 'Loading...'", view)
	}
}

func TestAppState_Constants(t *testing.T) {
	if StateLoading != 0 {
		t.Errorf("StateLoading = %d, want 0", StateLoading)
	}
	if StateBrowse != 1 {
		t.Errorf("StateBrowse = %d, want 1", StateBrowse)
	}
	if StateError != 2 {
		t.Errorf("StateError = %d, want 2", StateError)
	}
}

func TestModel_ErrorStateRetries(t *testing.T) {
	m := NewModel(newTestStore(t))
	m.state = StateError
	m.err = errors.New("boom")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m = updated.(Model)

	if m.state != StateLoading {
		t.Errorf("after retry key, state = %v, want StateLoading", m.state)
	}
	if m.err != nil {
		t.Error("after retry key, err should be cleared")
	}
	if cmd == nil {
		t.Error("after retry key, expected a reload command")
	}
}
