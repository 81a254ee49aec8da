package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/surfcheck/surf-terminal/internal/catalog"
)

// Message types for async catalog operations

// catalogLoadedMsg is sent when the initial catalog load completes
type catalogLoadedMsg struct {
	snap catalog.Snapshot
	err  error
}

// catalogRefreshedMsg is sent when a conditions refresh completes
type catalogRefreshedMsg struct {
	snap catalog.Snapshot
	err  error
}

// loadCatalog populates the catalog in the background
func loadCatalog(store *catalog.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := store.Load(ctx)
		return catalogLoadedMsg{snap: store.Snapshot(), err: err}
	}
}

// refreshCatalog re-randomizes every spot's conditions in the background
func refreshCatalog(store *catalog.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := store.Refresh(ctx)
		return catalogRefreshedMsg{snap: store.Snapshot(), err: err}
	}
}
