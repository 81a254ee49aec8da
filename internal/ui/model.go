package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/surfcheck/surf-terminal/internal/catalog"
	"github.com/surfcheck/surf-terminal/internal/models"
)

// AppState represents the current state of the application
type AppState int

const (
	StateLoading AppState = iota // Initial catalog load
	StateBrowse                  // Browse the spot list with filter/search
	StateError                   // Error state
)

// Model represents the application's state. All spot data lives in the
// catalog store; the model only holds presentation state.
type Model struct {
	state  AppState
	width  int
	height int
	err    error

	store *catalog.Store

	// Search
	searchInput textinput.Model

	// Spot list and selection
	spotList list.Model
	selected *models.SurfSpot

	// Refresh
	spinner    spinner.Model
	refreshing bool
}

// NewModel creates a new application model over the given catalog store
func NewModel(store *catalog.Store) Model {
	ti := textinput.New()
	ti.Placeholder = "Search spots by name or description..."
	ti.CharLimit = 100
	ti.Width = 50

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	return Model{
		state:       StateLoading,
		store:       store,
		searchInput: ti,
		spinner:     s,
	}
}

// Init kicks off the catalog load
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadCatalog(m.store))
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Handle window size
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if m.state == StateBrowse {
			m.spotList.SetSize(m.listWidth(), m.listHeight())
		}
		return m, nil
	}

	// Handle custom messages
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("loading catalog: %w", msg.err)
			m.state = StateError
			return m, nil
		}
		m.spotList = createSpotList(msg.snap.Spots, m.listWidth(), m.listHeight())
		m.state = StateBrowse
		m.syncSelection()
		return m, nil

	case catalogRefreshedMsg:
		m.refreshing = false
		if msg.err != nil {
			// Keep the existing catalog; surface the error in the status line
			m.err = fmt.Errorf("refreshing conditions: %w", msg.err)
			return m, nil
		}
		m.err = nil
		m.setSpots(msg.snap.Spots)
		return m, nil
	}

	// Handle keyboard input
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.state {
		case StateBrowse:
			return m.handleBrowseKeys(keyMsg)

		case StateError:
			if keyMsg.String() == "q" {
				return m, tea.Quit
			}
			// Any other key retries the load
			m.state = StateLoading
			m.err = nil
			return m, tea.Batch(m.spinner.Tick, loadCatalog(m.store))
		}
	}

	// Update appropriate component based on state
	switch m.state {
	case StateLoading:
		m.spinner, cmd = m.spinner.Update(msg)
	case StateBrowse:
		if m.refreshing {
			m.spinner, cmd = m.spinner.Update(msg)
		}
	}

	return m, cmd
}

// handleBrowseKeys handles keyboard input while browsing the catalog
func (m Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// While the search box is focused, keys type into it
	if m.searchInput.Focused() {
		switch msg.Type {
		case tea.KeyEsc:
			m.searchInput.Blur()
			m.searchInput.SetValue("")
			m.store.SearchSpots("")
			m.setSpots(m.store.Snapshot().Spots)
			return m, nil
		case tea.KeyEnter:
			m.searchInput.Blur()
			return m, nil
		}

		m.searchInput, cmd = m.searchInput.Update(msg)
		// Search as you type
		m.store.SearchSpots(m.searchInput.Value())
		m.setSpots(m.store.Snapshot().Spots)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "/":
		m.searchInput.Focus()
		return m, textinput.Blink

	case "r":
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		return m, tea.Batch(m.spinner.Tick, refreshCatalog(m.store))

	case "0":
		m.store.FilterSpots(nil)
		m.setSpots(m.store.Snapshot().Spots)
		return m, nil

	case "1", "2", "3", "4":
		d := models.Difficulties()[int(msg.String()[0]-'1')]
		m.store.FilterSpots(&d)
		m.setSpots(m.store.Snapshot().Spots)
		return m, nil
	}

	// List navigation
	m.spotList, cmd = m.spotList.Update(msg)
	m.syncSelection()
	return m, cmd
}

// setSpots replaces the list contents with a new visible list, keeping the
// selection on the same spot when it survives the change.
func (m *Model) setSpots(spots []models.SurfSpot) {
	var selectedID string
	if m.selected != nil {
		selectedID = m.selected.ID
	}

	m.spotList.SetItems(spotItems(spots))

	if selectedID != "" {
		for i, spot := range spots {
			if spot.ID == selectedID {
				m.spotList.Select(i)
				break
			}
		}
	}
	m.syncSelection()
}

// syncSelection mirrors the list cursor into m.selected
func (m *Model) syncSelection() {
	if item, ok := m.spotList.SelectedItem().(spotItem); ok {
		spot := item.spot
		m.selected = &spot
	} else {
		m.selected = nil
	}
}

func (m Model) listWidth() int {
	w := m.width/2 - 2
	if w < 30 {
		w = 30
	}
	return w
}

func (m Model) listHeight() int {
	h := m.height - 10
	if h < 5 {
		h = 5
	}
	return h
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateLoading:
		return m.viewLoading()
	case StateBrowse:
		return m.viewBrowse()
	case StateError:
		return m.viewError()
	}

	return ""
}

// viewLoading renders the initial load screen
func (m Model) viewLoading() string {
	title := titleStyle.Render("🌊 Surf Terminal")
	status := mutedStyle.Render("Checking the surf...")

	return lipgloss.JoinVertical(
		lipgloss.Center,
		"",
		title,
		"",
		fmt.Sprintf("%s %s", m.spinner.View(), status),
	)
}

// viewError renders the error view
func (m Model) viewError() string {
	title := errorStyle.Render("✗ Error")

	var errorMsg string
	if m.err != nil {
		errorMsg = m.err.Error()
	} else {
		errorMsg = "An unknown error occurred"
	}

	help := helpStyle.Render("Press any key to retry · Q: Quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, "", errorMsg, "", help)
}

// viewBrowse renders the main browse view: search box, filter bar, spot list
// and the conditions pane for the selected spot.
func (m Model) viewBrowse() string {
	var sections []string

	title := titleStyle.Render("🌊 Surf Terminal")
	sections = append(sections, title)

	// Search box
	searchBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Width(54).
		Render(m.searchInput.View())
	sections = append(sections, searchBox)

	sections = append(sections, m.renderFilterBar())

	// Status line: refresh spinner or a lingering refresh error
	if m.refreshing {
		sections = append(sections, fmt.Sprintf("%s %s", m.spinner.View(), mutedStyle.Render("Updating conditions...")))
	} else if m.err != nil {
		sections = append(sections, errorStyle.Render("✗ "+m.err.Error()))
	}

	// Spot list beside the conditions pane
	paneWidth := m.width - m.listWidth() - 6
	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.spotList.View(),
		m.renderConditionsPane(paneWidth),
	)
	sections = append(sections, body)

	help := helpStyle.Render("↑/↓: Navigate · /: Search · 1-4: Difficulty · 0: All · R: Refresh · Q: Quit")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderFilterBar renders the difficulty filter chips with the active one
// highlighted.
func (m Model) renderFilterBar() string {
	active := m.store.Filter()

	chips := make([]string, 0, 5)
	if active == nil {
		chips = append(chips, activeFilterChipStyle.Render("All"))
	} else {
		chips = append(chips, filterChipStyle.Render("All"))
	}

	for _, d := range models.Difficulties() {
		label := fmt.Sprintf("%s %s", d.Icon(), d.Label())
		if active != nil && *active == d {
			chips = append(chips, activeFilterChipStyle.Render(label))
		} else {
			chips = append(chips, filterChipStyle.Render(label))
		}
	}

	return strings.Join(chips, " ")
}
