package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/surfcheck/surf-terminal/internal/models"
)

// spotItem wraps a SurfSpot for use in a list
type spotItem struct {
	spot models.SurfSpot
}

// FilterValue implements list.Item
func (i spotItem) FilterValue() string {
	return i.spot.Name
}

// Title implements list.DefaultItem
func (i spotItem) Title() string {
	title := fmt.Sprintf("%s %s", i.spot.Difficulty.Icon(), i.spot.Name)
	if i.spot.Conditions != nil && i.spot.Conditions.IsGoodForSurfing() {
		title += " 🤙"
	}
	return title
}

// Description implements list.DefaultItem
func (i spotItem) Description() string {
	if i.spot.Conditions == nil {
		return i.spot.Difficulty.Label()
	}
	c := i.spot.Conditions
	return fmt.Sprintf("%s · %.1f ft · %s wind %.0f mph",
		i.spot.Difficulty.Label(), c.WaveHeight, c.WindDirection, c.WindSpeed)
}

// createSpotList creates a list.Model from the visible spots
func createSpotList(spots []models.SurfSpot, width, height int) list.Model {
	l := list.New(spotItems(spots), list.NewDefaultDelegate(), width, height)
	l.Title = "Surf Spots"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	// The catalog store owns filtering and search
	l.SetFilteringEnabled(false)

	return l
}

// spotItems converts spots to list items, preserving catalog order
func spotItems(spots []models.SurfSpot) []list.Item {
	items := make([]list.Item, len(spots))
	for i, spot := range spots {
		items[i] = spotItem{spot: spot}
	}
	return items
}
