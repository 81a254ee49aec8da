package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/surfcheck/surf-terminal/internal/models"
)

// renderConditionsPane renders the current conditions for the selected spot
func (m Model) renderConditionsPane(width int) string {
	contentWidth := width - 6
	if contentWidth < 20 {
		contentWidth = 20
	}

	var content strings.Builder

	if m.selected == nil {
		content.WriteString(titleStyle.Render("Conditions"))
		content.WriteString("\n\n")
		content.WriteString(mutedStyle.Render("Select a spot to see conditions"))
		return paneStyle.Width(width).Render(content.String())
	}

	spot := m.selected

	content.WriteString(titleStyle.Render(fmt.Sprintf("%s %s", spot.Difficulty.Icon(), spot.Name)))
	content.WriteString("\n")
	content.WriteString(mutedStyle.Render(fmt.Sprintf("%s · %.4f, %.4f",
		spot.Difficulty.Label(), spot.Latitude, spot.Longitude)))
	content.WriteString("\n\n")

	wrappedStyle := lipgloss.NewStyle().Width(contentWidth)
	content.WriteString(wrappedStyle.Render(mutedStyle.Render(spot.Description)))
	content.WriteString("\n\n")

	if spot.Conditions == nil {
		content.WriteString(mutedStyle.Render("No conditions available"))
		return paneStyle.Width(width).Render(content.String())
	}

	c := spot.Conditions

	content.WriteString(labelStyle.Render("Waves: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%.1f ft", c.WaveHeight)))
	content.WriteString("\n")

	content.WriteString(labelStyle.Render("Wind: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%s %.0f mph", c.WindDirection, c.WindSpeed)))
	content.WriteString("\n")

	content.WriteString(labelStyle.Render("Swell: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%s at %d sec", c.SwellDirection, c.SwellPeriod)))
	content.WriteString("\n")

	content.WriteString(labelStyle.Render("Tide: "))
	content.WriteString(valueStyle.Render(formatTide(c.Tide)))
	content.WriteString("\n")

	content.WriteString(labelStyle.Render("Water: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%.0f°F", c.WaterTemp)))
	content.WriteString("   ")
	content.WriteString(labelStyle.Render("Air: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%.0f°F", c.AirTemp)))
	content.WriteString("\n\n")

	if c.IsGoodForSurfing() {
		content.WriteString(goodSurfStyle.Render("✓ Good for surfing"))
	} else {
		content.WriteString(poorSurfStyle.Render("✗ Not worth the paddle"))
	}

	return paneStyle.Width(width).Render(content.String())
}

// formatTide formats a tide phase for display
func formatTide(phase models.TidePhase) string {
	switch phase {
	case models.TideLow:
		return "Low"
	case models.TideRising:
		return "Rising"
	case models.TideHigh:
		return "High"
	case models.TideFalling:
		return "Falling"
	}
	return string(phase)
}
