package spots

import (
	"context"

	"github.com/surfcheck/surf-terminal/internal/models"
)

// Seed returns the bundled sample spots in catalog order. Conditions are left
// nil; the catalog store attaches a snapshot when it loads.
func Seed() []models.SurfSpot {
	return []models.SurfSpot{
		{
			ID:          "pipeline",
			Name:        "Pipeline",
			Latitude:    21.6650,
			Longitude:   -158.0530,
			Description: "World-famous barreling left over shallow reef on Oahu's North Shore",
			Difficulty:  models.DifficultyExpert,
		},
		{
			ID:          "waikiki",
			Name:        "Waikiki Beach",
			Latitude:    21.2761,
			Longitude:   -157.8267,
			Description: "Gentle rolling longboard waves in the heart of Honolulu",
			Difficulty:  models.DifficultyBeginner,
		},
		{
			ID:          "mavericks",
			Name:        "Mavericks",
			Latitude:    37.4936,
			Longitude:   -122.5011,
			Description: "Cold-water big wave break off Half Moon Bay, for experts only",
			Difficulty:  models.DifficultyExpert,
		},
		{
			ID:          "malibu",
			Name:        "Malibu",
			Latitude:    34.0370,
			Longitude:   -118.6785,
			Description: "Long peeling right point break at Surfrider Beach",
			Difficulty:  models.DifficultyIntermediate,
		},
		{
			ID:          "trestles",
			Name:        "Trestles",
			Latitude:    33.3853,
			Longitude:   -117.5939,
			Description: "High-performance cobblestone point at San Onofre",
			Difficulty:  models.DifficultyAdvanced,
		},
	}
}

// SeedSource serves the bundled sample spots straight from memory.
type SeedSource struct{}

// Spots implements catalog.SpotSource.
func (SeedSource) Spots(ctx context.Context) ([]models.SurfSpot, error) {
	return Seed(), nil
}
