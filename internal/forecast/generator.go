package forecast

import (
	"math/rand"
	"time"

	"github.com/surfcheck/surf-terminal/internal/models"
)

// Candidate sets for the mock generator. Every reading is drawn uniformly
// from the set for its field, so downstream code only ever sees values a
// real report could plausibly contain.
var (
	waveHeights   = []float64{2, 3.5, 5, 7, 9, 12}             // feet
	windSpeeds    = []float64{5, 8, 12, 15, 20}                // mph
	waterTemps    = []float64{55, 58, 62, 65, 68, 72, 75}      // Fahrenheit
	swellPeriods  = []int{8, 10, 12, 15, 18}                   // seconds
	compassPoints = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
)

// Generator produces mock surf condition snapshots. It has no external data
// source; every field is drawn independently from a fixed candidate set.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator backed by the given random source. A nil
// source gets a time-seeded one; tests pass a fixed seed for reproducibility.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Generator{rng: rand.New(src)}
}

// Conditions draws a fresh snapshot. Air temperature is the drawn water
// temperature plus a uniform offset in [2, 8] degrees.
func (g *Generator) Conditions() models.SurfConditions {
	water := waterTemps[g.rng.Intn(len(waterTemps))]
	phases := models.TidePhases()

	return models.SurfConditions{
		WaveHeight:     waveHeights[g.rng.Intn(len(waveHeights))],
		WindSpeed:      windSpeeds[g.rng.Intn(len(windSpeeds))],
		WindDirection:  compassPoints[g.rng.Intn(len(compassPoints))],
		Tide:           phases[g.rng.Intn(len(phases))],
		WaterTemp:      water,
		AirTemp:        water + 2 + g.rng.Float64()*6,
		SwellDirection: compassPoints[g.rng.Intn(len(compassPoints))],
		SwellPeriod:    swellPeriods[g.rng.Intn(len(swellPeriods))],
	}
}
