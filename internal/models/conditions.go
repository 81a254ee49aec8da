package models

// TidePhase represents the phase of the tide cycle
type TidePhase string

const (
	TideLow     TidePhase = "low"
	TideRising  TidePhase = "rising"
	TideHigh    TidePhase = "high"
	TideFalling TidePhase = "falling"
)

// TidePhases returns the four tide phases in cycle order
func TidePhases() []TidePhase {
	return []TidePhase{TideLow, TideRising, TideHigh, TideFalling}
}

// SurfConditions is a snapshot of wave, wind, tide and temperature readings
// for a spot. Snapshots carry no timestamp; a newer one replaces the old
// wholesale on refresh.
type SurfConditions struct {
	WaveHeight     float64   // feet
	WindSpeed      float64   // mph
	WindDirection  string    // compass point, e.g. "NW"
	Tide           TidePhase
	WaterTemp      float64 // Fahrenheit
	AirTemp        float64 // Fahrenheit
	SwellDirection string  // compass point
	SwellPeriod    int     // seconds
}

// IsGoodForSurfing reports whether the snapshot describes surfable conditions:
// rideable wave height, manageable wind and a long enough swell period.
func (c SurfConditions) IsGoodForSurfing() bool {
	return c.WaveHeight >= 2.0 && c.WaveHeight <= 12.0 &&
		c.WindSpeed <= 15.0 &&
		c.SwellPeriod >= 8
}
