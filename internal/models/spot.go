package models

import "fmt"

// Difficulty rates how demanding a spot is to surf
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyExpert       Difficulty = "expert"
)

// Difficulties returns every difficulty level in ascending order
func Difficulties() []Difficulty {
	return []Difficulty{
		DifficultyBeginner,
		DifficultyIntermediate,
		DifficultyAdvanced,
		DifficultyExpert,
	}
}

// ParseDifficulty converts a string into a Difficulty
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyExpert:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// Label returns the display label for the difficulty
func (d Difficulty) Label() string {
	switch d {
	case DifficultyBeginner:
		return "Beginner"
	case DifficultyIntermediate:
		return "Intermediate"
	case DifficultyAdvanced:
		return "Advanced"
	case DifficultyExpert:
		return "Expert"
	}
	return "Unknown"
}

// Icon returns the glyph identifier used when rendering the difficulty
func (d Difficulty) Icon() string {
	switch d {
	case DifficultyBeginner:
		return "○"
	case DifficultyIntermediate:
		return "◐"
	case DifficultyAdvanced:
		return "●"
	case DifficultyExpert:
		return "◆"
	}
	return "?"
}

// SurfSpot represents a named surfing location. Identity fields never change
// after creation; only the conditions snapshot is replaced, via WithConditions.
type SurfSpot struct {
	ID          string
	Name        string
	Latitude    float64 // degrees
	Longitude   float64 // degrees
	Description string
	Difficulty  Difficulty
	Conditions  *SurfConditions // nil until the catalog is loaded
}

// WithConditions returns a copy of the spot with a replaced conditions
// snapshot. The receiver is not modified.
func (s SurfSpot) WithConditions(c SurfConditions) SurfSpot {
	s.Conditions = &c
	return s
}
