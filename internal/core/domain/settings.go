package domain

import (
	"fmt"
	"math"
)

const unknownDescription = "Unknown"

// DefaultOffset is the vertical distance the duplicate is moved by.
const DefaultOffset = 10.0

// Strategy selects how a floor's openings are reconstructed on the copy.
type Strategy string

// Available reconstruction strategies.
const (
	// StrategyDirect creates the new floor from the outer boundary and then
	// one explicit opening per inner boundary.
	StrategyDirect Strategy = "direct"

	// StrategyBoolean creates temporary floors from the inner boundaries and
	// subtracts their solids from the new floor's solid.
	StrategyBoolean Strategy = "boolean"
)

// AllStrategies returns all reconstruction strategies.
func AllStrategies() []Strategy {
	return []Strategy{StrategyDirect, StrategyBoolean}
}

// IsValid returns true if the strategy is recognised.
func (s Strategy) IsValid() bool {
	switch s {
	case StrategyDirect, StrategyBoolean:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s Strategy) String() string {
	return string(s)
}

// Description returns a human-readable description of the strategy.
func (s Strategy) Description() string {
	switch s {
	case StrategyDirect:
		return "Direct (explicit openings)"
	case StrategyBoolean:
		return "Boolean (solid subtraction)"
	default:
		return unknownDescription
	}
}

// CopySettings holds floor copy behaviour configuration.
type CopySettings struct {
	// Strategy is the opening reconstruction strategy.
	Strategy Strategy

	// Offset is the vertical move applied to the duplicate.
	Offset float64

	// InheritStyle copies the source's floor type and level onto the new
	// floor. When false the bare constructor is used.
	InheritStyle bool

	// Structural is passed to the host's floor constructors.
	Structural bool

	// KeepScaffolding leaves the temporary floors of a boolean copy in the
	// document instead of deleting them.
	KeepScaffolding bool
}

// StorageSettings holds model persistence configuration.
type StorageSettings struct {
	// DataDir is the directory holding the model database.
	// Empty means the default location.
	DataDir string
}

// AppSettings holds all application settings.
type AppSettings struct {
	Copy    CopySettings
	Storage StorageSettings
}

// DefaultCopySettings returns the copy settings used when nothing is configured.
func DefaultCopySettings() CopySettings {
	return CopySettings{
		Strategy:     StrategyDirect,
		Offset:       DefaultOffset,
		InheritStyle: true,
	}
}

// DefaultAppSettings returns the default application settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Copy: DefaultCopySettings(),
	}
}

// Validate checks the settings for consistency.
func (s CopySettings) Validate() error {
	if !s.Strategy.IsValid() {
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidInput, s.Strategy)
	}
	if math.IsNaN(s.Offset) || math.IsInf(s.Offset, 0) {
		return fmt.Errorf("%w: offset must be finite", ErrInvalidInput)
	}
	return nil
}
