package driving

import "github.com/custodia-labs/floorcopy/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetStrategy updates the reconstruction strategy.
	SetStrategy(strategy domain.Strategy) error

	// SetOffset updates the vertical offset of the duplicate.
	SetOffset(offset float64) error

	// SetInheritStyle toggles floor type and level inheritance.
	SetInheritStyle(inherit bool) error

	// SetKeepScaffolding toggles disposal of temporary floors.
	SetKeepScaffolding(keep bool) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
