package services

import (
	"fmt"
	"math"

	"github.com/custodia-labs/floorcopy/internal/core/domain"
	"github.com/custodia-labs/floorcopy/internal/core/ports/driven"
	"github.com/custodia-labs/floorcopy/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyStrategy        = "copy.strategy"
	keyOffset          = "copy.offset"
	keyInheritStyle    = "copy.inherit_style"
	keyStructural      = "copy.structural"
	keyKeepScaffolding = "copy.keep_scaffolding"
	keyDataDir         = "storage.data_dir"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Copy: domain.CopySettings{
			Strategy:        s.getStrategy(defaults.Copy.Strategy),
			Offset:          s.getFloat(keyOffset, defaults.Copy.Offset),
			InheritStyle:    s.getBool(keyInheritStyle, defaults.Copy.InheritStyle),
			Structural:      s.getBool(keyStructural, defaults.Copy.Structural),
			KeepScaffolding: s.getBool(keyKeepScaffolding, defaults.Copy.KeepScaffolding),
		},
		Storage: domain.StorageSettings{
			DataDir: s.configStore.GetString(keyDataDir), // Empty means default location
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Copy.Validate(); err != nil {
		return fmt.Errorf("invalid copy settings: %w", err)
	}

	values := []struct {
		key   string
		value any
	}{
		{keyStrategy, settings.Copy.Strategy.String()},
		{keyOffset, settings.Copy.Offset},
		{keyInheritStyle, settings.Copy.InheritStyle},
		{keyStructural, settings.Copy.Structural},
		{keyKeepScaffolding, settings.Copy.KeepScaffolding},
		{keyDataDir, settings.Storage.DataDir},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// SetStrategy updates the reconstruction strategy.
func (s *SettingsService) SetStrategy(strategy domain.Strategy) error {
	if !strategy.IsValid() {
		return fmt.Errorf("%w: invalid strategy %q", domain.ErrInvalidInput, strategy)
	}
	return s.configStore.Set(keyStrategy, strategy.String())
}

// SetOffset updates the vertical offset of the duplicate.
func (s *SettingsService) SetOffset(offset float64) error {
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return fmt.Errorf("%w: offset must be finite", domain.ErrInvalidInput)
	}
	return s.configStore.Set(keyOffset, offset)
}

// SetInheritStyle toggles floor type and level inheritance.
func (s *SettingsService) SetInheritStyle(inherit bool) error {
	return s.configStore.Set(keyInheritStyle, inherit)
}

// SetKeepScaffolding toggles disposal of temporary floors.
func (s *SettingsService) SetKeepScaffolding(keep bool) error {
	return s.configStore.Set(keyKeepScaffolding, keep)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods

func (s *SettingsService) getStrategy(def domain.Strategy) domain.Strategy {
	str := s.configStore.GetString(keyStrategy)
	if str == "" {
		return def
	}
	strategy := domain.Strategy(str)
	if !strategy.IsValid() {
		return def
	}
	return strategy
}

func (s *SettingsService) getFloat(key string, def float64) float64 {
	if _, ok := s.configStore.Get(key); !ok {
		return def
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getBool(key string, def bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return def
	}
	return s.configStore.GetBool(key)
}
