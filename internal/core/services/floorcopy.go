package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/custodia-labs/floorcopy/internal/core/domain"
	"github.com/custodia-labs/floorcopy/internal/core/ports/driven"
	"github.com/custodia-labs/floorcopy/internal/core/ports/driving"
	"github.com/custodia-labs/floorcopy/internal/logger"
)

// Ensure FloorCopyService implements the interface.
var _ driving.FloorCopyService = (*FloorCopyService)(nil)

// selectFloorPrompt is shown by interactive selection adapters.
const selectFloorPrompt = "Select a floor"

// FloorCopyService duplicates floors of one document.
// Copies are serialised: the document allows a single open scope.
type FloorCopyService struct {
	mu       sync.Mutex
	doc      driven.Document
	settings driving.SettingsService
}

// NewFloorCopyService creates a new floor copy service.
// When settings is nil the default copy settings are used.
func NewFloorCopyService(doc driven.Document, settings driving.SettingsService) *FloorCopyService {
	return &FloorCopyService{
		doc:      doc,
		settings: settings,
	}
}

// CopySelected asks the selection port for a floor and duplicates it.
func (s *FloorCopyService) CopySelected(ctx context.Context, selection driven.Selection) (*domain.CopyResult, error) {
	if selection == nil {
		return nil, fmt.Errorf("%w: no selection configured", domain.ErrInvalidInput)
	}

	id, err := selection.Pick(ctx, domain.IsFloor, selectFloorPrompt)
	if err != nil {
		if errors.Is(err, domain.ErrSelectionCancelled) {
			logger.Info("floor selection cancelled")
			return &domain.CopyResult{Cancelled: true}, nil
		}
		return nil, fmt.Errorf("select floor: %w", err)
	}

	return s.Copy(ctx, id)
}

// Copy duplicates the floor with the given ID, offsets the duplicate and
// disposes of any scaffolding the strategy left behind.
func (s *FloorCopyService) Copy(ctx context.Context, floorID domain.ElementID) (*domain.CopyResult, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("%w: no document", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	el, err := s.doc.Element(ctx, floorID)
	if err != nil {
		return nil, fmt.Errorf("get element %s: %w", floorID, err)
	}
	if !domain.IsFloor(*el) {
		return nil, fmt.Errorf("element %s (%s): %w", floorID, el.Category, domain.ErrNotAFloor)
	}

	settings, err := s.copySettings()
	if err != nil {
		return nil, err
	}

	rec, err := NewReconstructor(settings.Strategy, ReconstructorOptions{
		InheritStyle: settings.InheritStyle,
		Structural:   settings.Structural,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("copying floor %s with %s strategy", floorID, rec.Strategy())

	recon, err := rec.Build(ctx, s.doc, floorID)
	if err != nil {
		if recon != nil {
			s.discard(ctx, recon)
		}
		return nil, fmt.Errorf("copy floor %s: %w", floorID, err)
	}

	result := &domain.CopyResult{
		Source:       floorID,
		Floor:        recon.Floor,
		Strategy:     rec.Strategy(),
		Openings:     recon.Openings,
		Subtractions: recon.Subtractions,
		Offset:       settings.Offset,
	}

	err = withScope(ctx, s.doc, scopeOffset, func() error {
		if settings.Offset != 0 {
			if err := s.doc.Move(ctx, recon.Floor, domain.XYZ{Z: settings.Offset}); err != nil {
				return fmt.Errorf("move floor %s: %w", recon.Floor, err)
			}
		}
		if settings.KeepScaffolding {
			result.Kept = recon.Scaffolding
			return nil
		}
		for _, id := range recon.Scaffolding {
			if err := s.doc.Delete(ctx, id); err != nil {
				return fmt.Errorf("delete temporary floor %s: %w", id, err)
			}
		}
		result.Disposed = recon.Scaffolding
		return nil
	})
	if err != nil {
		s.discard(ctx, recon)
		return nil, fmt.Errorf("copy floor %s: %w", floorID, err)
	}

	logger.Info("floor %s copied to %s (%d openings, %d subtractions, %d disposed)",
		floorID, result.Floor, len(result.Openings), result.Subtractions, len(result.Disposed))
	return result, nil
}

// copySettings returns the configured copy settings or the defaults.
func (s *FloorCopyService) copySettings() (domain.CopySettings, error) {
	if s.settings == nil {
		return domain.DefaultCopySettings(), nil
	}
	app, err := s.settings.Get()
	if err != nil {
		return domain.CopySettings{}, fmt.Errorf("load settings: %w", err)
	}
	if err := app.Copy.Validate(); err != nil {
		return domain.CopySettings{}, fmt.Errorf("copy settings: %w", err)
	}
	return app.Copy, nil
}

// discard deletes what a failed reconstruction left committed.
// Failures are logged; the original error is what the caller sees.
func (s *FloorCopyService) discard(ctx context.Context, recon *domain.Reconstruction) {
	ids := append([]domain.ElementID{}, recon.Scaffolding...)
	if recon.Floor != "" {
		ids = append(ids, recon.Floor)
	}
	if len(ids) == 0 {
		return
	}

	err := withScope(ctx, s.doc, "Discard partial copy", func() error {
		for _, id := range ids {
			if err := s.doc.Delete(ctx, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Warn("could not discard partial copy: %v", err)
	}
}
