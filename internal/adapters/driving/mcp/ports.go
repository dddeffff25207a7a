package mcp

import (
	"context"

	"github.com/custodia-labs/floorcopy/internal/core/domain"
	"github.com/custodia-labs/floorcopy/internal/core/ports/driving"
)

// FloorSource reads the floors of the open model.
type FloorSource interface {
	ListFloors(ctx context.Context) ([]domain.Floor, error)
	Floor(ctx context.Context, id domain.ElementID) (*domain.Floor, error)
	Openings(ctx context.Context, floorID domain.ElementID) ([]domain.Opening, error)
	Level(ctx context.Context, id domain.ElementID) (*domain.Level, error)
}

// Ports aggregates everything the MCP server drives.
type Ports struct {
	// FloorCopy duplicates floors.
	FloorCopy driving.FloorCopyService

	// Floors exposes the model. Optional; without it the floor
	// resources are empty and list_floors returns nothing.
	Floors FloorSource
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.FloorCopy == nil {
		return ErrMissingFloorCopyService
	}
	return nil
}
