package modelfile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/floorcopy/internal/core/domain"
	"github.com/custodia-labs/floorcopy/internal/core/ports/driven"
	"github.com/custodia-labs/floorcopy/internal/logger"
)

// idNamespace seeds the name-derived element IDs.
var idNamespace = uuid.MustParse("6f1c2d7e-9a43-4b0e-8d55-3c1f0b7a2e91")

// Target is a document that accepts authored elements.
// The in-memory host document satisfies it.
type Target interface {
	driven.ElementQuery
	driven.ElementEditor
	driven.Transactions

	AddLevel(ctx context.Context, level domain.Level) (domain.Level, error)
	AddFloorType(ctx context.Context, ft domain.FloorType) (domain.FloorType, error)
	AddFloor(ctx context.Context, floor domain.Floor, openings ...domain.CurveLoop) (*domain.Floor, error)
}

// Result counts what an import wrote.
type Result struct {
	Levels     int
	FloorTypes int
	Floors     int
	Openings   int

	// Replaced counts floors that existed from an earlier import.
	Replaced int
}

// ElementID returns the ID an import assigns to a named element of kind
// "level", "floor_type" or "floor".
func ElementID(kind, name string) domain.ElementID {
	return domain.ElementID(uuid.NewSHA1(idNamespace, []byte(kind+"/"+name)).String())
}

type floorPlan struct {
	floor domain.Floor
	holes []domain.CurveLoop
}

// Import writes the model into doc. Every outline is converted before the
// document is touched, so a malformed file changes nothing. Floors that an
// earlier import created are deleted and recreated; elements missing from
// the file are left alone.
func Import(ctx context.Context, doc Target, m *Model) (*Result, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil model", domain.ErrInvalidInput)
	}

	levels := make(map[string]domain.Level, len(m.Levels))
	for i, l := range m.Levels {
		if l.Name == "" {
			return nil, fmt.Errorf("%w: level %d has no name", domain.ErrInvalidInput, i)
		}
		if _, dup := levels[l.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate level %q", domain.ErrInvalidInput, l.Name)
		}
		levels[l.Name] = domain.Level{ID: ElementID("level", l.Name), Name: l.Name, Elevation: l.Elevation}
	}

	types := make(map[string]domain.FloorType, len(m.FloorTypes))
	for i, ft := range m.FloorTypes {
		if ft.Name == "" {
			return nil, fmt.Errorf("%w: floor type %d has no name", domain.ErrInvalidInput, i)
		}
		if _, dup := types[ft.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate floor type %q", domain.ErrInvalidInput, ft.Name)
		}
		if ft.Thickness <= 0 {
			return nil, fmt.Errorf("%w: floor type %q needs a positive thickness", domain.ErrInvalidInput, ft.Name)
		}
		types[ft.Name] = domain.FloorType{ID: ElementID("floor_type", ft.Name), Name: ft.Name, Thickness: ft.Thickness}
	}

	plans, err := planFloors(m.Floors, levels, types)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for _, l := range m.Levels {
		if _, err := doc.AddLevel(ctx, levels[l.Name]); err != nil {
			return res, fmt.Errorf("add level %q: %w", l.Name, err)
		}
		res.Levels++
	}
	for _, ft := range m.FloorTypes {
		if _, err := doc.AddFloorType(ctx, types[ft.Name]); err != nil {
			return res, fmt.Errorf("add floor type %q: %w", ft.Name, err)
		}
		res.FloorTypes++
	}

	replaced, err := removeExisting(ctx, doc, plans)
	if err != nil {
		return res, err
	}
	res.Replaced = replaced

	for _, p := range plans {
		if _, err := doc.AddFloor(ctx, p.floor, p.holes...); err != nil {
			return res, fmt.Errorf("add floor %q: %w", p.floor.Name, err)
		}
		res.Floors++
		res.Openings += len(p.holes)
	}

	logger.Debug("imported %d levels, %d floor types, %d floors (%d replaced), %d openings",
		res.Levels, res.FloorTypes, res.Floors, res.Replaced, res.Openings)
	return res, nil
}

func planFloors(floors []Floor, levels map[string]domain.Level, types map[string]domain.FloorType) ([]floorPlan, error) {
	seen := make(map[string]bool, len(floors))
	plans := make([]floorPlan, 0, len(floors))
	for i, f := range floors {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: floor %d has no name", domain.ErrInvalidInput, i)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("%w: duplicate floor %q", domain.ErrInvalidInput, f.Name)
		}
		seen[f.Name] = true

		level, ok := levels[f.Level]
		if !ok {
			return nil, fmt.Errorf("floor %q: level %q: %w", f.Name, f.Level, domain.ErrNotFound)
		}
		ft, ok := types[f.Type]
		if !ok {
			return nil, fmt.Errorf("floor %q: floor type %q: %w", f.Name, f.Type, domain.ErrNotFound)
		}

		z := level.Elevation + f.Offset
		boundary, err := f.Boundary.Loop(z)
		if err != nil {
			return nil, fmt.Errorf("floor %q boundary: %w", f.Name, err)
		}
		holes := make([]domain.CurveLoop, 0, len(f.Holes))
		for j, h := range f.Holes {
			loop, err := h.Loop(z)
			if err != nil {
				return nil, fmt.Errorf("floor %q hole %d: %w", f.Name, j, err)
			}
			holes = append(holes, loop)
		}

		plans = append(plans, floorPlan{
			floor: domain.Floor{
				ID:         ElementID("floor", f.Name),
				Name:       f.Name,
				TypeID:     ft.ID,
				LevelID:    level.ID,
				Structural: f.Structural,
				Boundary:   boundary,
			},
			holes: holes,
		})
	}
	return plans, nil
}

// removeExisting deletes previously imported floors in one scope.
func removeExisting(ctx context.Context, doc Target, plans []floorPlan) (int, error) {
	var existing []domain.ElementID
	for _, p := range plans {
		_, err := doc.Floor(ctx, p.floor.ID)
		switch {
		case err == nil:
			existing = append(existing, p.floor.ID)
		case errors.Is(err, domain.ErrNotFound):
		default:
			return 0, fmt.Errorf("look up floor %q: %w", p.floor.Name, err)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}

	if err := doc.BeginScope(ctx, "Reimport floors"); err != nil {
		return 0, fmt.Errorf("begin reimport: %w", err)
	}
	for _, id := range existing {
		if err := doc.Delete(ctx, id); err != nil {
			if rbErr := doc.RollbackScope(ctx); rbErr != nil {
				err = errors.Join(err, rbErr)
			}
			return 0, fmt.Errorf("delete floor %s: %w", id, err)
		}
	}
	status, err := doc.CommitScope(ctx)
	if err != nil {
		return 0, fmt.Errorf("commit reimport: %w", err)
	}
	if status != domain.CommitCommitted {
		return 0, fmt.Errorf("reimport %s: %w", status, domain.ErrCommitFailed)
	}
	return len(existing), nil
}
