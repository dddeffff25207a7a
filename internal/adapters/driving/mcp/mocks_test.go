package mcp

import (
	"context"

	"github.com/custodia-labs/floorcopy/internal/core/domain"
	"github.com/custodia-labs/floorcopy/internal/core/ports/driven"
)

// mockFloorCopyService is a mock implementation of driving.FloorCopyService.
type mockFloorCopyService struct {
	result *domain.CopyResult
	err    error
	copied []domain.ElementID
}

func (m *mockFloorCopyService) Copy(_ context.Context, floorID domain.ElementID) (*domain.CopyResult, error) {
	m.copied = append(m.copied, floorID)
	return m.result, m.err
}

func (m *mockFloorCopyService) CopySelected(_ context.Context, _ driven.Selection) (*domain.CopyResult, error) {
	return m.result, m.err
}

// mockFloorSource is a mock implementation of FloorSource.
type mockFloorSource struct {
	floors   []domain.Floor
	openings map[domain.ElementID][]domain.Opening
	levels   map[domain.ElementID]domain.Level
	err      error
}

func (m *mockFloorSource) ListFloors(_ context.Context) ([]domain.Floor, error) {
	return m.floors, m.err
}

func (m *mockFloorSource) Floor(_ context.Context, id domain.ElementID) (*domain.Floor, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.floors {
		if m.floors[i].ID == id {
			return &m.floors[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockFloorSource) Openings(_ context.Context, floorID domain.ElementID) ([]domain.Opening, error) {
	return m.openings[floorID], nil
}

func (m *mockFloorSource) Level(_ context.Context, id domain.ElementID) (*domain.Level, error) {
	level, ok := m.levels[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &level, nil
}

func sampleFloors() *mockFloorSource {
	hole := domain.CurveLoop{
		domain.NewLine(domain.XYZ{X: 2, Y: 2}, domain.XYZ{X: 4, Y: 2}),
		domain.NewLine(domain.XYZ{X: 4, Y: 2}, domain.XYZ{X: 4, Y: 4}),
		domain.NewLine(domain.XYZ{X: 4, Y: 4}, domain.XYZ{X: 2, Y: 4}),
		domain.NewLine(domain.XYZ{X: 2, Y: 4}, domain.XYZ{X: 2, Y: 2}),
	}
	return &mockFloorSource{
		floors: []domain.Floor{
			{ID: "f1", Name: "Deck", LevelID: "l1", Offset: 0.5, Structural: true},
			{ID: "f2", Name: "Scratch", LevelID: "l1", Temporary: true},
		},
		openings: map[domain.ElementID][]domain.Opening{
			"f1": {{ID: "o1", HostID: "f1", Loop: hole}},
		},
		levels: map[domain.ElementID]domain.Level{
			"l1": {ID: "l1", Name: "Ground"},
		},
	}
}
