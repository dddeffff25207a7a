package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/floorcopy/internal/core/domain"
)

// ListFloorsInput is the input schema for the list_floors tool.
type ListFloorsInput struct {
	IncludeTemporary bool `json:"include_temporary,omitempty" jsonschema:"also list scaffolding floors kept from boolean copies"`
}

// ListFloorsOutput is the output schema for the list_floors tool.
type ListFloorsOutput struct {
	Floors []FloorOutput `json:"floors"`
	Count  int           `json:"count"`
}

// FloorOutput describes one floor.
type FloorOutput struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Level     string  `json:"level,omitempty"`
	Offset    float64 `json:"offset"`
	Openings  int     `json:"openings"`
	Temporary bool    `json:"temporary,omitempty"`
}

// CopyFloorInput is the input schema for the copy_floor tool.
type CopyFloorInput struct {
	FloorID string `json:"floor_id" jsonschema:"the ID of the floor to duplicate"`
}

// CopyFloorOutput is the output schema for the copy_floor tool.
type CopyFloorOutput struct {
	Source       string   `json:"source"`
	Floor        string   `json:"floor"`
	Strategy     string   `json:"strategy"`
	Offset       float64  `json:"offset"`
	Openings     []string `json:"openings"`
	Subtractions int      `json:"subtractions,omitempty"`
	Kept         []string `json:"kept,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_floors",
		Description: "List the floors of the open building model",
	}, s.handleListFloors)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "copy_floor",
		Description: "Duplicate a floor, including its openings, with the configured strategy",
	}, s.handleCopyFloor)
}

func (s *Server) handleListFloors(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListFloorsInput,
) (*mcp.CallToolResult, ListFloorsOutput, error) {
	floors, err := s.floorInfos(ctx)
	if err != nil {
		return nil, ListFloorsOutput{}, err
	}

	output := ListFloorsOutput{Floors: make([]FloorOutput, 0, len(floors))}
	for _, f := range floors {
		if f.Temporary && !input.IncludeTemporary {
			continue
		}
		output.Floors = append(output.Floors, f)
	}
	output.Count = len(output.Floors)

	return nil, output, nil
}

func (s *Server) handleCopyFloor(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CopyFloorInput,
) (*mcp.CallToolResult, CopyFloorOutput, error) {
	if input.FloorID == "" {
		return nil, CopyFloorOutput{}, fmt.Errorf("%w: floor_id is required", domain.ErrInvalidInput)
	}

	if err := s.copies.Wait(ctx); err != nil {
		return nil, CopyFloorOutput{}, fmt.Errorf("waiting for copy slot: %w", err)
	}

	result, err := s.ports.FloorCopy.Copy(ctx, domain.ElementID(input.FloorID))
	if err != nil {
		return nil, CopyFloorOutput{}, err
	}

	return nil, CopyFloorOutput{
		Source:       result.Source.String(),
		Floor:        result.Floor.String(),
		Strategy:     string(result.Strategy),
		Offset:       result.Offset,
		Openings:     idStrings(result.Openings),
		Subtractions: result.Subtractions,
		Kept:         idStrings(result.Kept),
	}, nil
}

// floorInfos describes every floor in the model, scaffolding included.
func (s *Server) floorInfos(ctx context.Context) ([]FloorOutput, error) {
	if s.ports.Floors == nil {
		return []FloorOutput{}, nil
	}

	floors, err := s.ports.Floors.ListFloors(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing floors: %w", err)
	}

	infos := make([]FloorOutput, len(floors))
	for i := range floors {
		info, err := s.floorInfo(ctx, &floors[i])
		if err != nil {
			return nil, err
		}
		infos[i] = info
	}
	return infos, nil
}

func (s *Server) floorInfo(ctx context.Context, f *domain.Floor) (FloorOutput, error) {
	openings, err := s.ports.Floors.Openings(ctx, f.ID)
	if err != nil {
		return FloorOutput{}, fmt.Errorf("listing openings: %w", err)
	}

	info := FloorOutput{
		ID:        f.ID.String(),
		Name:      f.Name,
		Offset:    f.Offset,
		Openings:  len(openings),
		Temporary: f.Temporary,
	}
	if level, err := s.ports.Floors.Level(ctx, f.LevelID); err == nil {
		info.Level = level.Name
	}
	return info, nil
}

func idStrings(ids []domain.ElementID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
