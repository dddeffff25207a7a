package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/floorcopy/internal/core/domain"
)

const uriScheme = "floorcopy://"

// floorDetail is the payload of a single floor resource.
type floorDetail struct {
	FloorOutput
	Structural bool               `json:"structural"`
	Boundary   domain.CurveLoop   `json:"boundary"`
	Holes      []domain.CurveLoop `json:"holes,omitempty"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "floors",
		Name:        "floors",
		Description: "Floors of the open building model",
		MIMEType:    "application/json",
	}, s.handleFloorsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "floors/{floorId}",
		Name:        "floor",
		Description: "Boundary and openings of a single floor",
		MIMEType:    "application/json",
	}, s.handleFloorResource)
}

func (s *Server) handleFloorsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	infos, err := s.floorInfos(ctx)
	if err != nil {
		return nil, err
	}
	return jsonResult(req.Params.URI, infos)
}

func (s *Server) handleFloorResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Floors == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	floorID := extractFloorID(req.Params.URI)
	if floorID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	floor, err := s.ports.Floors.Floor(ctx, domain.ElementID(floorID))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting floor: %w", err)
	}

	info, err := s.floorInfo(ctx, floor)
	if err != nil {
		return nil, err
	}
	openings, err := s.ports.Floors.Openings(ctx, floor.ID)
	if err != nil {
		return nil, fmt.Errorf("listing openings: %w", err)
	}

	detail := floorDetail{
		FloorOutput: info,
		Structural:  floor.Structural,
		Boundary:    floor.Boundary,
	}
	for i := range openings {
		detail.Holes = append(detail.Holes, openings[i].Loop)
	}
	return jsonResult(req.Params.URI, detail)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractFloorID extracts the floor ID from a URI like floorcopy://floors/{floorId}.
func extractFloorID(uri string) string {
	const prefix = uriScheme + "floors/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
