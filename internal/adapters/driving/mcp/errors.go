// Package mcp provides an MCP (Model Context Protocol) server adapter for floorcopy.
// It lets AI assistants list the floors of a model and duplicate them.
package mcp

import "errors"

// ErrMissingFloorCopyService is returned when the floor copy service is not provided.
var ErrMissingFloorCopyService = errors.New("mcp: floor copy service is required")
