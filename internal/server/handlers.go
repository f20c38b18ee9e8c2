package server

import (
	"encoding/json"
	"fmt"
	"image"
	"time"

	"github.com/ironsheep/pixel-search-mcp/internal/imaging"
	"github.com/ironsheep/pixel-search-mcp/internal/pixelsearch"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_pixel_search").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Debug("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Color Operations
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	// Search Operations
	case "image_pixel_search":
		return s.handleImagePixelSearch(args)
	case "image_match_preview":
		return s.handleImageMatchPreview(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Color Operation Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	buf, err := s.cache.LoadBuffer(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColorLocked(buf, a.X, a.Y)
}

// === Search Operation Handlers ===

type imagePixelSearchArgs struct {
	Path      string `json:"path"`
	Color     string `json:"color"`
	Direction *int   `json:"direction,omitempty"`
	Tolerance int    `json:"tolerance"`
	X1        *int   `json:"x1,omitempty"`
	Y1        *int   `json:"y1,omitempty"`
	X2        *int   `json:"x2,omitempty"`
	Y2        *int   `json:"y2,omitempty"`
}

// region returns the search rectangle, nil when no bound was given. Any
// missing bound defaults to the matching image edge.
func (a *imagePixelSearchArgs) region(width, height int) *image.Rectangle {
	if a.X1 == nil && a.Y1 == nil && a.X2 == nil && a.Y2 == nil {
		return nil
	}
	r := image.Rect(0, 0, width, height)
	if a.X1 != nil {
		r.Min.X = *a.X1
	}
	if a.Y1 != nil {
		r.Min.Y = *a.Y1
	}
	if a.X2 != nil {
		r.Max.X = *a.X2
	}
	if a.Y2 != nil {
		r.Max.Y = *a.Y2
	}
	return &r
}

// PixelSearchResult is the outcome of image_pixel_search.
//
// Status follows pixelsearch status codes: 0 found, -1 not found.
type PixelSearchResult struct {
	Found     bool                 `json:"found"`
	X         int                  `json:"x"`
	Y         int                  `json:"y"`
	Status    int                  `json:"status"`
	Direction string               `json:"direction"`
	Color     *imaging.ColorResult `json:"color,omitempty"`
}

func (s *Server) handleImagePixelSearch(args json.RawMessage) (interface{}, error) {
	var a imagePixelSearchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	target, err := imaging.ParseColor(a.Color)
	if err != nil {
		return nil, err
	}

	dir := pixelsearch.TopLeftRows
	if a.Direction != nil {
		if dir, err = pixelsearch.ParseDirection(*a.Direction); err != nil {
			return nil, fmt.Errorf("status %d: %w", pixelsearch.StatusInvalidDirection, err)
		}
	}

	buf, err := s.cache.LoadBuffer(a.Path)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := pixelsearch.SearchSource(buf, target, pixelsearch.Options{
		Direction: dir,
		Tolerance: a.Tolerance,
		Region:    a.region(buf.Width(), buf.Height()),
	})
	status := pixelsearch.StatusOf(res, err)
	s.logger.Debug("pixel search",
		"path", a.Path,
		"target", fmt.Sprintf("0x%08X", target),
		"direction", dir.String(),
		"tolerance", a.Tolerance,
		"status", status,
		"elapsed", time.Since(start),
	)
	if err != nil {
		return nil, fmt.Errorf("status %d: %w", status, err)
	}

	out := &PixelSearchResult{
		Found:     res.Found,
		X:         res.X,
		Y:         res.Y,
		Status:    status,
		Direction: dir.String(),
	}
	if res.Found {
		if out.Color, err = imaging.SampleColorLocked(buf, res.X, res.Y); err != nil {
			return nil, err
		}
	}
	return out, nil
}

type imageMatchPreviewArgs struct {
	Path   string   `json:"path"`
	X      int      `json:"x"`
	Y      int      `json:"y"`
	Radius *int     `json:"radius,omitempty"`
	Scale  *float64 `json:"scale,omitempty"`
}

func (s *Server) handleImageMatchPreview(args json.RawMessage) (interface{}, error) {
	var a imageMatchPreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	radius, scale := 8, 8.0
	if a.Radius != nil {
		radius = *a.Radius
	}
	if a.Scale != nil {
		scale = *a.Scale
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.MatchPreview(img, a.X, a.Y, radius, scale)
}
