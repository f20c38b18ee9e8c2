package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func intProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and search buffer stride.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Color Operations
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate, including the packed ARGB word usable as a search target.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x":    intProperty("X coordinate (0-based, from left)"),
					"y":    intProperty("Y coordinate (0-based, from top)"),
				},
				"required": []string{"path", "x", "y"},
			},
		},

		// Search Operations
		{
			Name: "image_pixel_search",
			Description: "Find the first pixel matching a color, scanning in one of eight orders. " +
				"Directions: 1 rows from top-left, 2 rows from bottom-left, 3 rows from bottom-right, " +
				"4 rows from top-right, 5-8 the same corners scanning columns. Alpha is ignored.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Target color: #RRGGBB, #RGB, #AARRGGBB, 0xRRGGBB or decimal",
					},
					"direction": map[string]interface{}{
						"type":        "integer",
						"description": "Traversal order 1-8. Default 1",
						"minimum":     1,
						"maximum":     8,
						"default":     1,
					},
					"tolerance": map[string]interface{}{
						"type":        "integer",
						"description": "Per-channel tolerance 0-255. Default 0 (exact match)",
						"minimum":     0,
						"maximum":     255,
						"default":     0,
					},
					"x1": intProperty("Optional region left edge (inclusive)"),
					"y1": intProperty("Optional region top edge (inclusive)"),
					"x2": intProperty("Optional region right edge (exclusive)"),
					"y2": intProperty("Optional region bottom edge (exclusive)"),
				},
				"required": []string{"path", "color"},
			},
		},
		{
			Name:        "image_match_preview",
			Description: "Return a zoomed PNG crop centred on a pixel, e.g. to confirm a search match.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x":    intProperty("X coordinate of the centre pixel"),
					"y":    intProperty("Y coordinate of the centre pixel"),
					"radius": map[string]interface{}{
						"type":        "integer",
						"description": "Pixels to include on each side of the centre. Default 8",
						"default":     8,
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Enlargement factor. Default 8.0",
						"default":     8.0,
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
