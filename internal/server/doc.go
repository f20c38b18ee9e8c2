// Package server implements the MCP (Model Context Protocol) server for
// pixel search tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Color Operations:
//   - image_sample_color: Get color at pixel
//
// Search Operations:
//   - image_pixel_search: First pixel matching a color, in one of eight scan orders
//   - image_match_preview: Zoomed crop around a pixel
//
// # Image Caching
//
// Images are decoded once per path and kept, together with their ARGB
// search buffer, for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string. Search validation errors start with the
//     pixelsearch status code, e.g. "status -1002: invalid tolerance: ..."
//
// A search that completes without a match is not an error: the result
// carries found=false and status -1.
package server
