// Package server implements the MCP (Model Context Protocol) server for color tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the color engine
// through the MCP protocol. Each tool is a thin handler: it parses color
// literals, calls into the colorspace, palette or access packages, and
// formats the result.
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
// Parsing and Conversion:
//   - color_parse: Detect the literal's format and decode it
//   - color_convert: Express a color in one model, or all of them
//
// Palette Generation:
//   - color_harmony: Complementary, analogous, triadic, tetradic, split-complementary
//   - color_mix: Interpolate two colors in RGB, linear RGB, Lab, Luv, HCL or HSV
//   - color_blend: Layer blend modes (multiply, screen, overlay, ...)
//
// Accessibility:
//   - color_contrast: WCAG contrast ratio and AA/AAA levels
//   - color_accessible: Nearest color meeting a contrast ratio
//   - color_simulate_colorblind: Color-vision deficiency simulation
//
// Named Colors and Palettes:
//   - color_nearest_name: Closest CSS color or palette swatch
//   - color_palettes: List curated palettes
//   - color_palette: Swatches of one palette
//
// # Shared State
//
// The CSS name table, the parser and the palette catalog are built once by
// New and only read afterwards. Requests are handled one at a time in input
// order.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string, e.g. `parse color "rgb(300, 0, 0)": red out of range: "300"`
//
// # Usage
//
//	cfg, err := server.ParseEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	srv := server.New(cfg, cfg.NewLogger(os.Stderr))
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
