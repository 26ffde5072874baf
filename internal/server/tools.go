package server

import (
	"github.com/ironsheep/color-tools-mcp/internal/access"
	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
	"github.com/ironsheep/color-tools-mcp/internal/palette"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

const colorInputDescription = "Color literal: #RGB, #RGBA, #RRGGBB, #RRGGBBAA, rgb()/rgba(), hsl()/hsla(), hsb()/hsv(), cmyk() or a CSS color name"

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	formatProperty := map[string]interface{}{
		"type":        "string",
		"description": "Output model for returned colors. Default hex",
		"enum":        enumOf(colorspace.Models()),
		"default":     "hex",
	}

	return []Tool{
		// Parsing and conversion
		{
			Name:        "color_parse",
			Description: "Parse a color literal and report the detected format, its RGBA channels and hex form.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": map[string]interface{}{
						"type":        "string",
						"description": colorInputDescription,
					},
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_convert",
			Description: "Convert a color to another model (hex, rgb, hsl, hsb, cmyk, lab, xyz), or to every model at once with \"all\".",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": map[string]interface{}{
						"type":        "string",
						"description": colorInputDescription,
					},
					"to": map[string]interface{}{
						"type":        "string",
						"description": "Target model, or \"all\" for every model plus the CSS name when one matches exactly. Default all",
						"enum":        append(enumOf(colorspace.Models()), "all"),
						"default":     "all",
					},
				},
				"required": []string{"color"},
			},
		},

		// Palette generation
		{
			Name:        "color_harmony",
			Description: "Generate a color harmony by rotating the hue at constant saturation and lightness. The base color is always first.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": map[string]interface{}{
						"type":        "string",
						"description": colorInputDescription,
					},
					"type": map[string]interface{}{
						"type":        "string",
						"description": "Harmony type",
						"enum":        enumOf(palette.HarmonyKinds()),
					},
					"format": formatProperty,
				},
				"required": []string{"color", "type"},
			},
		},
		{
			Name:        "color_mix",
			Description: "Interpolate between two colors. Ratio is the fraction of the second color: 0 returns the first, 1 the second.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color1": map[string]interface{}{
						"type":        "string",
						"description": colorInputDescription,
					},
					"color2": map[string]interface{}{
						"type":        "string",
						"description": colorInputDescription,
					},
					"ratio": map[string]interface{}{
						"type":        "number",
						"description": "Fraction of color2, 0 to 1. Default 0.5",
						"minimum":     0,
						"maximum":     1,
						"default":     0.5,
					},
					"mode": map[string]interface{}{
						"type":        "string",
						"description": "Interpolation space. Default is the server's configured mix mode",
						"enum":        enumOf(palette.MixModes()),
					},
					"format": formatProperty,
				},
				"required": []string{"color1", "color2"},
			},
		},
		{
			Name:        "color_blend",
			Description: "Composite a layer color over a base color with a blend mode, then fade it in by opacity.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"base": map[string]interface{}{
						"type":        "string",
						"description": colorInputDescription,
					},
					"layer": map[string]interface{}{
						"type":        "string",
						"description": colorInputDescription,
					},
					"mode": map[string]interface{}{
						"type":        "string",
						"description": "Blend mode",
						"enum":        enumOf(palette.BlendModes()),
					},
					"opacity": map[string]interface{}{
						"type":        "number",
						"description": "Layer opacity, 0 to 1. Default 1",
						"minimum":     0,
						"maximum":     1,
						"default":     1.0,
					},
					"format": formatProperty,
				},
				"required": []string{"base", "layer", "mode"},
			},
		},

		// Accessibility
		{
			Name:        "color_contrast",
			Description: "Compute the WCAG 2.x contrast ratio between a foreground and background color and report which AA/AAA levels pass.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"foreground": map[string]interface{}{
						"type":        "string",
						"description": colorInputDescription,
					},
					"background": map[string]interface{}{
						"type":        "string",
						"description": colorInputDescription,
					},
				},
				"required": []string{"foreground", "background"},
			},
		},
		{
			Name:        "color_accessible",
			Description: "Find the color nearest the target, by HSL lightness, that meets a minimum contrast ratio against the background. Hue and saturation are kept.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": map[string]interface{}{
						"type":        "string",
						"description": colorInputDescription,
					},
					"background": map[string]interface{}{
						"type":        "string",
						"description": colorInputDescription,
					},
					"min_ratio": map[string]interface{}{
						"type":        "number",
						"description": "Required contrast ratio, 1 to 21. Default is the server's configured minimum (4.5 unless changed)",
						"minimum":     1,
						"maximum":     access.MaxRatio,
					},
				},
				"required": []string{"color", "background"},
			},
		},
		{
			Name:        "color_simulate_colorblind",
			Description: "Approximate how a color appears with protanopia, deuteranopia, tritanopia and achromatopsia.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": map[string]interface{}{
						"type":        "string",
						"description": colorInputDescription,
					},
					"deficiency": map[string]interface{}{
						"type":        "string",
						"description": "Simulate only this deficiency. Default all",
						"enum":        enumOf(access.Deficiencies()),
					},
				},
				"required": []string{"color"},
			},
		},

		// Named colors and palettes
		{
			Name:        "color_nearest_name",
			Description: "Find the perceptually closest named color (CIEDE2000) among the CSS colors or a curated palette.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": map[string]interface{}{
						"type":        "string",
						"description": colorInputDescription,
					},
					"palette": map[string]interface{}{
						"type":        "string",
						"description": "Where to look: \"css\" or a palette name from color_palettes. Default css",
						"default":     "css",
					},
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_palettes",
			Description: "List the curated palettes available to color_palette and color_nearest_name.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "color_palette",
			Description: "Return the swatches of a curated palette, optionally limited to one family such as \"blue\" in the Tailwind palette.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Palette name from color_palettes",
					},
					"family": map[string]interface{}{
						"type":        "string",
						"description": "Optional swatch family prefix, e.g. \"blue\" for blue-50 through blue-950",
					},
					"format": formatProperty,
				},
				"required": []string{"name"},
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

func enumOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
