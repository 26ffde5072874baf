package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ironsheep/color-tools-mcp/internal/access"
	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
	"github.com/ironsheep/color-tools-mcp/internal/palette"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_parse", "color_mix").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// cssSource names the CSS color table in color_nearest_name.
const cssSource = "css"

var errUnknownPalette = errors.New("unknown palette")

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
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Parses color literals with the shared parser
//  4. Calls the colorspace, palette or access function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Parsing and conversion
	case "color_parse":
		return s.handleColorParse(args)
	case "color_convert":
		return s.handleColorConvert(args)

	// Palette generation
	case "color_harmony":
		return s.handleColorHarmony(args)
	case "color_mix":
		return s.handleColorMix(args)
	case "color_blend":
		return s.handleColorBlend(args)

	// Accessibility
	case "color_contrast":
		return s.handleColorContrast(args)
	case "color_accessible":
		return s.handleColorAccessible(args)
	case "color_simulate_colorblind":
		return s.handleColorSimulate(args)

	// Named colors and palettes
	case "color_nearest_name":
		return s.handleColorNearestName(args)
	case "color_palettes":
		return s.handleColorPalettes(args)
	case "color_palette":
		return s.handleColorPalette(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// parseColor parses a required color argument. Errors name the argument.
func (s *Server) parseColor(field, input string) (colorspace.Color, error) {
	if strings.TrimSpace(input) == "" {
		return colorspace.Color{}, fmt.Errorf("%s is required", field)
	}
	p, err := s.parser.Parse(input)
	if err != nil {
		return colorspace.Color{}, fmt.Errorf("%s: %w", field, err)
	}
	return p.Color, nil
}

// outputModel resolves an optional format argument, defaulting to hex.
func outputModel(format string) (colorspace.Model, error) {
	if format == "" {
		return colorspace.ModelHex, nil
	}
	return colorspace.ParseModel(format)
}

// colorResult is how every tool reports a produced color.
type colorResult struct {
	Hex   string           `json:"hex"`   // #RRGGBB, or #RRGGBBAA when translucent
	Value string           `json:"value"` // In the requested output model
	RGBA  colorspace.Color `json:"rgba"`
}

func present(c colorspace.Color, m colorspace.Model) (colorResult, error) {
	f, err := colorspace.Convert(c, m)
	if err != nil {
		return colorResult{}, err
	}
	return colorResult{Hex: c.String(), Value: f.Value, RGBA: c}, nil
}

// === Parsing and Conversion Handlers ===

type colorArgs struct {
	Color string `json:"color"`
}

type parseResult struct {
	Input  string            `json:"input"`
	Format colorspace.Format `json:"format"`
	Name   string            `json:"name,omitempty"`
	Hex    string            `json:"hex"`
	RGBA   colorspace.Color  `json:"rgba"`
}

func (s *Server) handleColorParse(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if strings.TrimSpace(a.Color) == "" {
		return nil, errors.New("color is required")
	}
	p, err := s.parser.Parse(a.Color)
	if err != nil {
		return nil, err
	}
	return parseResult{
		Input:  a.Color,
		Format: p.Format,
		Name:   p.Name,
		Hex:    p.Color.String(),
		RGBA:   p.Color,
	}, nil
}

type colorConvertArgs struct {
	Color string `json:"color"`
	To    string `json:"to"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := s.parseColor("color", a.Color)
	if err != nil {
		return nil, err
	}

	if a.To == "" || strings.EqualFold(a.To, "all") {
		return colorspace.Describe(c, s.names)
	}
	m, err := colorspace.ParseModel(a.To)
	if err != nil {
		return nil, err
	}
	return colorspace.Convert(c, m)
}

// === Palette Generation Handlers ===

type colorHarmonyArgs struct {
	Color  string `json:"color"`
	Type   string `json:"type"`
	Format string `json:"format"`
}

type harmonyResult struct {
	Type   palette.HarmonyKind `json:"type"`
	Hues   []float64           `json:"hues"`
	Colors []colorResult       `json:"colors"`
}

func (s *Server) handleColorHarmony(args json.RawMessage) (interface{}, error) {
	var a colorHarmonyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := s.parseColor("color", a.Color)
	if err != nil {
		return nil, err
	}
	kind, err := palette.ParseHarmonyKind(a.Type)
	if err != nil {
		return nil, err
	}
	m, err := outputModel(a.Format)
	if err != nil {
		return nil, err
	}

	colors, err := palette.Harmony(c, kind)
	if err != nil {
		return nil, err
	}
	hues, err := palette.HarmonyHues(colorspace.ToHSL(c).H, kind)
	if err != nil {
		return nil, err
	}

	res := harmonyResult{Type: kind, Hues: make([]float64, len(hues))}
	for i, h := range hues {
		res.Hues[i] = math.Round(h*100) / 100
	}
	for _, hc := range colors {
		cr, err := present(hc, m)
		if err != nil {
			return nil, err
		}
		res.Colors = append(res.Colors, cr)
	}
	return res, nil
}

type colorMixArgs struct {
	Color1 string   `json:"color1"`
	Color2 string   `json:"color2"`
	Ratio  *float64 `json:"ratio"`
	Mode   string   `json:"mode"`
	Format string   `json:"format"`
}

type mixResult struct {
	Mode  palette.MixMode `json:"mode"`
	Ratio float64         `json:"ratio"`
	colorResult
}

func (s *Server) handleColorMix(args json.RawMessage) (interface{}, error) {
	var a colorMixArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c1, err := s.parseColor("color1", a.Color1)
	if err != nil {
		return nil, err
	}
	c2, err := s.parseColor("color2", a.Color2)
	if err != nil {
		return nil, err
	}
	ratio := 0.5
	if a.Ratio != nil {
		ratio = *a.Ratio
	}
	if a.Mode == "" {
		a.Mode = s.cfg.MixMode
	}
	mode, err := palette.ParseMixMode(a.Mode)
	if err != nil {
		return nil, err
	}
	m, err := outputModel(a.Format)
	if err != nil {
		return nil, err
	}

	mixed, err := palette.Mix(c1, c2, ratio, mode)
	if err != nil {
		return nil, err
	}
	cr, err := present(mixed, m)
	if err != nil {
		return nil, err
	}
	return mixResult{Mode: mode, Ratio: ratio, colorResult: cr}, nil
}

type colorBlendArgs struct {
	Base    string   `json:"base"`
	Layer   string   `json:"layer"`
	Mode    string   `json:"mode"`
	Opacity *float64 `json:"opacity"`
	Format  string   `json:"format"`
}

type blendResult struct {
	Mode    palette.BlendMode `json:"mode"`
	Opacity float64           `json:"opacity"`
	colorResult
}

func (s *Server) handleColorBlend(args json.RawMessage) (interface{}, error) {
	var a colorBlendArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	base, err := s.parseColor("base", a.Base)
	if err != nil {
		return nil, err
	}
	layer, err := s.parseColor("layer", a.Layer)
	if err != nil {
		return nil, err
	}
	mode, err := palette.ParseBlendMode(a.Mode)
	if err != nil {
		return nil, err
	}
	opacity := 1.0
	if a.Opacity != nil {
		opacity = *a.Opacity
	}
	m, err := outputModel(a.Format)
	if err != nil {
		return nil, err
	}

	out, err := palette.Composite(base, layer, opacity, mode)
	if err != nil {
		return nil, err
	}
	cr, err := present(out, m)
	if err != nil {
		return nil, err
	}
	return blendResult{Mode: mode, Opacity: opacity, colorResult: cr}, nil
}

// === Accessibility Handlers ===

type colorContrastArgs struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

type contrastResult struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
	access.Contrast
}

func (s *Server) handleColorContrast(args json.RawMessage) (interface{}, error) {
	var a colorContrastArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	fg, err := s.parseColor("foreground", a.Foreground)
	if err != nil {
		return nil, err
	}
	bg, err := s.parseColor("background", a.Background)
	if err != nil {
		return nil, err
	}
	return contrastResult{
		Foreground: fg.String(),
		Background: bg.String(),
		Contrast:   access.Evaluate(fg, bg),
	}, nil
}

type colorAccessibleArgs struct {
	Color      string  `json:"color"`
	Background string  `json:"background"`
	MinRatio   float64 `json:"min_ratio"`
}

type accessibleResult struct {
	Color      string           `json:"color"`
	Original   string           `json:"original"`
	Background string           `json:"background"`
	MinRatio   float64          `json:"min_ratio"`
	Direction  access.Direction `json:"direction"`
	Steps      int              `json:"steps"`
	Adjusted   bool             `json:"adjusted"`
	Contrast   access.Contrast  `json:"contrast"`
}

func (s *Server) handleColorAccessible(args json.RawMessage) (interface{}, error) {
	var a colorAccessibleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	target, err := s.parseColor("color", a.Color)
	if err != nil {
		return nil, err
	}
	bg, err := s.parseColor("background", a.Background)
	if err != nil {
		return nil, err
	}
	if a.MinRatio == 0 {
		a.MinRatio = s.cfg.MinContrast
	}

	res, err := access.FindAccessible(target, bg, a.MinRatio)
	if err != nil {
		return nil, err
	}
	return accessibleResult{
		Color:      res.Color.String(),
		Original:   res.Original.String(),
		Background: bg.String(),
		MinRatio:   a.MinRatio,
		Direction:  res.Direction,
		Steps:      res.Steps,
		Adjusted:   res.Adjusted,
		Contrast:   res.Contrast,
	}, nil
}

type colorSimulateArgs struct {
	Color      string `json:"color"`
	Deficiency string `json:"deficiency"`
}

type simulateResult struct {
	Original    string                       `json:"original"`
	Simulations map[access.Deficiency]string `json:"simulations"`
}

func (s *Server) handleColorSimulate(args json.RawMessage) (interface{}, error) {
	var a colorSimulateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := s.parseColor("color", a.Color)
	if err != nil {
		return nil, err
	}

	res := simulateResult{Original: c.String(), Simulations: map[access.Deficiency]string{}}
	if a.Deficiency != "" {
		d, err := access.ParseDeficiency(a.Deficiency)
		if err != nil {
			return nil, err
		}
		sim, err := access.SimulateOne(c, d)
		if err != nil {
			return nil, err
		}
		res.Simulations[d] = sim.String()
		return res, nil
	}

	for d, sim := range access.Simulate(c) {
		res.Simulations[d] = sim.String()
	}
	return res, nil
}

// === Named Color and Palette Handlers ===

type colorNearestNameArgs struct {
	Color   string `json:"color"`
	Palette string `json:"palette"`
}

type nearestResult struct {
	Source   string  `json:"source"`
	Name     string  `json:"name"`
	Hex      string  `json:"hex"`
	Distance float64 `json:"distance"`
	Exact    bool    `json:"exact"`
}

func (s *Server) handleColorNearestName(args json.RawMessage) (interface{}, error) {
	var a colorNearestNameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := s.parseColor("color", a.Color)
	if err != nil {
		return nil, err
	}

	source := strings.ToLower(strings.TrimSpace(a.Palette))
	if source == "" {
		source = cssSource
	}
	var candidates []colorspace.NamedColor
	if source == cssSource {
		candidates = s.names.Entries()
	} else {
		p, ok := s.catalog.Palette(source)
		if !ok {
			return nil, fmt.Errorf("%w: %q", errUnknownPalette, a.Palette)
		}
		candidates = p.Named()
	}

	match, err := palette.Nearest(c, candidates)
	if err != nil {
		return nil, err
	}
	return nearestResult{
		Source:   source,
		Name:     match.Name,
		Hex:      match.Color.String(),
		Distance: math.Round(match.Distance*10000) / 10000,
		Exact:    match.Exact,
	}, nil
}

type paletteSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Size        int    `json:"size"`
}

func (s *Server) handleColorPalettes(args json.RawMessage) (interface{}, error) {
	var out []paletteSummary
	for _, name := range s.catalog.Names() {
		p, _ := s.catalog.Palette(name)
		out = append(out, paletteSummary{Name: p.Name, Description: p.Description, Size: len(p.Swatches)})
	}
	return map[string]interface{}{"palettes": out}, nil
}

type colorPaletteArgs struct {
	Name   string `json:"name"`
	Family string `json:"family"`
	Format string `json:"format"`
}

type swatchResult struct {
	Name string `json:"name"`
	colorResult
}

type paletteResult struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Family      string         `json:"family,omitempty"`
	Swatches    []swatchResult `json:"swatches"`
}

func (s *Server) handleColorPalette(args json.RawMessage) (interface{}, error) {
	var a colorPaletteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	p, ok := s.catalog.Palette(strings.ToLower(strings.TrimSpace(a.Name)))
	if !ok {
		return nil, fmt.Errorf("%w: %q", errUnknownPalette, a.Name)
	}
	m, err := outputModel(a.Format)
	if err != nil {
		return nil, err
	}

	swatches := p.Swatches
	if a.Family != "" {
		swatches = p.Family(a.Family)
		if len(swatches) == 0 {
			return nil, fmt.Errorf("palette %s has no %q family", p.Name, a.Family)
		}
	}

	res := paletteResult{Name: p.Name, Description: p.Description, Family: a.Family}
	for _, sw := range swatches {
		cr, err := present(sw.Color, m)
		if err != nil {
			return nil, err
		}
		res.Swatches = append(res.Swatches, swatchResult{Name: sw.Name, colorResult: cr})
	}
	return res, nil
}
