package colorspace

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Format identifies the syntax a color literal was written in.
type Format string

const (
	FormatHex   Format = "hex"
	FormatRGB   Format = "rgb"
	FormatHSL   Format = "hsl"
	FormatHSB   Format = "hsb"
	FormatCMYK  Format = "cmyk"
	FormatNamed Format = "named"
)

// Parsed is the result of parsing a color literal.
type Parsed struct {
	Color  Color  `json:"color"`
	Format Format `json:"format"`       // Syntax the literal was detected as
	Name   string `json:"name,omitempty"` // Set for named colors
}

// Parser turns color literals into colors.
//
// A Parser holds a reference to a name table and nothing else; it is safe
// for concurrent use.
type Parser struct {
	names *NameTable
	rules []rule
}

// rule is one entry in the detection order: the first rule whose pattern
// matches decides the format.
type rule struct {
	format  Format
	pattern *regexp.Regexp
	parse   func(p *Parser, input string, m []string) (Parsed, error)
}

// errNoMatch lets a rule decline after its pattern matched, handing the
// input on to the next rule.
var errNoMatch = errors.New("no match")

var (
	hexPattern     = regexp.MustCompile(`^#(.*)$`)
	rgbPattern     = regexp.MustCompile(`^rgba?\s*\((.*)\)$`)
	hslPattern     = regexp.MustCompile(`^hsla?\s*\((.*)\)$`)
	hsbPattern     = regexp.MustCompile(`^hs[bv]a?\s*\((.*)\)$`)
	cmykPattern    = regexp.MustCompile(`^cmyk\s*\((.*)\)$`)
	namePattern    = regexp.MustCompile(`^[a-z][a-z _-]*$`)
	bareHexPattern = regexp.MustCompile(`^([0-9a-f]{3}|[0-9a-f]{6}|[0-9a-f]{8})$`)

	componentSep = regexp.MustCompile(`[,\s]+`)
	hexDigits    = regexp.MustCompile(`^[0-9a-f]*$`)
)

// NewParser returns a parser that resolves names against the given table.
// A nil table disables named colors.
func NewParser(names *NameTable) *Parser {
	if names == nil {
		names = NewNameTable(nil)
	}
	return &Parser{
		names: names,
		rules: []rule{
			{FormatHex, hexPattern, (*Parser).parseHex},
			{FormatRGB, rgbPattern, (*Parser).parseRGB},
			{FormatHSL, hslPattern, (*Parser).parseHSL},
			{FormatHSB, hsbPattern, (*Parser).parseHSB},
			{FormatCMYK, cmykPattern, (*Parser).parseCMYK},
			{FormatNamed, namePattern, (*Parser).parseName},
			{FormatHex, bareHexPattern, (*Parser).parseHex},
		},
	}
}

// Parse detects the notation of a color literal and converts it.
//
// Detection order (first match wins, case-insensitive, surrounding
// whitespace ignored):
//  1. "#" hex with 3, 4, 6 or 8 digits
//  2. rgb() / rgba()
//  3. hsl() / hsla()
//  4. hsb() / hsv()
//  5. cmyk()
//  6. a name from the parser's table
//  7. hex digits without "#"
//
// Returns a *ParseError when no rule matches or a component is malformed or
// out of range.
func (p *Parser) Parse(input string) (Parsed, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return Parsed{}, &ParseError{Input: input, Reason: "empty color"}
	}

	for _, r := range p.rules {
		m := r.pattern.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		parsed, err := r.parse(p, input, m)
		if errors.Is(err, errNoMatch) {
			continue
		}
		if err != nil {
			return Parsed{}, err
		}
		parsed.Format = r.format
		return parsed, nil
	}

	return Parsed{}, &ParseError{Input: input, Token: strings.TrimSpace(input), Reason: "unrecognized color format"}
}

func (p *Parser) parseHex(input string, m []string) (Parsed, error) {
	c, err := decodeHex(input, m[1])
	return Parsed{Color: c}, err
}

func (p *Parser) parseName(input string, m []string) (Parsed, error) {
	c, ok := p.names.Lookup(m[0])
	if !ok {
		return Parsed{}, errNoMatch
	}
	return Parsed{Color: c, Name: normalizeName(m[0])}, nil
}

func (p *Parser) parseRGB(input string, m []string) (Parsed, error) {
	comps, alpha, err := splitComponents(input, m[1], 3)
	if err != nil {
		return Parsed{}, err
	}
	var ch [3]uint8
	for i, field := range []string{"red", "green", "blue"} {
		v, err := parseChannel(input, field, comps[i])
		if err != nil {
			return Parsed{}, err
		}
		ch[i] = v
	}
	a, err := parseAlpha(input, alpha)
	if err != nil {
		return Parsed{}, err
	}
	return Parsed{Color: Color{R: ch[0], G: ch[1], B: ch[2], A: a}}, nil
}

func (p *Parser) parseHSL(input string, m []string) (Parsed, error) {
	comps, alpha, err := splitComponents(input, m[1], 3)
	if err != nil {
		return Parsed{}, err
	}
	h, err := parseHue(input, comps[0])
	if err != nil {
		return Parsed{}, err
	}
	s, err := parsePercent(input, "saturation", comps[1])
	if err != nil {
		return Parsed{}, err
	}
	l, err := parsePercent(input, "lightness", comps[2])
	if err != nil {
		return Parsed{}, err
	}
	a, err := parseAlpha(input, alpha)
	if err != nil {
		return Parsed{}, err
	}
	c, err := FromHSL(HSL{H: h, S: s, L: l})
	if err != nil {
		return Parsed{}, rangeParseError(input, comps[0], err)
	}
	c.A = a
	return Parsed{Color: c}, nil
}

func (p *Parser) parseHSB(input string, m []string) (Parsed, error) {
	comps, alpha, err := splitComponents(input, m[1], 3)
	if err != nil {
		return Parsed{}, err
	}
	h, err := parseHue(input, comps[0])
	if err != nil {
		return Parsed{}, err
	}
	s, err := parsePercent(input, "saturation", comps[1])
	if err != nil {
		return Parsed{}, err
	}
	b, err := parsePercent(input, "brightness", comps[2])
	if err != nil {
		return Parsed{}, err
	}
	a, err := parseAlpha(input, alpha)
	if err != nil {
		return Parsed{}, err
	}
	c, err := FromHSB(HSB{H: h, S: s, B: b})
	if err != nil {
		return Parsed{}, rangeParseError(input, comps[0], err)
	}
	c.A = a
	return Parsed{Color: c}, nil
}

func (p *Parser) parseCMYK(input string, m []string) (Parsed, error) {
	comps, alpha, err := splitComponents(input, m[1], 4)
	if err != nil {
		return Parsed{}, err
	}
	if alpha != "" {
		return Parsed{}, &ParseError{Input: input, Token: alpha, Reason: "cmyk does not take an alpha component"}
	}
	var v [4]float64
	for i, field := range []string{"cyan", "magenta", "yellow", "black"} {
		if v[i], err = parsePercent(input, field, comps[i]); err != nil {
			return Parsed{}, err
		}
	}
	c, err := FromCMYK(CMYK{C: v[0], M: v[1], Y: v[2], K: v[3]})
	if err != nil {
		return Parsed{}, rangeParseError(input, m[1], err)
	}
	return Parsed{Color: c}, nil
}

// ParseHex decodes a hex color with or without the leading "#".
func ParseHex(s string) (Color, error) {
	digits := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "#")
	return decodeHex(s, digits)
}

// decodeHex expands 3/4 digit forms by duplicating each digit and decodes
// 6/8 digit forms directly. The fourth byte, when present, is alpha.
func decodeHex(input, digits string) (Color, error) {
	if !hexDigits.MatchString(digits) {
		return Color{}, &ParseError{Input: input, Token: "#" + digits, Reason: "invalid hex digits"}
	}
	switch len(digits) {
	case 3, 4:
		var b strings.Builder
		for _, d := range digits {
			b.WriteRune(d)
			b.WriteRune(d)
		}
		digits = b.String()
	case 6, 8:
	default:
		return Color{}, &ParseError{Input: input, Token: "#" + digits, Reason: "hex color must have 3, 4, 6 or 8 digits"}
	}

	val, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, &ParseError{Input: input, Token: "#" + digits, Reason: "invalid hex digits", Err: err}
	}
	if len(digits) == 6 {
		return RGB(uint8(val>>16), uint8(val>>8), uint8(val)), nil
	}
	return Color{
		R: uint8(val >> 24),
		G: uint8(val >> 16),
		B: uint8(val >> 8),
		A: float64(uint8(val)) / 255,
	}, nil
}

// splitComponents splits a function body into exactly n components plus an
// optional alpha. Components are separated by commas or whitespace; alpha
// may follow a "/" or appear as component n+1.
func splitComponents(input, body string, n int) ([]string, string, error) {
	var alpha string
	if i := strings.Index(body, "/"); i >= 0 {
		alpha = strings.TrimSpace(body[i+1:])
		body = body[:i]
		if alpha == "" || strings.Contains(alpha, "/") {
			return nil, "", &ParseError{Input: input, Token: alpha, Reason: "malformed alpha component"}
		}
	}

	var comps []string
	for _, part := range componentSep.Split(strings.TrimSpace(body), -1) {
		if part != "" {
			comps = append(comps, part)
		}
	}

	if len(comps) == n+1 && alpha == "" {
		alpha = comps[n]
		comps = comps[:n]
	}
	if len(comps) != n {
		return nil, "", &ParseError{
			Input:  input,
			Token:  strings.TrimSpace(body),
			Reason: "expected " + strconv.Itoa(n) + " components",
		}
	}
	return comps, alpha, nil
}

// parseNumber parses a finite decimal number, rejecting NaN and infinities
// which strconv would otherwise accept.
func parseNumber(input, token string) (float64, error) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ParseError{Input: input, Token: token, Reason: "invalid number", Err: err}
	}
	return v, nil
}

// parseChannel parses an RGB channel given as 0-255 or as a percentage.
func parseChannel(input, field, token string) (uint8, error) {
	if pct, ok := strings.CutSuffix(token, "%"); ok {
		v, err := parseNumber(input, pct)
		if err != nil {
			return 0, withToken(err, token)
		}
		if err := checkRange(field, v, 0, 100); err != nil {
			return 0, rangeParseError(input, token, err)
		}
		return Channel(v * 255 / 100), nil
	}
	v, err := parseNumber(input, token)
	if err != nil {
		return 0, err
	}
	if err := checkRange(field, v, 0, 255); err != nil {
		return 0, rangeParseError(input, token, err)
	}
	return Channel(v), nil
}

// parseHue parses a hue in degrees, with an optional "deg" suffix.
func parseHue(input, token string) (float64, error) {
	v, err := parseNumber(input, strings.TrimSuffix(token, "deg"))
	if err != nil {
		return 0, withToken(err, token)
	}
	if err := checkRange("hue", v, 0, 360); err != nil {
		return 0, rangeParseError(input, token, err)
	}
	return v, nil
}

// parsePercent parses a 0-100 percentage. The "%" sign is optional.
func parsePercent(input, field, token string) (float64, error) {
	v, err := parseNumber(input, strings.TrimSuffix(token, "%"))
	if err != nil {
		return 0, withToken(err, token)
	}
	if err := checkRange(field, v, 0, 100); err != nil {
		return 0, rangeParseError(input, token, err)
	}
	return v, nil
}

// parseAlpha parses an alpha given as 0-1 or as a percentage. An empty
// token means fully opaque.
func parseAlpha(input, token string) (float64, error) {
	if token == "" {
		return 1, nil
	}
	if pct, ok := strings.CutSuffix(token, "%"); ok {
		v, err := parseNumber(input, pct)
		if err != nil {
			return 0, withToken(err, token)
		}
		if err := checkRange("alpha", v, 0, 100); err != nil {
			return 0, rangeParseError(input, token, err)
		}
		return v / 100, nil
	}
	v, err := parseNumber(input, token)
	if err != nil {
		return 0, err
	}
	if err := checkRange("alpha", v, 0, 1); err != nil {
		return 0, rangeParseError(input, token, err)
	}
	return v, nil
}

func rangeParseError(input, token string, err error) error {
	var re *RangeError
	if errors.As(err, &re) {
		return &ParseError{Input: input, Token: token, Reason: re.Field + " out of range", Err: err}
	}
	return &ParseError{Input: input, Token: token, Reason: err.Error(), Err: err}
}

func withToken(err error, token string) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Token = token
	}
	return err
}
