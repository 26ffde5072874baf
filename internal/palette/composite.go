package palette

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/anthonynsimon/bild/blend"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// BlendMode names a layer blend mode.
type BlendMode string

const (
	BlendMultiply    BlendMode = "multiply"
	BlendScreen      BlendMode = "screen"
	BlendOverlay     BlendMode = "overlay"
	BlendDarken      BlendMode = "darken"
	BlendLighten     BlendMode = "lighten"
	BlendDifference  BlendMode = "difference"
	BlendExclusion   BlendMode = "exclusion"
	BlendColorBurn   BlendMode = "color-burn"
	BlendColorDodge  BlendMode = "color-dodge"
	BlendSoftLight   BlendMode = "soft-light"
	BlendAdd         BlendMode = "add"
	BlendSubtract    BlendMode = "subtract"
	BlendDivide      BlendMode = "divide"
	BlendLinearBurn  BlendMode = "linear-burn"
	BlendLinearLight BlendMode = "linear-light"
)

type blendFunc func(bg, fg image.Image) *image.RGBA

// blendFuncs maps each mode to its bild implementation. bild's Subtract
// computes fg - bg, so subtract swaps its arguments to give base - layer.
var blendFuncs = map[BlendMode]blendFunc{
	BlendMultiply:    blend.Multiply,
	BlendScreen:      blend.Screen,
	BlendOverlay:     blend.Overlay,
	BlendDarken:      blend.Darken,
	BlendLighten:     blend.Lighten,
	BlendDifference:  blend.Difference,
	BlendExclusion:   blend.Exclusion,
	BlendColorBurn:   blend.ColorBurn,
	BlendColorDodge:  blend.ColorDodge,
	BlendSoftLight:   blend.SoftLight,
	BlendAdd:         blend.Add,
	BlendSubtract:    func(bg, fg image.Image) *image.RGBA { return blend.Subtract(fg, bg) },
	BlendDivide:      blend.Divide,
	BlendLinearBurn:  blend.LinearBurn,
	BlendLinearLight: blend.LinearLight,
}

// BlendModes lists the supported blend modes.
func BlendModes() []BlendMode {
	return []BlendMode{
		BlendMultiply, BlendScreen, BlendOverlay, BlendDarken, BlendLighten,
		BlendDifference, BlendExclusion, BlendColorBurn, BlendColorDodge,
		BlendSoftLight, BlendAdd, BlendSubtract, BlendDivide, BlendLinearBurn,
		BlendLinearLight,
	}
}

// ParseBlendMode maps a blend mode name to a BlendMode. Underscores and
// spaces may replace the hyphen.
func ParseBlendMode(name string) (BlendMode, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	m := BlendMode(norm)
	if _, ok := blendFuncs[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
	return m, nil
}

// Composite lays layer over base with a blend mode at the given opacity.
//
// The blend formula is applied per channel to the two opaque colors, then
// the result is interpolated from base: base*(1-opacity) + blended*opacity.
// An opacity of 0 returns base unchanged. The result keeps base's alpha.
//
// Blend formulas quantize their output to 8 bits by truncation, so results
// can sit one step below the exact formula value.
//
// Returns a *colorspace.RangeError naming "ratio" when opacity is NaN or
// outside [0, 1], and an error wrapping ErrUnknownMode for a bad mode.
func Composite(base, layer colorspace.Color, opacity float64, mode BlendMode) (colorspace.Color, error) {
	m, err := ParseBlendMode(string(mode))
	if err != nil {
		return colorspace.Color{}, err
	}
	if err := checkRatio(opacity); err != nil {
		return colorspace.Color{}, err
	}
	if opacity == 0 {
		return base, nil
	}

	out := blendFuncs[m](pixel(base), pixel(layer))
	blended := out.RGBAAt(0, 0)

	return colorspace.Color{
		R: colorspace.Channel(lerp(float64(base.R), float64(blended.R), opacity)),
		G: colorspace.Channel(lerp(float64(base.G), float64(blended.G), opacity)),
		B: colorspace.Channel(lerp(float64(base.B), float64(blended.B), opacity)),
		A: base.A,
	}, nil
}

// pixel returns a 1x1 opaque image of c.
func pixel(c colorspace.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
	return img
}
