package colorspace

import (
	"github.com/lucasb-eyer/go-colorful"
)

// xyzLimit is the largest tristimulus value sRGB can produce per component,
// i.e. the XYZ of sRGB white under the conversion matrix.
var xyzLimit = func() XYZ {
	x, y, z := colorful.Color{R: 1, G: 1, B: 1}.Xyz()
	return XYZ{X: x * 100, Y: y * 100, Z: z * 100}
}()

// HSL represents a color in HSL (Hue, Saturation, Lightness) color space.
//
// HSL is often more intuitive for color manipulation than RGB:
//   - Hue represents the color type (red, green, blue, etc.)
//   - Saturation represents color intensity (gray to vivid)
//   - Lightness represents brightness (black to white)
type HSL struct {
	H float64 `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S float64 `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L float64 `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// HSB represents a color in HSB (Hue, Saturation, Brightness) color space,
// also known as HSV.
//
// HSB shares its hue with HSL but measures saturation against the
// brightest channel rather than against lightness.
type HSB struct {
	H float64 `json:"h"` // Hue: 0-360 degrees
	S float64 `json:"s"` // Saturation: 0-100 percent
	B float64 `json:"b"` // Brightness: 0-100 percent (the largest channel)
}

// CMYK represents the subtractive decomposition of a color.
//
// CMYK values are derived from RGB with a fixed formula; a color has no
// intrinsic CMYK identity.
type CMYK struct {
	C float64 `json:"c"` // Cyan: 0-100 percent
	M float64 `json:"m"` // Magenta: 0-100 percent
	Y float64 `json:"y"` // Yellow: 0-100 percent
	K float64 `json:"k"` // Black: 0-100 percent
}

// XYZ represents CIE 1931 tristimulus values relative to the D65 white point,
// scaled so that the white point has Y = 100.
type XYZ struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Lab represents CIE L*a*b* coordinates relative to D65.
type Lab struct {
	L float64 `json:"l"` // Lightness: 0-100
	A float64 `json:"a"` // Green (-) to red (+)
	B float64 `json:"b"` // Blue (-) to yellow (+)
}

// Lab components accepted by FromLab. L* is bounded by definition; a* and b*
// are bounded by the usual 8-bit encoding range.
const (
	labABMin = -128
	labABMax = 128
)

// ToHSL converts a color to HSL.
//
// The conversion follows the standard algorithm:
//  1. Normalize RGB to 0-1 range
//  2. Find min and max components
//  3. Calculate Lightness as (max + min) / 2
//  4. Calculate Saturation based on lightness
//  5. Calculate Hue based on which component is max
//
// Achromatic colors (max == min) report hue 0 and saturation 0.
func ToHSL(c Color) HSL {
	h, s, l := c.Colorful().Hsl()
	return HSL{H: NormalizeHue(h), S: s * 100, L: l * 100}
}

// FromHSL converts an HSL value to an opaque color.
//
// Returns a *RangeError when the hue is outside [0, 360] or saturation or
// lightness is outside [0, 100]. A hue of exactly 360 is the same as 0.
func FromHSL(v HSL) (Color, error) {
	if err := checkRange("hue", v.H, 0, 360); err != nil {
		return Color{}, err
	}
	if err := checkRange("saturation", v.S, 0, 100); err != nil {
		return Color{}, err
	}
	if err := checkRange("lightness", v.L, 0, 100); err != nil {
		return Color{}, err
	}
	return FromColorful(colorful.Hsl(NormalizeHue(v.H), v.S/100, v.L/100), 1), nil
}

// ToHSB converts a color to HSB.
func ToHSB(c Color) HSB {
	h, s, b := c.Colorful().Hsv()
	return HSB{H: NormalizeHue(h), S: s * 100, B: b * 100}
}

// FromHSB converts an HSB value to an opaque color.
//
// Returns a *RangeError when the hue is outside [0, 360] or saturation or
// brightness is outside [0, 100].
func FromHSB(v HSB) (Color, error) {
	if err := checkRange("hue", v.H, 0, 360); err != nil {
		return Color{}, err
	}
	if err := checkRange("saturation", v.S, 0, 100); err != nil {
		return Color{}, err
	}
	if err := checkRange("brightness", v.B, 0, 100); err != nil {
		return Color{}, err
	}
	return FromColorful(colorful.Hsv(NormalizeHue(v.H), v.S/100, v.B/100), 1), nil
}

// ToCMYK converts a color to CMYK.
//
// The black channel is k = 1 - max(r, g, b) and each ink is
// (1 - channel - k) / (1 - k). Pure black has no defined ink mix, so it is
// reported as c = m = y = 0, k = 100.
func ToCMYK(c Color) CMYK {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	k := 1 - max(r, g, b)
	if k >= 1 {
		return CMYK{K: 100}
	}
	return CMYK{
		C: (1 - r - k) / (1 - k) * 100,
		M: (1 - g - k) / (1 - k) * 100,
		Y: (1 - b - k) / (1 - k) * 100,
		K: k * 100,
	}
}

// FromCMYK converts a CMYK value to an opaque color.
//
// Returns a *RangeError when any channel is outside [0, 100].
func FromCMYK(v CMYK) (Color, error) {
	for _, ch := range []struct {
		field string
		value float64
	}{{"cyan", v.C}, {"magenta", v.M}, {"yellow", v.Y}, {"black", v.K}} {
		if err := checkRange(ch.field, ch.value, 0, 100); err != nil {
			return Color{}, err
		}
	}
	k := 1 - v.K/100
	return RGB(
		Channel(255*(1-v.C/100)*k),
		Channel(255*(1-v.M/100)*k),
		Channel(255*(1-v.Y/100)*k),
	), nil
}

// ToXYZ converts a color to CIE XYZ (D65, Y of white = 100).
//
// Channels are gamma-decompressed with the sRGB piecewise curve (linear
// below 0.04045) and multiplied by the sRGB to XYZ matrix.
func ToXYZ(c Color) XYZ {
	x, y, z := c.Colorful().Xyz()
	return XYZ{X: x * 100, Y: y * 100, Z: z * 100}
}

// FromXYZ converts XYZ tristimulus values to an opaque color.
//
// Each component must lie between 0 and the value sRGB white has for that
// component; otherwise a *RangeError is returned. Values inside those bounds
// that are still outside the sRGB gamut are clipped channel by channel.
func FromXYZ(v XYZ) (Color, error) {
	if err := checkRange("x", v.X, 0, xyzLimit.X); err != nil {
		return Color{}, err
	}
	if err := checkRange("y", v.Y, 0, xyzLimit.Y); err != nil {
		return Color{}, err
	}
	if err := checkRange("z", v.Z, 0, xyzLimit.Z); err != nil {
		return Color{}, err
	}
	return FromColorful(colorful.Xyz(v.X/100, v.Y/100, v.Z/100), 1), nil
}

// ToLab converts a color to CIE L*a*b* relative to D65.
//
// XYZ is normalised by the white point and passed through the CIE
// compounding function: a cube root above (6/29)^3 and a linear segment
// below it.
func ToLab(c Color) Lab {
	l, a, b := c.Colorful().Lab()
	return Lab{L: l * 100, A: a * 100, B: b * 100}
}

// FromLab converts CIE L*a*b* coordinates to an opaque color.
//
// Returns a *RangeError when L* is outside [0, 100] or a*/b* outside
// [-128, 128]. Coordinates outside the sRGB gamut are clipped.
func FromLab(v Lab) (Color, error) {
	if err := checkRange("lightness", v.L, 0, 100); err != nil {
		return Color{}, err
	}
	if err := checkRange("a", v.A, labABMin, labABMax); err != nil {
		return Color{}, err
	}
	if err := checkRange("b", v.B, labABMin, labABMax); err != nil {
		return Color{}, err
	}
	return FromColorful(colorful.Lab(v.L/100, v.A/100, v.B/100), 1), nil
}

// Linear returns the gamma-decompressed channels of c in 0-1.
func Linear(c Color) (r, g, b float64) {
	return c.Colorful().LinearRgb()
}

// FromLinear gamma-compresses linear-light channels back to sRGB. Channels
// are clipped to the gamut before rounding.
func FromLinear(r, g, b, alpha float64) Color {
	return FromColorful(colorful.LinearRgb(r, g, b), alpha)
}
