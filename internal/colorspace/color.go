package colorspace

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is the canonical color value every model converts through.
//
// R, G and B are sRGB channels in 0-255. A is opacity in 0-1, where 1 is
// fully opaque. The zero value is therefore transparent black; use [RGB] to
// build an opaque color.
type Color struct {
	R uint8   `json:"r"` // Red component (0-255)
	G uint8   `json:"g"` // Green component (0-255)
	B uint8   `json:"b"` // Blue component (0-255)
	A float64 `json:"a"` // Alpha: 0 = transparent, 1 = opaque
}

// RGB returns the opaque color with the given channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA returns the color with the given channels and alpha.
//
// Returns a *RangeError naming "alpha" when a is NaN or outside [0, 1].
func RGBA(r, g, b uint8, a float64) (Color, error) {
	if err := checkRange("alpha", a, 0, 1); err != nil {
		return Color{}, err
	}
	return Color{R: r, G: g, B: b, A: a}, nil
}

// Opaque reports whether the color has full opacity.
func (c Color) Opaque() bool {
	return c.A >= 1
}

// WithAlpha returns a copy of c with alpha replaced.
func (c Color) WithAlpha(a float64) (Color, error) {
	return RGBA(c.R, c.G, c.B, a)
}

// Hex returns the color as "#RRGGBB". Alpha is not included.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// HexAlpha returns the color as "#RRGGBBAA".
func (c Color) HexAlpha() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, alphaByte(c.A))
}

// String returns the hex form, with an alpha pair only when the color is
// not fully opaque.
func (c Color) String() string {
	if c.Opaque() {
		return c.Hex()
	}
	return c.HexAlpha()
}

// Colorful returns the color as a go-colorful value with channels in 0-1.
// Alpha is dropped.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// FromColorful converts a go-colorful value back to a Color with the given
// alpha. Channels outside the sRGB gamut are clipped before rounding.
func FromColorful(cf colorful.Color, alpha float64) Color {
	r, g, b := cf.Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: alpha}
}

// Channel rounds a 0-255 float to the nearest 8-bit value, half away from
// zero. Inputs outside the range are clipped.
func Channel(v float64) uint8 {
	return uint8(math.Round(clamp(v, 0, 255)))
}

func alphaByte(a float64) uint8 {
	return uint8(math.Round(clamp(a, 0, 1) * 255))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// NormalizeHue wraps a hue in degrees into [0, 360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// math.Mod can return 360 - ulp for tiny negatives; fold it back.
	if h >= 360 {
		h = 0
	}
	return h
}
