package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// MixMode selects the space two colors are interpolated in.
type MixMode string

const (
	// MixNormal interpolates the 8-bit sRGB channels directly.
	MixNormal MixMode = "normal"
	// MixLinear interpolates in linear-light RGB, which keeps mixes of
	// saturated colors from going muddy.
	MixLinear MixMode = "linear"
	MixLab    MixMode = "lab"
	MixLuv    MixMode = "luv"
	MixHCL    MixMode = "hcl"
	// MixHSV interpolates hue along the shorter arc.
	MixHSV MixMode = "hsv"
)

// ErrUnknownMode is returned for mix or blend mode names that are not
// recognised.
var ErrUnknownMode = errors.New("unknown mix or blend mode")

// MixModes lists the supported mix modes.
func MixModes() []MixMode {
	return []MixMode{MixNormal, MixLinear, MixLab, MixLuv, MixHCL, MixHSV}
}

// ParseMixMode maps a mode name to a MixMode. "rgb" is accepted as an alias
// for normal.
func ParseMixMode(name string) (MixMode, error) {
	switch m := MixMode(strings.ToLower(strings.TrimSpace(name))); m {
	case MixNormal, MixLinear, MixLab, MixLuv, MixHCL, MixHSV:
		return m, nil
	case "rgb":
		return MixNormal, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// Mix blends c1 and c2. ratio is the fraction of c2 in the result: 0 yields
// c1 and 1 yields c2 exactly, whatever the mode.
//
// In normal mode each channel is c1*(1-ratio) + c2*ratio rounded half away
// from zero, so an even mix of #FF0000 and #0000FF is #800080. Alpha is
// always interpolated linearly.
//
// Returns a *colorspace.RangeError naming "ratio" when ratio is NaN or
// outside [0, 1], and an error wrapping ErrUnknownMode for a bad mode.
func Mix(c1, c2 colorspace.Color, ratio float64, mode MixMode) (colorspace.Color, error) {
	m, err := ParseMixMode(string(mode))
	if err != nil {
		return colorspace.Color{}, err
	}
	if err := checkRatio(ratio); err != nil {
		return colorspace.Color{}, err
	}
	switch ratio {
	case 0:
		return c1, nil
	case 1:
		return c2, nil
	}

	alpha := c1.A*(1-ratio) + c2.A*ratio
	a, b := c1.Colorful(), c2.Colorful()

	switch m {
	case MixLinear:
		r1, g1, b1 := a.LinearRgb()
		r2, g2, b2 := b.LinearRgb()
		return colorspace.FromLinear(lerp(r1, r2, ratio), lerp(g1, g2, ratio), lerp(b1, b2, ratio), alpha), nil
	case MixLab:
		return colorspace.FromColorful(a.BlendLab(b, ratio), alpha), nil
	case MixLuv:
		return colorspace.FromColorful(a.BlendLuv(b, ratio), alpha), nil
	case MixHCL:
		return colorspace.FromColorful(a.BlendHcl(b, ratio), alpha), nil
	case MixHSV:
		return colorspace.FromColorful(a.BlendHsv(b, ratio), alpha), nil
	default:
		return colorspace.Color{
			R: colorspace.Channel(lerp(float64(c1.R), float64(c2.R), ratio)),
			G: colorspace.Channel(lerp(float64(c1.G), float64(c2.G), ratio)),
			B: colorspace.Channel(lerp(float64(c1.B), float64(c2.B), ratio)),
			A: alpha,
		}, nil
	}
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

func checkRatio(ratio float64) error {
	if ratio != ratio || ratio < 0 || ratio > 1 {
		return &colorspace.RangeError{Field: "ratio", Value: ratio, Min: 0, Max: 1}
	}
	return nil
}
