package access

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// Deficiency names a color-vision deficiency.
type Deficiency string

const (
	Protanopia    Deficiency = "protanopia"    // No long-wavelength (red) cones
	Deuteranopia  Deficiency = "deuteranopia"  // No medium-wavelength (green) cones
	Tritanopia    Deficiency = "tritanopia"    // No short-wavelength (blue) cones
	Achromatopsia Deficiency = "achromatopsia" // No color vision
)

// ErrUnknownDeficiency is returned for deficiency names that are not
// recognised.
var ErrUnknownDeficiency = errors.New("unknown color-vision deficiency")

type matrix [3][3]float64

// Linear-RGB transforms. The dichromacies are Machado, Oliveira & Fernandes
// (2009) at severity 1.0; achromatopsia maps every channel to luminance.
var deficiencyMatrices = map[Deficiency]matrix{
	Protanopia: {
		{0.152286, 1.052583, -0.204868},
		{0.114503, 0.786281, 0.099216},
		{-0.003882, -0.048116, 1.051998},
	},
	Deuteranopia: {
		{0.367322, 0.860646, -0.227968},
		{0.280085, 0.672501, 0.047413},
		{-0.011820, 0.042940, 0.968881},
	},
	Tritanopia: {
		{1.255528, -0.076749, -0.178779},
		{-0.078411, 0.930809, 0.147602},
		{0.004733, 0.691367, 0.303900},
	},
	Achromatopsia: {
		{0.2126, 0.7152, 0.0722},
		{0.2126, 0.7152, 0.0722},
		{0.2126, 0.7152, 0.0722},
	},
}

// Deficiencies lists the simulated deficiencies in report order.
func Deficiencies() []Deficiency {
	return []Deficiency{Protanopia, Deuteranopia, Tritanopia, Achromatopsia}
}

// ParseDeficiency maps a name to a Deficiency, ignoring case.
func ParseDeficiency(name string) (Deficiency, error) {
	d := Deficiency(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := deficiencyMatrices[d]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDeficiency, name)
	}
	return d, nil
}

// SimulateOne approximates how c appears to a viewer with deficiency d.
// Alpha is preserved.
func SimulateOne(c colorspace.Color, d Deficiency) (colorspace.Color, error) {
	m, ok := deficiencyMatrices[d]
	if !ok {
		return colorspace.Color{}, fmt.Errorf("%w: %q", ErrUnknownDeficiency, string(d))
	}
	return m.apply(c), nil
}

// Simulate returns c as seen under every deficiency in Deficiencies.
func Simulate(c colorspace.Color) map[Deficiency]colorspace.Color {
	out := make(map[Deficiency]colorspace.Color, len(deficiencyMatrices))
	for d, m := range deficiencyMatrices {
		out[d] = m.apply(c)
	}
	return out
}

// apply transforms c in linear light. Out-of-gamut results are clipped.
func (m matrix) apply(c colorspace.Color) colorspace.Color {
	r, g, b := colorspace.Linear(c)
	return colorspace.FromLinear(
		m[0][0]*r+m[0][1]*g+m[0][2]*b,
		m[1][0]*r+m[1][1]*g+m[1][2]*b,
		m[2][0]*r+m[2][1]*g+m[2][2]*b,
		c.A,
	)
}
