package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// HarmonyKind names a color harmony.
type HarmonyKind string

const (
	Complementary      HarmonyKind = "complementary"
	Analogous          HarmonyKind = "analogous"
	Triadic            HarmonyKind = "triadic"
	Tetradic           HarmonyKind = "tetradic"
	SplitComplementary HarmonyKind = "split-complementary"
)

// ErrUnknownHarmony is returned for harmony names that are not recognised.
var ErrUnknownHarmony = errors.New("unknown harmony type")

// harmonyOffsets holds hue offsets in ascending order, base first.
var harmonyOffsets = map[HarmonyKind][]float64{
	Complementary:      {0, 180},
	Analogous:          {0, 30, 330},
	Triadic:            {0, 120, 240},
	Tetradic:           {0, 90, 180, 270},
	SplitComplementary: {0, 150, 210},
}

// HarmonyKinds lists the supported harmonies.
func HarmonyKinds() []HarmonyKind {
	return []HarmonyKind{Complementary, Analogous, Triadic, Tetradic, SplitComplementary}
}

// ParseHarmonyKind maps a harmony name to a HarmonyKind. Matching is
// case-insensitive and underscores or spaces may replace the hyphen.
func ParseHarmonyKind(name string) (HarmonyKind, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	kind := HarmonyKind(norm)
	if _, ok := harmonyOffsets[kind]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownHarmony, name)
	}
	return kind, nil
}

// HarmonyHues returns the hues of a harmony built on baseHue, in degrees
// within [0, 360).
func HarmonyHues(baseHue float64, kind HarmonyKind) ([]float64, error) {
	offsets, ok := harmonyOffsets[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHarmony, string(kind))
	}
	hues := make([]float64, len(offsets))
	for i, off := range offsets {
		hues[i] = colorspace.NormalizeHue(baseHue + off)
	}
	return hues, nil
}

// Harmony derives the colors of a harmony from base.
//
// The base is converted to HSL and each harmony hue is combined with the
// base's saturation and lightness. The first element is base itself; the
// rest follow in ascending offset order and carry the base's alpha.
//
// Returns an error wrapping ErrUnknownHarmony for an unsupported kind.
func Harmony(base colorspace.Color, kind HarmonyKind) ([]colorspace.Color, error) {
	hsl := colorspace.ToHSL(base)
	hues, err := HarmonyHues(hsl.H, kind)
	if err != nil {
		return nil, err
	}

	colors := make([]colorspace.Color, len(hues))
	colors[0] = base
	for i := 1; i < len(hues); i++ {
		c, err := colorspace.FromHSL(colorspace.HSL{H: hues[i], S: hsl.S, L: hsl.L})
		if err != nil {
			return nil, fmt.Errorf("harmony hue %g: %w", hues[i], err)
		}
		c.A = base.A
		colors[i] = c
	}
	return colors, nil
}
