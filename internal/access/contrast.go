package access

import (
	"math"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// WCAG minimum contrast ratios.
const (
	AANormal  = 4.5
	AALarge   = 3.0
	AAANormal = 7.0
	AAALarge  = 4.5
)

// Level summarises the strongest WCAG rating a contrast ratio earns.
type Level string

const (
	LevelAAA     Level = "AAA"
	LevelAA      Level = "AA"
	LevelAALarge Level = "AA Large"
	LevelFail    Level = "Fail"
)

// Contrast is the WCAG evaluation of a foreground/background pair.
type Contrast struct {
	Ratio     float64 `json:"ratio"` // Rounded to 2 decimals, in [1, 21]
	AANormal  bool    `json:"aa_normal"`
	AALarge   bool    `json:"aa_large"`
	AAANormal bool    `json:"aaa_normal"`
	AAALarge  bool    `json:"aaa_large"`
	Level     Level   `json:"level"`
}

// Luminance returns the WCAG relative luminance of c in [0, 1].
//
// Each channel is gamma-decompressed with the sRGB curve (linear below
// 0.04045) and weighted 0.2126 R + 0.7152 G + 0.0722 B.
func Luminance(c colorspace.Color) float64 {
	r, g, b := colorspace.Linear(c)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Ratio returns the contrast ratio (L1 + 0.05) / (L2 + 0.05), where L1 is
// the larger luminance. The result does not depend on argument order and
// lies in [1, 21].
func Ratio(a, b colorspace.Color) float64 {
	la, lb := Luminance(a), Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// Evaluate rates fg against bg.
func Evaluate(fg, bg colorspace.Color) Contrast {
	return rate(Ratio(fg, bg))
}

func rate(ratio float64) Contrast {
	c := Contrast{
		Ratio:     math.Round(ratio*100) / 100,
		AANormal:  ratio >= AANormal,
		AALarge:   ratio >= AALarge,
		AAANormal: ratio >= AAANormal,
		AAALarge:  ratio >= AAALarge,
	}
	switch {
	case c.AAANormal:
		c.Level = LevelAAA
	case c.AANormal:
		c.Level = LevelAA
	case c.AALarge:
		c.Level = LevelAALarge
	default:
		c.Level = LevelFail
	}
	return c
}
