package access

import (
	"fmt"
	"math"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// DefaultMinRatio is used when FindAccessible is given a zero ratio.
const DefaultMinRatio = AANormal

// MaxRatio is the highest contrast ratio any pair of colors can have.
const MaxRatio = 21.0

// lightnessStep is the HSL lightness increment, in percentage points.
const lightnessStep = 1.0

// Direction is the way FindAccessible moved a color's lightness.
type Direction string

const (
	DirectionNone    Direction = "none"
	DirectionDarker  Direction = "darker"
	DirectionLighter Direction = "lighter"
)

// Accessible is the result of FindAccessible.
type Accessible struct {
	Color     colorspace.Color `json:"color"`
	Original  colorspace.Color `json:"original"`
	Contrast  Contrast         `json:"contrast"`
	Direction Direction        `json:"direction"`
	Steps     int              `json:"steps"` // Candidates evaluated
	Adjusted  bool             `json:"adjusted"`
}

// UnreachableError reports that no lightness of the target reaches the
// requested contrast against the background.
type UnreachableError struct {
	Background colorspace.Color
	MinRatio   float64
	BestRatio  float64 // Highest ratio seen during the search
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("contrast %g:1 against %s is unreachable (best %.2f:1)",
		e.MinRatio, e.Background, e.BestRatio)
}

// FindAccessible returns the color closest to target, by HSL lightness, that
// has at least minRatio contrast against background.
//
// A target that already passes is returned unchanged. Otherwise hue and
// saturation are held fixed and lightness is moved in 1-point steps. The
// search first goes darker when the target's luminance is at or below the
// background's, lighter otherwise; if that direction reaches L=0 or L=100
// without passing, it starts again from the target in the other direction.
// At most 202 candidates are evaluated.
//
// A minRatio of 0 means DefaultMinRatio. Returns a *colorspace.RangeError
// when minRatio is NaN or outside [0, 21], and an *UnreachableError when
// neither direction passes.
func FindAccessible(target, background colorspace.Color, minRatio float64) (Accessible, error) {
	if minRatio != minRatio || minRatio < 0 || minRatio > MaxRatio {
		return Accessible{}, &colorspace.RangeError{Field: "minRatio", Value: minRatio, Min: 0, Max: MaxRatio}
	}
	if minRatio == 0 {
		minRatio = DefaultMinRatio
	}

	best := Ratio(target, background)
	if best >= minRatio {
		return Accessible{
			Color:     target,
			Original:  target,
			Contrast:  rate(best),
			Direction: DirectionNone,
		}, nil
	}

	directions := []Direction{DirectionDarker, DirectionLighter}
	if Luminance(target) > Luminance(background) {
		directions[0], directions[1] = directions[1], directions[0]
	}

	hsl := colorspace.ToHSL(target)
	steps := 0
	for _, dir := range directions {
		delta := -lightnessStep
		if dir == DirectionLighter {
			delta = lightnessStep
		}

		for l := hsl.L + delta; ; l += delta {
			l = math.Max(0, math.Min(100, l))
			c, err := colorspace.FromHSL(colorspace.HSL{H: hsl.H, S: hsl.S, L: l})
			if err != nil {
				return Accessible{}, err
			}
			c.A = target.A
			steps++

			ratio := Ratio(c, background)
			if ratio >= minRatio {
				return Accessible{
					Color:     c,
					Original:  target,
					Contrast:  rate(ratio),
					Direction: dir,
					Steps:     steps,
					Adjusted:  true,
				}, nil
			}
			best = math.Max(best, ratio)

			if l == 0 || l == 100 {
				break
			}
		}
	}

	return Accessible{}, &UnreachableError{Background: background, MinRatio: minRatio, BestRatio: best}
}
