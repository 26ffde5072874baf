package palette

import (
	"errors"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// ErrNoCandidates is returned by Nearest when there is nothing to match
// against.
var ErrNoCandidates = errors.New("no candidate colors")

// Match is the result of a nearest-color search.
type Match struct {
	Name     string           `json:"name"`
	Color    colorspace.Color `json:"color"`
	Distance float64          `json:"distance"` // CIEDE2000 ΔE; 0 is identical
	Exact    bool             `json:"exact"`
}

// Nearest finds the candidate perceptually closest to c by CIEDE2000
// distance. Alpha is ignored. Ties go to the earliest candidate, so callers
// control precedence through ordering.
func Nearest(c colorspace.Color, candidates []colorspace.NamedColor) (Match, error) {
	if len(candidates) == 0 {
		return Match{}, ErrNoCandidates
	}

	target := c.Colorful()
	best := Match{Distance: -1}
	for _, cand := range candidates {
		// go-colorful works on a 0-1 Lab scale; ΔE is reported on the usual 0-100 one.
		d := target.DistanceCIEDE2000(cand.Color.Colorful()) * 100
		if best.Distance < 0 || d < best.Distance {
			best = Match{Name: cand.Name, Color: cand.Color, Distance: d}
		}
	}
	best.Exact = best.Color.R == c.R && best.Color.G == c.G && best.Color.B == c.B
	return best, nil
}
