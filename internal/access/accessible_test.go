package access

import (
	"errors"
	"math"
	"testing"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// near reports whether a and b differ by at most one step per channel.
func near(a, b colorspace.Color) bool {
	d := func(x, y uint8) bool { return int(x)-int(y) <= 1 && int(y)-int(x) <= 1 }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B)
}

func TestFindAccessible(t *testing.T) {
	tests := []struct {
		name          string
		target, bg    colorspace.Color
		minRatio      float64
		wantColor     colorspace.Color
		wantDirection Direction
	}{
		{
			name:          "orange on white goes darker",
			target:        colorspace.RGB(255, 87, 51),
			bg:            white,
			minRatio:      4.5,
			wantColor:     colorspace.RGB(0xE0, 0x28, 0x00),
			wantDirection: DirectionDarker,
		},
		{
			name:          "yellow on white goes darker",
			target:        colorspace.RGB(255, 255, 0),
			bg:            white,
			minRatio:      0, // default 4.5
			wantColor:     colorspace.RGB(0x7A, 0x7A, 0x00),
			wantDirection: DirectionDarker,
		},
		{
			name:          "navy on black goes lighter",
			target:        colorspace.RGB(0, 0, 128),
			bg:            black,
			minRatio:      4.5,
			wantColor:     colorspace.RGB(0x61, 0x61, 0xFF),
			wantDirection: DirectionLighter,
		},
		{
			name:          "equal luminance breaks tie toward darker",
			target:        white,
			bg:            white,
			minRatio:      4.5,
			wantColor:     colorspace.RGB(0x75, 0x75, 0x75),
			wantDirection: DirectionDarker,
		},
		{
			name:          "falls back to lighter when darker cannot pass",
			target:        colorspace.RGB(50, 50, 50),
			bg:            colorspace.RGB(111, 111, 111),
			minRatio:      4.5,
			wantColor:     colorspace.RGB(0xF4, 0xF4, 0xF4),
			wantDirection: DirectionLighter,
		},
		{
			name:          "AAA blue on white",
			target:        colorspace.RGB(30, 136, 229),
			bg:            white,
			minRatio:      7,
			wantColor:     colorspace.RGB(0x12, 0x5B, 0x9A),
			wantDirection: DirectionDarker,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindAccessible(tt.target, tt.bg, tt.minRatio)
			if err != nil {
				t.Fatalf("FindAccessible failed: %v", err)
			}

			min := tt.minRatio
			if min == 0 {
				min = DefaultMinRatio
			}
			if r := Ratio(got.Color, tt.bg); r < min {
				t.Errorf("ratio %v below minimum %v", r, min)
			}
			if got.Direction != tt.wantDirection {
				t.Errorf("Direction = %s, want %s", got.Direction, tt.wantDirection)
			}
			if !got.Adjusted || got.Steps == 0 {
				t.Errorf("Adjusted = %v, Steps = %d; want an adjustment", got.Adjusted, got.Steps)
			}
			if got.Original != tt.target {
				t.Errorf("Original = %s, want %s", got.Original, tt.target)
			}
			if !near(got.Color, tt.wantColor) {
				t.Errorf("Color = %s, want %s", got.Color, tt.wantColor)
			}
		})
	}
}

func TestFindAccessible_AlreadyPasses(t *testing.T) {
	got, err := FindAccessible(black, white, 4.5)
	if err != nil {
		t.Fatalf("FindAccessible failed: %v", err)
	}
	if got.Color != black || got.Adjusted || got.Steps != 0 || got.Direction != DirectionNone {
		t.Errorf("got %+v, want black unchanged", got)
	}
	if got.Contrast.Ratio != 21 {
		t.Errorf("Contrast.Ratio = %v, want 21", got.Contrast.Ratio)
	}
}

func TestFindAccessible_KeepsHueAndAlpha(t *testing.T) {
	target := colorspace.Color{R: 30, G: 136, B: 229, A: 0.8}
	got, err := FindAccessible(target, white, 7)
	if err != nil {
		t.Fatalf("FindAccessible failed: %v", err)
	}
	if got.Color.A != 0.8 {
		t.Errorf("alpha = %v, want 0.8", got.Color.A)
	}
	wantHue := colorspace.ToHSL(target).H
	if h := colorspace.ToHSL(got.Color).H; math.Abs(h-wantHue) > 2 {
		t.Errorf("hue drifted from %v to %v", wantHue, h)
	}
}

func TestFindAccessible_Unreachable(t *testing.T) {
	// Mid gray gives at most 4.69:1 (against black).
	gray := colorspace.RGB(119, 119, 119)

	_, err := FindAccessible(colorspace.RGB(30, 136, 229), gray, 7)
	var ue *UnreachableError
	if !errors.As(err, &ue) {
		t.Fatalf("got %v, want *UnreachableError", err)
	}
	if ue.MinRatio != 7 {
		t.Errorf("MinRatio = %v, want 7", ue.MinRatio)
	}
	if ue.Background != gray {
		t.Errorf("Background = %s, want %s", ue.Background, gray)
	}
	if math.Abs(ue.BestRatio-4.69) > 0.01 {
		t.Errorf("BestRatio = %v, want about 4.69", ue.BestRatio)
	}
}

func TestFindAccessible_RatioRange(t *testing.T) {
	for _, r := range []float64{-1, 21.5, math.NaN()} {
		_, err := FindAccessible(black, white, r)
		var re *colorspace.RangeError
		if !errors.As(err, &re) || re.Field != "minRatio" {
			t.Errorf("minRatio %v: got %v, want minRatio RangeError", r, err)
		}
	}
}

func TestFindAccessible_Deterministic(t *testing.T) {
	a, errA := FindAccessible(colorspace.RGB(255, 87, 51), white, 4.5)
	b, errB := FindAccessible(colorspace.RGB(255, 87, 51), white, 4.5)
	if errA != nil || errB != nil {
		t.Fatalf("errors: %v, %v", errA, errB)
	}
	if a != b {
		t.Errorf("results differ: %+v vs %+v", a, b)
	}
}
