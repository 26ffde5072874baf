package palette

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

func hexes(colors []colorspace.Color) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = c.Hex()
	}
	return out
}

// near reports whether a and b differ by at most one step per channel.
func near(a, b colorspace.Color) bool {
	d := func(x, y uint8) bool { return int(x)-int(y) <= 1 && int(y)-int(x) <= 1 }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B)
}

func TestHarmony_Complementary(t *testing.T) {
	got, err := Harmony(colorspace.RGB(30, 136, 229), Complementary)
	if err != nil {
		t.Fatalf("Harmony failed: %v", err)
	}
	want := []string{"#1E88E5", "#E57B1E"}
	if diff := cmp.Diff(want, hexes(got)); diff != "" {
		t.Errorf("complementary mismatch (-want +got):\n%s", diff)
	}
}

func TestHarmony_Red(t *testing.T) {
	tests := []struct {
		kind HarmonyKind
		want []string
	}{
		{Complementary, []string{"#FF0000", "#00FFFF"}},
		{Triadic, []string{"#FF0000", "#00FF00", "#0000FF"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			got, err := Harmony(colorspace.RGB(255, 0, 0), tt.kind)
			if err != nil {
				t.Fatalf("Harmony failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, hexes(got)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHarmony_Lengths(t *testing.T) {
	wantLen := map[HarmonyKind]int{
		Complementary:      2,
		Analogous:          3,
		Triadic:            3,
		Tetradic:           4,
		SplitComplementary: 3,
	}
	base := colorspace.RGB(30, 136, 229)
	for _, kind := range HarmonyKinds() {
		t.Run(string(kind), func(t *testing.T) {
			got, err := Harmony(base, kind)
			if err != nil {
				t.Fatalf("Harmony failed: %v", err)
			}
			if len(got) != wantLen[kind] {
				t.Errorf("len = %d, want %d", len(got), wantLen[kind])
			}
			if got[0] != base {
				t.Errorf("first color = %s, want base %s", got[0], base)
			}
		})
	}
}

func TestHarmony_KeepsSaturationAndLightness(t *testing.T) {
	base := colorspace.RGB(30, 136, 229)
	want := colorspace.ToHSL(base)

	got, err := Harmony(base, Tetradic)
	if err != nil {
		t.Fatalf("Harmony failed: %v", err)
	}
	for _, c := range got[1:] {
		hsl := colorspace.ToHSL(c)
		// 8-bit quantization moves S and L by well under one percent.
		if d := hsl.S - want.S; d > 1 || d < -1 {
			t.Errorf("%s saturation %v, want %v", c, hsl.S, want.S)
		}
		if d := hsl.L - want.L; d > 1 || d < -1 {
			t.Errorf("%s lightness %v, want %v", c, hsl.L, want.L)
		}
	}
}

func TestHarmony_KeepsAlpha(t *testing.T) {
	base := colorspace.Color{R: 255, A: 0.5}
	got, err := Harmony(base, Triadic)
	if err != nil {
		t.Fatalf("Harmony failed: %v", err)
	}
	for _, c := range got {
		if c.A != 0.5 {
			t.Errorf("%s alpha = %v, want 0.5", c, c.A)
		}
	}
}

func TestHarmonyHues(t *testing.T) {
	tests := []struct {
		base float64
		kind HarmonyKind
		want []float64
	}{
		{208.04, Complementary, []float64{208.04, 28.04}},
		{0, Analogous, []float64{0, 30, 330}},
		{350, Analogous, []float64{350, 20, 320}},
		{200, Triadic, []float64{200, 320, 80}},
		{90, Tetradic, []float64{90, 180, 270, 0}},
		{10, SplitComplementary, []float64{10, 160, 220}},
	}
	for _, tt := range tests {
		got, err := HarmonyHues(tt.base, tt.kind)
		if err != nil {
			t.Fatalf("HarmonyHues failed: %v", err)
		}
		if diff := cmp.Diff(tt.want, got, cmpApprox); diff != "" {
			t.Errorf("HarmonyHues(%v, %s) mismatch (-want +got):\n%s", tt.base, tt.kind, diff)
		}
	}
}

func TestHarmonyHues_ComplementIsExact(t *testing.T) {
	for h := 0.0; h < 360; h += 7.3 {
		hues, err := HarmonyHues(h, Complementary)
		if err != nil {
			t.Fatal(err)
		}
		if want := colorspace.NormalizeHue(h + 180); hues[1] != want {
			t.Errorf("complement of %v = %v, want %v", h, hues[1], want)
		}
	}
}

func TestParseHarmonyKind(t *testing.T) {
	tests := []struct {
		in   string
		want HarmonyKind
	}{
		{"complementary", Complementary},
		{"Analogous", Analogous},
		{"split-complementary", SplitComplementary},
		{"split_complementary", SplitComplementary},
		{" TETRADIC ", Tetradic},
	}
	for _, tt := range tests {
		got, err := ParseHarmonyKind(tt.in)
		if err != nil {
			t.Errorf("ParseHarmonyKind(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHarmonyKind(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseHarmonyKind("monochrome"); !errors.Is(err, ErrUnknownHarmony) {
		t.Errorf("got %v, want ErrUnknownHarmony", err)
	}
	if _, err := Harmony(colorspace.RGB(0, 0, 0), "pentadic"); !errors.Is(err, ErrUnknownHarmony) {
		t.Errorf("Harmony: got %v, want ErrUnknownHarmony", err)
	}
}
