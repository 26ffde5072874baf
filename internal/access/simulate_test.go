package access

import (
	"errors"
	"testing"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

func TestSimulateOne(t *testing.T) {
	tests := []struct {
		hex                 string
		prot, deut, trit    string
		achromatopsiaExpect string
	}{
		{"#FF0000", "#6D5F00", "#A39000", "#FF000F", "#7F7F7F"},
		{"#00FF00", "#FFE500", "#EFD63A", "#00F7D9", "#DCDCDC"},
		{"#0000FF", "#0059FF", "#003DFB", "#006B96", "#4C4C4C"},
		{"#1E88E5", "#598FE9", "#377DE3", "#009EAB", "#858585"},
		{"#FF5733", "#88792D", "#B19F2B", "#FF2150", "#919191"},
	}

	for _, tt := range tests {
		in := mustHex(t, tt.hex)
		want := map[Deficiency]string{
			Protanopia:    tt.prot,
			Deuteranopia:  tt.deut,
			Tritanopia:    tt.trit,
			Achromatopsia: tt.achromatopsiaExpect,
		}
		for _, d := range Deficiencies() {
			t.Run(tt.hex+"/"+string(d), func(t *testing.T) {
				got, err := SimulateOne(in, d)
				if err != nil {
					t.Fatalf("SimulateOne failed: %v", err)
				}
				if w := mustHex(t, want[d]); !near(got, w) {
					t.Errorf("SimulateOne(%s, %s) = %s, want %s", tt.hex, d, got.Hex(), w.Hex())
				}
			})
		}
	}
}

func TestSimulateOne_NeutralsUnchanged(t *testing.T) {
	for _, c := range []colorspace.Color{black, white} {
		for _, d := range Deficiencies() {
			got, err := SimulateOne(c, d)
			if err != nil {
				t.Fatalf("SimulateOne failed: %v", err)
			}
			if !near(got, c) {
				t.Errorf("SimulateOne(%s, %s) = %s, want unchanged", c, d, got)
			}
		}
	}
}

func TestSimulateOne_AchromatopsiaIsGray(t *testing.T) {
	for v := 0; v <= 255; v += 17 {
		c := colorspace.RGB(uint8(v), uint8(255-v), uint8(v/2))
		got, err := SimulateOne(c, Achromatopsia)
		if err != nil {
			t.Fatalf("SimulateOne failed: %v", err)
		}
		if got.R != got.G || got.G != got.B {
			t.Errorf("SimulateOne(%s) = %s, want a gray", c, got)
		}
	}
}

func TestSimulateOne_KeepsAlpha(t *testing.T) {
	c := colorspace.Color{R: 255, G: 87, B: 51, A: 0.4}
	got, err := SimulateOne(c, Deuteranopia)
	if err != nil {
		t.Fatalf("SimulateOne failed: %v", err)
	}
	if got.A != 0.4 {
		t.Errorf("alpha = %v, want 0.4", got.A)
	}
}

func TestSimulateOne_Unknown(t *testing.T) {
	_, err := SimulateOne(black, Deficiency("tetrachromacy"))
	if !errors.Is(err, ErrUnknownDeficiency) {
		t.Errorf("got %v, want ErrUnknownDeficiency", err)
	}
}

func TestSimulate(t *testing.T) {
	c := colorspace.RGB(30, 136, 229)
	got := Simulate(c)
	if len(got) != len(Deficiencies()) {
		t.Fatalf("got %d simulations, want %d", len(got), len(Deficiencies()))
	}
	for _, d := range Deficiencies() {
		one, err := SimulateOne(c, d)
		if err != nil {
			t.Fatalf("SimulateOne failed: %v", err)
		}
		if got[d] != one {
			t.Errorf("Simulate[%s] = %s, SimulateOne = %s", d, got[d], one)
		}
	}
}

func TestParseDeficiency(t *testing.T) {
	tests := []struct {
		in      string
		want    Deficiency
		wantErr bool
	}{
		{"protanopia", Protanopia, false},
		{" Deuteranopia ", Deuteranopia, false},
		{"TRITANOPIA", Tritanopia, false},
		{"achromatopsia", Achromatopsia, false},
		{"protanomaly", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDeficiency(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownDeficiency) {
					t.Errorf("got %v, want ErrUnknownDeficiency", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseDeficiency(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
			}
		})
	}
}

func mustHex(t *testing.T, s string) colorspace.Color {
	t.Helper()
	c, err := colorspace.ParseHex(s)
	if err != nil {
		t.Fatalf("ParseHex(%q): %v", s, err)
	}
	return c
}
