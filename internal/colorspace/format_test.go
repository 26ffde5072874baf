package colorspace

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConvert(t *testing.T) {
	orange := RGB(255, 87, 51)

	tests := []struct {
		name      string
		color     Color
		model     Model
		wantValue string
		wantComps map[string]float64
	}{
		{
			name:      "hex",
			color:     orange,
			model:     ModelHex,
			wantValue: "#FF5733",
			wantComps: map[string]float64{"r": 255, "g": 87, "b": 51},
		},
		{
			name:      "hex with alpha",
			color:     Color{R: 255, A: 0.5},
			model:     ModelHex,
			wantValue: "#FF000080",
			wantComps: map[string]float64{"r": 255, "g": 0, "b": 0, "a": 0.5},
		},
		{
			name:      "rgb",
			color:     orange,
			model:     ModelRGB,
			wantValue: "rgb(255, 87, 51)",
			wantComps: map[string]float64{"r": 255, "g": 87, "b": 51},
		},
		{
			name:      "rgba",
			color:     Color{R: 255, A: 0.5},
			model:     ModelRGB,
			wantValue: "rgba(255, 0, 0, 0.5)",
			wantComps: map[string]float64{"r": 255, "g": 0, "b": 0, "a": 0.5},
		},
		{
			name:      "hsl",
			color:     orange,
			model:     ModelHSL,
			wantValue: "hsl(11, 100%, 60%)",
			wantComps: map[string]float64{"h": 11, "s": 100, "l": 60},
		},
		{
			name:      "hsla",
			color:     Color{B: 255, A: 0.25},
			model:     ModelHSL,
			wantValue: "hsla(240, 100%, 50%, 0.25)",
			wantComps: map[string]float64{"h": 240, "s": 100, "l": 50, "a": 0.25},
		},
		{
			name:      "hsb",
			color:     orange,
			model:     ModelHSB,
			wantValue: "hsb(11, 80%, 100%)",
			wantComps: map[string]float64{"h": 11, "s": 80, "b": 100},
		},
		{
			name:      "cmyk",
			color:     orange,
			model:     ModelCMYK,
			wantValue: "cmyk(0%, 66%, 80%, 0%)",
			wantComps: map[string]float64{"c": 0, "m": 66, "y": 80, "k": 0},
		},
		{
			name:      "cmyk black",
			color:     RGB(0, 0, 0),
			model:     ModelCMYK,
			wantValue: "cmyk(0%, 0%, 0%, 100%)",
			wantComps: map[string]float64{"c": 0, "m": 0, "y": 0, "k": 100},
		},
		{
			name:      "lab black",
			color:     RGB(0, 0, 0),
			model:     ModelLab,
			wantValue: "lab(0.00, 0.00, 0.00)",
			wantComps: map[string]float64{"l": 0, "a": 0, "b": 0},
		},
		{
			name:      "xyz black",
			color:     RGB(0, 0, 0),
			model:     ModelXYZ,
			wantValue: "xyz(0.00, 0.00, 0.00)",
			wantComps: map[string]float64{"x": 0, "y": 0, "z": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.color, tt.model)
			if err != nil {
				t.Fatalf("Convert failed: %v", err)
			}
			if got.Model != tt.model {
				t.Errorf("Model: got %s, want %s", got.Model, tt.model)
			}
			if got.Value != tt.wantValue {
				t.Errorf("Value: got %q, want %q", got.Value, tt.wantValue)
			}
			if diff := cmp.Diff(tt.wantComps, got.Components); diff != "" {
				t.Errorf("Components mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvert_LabRed(t *testing.T) {
	got, err := Convert(RGB(255, 0, 0), ModelLab)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if got.Value != "lab(53.24, 80.09, 67.20)" {
		t.Errorf("Value: got %q", got.Value)
	}
}

func TestConvert_Errors(t *testing.T) {
	if _, err := Convert(RGB(0, 0, 0), Model("yuv")); !errors.Is(err, ErrUnknownModel) {
		t.Errorf("unknown model: got %v, want ErrUnknownModel", err)
	}

	var re *RangeError
	if _, err := Convert(Color{A: 2}, ModelHex); !errors.As(err, &re) || re.Field != "alpha" {
		t.Errorf("bad alpha: got %v, want alpha RangeError", err)
	}
}

func TestConvertAll(t *testing.T) {
	all, err := ConvertAll(RGB(30, 136, 229))
	if err != nil {
		t.Fatalf("ConvertAll failed: %v", err)
	}
	if len(all) != len(Models()) {
		t.Fatalf("got %d models, want %d", len(all), len(Models()))
	}
	if all[ModelHex].Value != "#1E88E5" {
		t.Errorf("hex: got %q", all[ModelHex].Value)
	}
	if all[ModelRGB].Value != "rgb(30, 136, 229)" {
		t.Errorf("rgb: got %q", all[ModelRGB].Value)
	}
}

func TestDescribe(t *testing.T) {
	d, err := Describe(RGB(100, 149, 237), CSSNames())
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if d.Name != "cornflowerblue" {
		t.Errorf("Name: got %q, want cornflowerblue", d.Name)
	}
	if d.Hex != "#6495ED" || !d.Opaque {
		t.Errorf("got hex %q opaque %v", d.Hex, d.Opaque)
	}
	if len(d.Formats) != len(Models()) {
		t.Errorf("got %d formats, want %d", len(d.Formats), len(Models()))
	}

	d, err = Describe(RGB(1, 2, 3), nil)
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if d.Name != "" {
		t.Errorf("Name: got %q, want empty", d.Name)
	}
}

func TestParseModel(t *testing.T) {
	tests := []struct {
		in   string
		want Model
	}{
		{"hex", ModelHex},
		{"RGB", ModelRGB},
		{"rgba", ModelRGB},
		{" hsl ", ModelHSL},
		{"hsla", ModelHSL},
		{"hsv", ModelHSB},
		{"HSB", ModelHSB},
		{"cmyk", ModelCMYK},
		{"lab", ModelLab},
		{"xyz", ModelXYZ},
	}
	for _, tt := range tests {
		got, err := ParseModel(tt.in)
		if err != nil {
			t.Errorf("ParseModel(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseModel(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseModel("pantone"); !errors.Is(err, ErrUnknownModel) {
		t.Errorf("ParseModel(pantone): got %v, want ErrUnknownModel", err)
	}
}

func TestRoundHue(t *testing.T) {
	if got := roundHue(359.6); got != 0 {
		t.Errorf("roundHue(359.6) = %v, want 0", got)
	}
	if got := roundHue(10.59); got != 11 {
		t.Errorf("roundHue(10.59) = %v, want 11", got)
	}
}
