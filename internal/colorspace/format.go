package colorspace

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Model identifies a color model that Convert can produce.
type Model string

const (
	ModelHex  Model = "hex"
	ModelRGB  Model = "rgb"
	ModelHSL  Model = "hsl"
	ModelHSB  Model = "hsb"
	ModelCMYK Model = "cmyk"
	ModelLab  Model = "lab"
	ModelXYZ  Model = "xyz"
)

// Models lists every model in the order ConvertAll reports them.
func Models() []Model {
	return []Model{ModelHex, ModelRGB, ModelHSL, ModelHSB, ModelCMYK, ModelLab, ModelXYZ}
}

// ParseModel maps a model name to a Model. Matching is case-insensitive and
// "hsv" is accepted as an alias for HSB.
func ParseModel(name string) (Model, error) {
	switch m := Model(strings.ToLower(strings.TrimSpace(name))); m {
	case ModelHex, ModelRGB, ModelHSL, ModelHSB, ModelCMYK, ModelLab, ModelXYZ:
		return m, nil
	case "hsv":
		return ModelHSB, nil
	case "rgba":
		return ModelRGB, nil
	case "hsla":
		return ModelHSL, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
}

// Formatted is a color expressed in one model.
//
// Value is the CSS-like string form. Components holds the same numbers keyed
// by channel name, rounded the way Value shows them.
type Formatted struct {
	Model      Model              `json:"model"`
	Value      string             `json:"value"`
	Components map[string]float64 `json:"components"`
}

// Convert expresses c in the target model.
//
// Hue and percentage models are rounded to whole numbers; Lab and XYZ keep
// two decimals. Alpha is included in the hex, rgb and hsl forms only when
// the color is not fully opaque.
//
// Returns a *RangeError if the color's alpha is outside [0, 1], and an
// error wrapping ErrUnknownModel for an unrecognised model.
func Convert(c Color, m Model) (Formatted, error) {
	if err := checkRange("alpha", c.A, 0, 1); err != nil {
		return Formatted{}, err
	}

	switch m {
	case ModelHex:
		return Formatted{
			Model:      m,
			Value:      c.String(),
			Components: rgbComponents(c),
		}, nil

	case ModelRGB:
		value := fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
		if !c.Opaque() {
			value = fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, formatAlpha(c.A))
		}
		return Formatted{Model: m, Value: value, Components: rgbComponents(c)}, nil

	case ModelHSL:
		v := ToHSL(c)
		h, s, l := roundHue(v.H), math.Round(v.S), math.Round(v.L)
		value := fmt.Sprintf("hsl(%g, %g%%, %g%%)", h, s, l)
		if !c.Opaque() {
			value = fmt.Sprintf("hsla(%g, %g%%, %g%%, %s)", h, s, l, formatAlpha(c.A))
		}
		return Formatted{
			Model:      m,
			Value:      value,
			Components: withAlpha(c, map[string]float64{"h": h, "s": s, "l": l}),
		}, nil

	case ModelHSB:
		v := ToHSB(c)
		h, s, b := roundHue(v.H), math.Round(v.S), math.Round(v.B)
		return Formatted{
			Model:      m,
			Value:      fmt.Sprintf("hsb(%g, %g%%, %g%%)", h, s, b),
			Components: withAlpha(c, map[string]float64{"h": h, "s": s, "b": b}),
		}, nil

	case ModelCMYK:
		v := ToCMYK(c)
		cy, mg, ye, k := math.Round(v.C), math.Round(v.M), math.Round(v.Y), math.Round(v.K)
		return Formatted{
			Model:      m,
			Value:      fmt.Sprintf("cmyk(%g%%, %g%%, %g%%, %g%%)", cy, mg, ye, k),
			Components: map[string]float64{"c": cy, "m": mg, "y": ye, "k": k},
		}, nil

	case ModelLab:
		v := ToLab(c)
		l, a, b := round2(v.L), round2(v.A), round2(v.B)
		return Formatted{
			Model:      m,
			Value:      fmt.Sprintf("lab(%.2f, %.2f, %.2f)", l, a, b),
			Components: map[string]float64{"l": l, "a": a, "b": b},
		}, nil

	case ModelXYZ:
		v := ToXYZ(c)
		x, y, z := round2(v.X), round2(v.Y), round2(v.Z)
		return Formatted{
			Model:      m,
			Value:      fmt.Sprintf("xyz(%.2f, %.2f, %.2f)", x, y, z),
			Components: map[string]float64{"x": x, "y": y, "z": z},
		}, nil

	default:
		return Formatted{}, fmt.Errorf("%w: %q", ErrUnknownModel, string(m))
	}
}

// ConvertAll expresses c in every model returned by Models.
func ConvertAll(c Color) (map[Model]Formatted, error) {
	out := make(map[Model]Formatted, len(Models()))
	for _, m := range Models() {
		f, err := Convert(c, m)
		if err != nil {
			return nil, err
		}
		out[m] = f
	}
	return out, nil
}

// Description is a color expressed in every model, plus its CSS name when
// the color matches one exactly.
type Description struct {
	Hex     string              `json:"hex"`
	Name    string              `json:"name,omitempty"`
	Opaque  bool                `json:"opaque"`
	Formats map[Model]Formatted `json:"formats"`
}

// Describe expresses c in every model. names may be nil.
func Describe(c Color, names *NameTable) (Description, error) {
	all, err := ConvertAll(c)
	if err != nil {
		return Description{}, err
	}
	d := Description{Hex: c.String(), Opaque: c.Opaque(), Formats: all}
	if names != nil {
		d.Name, _ = names.NameOf(c)
	}
	return d, nil
}

func rgbComponents(c Color) map[string]float64 {
	return withAlpha(c, map[string]float64{
		"r": float64(c.R),
		"g": float64(c.G),
		"b": float64(c.B),
	})
}

func withAlpha(c Color, m map[string]float64) map[string]float64 {
	if !c.Opaque() {
		m["a"] = round2(c.A)
	}
	return m
}

// roundHue rounds to whole degrees, wrapping 360 back to 0.
func roundHue(h float64) float64 {
	h = math.Round(h)
	if h >= 360 {
		h -= 360
	}
	return h
}

func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}

func formatAlpha(a float64) string {
	return strconv.FormatFloat(round2(a), 'f', -1, 64)
}
