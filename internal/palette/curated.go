package palette

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// Swatch is one named color in a palette.
type Swatch struct {
	Name  string           `json:"name"`
	Color colorspace.Color `json:"color"`
}

// Palette is an ordered, named list of swatches.
type Palette struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Swatches    []Swatch `json:"swatches"`
}

// Lookup finds a swatch by name, ignoring case.
func (p Palette) Lookup(name string) (Swatch, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range p.Swatches {
		if s.Name == name {
			return s, true
		}
	}
	return Swatch{}, false
}

// Family returns the swatches whose name starts with prefix followed by a
// hyphen, e.g. Family("blue") on the Tailwind palette returns blue-50
// through blue-950.
func (p Palette) Family(prefix string) []Swatch {
	prefix = strings.ToLower(strings.TrimSpace(prefix)) + "-"
	var out []Swatch
	for _, s := range p.Swatches {
		if strings.HasPrefix(s.Name, prefix) {
			out = append(out, s)
		}
	}
	return out
}

// Named returns the swatches as named colors for use with Nearest.
func (p Palette) Named() []colorspace.NamedColor {
	out := make([]colorspace.NamedColor, len(p.Swatches))
	for i, s := range p.Swatches {
		out[i] = colorspace.NamedColor{Name: s.Name, Color: s.Color}
	}
	return out
}

// Catalog is a read-only set of palettes keyed by name.
type Catalog struct {
	palettes map[string]Palette
}

// NewCatalog builds a catalog. Palette names are lower-cased; a later palette
// with the same name replaces an earlier one.
func NewCatalog(palettes ...Palette) *Catalog {
	c := &Catalog{palettes: make(map[string]Palette, len(palettes))}
	for _, p := range palettes {
		p.Name = strings.ToLower(p.Name)
		p.Swatches = append([]Swatch(nil), p.Swatches...)
		c.palettes[p.Name] = p
	}
	return c
}

// DefaultCatalog returns the built-in palettes: the Tailwind CSS v3 color
// scale and the Okabe-Ito color-blind safe set.
func DefaultCatalog() *Catalog {
	return NewCatalog(tailwindPalette(), okabeItoPalette())
}

// Names returns the palette names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.palettes))
	for name := range c.palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Palette returns a copy of the named palette.
func (c *Catalog) Palette(name string) (Palette, bool) {
	p, ok := c.palettes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Palette{}, false
	}
	p.Swatches = append([]Swatch(nil), p.Swatches...)
	return p, true
}

// Tailwind CSS v3 default color scale.
var tailwindShades = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

var tailwindFamilies = []struct {
	name string
	hex  [11]string
}{
	{"slate", [11]string{"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a", "#020617"}},
	{"gray", [11]string{"#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af", "#6b7280", "#4b5563", "#374151", "#1f2937", "#111827", "#030712"}},
	{"zinc", [11]string{"#fafafa", "#f4f4f5", "#e4e4e7", "#d4d4d8", "#a1a1aa", "#71717a", "#52525b", "#3f3f46", "#27272a", "#18181b", "#09090b"}},
	{"neutral", [11]string{"#fafafa", "#f5f5f5", "#e5e5e5", "#d4d4d4", "#a3a3a3", "#737373", "#525252", "#404040", "#262626", "#171717", "#0a0a0a"}},
	{"stone", [11]string{"#fafaf9", "#f5f5f4", "#e7e5e4", "#d6d3d1", "#a8a29e", "#78716c", "#57534e", "#44403c", "#292524", "#1c1917", "#0c0a09"}},
	{"red", [11]string{"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d", "#450a0a"}},
	{"orange", [11]string{"#fff7ed", "#ffedd5", "#fed7aa", "#fdba74", "#fb923c", "#f97316", "#ea580c", "#c2410c", "#9a3412", "#7c2d12", "#431407"}},
	{"amber", [11]string{"#fffbeb", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24", "#f59e0b", "#d97706", "#b45309", "#92400e", "#78350f", "#451a03"}},
	{"yellow", [11]string{"#fefce8", "#fef9c3", "#fef08a", "#fde047", "#facc15", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12", "#422006"}},
	{"lime", [11]string{"#f7fee7", "#ecfccb", "#d9f99d", "#bef264", "#a3e635", "#84cc16", "#65a30d", "#4d7c0f", "#3f6212", "#365314", "#1a2e05"}},
	{"green", [11]string{"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d", "#052e16"}},
	{"emerald", [11]string{"#ecfdf5", "#d1fae5", "#a7f3d0", "#6ee7b7", "#34d399", "#10b981", "#059669", "#047857", "#065f46", "#064e3b", "#022c22"}},
	{"teal", [11]string{"#f0fdfa", "#ccfbf1", "#99f6e4", "#5eead4", "#2dd4bf", "#14b8a6", "#0d9488", "#0f766e", "#115e59", "#134e4a", "#042f2e"}},
	{"cyan", [11]string{"#ecfeff", "#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee", "#06b6d4", "#0891b2", "#0e7490", "#155e75", "#164e63", "#083344"}},
	{"sky", [11]string{"#f0f9ff", "#e0f2fe", "#bae6fd", "#7dd3fc", "#38bdf8", "#0ea5e9", "#0284c7", "#0369a1", "#075985", "#0c4a6e", "#082f49"}},
	{"blue", [11]string{"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a", "#172554"}},
	{"indigo", [11]string{"#eef2ff", "#e0e7ff", "#c7d2fe", "#a5b4fc", "#818cf8", "#6366f1", "#4f46e5", "#4338ca", "#3730a3", "#312e81", "#1e1b4b"}},
	{"violet", [11]string{"#f5f3ff", "#ede9fe", "#ddd6fe", "#c4b5fd", "#a78bfa", "#8b5cf6", "#7c3aed", "#6d28d9", "#5b21b6", "#4c1d95", "#2e1065"}},
	{"purple", [11]string{"#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc", "#a855f7", "#9333ea", "#7e22ce", "#6b21a8", "#581c87", "#3b0764"}},
	{"fuchsia", [11]string{"#fdf4ff", "#fae8ff", "#f5d0fe", "#f0abfc", "#e879f9", "#d946ef", "#c026d3", "#a21caf", "#86198f", "#701a75", "#4a044e"}},
	{"pink", [11]string{"#fdf2f8", "#fce7f3", "#fbcfe8", "#f9a8d4", "#f472b6", "#ec4899", "#db2777", "#be185d", "#9d174d", "#831843", "#500724"}},
	{"rose", [11]string{"#fff1f2", "#ffe4e6", "#fecdd3", "#fda4af", "#fb7185", "#f43f5e", "#e11d48", "#be123c", "#9f1239", "#881337", "#4c0519"}},
}

func tailwindPalette() Palette {
	p := Palette{
		Name:        "tailwind",
		Description: "Tailwind CSS v3 default color scale: 22 families, shades 50 to 950",
		Swatches:    make([]Swatch, 0, len(tailwindFamilies)*len(tailwindShades)),
	}
	for _, fam := range tailwindFamilies {
		for i, shade := range tailwindShades {
			p.Swatches = append(p.Swatches, Swatch{
				Name:  fam.name + "-" + shade,
				Color: mustHex(fam.hex[i]),
			})
		}
	}
	return p
}

// Okabe & Ito (2008), "Color Universal Design".
func okabeItoPalette() Palette {
	return Palette{
		Name:        "okabe-ito",
		Description: "Okabe-Ito palette, distinguishable under the common color-vision deficiencies",
		Swatches: []Swatch{
			{"black", mustHex("#000000")},
			{"orange", mustHex("#E69F00")},
			{"sky-blue", mustHex("#56B4E9")},
			{"bluish-green", mustHex("#009E73")},
			{"yellow", mustHex("#F0E442")},
			{"blue", mustHex("#0072B2")},
			{"vermillion", mustHex("#D55E00")},
			{"reddish-purple", mustHex("#CC79A7")},
		},
	}
}

// mustHex decodes a hex literal from the static tables above.
func mustHex(s string) colorspace.Color {
	c, err := colorspace.ParseHex(s)
	if err != nil {
		panic(fmt.Sprintf("palette: bad hex literal %q: %v", s, err))
	}
	return c
}
