package colorspace

import (
	"sort"
	"strings"

	"golang.org/x/image/colornames"
)

// NamedColor pairs a color name with its value.
type NamedColor struct {
	Name  string `json:"name"`
	Color Color  `json:"color"`
}

// NameTable is an immutable lookup table of color names.
//
// A table is built once, typically at process start, and shared by
// reference afterwards. Nothing in this package writes to a table after
// construction, so one table may be used by any number of goroutines.
type NameTable struct {
	byName  map[string]Color
	entries []NamedColor // sorted by name
}

// NewNameTable builds a table from a name to color mapping. Names are
// lower-cased; the input map is copied.
func NewNameTable(colors map[string]Color) *NameTable {
	t := &NameTable{
		byName:  make(map[string]Color, len(colors)),
		entries: make([]NamedColor, 0, len(colors)),
	}
	for name, c := range colors {
		key := normalizeName(name)
		if _, dup := t.byName[key]; dup {
			continue
		}
		t.byName[key] = c
		t.entries = append(t.entries, NamedColor{Name: key, Color: c})
	}
	sort.Slice(t.entries, func(i, j int) bool {
		return t.entries[i].Name < t.entries[j].Name
	})
	return t
}

// CSSNames returns the table of CSS named colors (the SVG 1.1 set from
// golang.org/x/image/colornames) plus "transparent".
func CSSNames() *NameTable {
	colors := make(map[string]Color, len(colornames.Map)+1)
	for name, c := range colornames.Map {
		colors[name] = Color{R: c.R, G: c.G, B: c.B, A: float64(c.A) / 255}
	}
	colors["transparent"] = Color{}
	return NewNameTable(colors)
}

// Lookup finds a color by name. Matching ignores case, spaces, hyphens and
// underscores, so "Cornflower Blue" finds "cornflowerblue".
func (t *NameTable) Lookup(name string) (Color, bool) {
	c, ok := t.byName[normalizeName(name)]
	return c, ok
}

// NameOf returns the name of a color that exactly matches c, if any. When
// several names share a value (aqua and cyan), the alphabetically first one
// is returned.
func (t *NameTable) NameOf(c Color) (string, bool) {
	for _, e := range t.entries {
		if e.Color == c {
			return e.Name, true
		}
	}
	return "", false
}

// Entries returns a copy of the table's entries, sorted by name.
func (t *NameTable) Entries() []NamedColor {
	out := make([]NamedColor, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of names in the table.
func (t *NameTable) Len() int {
	return len(t.entries)
}

func normalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '\t':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))
}
