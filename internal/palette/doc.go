// Package palette derives new colors from existing ones.
//
// It covers three related jobs:
//
//   - Harmonies: hue rotations of a base color (complementary, analogous,
//     triadic, tetradic, split-complementary) at constant saturation and
//     lightness.
//   - Mixing and compositing: interpolation between two colors in a chosen
//     space (Mix), and layer blend modes such as multiply or screen applied
//     at an opacity (Composite).
//   - Curated palettes: a read-only Catalog of well-known palettes, and
//     perceptual nearest-match search over palettes or name tables.
//
// # Harmony Offsets
//
// Offsets are in degrees and always start with the base color:
//
//	complementary        0, 180
//	analogous            0, 30, 330
//	triadic              0, 120, 240
//	tetradic             0, 90, 180, 270
//	split-complementary  0, 150, 210
//
// Analogous harmonies always have three colors.
//
// # Thread Safety
//
// Every function is pure. A Catalog is immutable after construction and may
// be shared between goroutines.
package palette
