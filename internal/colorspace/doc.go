// Package colorspace provides the canonical color value and the conversions
// between the color models the MCP server understands.
//
// Every operation in this package is a pure function of its arguments. No
// function reads or writes package state, so all of them are safe to call
// from multiple goroutines without coordination.
//
// # Canonical Representation
//
// All models convert through [Color], an sRGB triple with 8-bit channels
// plus an alpha in the range 0-1:
//   - Hex: "#RRGGBB", or "#RRGGBBAA" when alpha is below 1
//   - RGB: 8-bit components (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//   - HSB: Hue (0-360), Saturation (0-100), Brightness (0-100)
//   - CMYK: Cyan, Magenta, Yellow, Black (0-100 each)
//   - XYZ: CIE 1931 tristimulus values, D65 white, Y of white = 100
//   - Lab: CIE L*a*b* relative to D65, L* in 0-100
//
// Model values (HSL, CMYK, ...) are kept at float precision so that a
// conversion to a model and back reproduces the original channels within one
// unit. Rounding only happens when a value is formatted for output.
//
// # Parsing
//
// [Parser] recognises hex literals, rgb()/rgba(), hsl()/hsla(),
// hsb()/hsv(), cmyk() and color names. The name table is supplied by the
// caller (see [CSSNames]) and is never modified by the parser.
//
// # Error Handling
//
// Malformed literals produce a [*ParseError] naming the offending token.
// Numeric components outside a model's domain produce a [*RangeError]
// naming the field. Values are never silently clamped, except where a
// conversion formula defines a convention (CMYK black, gamut clipping of
// XYZ and Lab values that fall outside sRGB).
package colorspace
