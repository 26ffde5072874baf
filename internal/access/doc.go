// Package access evaluates colors for accessibility.
//
// It implements WCAG 2.x relative luminance and contrast ratio, a bounded
// search for an accessible variant of a color against a fixed background,
// and simulation of the common color-vision deficiencies.
//
// # Contrast Thresholds
//
// WCAG success criteria 1.4.3 and 1.4.6 define:
//
//	AA   normal text  4.5:1
//	AA   large text   3.0:1
//	AAA  normal text  7.0:1
//	AAA  large text   4.5:1
//
// Ratios are reported rounded to two decimals; pass/fail decisions use the
// unrounded value.
//
// # Alpha
//
// Contrast and simulation work on the color channels only. A translucent
// color is evaluated as if it were opaque; blend it over its backdrop first
// (see palette.Mix) if the real appearance matters.
package access
