// Package sanitizer cleans user input before validation.
//
// Validation in this project is byte-exact: patterns see the input as it
// was typed and the checking core never trims or normalizes on its own.
// The helpers here run at the presentation boundary instead, turning what
// a person typed or a file carried into the canonical form a rule expects:
// trimming, whitespace collapsing, separator stripping for phone and card
// numbers, and Unicode NFC normalization.
//
// All helpers are small pure functions over strings. The generic Apply and
// Compose combinators chain them into reusable pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.NormalizeNFC,
//	    sanitizer.Trim,
//	)
//	clean("  5551234567 \n") // "5551234567"
//
// None of the helpers returns an error and none keeps state, so they are
// safe for concurrent use.
package sanitizer
