package sanitizer

import "golang.org/x/text/unicode/norm"

// NormalizeNFC converts the string to Unicode NFC. Terminal input may
// arrive decomposed; byte-oriented patterns and exact-string comparisons
// care about the difference even when the rendering looks identical.
func NormalizeNFC(s string) string {
	return norm.NFC.String(s)
}
