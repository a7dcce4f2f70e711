package sanitizer

import (
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimToLower removes leading and trailing whitespace and lowercases the
// rest.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CollapseWhitespace trims the string and replaces every interior run of
// whitespace with a single space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// KeepDigits drops every rune outside ASCII 0-9. The retained set matches
// what \d accepts in a pattern, so non-ASCII digits are dropped too.
func KeepDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// StripSeparators removes the separators people type into phone and card
// numbers: spaces, dashes, dots, slashes and parentheses. Unlike
// KeepDigits it preserves a leading plus and any other substance.
func StripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.', '/', '(', ')':
			return -1
		}
		return r
	}, s)
}

// RemoveControlChars drops control characters, keeping tabs and line
// breaks. Pasted terminal input occasionally carries stray escapes.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\t' && r != '\n' && r != '\r' {
			return -1
		}
		return r
	}, s)
}
