package validator

import (
	"errors"
	"regexp"
)

// Pattern is a compiled validation pattern. Matching is always against the
// entire input: the source is wrapped in \A(?:...)\z at compile time, so a
// source like `\d{5}` does not accept "abc12345def". Patterns are immutable
// and safe for concurrent use.
type Pattern struct {
	source string
	re     *regexp.Regexp
}

// CompilePattern compiles source into a full-string Pattern. An invalid
// source returns an error wrapping ErrInvalidPattern.
func CompilePattern(source string) (*Pattern, error) {
	re, err := regexp.Compile(`\A(?:` + source + `)\z`)
	if err != nil {
		return nil, errors.Join(ErrInvalidPattern, err)
	}
	return &Pattern{source: source, re: re}, nil
}

// MustCompilePattern is CompilePattern for sources known to be valid.
// It panics when the source does not compile.
func MustCompilePattern(source string) *Pattern {
	p, err := CompilePattern(source)
	if err != nil {
		panic(err)
	}
	return p
}

// Source returns the pattern source as handed to CompilePattern, without
// the full-string wrapping.
func (p *Pattern) Source() string { return p.source }

// MatchString reports whether s matches the pattern in full.
func (p *Pattern) MatchString(s string) bool { return p.re.MatchString(s) }

// Match checks value against p under the given rule name. A nil p reports
// the rule as unknown; a value that does not match in full reports a
// validation failure naming the rule. The rule name appears in diagnostics
// only.
func Match(p *Pattern, value, ruleName string) Outcome {
	if p == nil {
		return Outcome{Detail: "Validation rule not found: " + ruleName}
	}
	if !p.MatchString(value) {
		return Outcome{Detail: "Data validation failed for rule: " + ruleName}
	}
	return Outcome{OK: true}
}
