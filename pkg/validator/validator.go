package validator

import "slices"

// Validator owns a mutable rule registry and an append-only error log.
// Check methods return a plain verdict and record failure diagnostics in
// the log for later display; the log grows across calls until ClearErrors.
// A Validator is not safe for concurrent use.
type Validator struct {
	rules  map[string]*Pattern
	errors []string
}

// New returns a Validator seeded with the built-in email, phone, date and
// creditCard rules.
func New() *Validator {
	v := &Validator{rules: make(map[string]*Pattern, len(builtinPatterns))}
	for name, source := range builtinPatterns {
		v.rules[name] = MustCompilePattern(source)
	}
	return v
}

// AddRule compiles source and registers it under name, replacing any rule
// already stored there, built-ins included. A source that does not compile
// returns an error wrapping ErrInvalidPattern and leaves the registry
// untouched. Rules are never deleted, only overwritten.
func (v *Validator) AddRule(name, source string) error {
	p, err := CompilePattern(source)
	if err != nil {
		return err
	}
	v.rules[name] = p
	return nil
}

// Validate checks value against the named rule. Unknown rules and values
// that do not match in full return false and append a diagnostic to the
// log; a match returns true and logs nothing.
func (v *Validator) Validate(value, ruleName string) bool {
	return v.record(Match(v.rules[ruleName], value, ruleName))
}

// ValidateRange checks min <= value <= max, both ends inclusive, logging a
// diagnostic on failure. NaN anywhere fails the check.
func (v *Validator) ValidateRange(value, min, max float64) bool {
	return v.record(InRange(value, min, max))
}

// CheckConsistency compares a and b under kind. Plain mismatches return
// false without logging; parse failures under KindNumeric and unrecognized
// kinds are logged.
func (v *Validator) CheckConsistency(a, b string, kind ConsistencyKind) bool {
	return v.record(Consistent(a, b, kind))
}

// Rule returns the pattern registered under name.
func (v *Validator) Rule(name string) (*Pattern, bool) {
	p, ok := v.rules[name]
	return p, ok
}

// RuleNames returns the registered rule names in sorted order.
func (v *Validator) RuleNames() []string {
	names := make([]string, 0, len(v.rules))
	for name := range v.rules {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Errors returns a copy of the error log, oldest entry first. Mutating the
// returned slice does not touch the log.
func (v *Validator) Errors() []string {
	return slices.Clone(v.errors)
}

// ClearErrors empties the error log.
func (v *Validator) ClearErrors() {
	v.errors = nil
}

func (v *Validator) record(o Outcome) bool {
	if !o.OK && o.Detail != "" {
		v.errors = append(v.errors, o.Detail)
	}
	return o.OK
}
