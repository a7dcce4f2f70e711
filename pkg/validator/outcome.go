package validator

// Outcome is the verdict of a single check. Detail carries a human-readable
// diagnostic for failures that warrant one; a plain mismatch in a
// consistency comparison fails with an empty Detail. Callers decide what to
// do with diagnostics: Validator appends them to its error log, one-shot
// callers may print or discard them.
type Outcome struct {
	OK     bool
	Detail string
}
