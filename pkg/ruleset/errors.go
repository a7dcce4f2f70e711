package ruleset

import "errors"

var (
	// ErrInvalidDocument is returned when the YAML itself cannot be parsed.
	ErrInvalidDocument = errors.New("invalid rules document")

	// ErrMissingRuleName is returned for a definition without a name.
	ErrMissingRuleName = errors.New("rule name is required")

	// ErrMissingPattern is returned for a definition without a pattern.
	ErrMissingPattern = errors.New("rule pattern is required")

	// ErrDuplicateRule is returned when a name appears twice in one document.
	ErrDuplicateRule = errors.New("duplicate rule name")
)
