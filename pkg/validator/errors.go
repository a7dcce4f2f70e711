package validator

import "errors"

var (
	// ErrInvalidPattern is returned by CompilePattern and AddRule when a
	// pattern source does not compile. Registration failures never reach
	// the error log and leave the rule registry as it was.
	ErrInvalidPattern = errors.New("invalid rule pattern")

	// ErrUnknownKind is returned by ParseConsistencyKind for input that
	// names no declared consistency kind.
	ErrUnknownKind = errors.New("unknown consistency kind")
)
