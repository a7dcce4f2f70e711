package validator

import (
	"fmt"
	"strconv"
)

// ConsistencyKind selects how Consistent compares two values. It is a
// string type so unrecognized kinds can flow through to Consistent and be
// reported there instead of being rejected up front.
type ConsistencyKind string

const (
	// KindEquality compares the two values as exact strings.
	KindEquality ConsistencyKind = "equality"

	// KindNumeric parses both values as floats and compares the numbers,
	// so "5" and "5.0" are consistent.
	KindNumeric ConsistencyKind = "numeric"
)

// ParseConsistencyKind converts user input into a ConsistencyKind,
// returning an error wrapping ErrUnknownKind for anything but the declared
// kinds.
func ParseConsistencyKind(s string) (ConsistencyKind, error) {
	switch k := ConsistencyKind(s); k {
	case KindEquality, KindNumeric:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Consistent compares a and b under the given kind.
//
// KindEquality fails silently on mismatch, with no Detail. KindNumeric
// fails with a diagnostic when either value does not parse as a float, and
// silently when both parse but differ; the comparison is IEEE equality, so
// NaN is consistent with nothing, including itself. Any other kind fails
// with a diagnostic naming it.
func Consistent(a, b string, kind ConsistencyKind) Outcome {
	switch kind {
	case KindEquality:
		return Outcome{OK: a == b}
	case KindNumeric:
		x, errA := strconv.ParseFloat(a, 64)
		y, errB := strconv.ParseFloat(b, 64)
		if errA != nil || errB != nil {
			return Outcome{Detail: "Invalid numeric values for consistency check"}
		}
		return Outcome{OK: x == y}
	default:
		return Outcome{Detail: "Unknown consistency check type: " + string(kind)}
	}
}
