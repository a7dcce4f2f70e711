package validator

import "strconv"

// InRange reports whether value lies within [min, max], both ends
// inclusive. Comparisons follow IEEE 754: a NaN value or bound is inside no
// range and fails the check, while infinities compare normally. Failures
// carry a diagnostic naming the value and both bounds.
func InRange(value, min, max float64) Outcome {
	if value >= min && value <= max {
		return Outcome{OK: true}
	}
	return Outcome{Detail: "Value " + formatFloat(value) + " is outside range [" + formatFloat(min) + ", " + formatFloat(max) + "]"}
}

// formatFloat renders floats the shortest way that round-trips, so 15.5
// stays "15.5" and 10 stays "10".
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
