// Package validator checks scalar data values against named pattern rules,
// numeric ranges, and pairwise consistency comparisons, collecting
// human-readable diagnostics for later display.
//
// # Architecture
//
// The package has two layers. The stateless functions (CompilePattern,
// Match, InRange, Consistent) each return an Outcome holding a verdict and
// an optional diagnostic; they keep no state and are safe for concurrent
// use. Validator sits on top as an accumulating caller: it owns a mutable
// registry of named rules seeded with the email, phone, date and creditCard
// built-ins, and an append-only log that collects the diagnostics of failed
// checks until ClearErrors.
//
// Failures travel on two channels. Hard failures, such as an invalid
// pattern handed to AddRule, surface as Go errors and never reach the log.
// Soft failures, a value that does not pass a check, surface as a false
// verdict plus a log entry where the check carries a diagnostic.
//
// Pattern matching is always full-string: sources are wrapped in \A(?:...)\z
// when compiled, so partial matches never validate.
//
// # Usage
//
//	v := validator.New()
//	if err := v.AddRule("zip", `^\d{5}$`); err != nil {
//		// pattern did not compile; registry unchanged
//	}
//	v.Validate("90210", "zip")    // true
//	v.Validate("invalid", "email") // false, diagnostic logged
//	v.ValidateRange(15.5, 10, 20) // true
//	v.CheckConsistency("5", "5.0", validator.KindNumeric) // true
//	for _, msg := range v.Errors() {
//		fmt.Println(msg)
//	}
//	v.ClearErrors()
//
// # Concurrency
//
// A Validator is not safe for concurrent use; callers that share one across
// goroutines must serialize access themselves. The stateless layer and
// compiled Patterns are safe for concurrent use.
package validator
