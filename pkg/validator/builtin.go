package validator

// Names of the rules every Validator starts with.
const (
	RuleEmail      = "email"
	RulePhone      = "phone"
	RuleDate       = "date"
	RuleCreditCard = "creditCard"
)

// builtinPatterns maps the seeded rule names to their pattern sources. Like
// every registered rule they match against the full input. The date shape
// checks digit layout only (2024-19-99 passes) and creditCard is a plain
// 16-digit form with no checksum.
var builtinPatterns = map[string]string{
	RuleEmail:      `^[A-Za-z0-9+_.-]+@(.+)$`,
	RulePhone:      `^\d{10}$`,
	RuleDate:       `^\d{4}-\d{2}-\d{2}$`,
	RuleCreditCard: `^\d{16}$`,
}
