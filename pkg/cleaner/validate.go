// pkg/cleaner/validate.go
package cleaner

import "regexp"

// emailPattern is the strict grammar shared by the before and after
// validity checks: one @, a non-empty local part from a restricted
// character class, a dotted domain, and an alphabetic suffix of two or
// more characters. The character classes exclude @, so exactly one @
// is implied. No DNS or network lookups.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail reports whether s matches the pipeline's email grammar.
// valid_before and valid_after are both computed with this function so
// the summary counters stay comparable.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
