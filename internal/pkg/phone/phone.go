// Package phone normalizes claimant phone numbers to an E.164-like form.
package phone

import "strings"

// Normalize strips everything but digits and prefixes "+". Ten-digit numbers
// not starting with 1 are treated as North American and get a +1 prefix.
// Returns "" when the input has no digits.
func Normalize(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case digits == "":
		return ""
	case len(digits) == 10 && digits[0] != '1':
		return "+1" + digits
	default:
		return "+" + digits
	}
}
