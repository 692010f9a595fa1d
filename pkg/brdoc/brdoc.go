// Package brdoc validates and formats the Brazilian contact identifiers used
// on debtor records: CPF numbers and phone numbers.
package brdoc

import "strings"

// ContactValidator is a swappable validation strategy for a debtor's contact
// identifier. CPF and Phone implement it; which one applies is the caller's
// choice per field.
type ContactValidator interface {
	// Validate reports whether the value is well formed. Punctuation is
	// ignored; only the digits matter.
	Validate(value string) bool

	// Format inserts standard punctuation while the digit count is within
	// the expected cap. Longer input is returned unchanged.
	Format(value string) string
}

// digitsOnly strips everything but ASCII digits.
func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// allSameDigit reports whether s consists of a single repeated digit.
// Sequences like 00000000000 pass the CPF check-digit math but are not
// valid documents.
func allSameDigit(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return len(s) > 0
}
