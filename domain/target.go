// Package domain contains the core concepts of the bulk-operation tooling.
// No transport, storage, or UI logic should be added here.
package domain

import "strings"

// Target identifies the entity a bulk mutation acts upon.
// In the gateway vocabulary this is a phone number in international format.
type Target string

// Normalize strips the decorations humans put into phone numbers
// (leading '+', spaces, dashes, parentheses) so a target can be compared
// against gateway membership state byte for byte.
// Normalization must be applied before any comparison; the gateway always
// reports bare digit strings.
func (t Target) Normalize() Target {
	s := strings.TrimSpace(string(t))
	s = strings.TrimPrefix(s, "+")
	return Target(strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '.':
			return -1
		}
		return r
	}, s))
}

// Equal reports whether two targets name the same entity once normalized.
func (t Target) Equal(other Target) bool {
	return t.Normalize() == other.Normalize()
}
