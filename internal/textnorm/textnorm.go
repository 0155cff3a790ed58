// Package textnorm canonicalizes user-typed names before matching. Pasted
// rosters mix "AHMET YILMAZ", "ahmet yılmaz" and stray whitespace; every
// identity comparison in the importer goes through Normalize so those all
// collide onto one key.
package textnorm

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize lowercases s with Turkish casing rules (I → ı, İ → i), trims it
// and collapses internal whitespace runs to single spaces. The result is
// idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	// cases.Caser carries internal state, so build one per call; the handlers
	// run imports concurrently.
	lowered := cases.Lower(language.Turkish).String(s)
	return strings.Join(strings.Fields(lowered), " ")
}

// Equal reports whether two strings normalize to the same key.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
