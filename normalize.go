package lemmaru

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize returns the canonical lookup form of word: NFC-composed,
// lower-cased, with leading and trailing non-letter runes stripped.
// Interior digits and punctuation are kept as-is. Normalize is
// deterministic and idempotent.
func Normalize(word string) string {
	w := norm.NFC.String(word)
	w = strings.ToLower(w)
	return strings.TrimFunc(w, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}
