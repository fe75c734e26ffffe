package conjug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining marks, and recomposes.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// enyeGuard is a private-use rune that survives mark stripping, used to
// shield ñ while every other diacritic is removed.
const enyeGuard = "\ue000"

// Normalize canonicalizes learner input and reference forms for
// accent-tolerant comparison: trimmed, lowercased, diacritics stripped,
// internal whitespace collapsed. The ñ is preserved — it is a distinct
// letter, not an accented n. Normalize is idempotent.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = norm.NFC.String(s) // precompose so a decomposed n+tilde matches ñ
	s = strings.ReplaceAll(s, "ñ", enyeGuard)

	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}

	s = strings.ReplaceAll(s, enyeGuard, "ñ")
	return strings.Join(strings.Fields(s), " ")
}

// AnswersEqualTolerant reports whether two answers match under Normalize:
// case- and accent-insensitive, ñ-sensitive.
func AnswersEqualTolerant(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
