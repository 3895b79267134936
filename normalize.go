package scansion

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// ligatureReplacer expands the æ/œ ligatures to their two-letter
// spellings so the diphthong table can match them.
var ligatureReplacer = strings.NewReplacer(
	"æ", "ae", // æ → ae
	"Æ", "Ae", // Æ → Ae
	"œ", "oe", // œ → oe
	"Œ", "Oe", // Œ → Oe
)

// breveReplacer drops breve marks. A breve-marked vowel is explicitly
// short, which is already the default weight, so the bare letter
// carries the same information.
var breveReplacer = strings.NewReplacer(
	"ă", "a", // ă → a
	"ĕ", "e", // ĕ → e
	"ĭ", "i", // ĭ → i
	"ŏ", "o", // ŏ → o
	"ŭ", "u", // ŭ → u
	"Ă", "A", // Ă → A
	"Ĕ", "E", // Ĕ → E
	"Ĭ", "I", // Ĭ → I
	"Ŏ", "O", // Ŏ → O
	"Ŭ", "U", // Ŭ → U
)

// NormalizeText prepares raw text for tokenization: combining marks are
// composed (a followed by U+0304 becomes ā), ligatures are expanded and
// breves dropped. Any combining breve (U+0306) left after composition
// is removed as well.
func NormalizeText(s string) string {
	s = norm.NFC.String(s)
	s = ligatureReplacer.Replace(s)
	s = breveReplacer.Replace(s)
	return strings.ReplaceAll(s, "̆", "")
}

// cleanWord lower-cases a token and keeps letters only; digits,
// punctuation and any other stray characters are dropped.
func cleanWord(token string) string {
	var b strings.Builder
	for _, r := range token {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
