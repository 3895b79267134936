package scansion

// Character tables for the classical Latin alphabet. These are
// process-wide immutable values, initialized once and never mutated,
// so they are safe to share across concurrently scanned sentences.

// plainVowels are the bare vowel letters.
var plainVowels = map[rune]bool{
	'a': true, 'e': true, 'i': true, 'o': true, 'u': true, 'y': true,
}

// markedLongVowels maps a macron-carrying vowel to its bare counterpart.
var markedLongVowels = map[rune]rune{
	'ā': 'a', // ā
	'ē': 'e', // ē
	'ī': 'i', // ī
	'ō': 'o', // ō
	'ū': 'u', // ū
	'ȳ': 'y', // ȳ
}

// consonants deliberately excludes 'h': it rides along in onsets and
// codas during syllabification but never counts toward length by
// position.
var consonants = map[rune]bool{
	'b': true, 'c': true, 'd': true, 'f': true, 'g': true, 'j': true,
	'k': true, 'l': true, 'm': true, 'n': true, 'p': true, 'q': true,
	'r': true, 's': true, 't': true, 'v': true, 'w': true, 'x': true,
	'z': true,
}

// doubleConsonants count as two consonants for length by position.
var doubleConsonants = map[rune]bool{'x': true, 'z': true}

// mutes are the stop consonants that pair with a liquid into the
// historically ambiguous mute+liquid cluster.
var mutes = map[rune]bool{
	'b': true, 'c': true, 'd': true, 'g': true,
	'p': true, 't': true, 'k': true, 'q': true,
}

var liquids = map[rune]bool{'l': true, 'r': true}

// diphthongs is the closed set of two-vowel nuclei. A diphthong is
// always long and must be matched before single vowels.
var diphthongs = map[string]bool{
	"ae": true, "au": true, "ei": true, "eu": true,
	"oe": true, "ui": true, "uī": true, // uī
}

// IsVowel reports whether r is a vowel, with or without a macron.
func IsVowel(r rune) bool {
	_, long := markedLongVowels[r]
	return long || plainVowels[r]
}

// IsMarkedLong reports whether r is a vowel carrying a macron.
func IsMarkedLong(r rune) bool {
	_, ok := markedLongVowels[r]
	return ok
}

// IsConsonant reports whether r counts as a consonant. 'h' does not.
func IsConsonant(r rune) bool { return consonants[r] }

// IsMute reports whether r is a stop consonant.
func IsMute(r rune) bool { return mutes[r] }

// IsLiquid reports whether r is l or r.
func IsLiquid(r rune) bool { return liquids[r] }

// IsDouble reports whether r counts as two consonants.
func IsDouble(r rune) bool { return doubleConsonants[r] }

// BareVowel returns the unmarked counterpart of a vowel, or r itself
// when r carries no macron.
func BareVowel(r rune) rune {
	if bare, ok := markedLongVowels[r]; ok {
		return bare
	}
	return r
}

// diphthongAt returns the rune length of the diphthong starting at
// rs[i], or 0 when rs[i:] does not begin with one. All entries in the
// current set are two runes long.
func diphthongAt(rs []rune, i int) int {
	if i+2 > len(rs) {
		return 0
	}
	if diphthongs[string(rs[i:i+2])] {
		return 2
	}
	return 0
}
