package scansion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sylTexts(sylls []Syllable) []string {
	out := make([]string, len(sylls))
	for i, s := range sylls {
		out[i] = s.Text()
	}
	return out
}

func TestSyllabifyWord(t *testing.T) {
	tests := []struct {
		word string
		want []string
	}{
		// single intervocalic consonant joins the next onset
		{"catilīna", []string{"ca", "ti", "lī", "na"}},
		{"abūtēre", []string{"a", "bū", "tē", "re"}},
		// two consonants split across the boundary
		{"tandem", []string{"tan", "dem"}},
		{"terra", []string{"ter", "ra"}},
		{"patientiā", []string{"pa", "ti", "en", "ti", "ā"}},
		// qu is one consonant, never a nucleus
		{"quō", []string{"quō"}},
		{"quam", []string{"quam"}},
		{"usque", []string{"us", "que"}},
		// diphthong match beats single vowels
		{"laetus", []string{"lae", "tus"}},
		{"aetatis", []string{"ae", "ta", "tis"}},
		// uu is not a diphthong
		{"tuus", []string{"tu", "us"}},
		// mute+liquid stays together in the onset
		{"nostrā", []string{"nos", "trā"}},
		{"patrem", []string{"pa", "trem"}},
		// h attaches to the onset
		{"nihil", []string{"ni", "hil"}},
		// leading and trailing clusters attach to the nearest syllable
		{"strepitus", []string{"stre", "pi", "tus"}},
		{"est", []string{"est"}},
		{"axis", []string{"a", "xis"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sylTexts(syllabifyWord(tt.word)), tt.word)
	}
}

func TestSyllabifyStructure(t *testing.T) {
	sylls := syllabifyWord("nostrā")
	assert.Equal(t, []Syllable{
		{Onset: "n", Nucleus: "o", Coda: "s"},
		{Onset: "tr", Nucleus: "ā", MarkedLong: true},
	}, sylls)

	sylls = syllabifyWord("laetus")
	assert.Equal(t, []Syllable{
		{Nucleus: "ae", Coda: "", Onset: "l", Diphthong: true},
		{Onset: "t", Nucleus: "u", Coda: "s"},
	}, sylls)
}

func TestSyllabifyNoVowels(t *testing.T) {
	assert.Nil(t, syllabifyWord(""))
	assert.Nil(t, syllabifyWord("pst"))
	assert.Nil(t, syllabifyWord("qu"))
}

func TestScannerSyllabifyCleansToken(t *testing.T) {
	s := New()
	assert.Equal(t, []string{"lae", "tus"}, sylTexts(s.Syllabify("Laetus,")))
	assert.Nil(t, s.Syllabify("63"))
}
