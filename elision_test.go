package scansion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElisionBeforeVowel(t *testing.T) {
	s := New()

	// illa has two syllables, est one; the elided "la" emits nothing.
	assert.Equal(t, "-u", s.ScanSentence("illa est"))
	assert.Equal(t, 2, s.CountSyllables("illa est"))

	// The elided syllable's onset still feeds the position window of
	// the syllable before it: "tan" stays long because of n+d.
	assert.Equal(t, "-uu", s.ScanSentence("tandem abit"))
}

func TestElisionBeforeHVowel(t *testing.T) {
	s := New()
	assert.Equal(t, "--u", s.ScanSentence("multa hōra"))
	assert.Equal(t, 3, s.CountSyllables("multa hōra"))
}

func TestElidedLongVowelKeepsNature(t *testing.T) {
	s := New()
	// diū loses its final ū to etiam, but the merged first syllable of
	// etiam stays long by nature.
	assert.Equal(t, "u-uu", s.ScanSentence("diū etiam"))
}

func TestFinalMElisionFlag(t *testing.T) {
	withM := New()
	assert.Equal(t, "-uu", withM.ScanSentence("illam amat"))

	withoutM := NewWithConfig(Config{ElideFinalM: false})
	assert.Equal(t, "-uuu", withoutM.ScanSentence("illam amat"))
}

func TestChainedElision(t *testing.T) {
	s := New()
	// quō elides into ē, which elides whole into amat; the surviving
	// first syllable of amat carries the chain's long material.
	assert.Equal(t, "-u", s.ScanSentence("quō ē amat"))
	assert.Equal(t, 2, s.CountSyllables("quō ē amat"))
}
