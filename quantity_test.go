package scansion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantityRules(t *testing.T) {
	s := New()
	tests := []struct {
		name     string
		sentence string
		want     string
	}{
		{"diphthong is long", "laetus", "-u"},
		{"long by position across syllables", "terra", "-u"},
		{"double consonant counts twice", "axis", "-u"},
		{"marked long vowel", "nōs", "-"},
		{"hiatus in a word is short", "tuus", "uu"},
		{"position window crosses the word boundary", "est nox", "-u"},
		{"heterosyllabic mute plus liquid still lengthens", "et rēx", "--"},
		{"sentence-final syllable never long by position", "est", "u"},
		{"no elision before a consonant-initial word", "quam diū", "-u-"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.ScanSentence(tt.sentence), tt.name)
	}
}

func TestHiatusOverridesMacron(t *testing.T) {
	s := New()
	// dē carries a macron but runs straight into the next vowel.
	assert.Equal(t, "u-u", s.ScanSentence("dēesse"))
}

func TestMuteLiquidTreatment(t *testing.T) {
	// The cluster is historically ambiguous; the default keeps it
	// short, the flag lets it lengthen.
	short := New()
	assert.Equal(t, "uu", short.ScanSentence("patrem"))

	long := NewWithConfig(Config{ElideFinalM: true, MuteLiquidLengthens: true})
	assert.Equal(t, "-u", long.ScanSentence("patrem"))
}
