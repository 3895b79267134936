package scansion

import (
	"reflect"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			"terminator splits",
			"quō usque tandem. quam diū etiam!",
			[]string{"quō usque tandem", "quam diū etiam"},
		},
		{
			"all three terminators",
			"venī! vīdī? vīcī.",
			[]string{"venī", "vīdī", "vīcī"},
		},
		{
			"praenomen abbreviation does not split",
			"M. Tullius Cicerō cōnsul erat.",
			[]string{"tullius cicerō cōnsul erat"},
		},
		{
			"punctuation inside a sentence is dropped",
			"quō usque, tandem abūtēre, Catilīna.",
			[]string{"quō usque tandem abūtēre catilīna"},
		},
		{
			"numbers are dropped",
			"annō 63 ante Christum.",
			[]string{"annō ante christum"},
		},
		{
			"no trailing terminator still flushes",
			"sine fīne",
			[]string{"sine fīne"},
		},
		{
			"empty input",
			"",
			nil,
		},
		{
			"only punctuation",
			"... !? ..",
			nil,
		},
	}
	for _, tt := range tests {
		got := SplitSentences(tt.text)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: SplitSentences(%q) = %v, want %v", tt.name, tt.text, got, tt.want)
		}
	}
}

func TestSplitSentencesCatilinam(t *testing.T) {
	got := SplitSentences(catilinam)
	want := []string{
		"quō usque tandem abūtēre catilīna patientiā nostrā aetatis",
		"quam diū etiam furor iste tuus nōs ēlūdet",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitSentences(catilinam) = %v, want %v", got, want)
	}
}
