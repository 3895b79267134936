package scansion

// Syllable is an onset-nucleus-coda triple produced by the syllabifier.
// The nucleus is a single vowel or a diphthong; onset and coda hold the
// consonants attached to this syllable. Length by position may still
// look past the coda into the next syllable's onset, so the coda alone
// does not determine weight.
type Syllable struct {
	Onset   string
	Nucleus string
	Coda    string

	// Diphthong marks a two-vowel nucleus, always long.
	Diphthong bool
	// MarkedLong marks a nucleus vowel carrying a macron.
	MarkedLong bool
}

// Text returns the syllable as written.
func (s Syllable) Text() string { return s.Onset + s.Nucleus + s.Coda }

// Word is an ordered sequence of syllables plus the cleaned token it
// was derived from. A vowel-less token has a nil Syllables slice.
type Word struct {
	Token     string
	Syllables []Syllable
}

// elidedPrefix is the residue of an elided word-final syllable, carried
// on the first syllable of the following word. onset feeds the position
// window of the syllable before it; long records a long vowel or
// diphthong in the elided material, which keeps the merged syllable
// long by nature.
type elidedPrefix struct {
	text  string
	onset string
	long  bool
}

// unit is one symbol-producing syllable in sentence reading order.
type unit struct {
	syl     Syllable
	elided  *elidedPrefix
	wordEnd bool
}
