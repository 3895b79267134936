package scansion

// Result holds the scansion of a single sentence.
type Result struct {
	// Sentence is the normalized sentence that was scanned.
	Sentence string
	// Scansion has one weight symbol per surviving syllable.
	Scansion string
	// Syllables is the number of symbols, i.e. non-elided syllables.
	Syllables int
}

// Scan tokenizes raw text into sentences and scans each one, in
// reading order.
func (s *Scanner) Scan(text string) []Result {
	sentences := SplitSentences(text)
	results := make([]Result, len(sentences))
	for i, sent := range sentences {
		sc := s.ScanSentence(sent)
		results[i] = Result{
			Sentence:  sent,
			Scansion:  sc,
			Syllables: len([]rune(sc)),
		}
	}
	return results
}

// CountSyllables returns the number of symbol-producing syllables in a
// sentence; elided syllables are not counted.
func (s *Scanner) CountSyllables(text string) int {
	return len(s.resolve(s.words(text)))
}

// Syllabify splits a single word token into syllables after cleaning.
// A vowel-less token yields nil.
func (s *Scanner) Syllabify(token string) []Syllable {
	return syllabifyWord(cleanWord(NormalizeText(token)))
}
