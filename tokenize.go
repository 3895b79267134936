package scansion

import (
	"regexp"
	"strings"
)

// reToken matches a word token: Latin letters plus the macron ranges.
var reToken = regexp.MustCompile(`[a-zA-ZÀ-ÿ\x{0100}-\x{024F}]+`)

// sentenceEnd are the characters that terminate a sentence.
const sentenceEnd = ".!?"

// abbreviations is the exhaustive set of classical praenomen
// abbreviations. A period after one of these does not end the sentence,
// and the abbreviation itself is dropped from the scanned text.
var abbreviations = map[string]bool{
	"agr": true, "ap": true, "a": true, "k": true, "d": true, "f": true,
	"c": true, "cn": true, "l": true, "mam": true, "m": true, "n": true,
	"oct": true, "opet": true, "post": true, "pro": true, "p": true,
	"q": true, "sert": true, "ser": true, "sex": true, "s": true,
	"st": true, "ti": true, "t": true, "v": true, "vol": true,
	"vop": true, "pl": true,
}

// SplitSentences splits raw Latin text into normalized sentences ready
// for Scanner.ScanSentence: lower-cased, digits and punctuation
// stripped, words joined by single spaces. A sentence ends at '.', '!'
// or '?', except when the period follows a praenomen abbreviation.
func SplitSentences(text string) []string {
	text = NormalizeText(text)
	locs := reToken.FindAllStringIndex(text, -1)

	var sentences []string
	var words []string
	flush := func() {
		if len(words) > 0 {
			sentences = append(sentences, strings.Join(words, " "))
			words = nil
		}
	}
	for ti, loc := range locs {
		token := strings.ToLower(text[loc[0]:loc[1]])

		gap := text[loc[1]:]
		if ti+1 < len(locs) {
			gap = text[loc[1]:locs[ti+1][0]]
		}
		if abbreviations[token] && strings.HasPrefix(gap, ".") {
			continue
		}
		words = append(words, token)
		if strings.ContainsAny(gap, sentenceEnd) {
			flush()
		}
	}
	flush()
	return sentences
}
