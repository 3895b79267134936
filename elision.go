package scansion

import "strings"

// elidableEnd reports whether w's final syllable can elide: it must end
// in a bare vowel or diphthong, or in vowel+m when final-m elision is
// enabled.
func (s *Scanner) elidableEnd(w Word) bool {
	n := len(w.Syllables)
	if n == 0 {
		return false
	}
	coda := w.Syllables[n-1].Coda
	if coda == "" {
		return true
	}
	return s.cfg.ElideFinalM && strings.HasSuffix(coda, "m")
}

// elidableBegin reports whether w can absorb an elided syllable: it
// must begin with a vowel, a diphthong, or h+vowel.
func elidableBegin(w Word) bool {
	if len(w.Syllables) == 0 {
		return false
	}
	onset := w.Syllables[0].Onset
	return onset == "" || onset == "h"
}

// resolve flattens the words of a sentence into symbol-producing units,
// applying elision pairwise across consecutive words. An elided
// syllable emits no unit of its own: it is carried as a prefix on the
// next word's first unit, where its leading consonants remain visible
// to the position window of the syllable before it and any long vowel
// or diphthong it contains keeps the merged syllable long by nature.
// A word elided whole chains into the word after it.
func (s *Scanner) resolve(words []Word) []unit {
	var units []unit
	var pending *elidedPrefix
	for wi, w := range words {
		if len(w.Syllables) == 0 {
			continue
		}
		elideLast := wi+1 < len(words) &&
			s.elidableEnd(w) && elidableBegin(words[wi+1])

		emitted := len(units)
		for k, syl := range w.Syllables {
			if elideLast && k == len(w.Syllables)-1 {
				pending = chainPrefix(pending, syl)
				break
			}
			u := unit{syl: syl}
			if k == 0 && pending != nil {
				u.elided = pending
				pending = nil
			}
			units = append(units, u)
		}
		if len(units) > emitted {
			units[len(units)-1].wordEnd = true
		}
	}
	return units
}

// chainPrefix folds syl into pending when consecutive words elide in a
// row. The earliest onset wins: it is what the syllable before the
// whole chain can still see.
func chainPrefix(pending *elidedPrefix, syl Syllable) *elidedPrefix {
	p := &elidedPrefix{
		text:  syl.Text(),
		onset: syl.Onset,
		long:  syl.Diphthong || syl.MarkedLong,
	}
	if pending != nil {
		p.text = pending.text + p.text
		p.onset = pending.onset
		p.long = pending.long || p.long
	}
	return p
}
