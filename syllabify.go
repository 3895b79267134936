package scansion

import "strings"

// syllabifyWord splits a cleaned word into syllables using the
// maximal-onset rule adapted for Latin. Each nucleus (diphthong match
// first, single vowel otherwise) opens a syllable; a single
// intervocalic consonant joins the following onset; of two or more,
// the last joins the following onset, or the last two when they form a
// mute+liquid cluster, which is inseparable. Leading consonants attach
// to the first syllable, trailing ones to the last. A word without
// vowels yields nil, never an error.
func syllabifyWord(token string) []Syllable {
	rs := []rune(token)

	type span struct{ start, end int }
	var nuclei []span
	for i := 0; i < len(rs); {
		// qu scans as a single consonant; its u is never a nucleus.
		if rs[i] == 'q' && i+1 < len(rs) && rs[i+1] == 'u' {
			i += 2
			continue
		}
		if n := diphthongAt(rs, i); n > 0 {
			nuclei = append(nuclei, span{i, i + n})
			i += n
			continue
		}
		if IsVowel(rs[i]) {
			nuclei = append(nuclei, span{i, i + 1})
			i++
			continue
		}
		i++
	}
	if len(nuclei) == 0 {
		return nil
	}

	sylls := make([]Syllable, len(nuclei))
	for k, nu := range nuclei {
		sylls[k] = Syllable{
			Nucleus:    string(rs[nu.start:nu.end]),
			Diphthong:  nu.end-nu.start > 1,
			MarkedLong: nu.end-nu.start == 1 && IsMarkedLong(rs[nu.start]),
		}
	}
	sylls[0].Onset = string(rs[:nuclei[0].start])
	sylls[len(sylls)-1].Coda = string(rs[nuclei[len(nuclei)-1].end:])

	for k := 0; k+1 < len(nuclei); k++ {
		units := clusterUnits(rs[nuclei[k].end:nuclei[k+1].start])
		switch {
		case len(units) == 0:
		case len(units) == 1:
			sylls[k+1].Onset = units[0]
		default:
			onset := 1
			if muteLiquidPair(units[len(units)-2], units[len(units)-1]) {
				onset = 2
			}
			sylls[k].Coda = strings.Join(units[:len(units)-onset], "")
			sylls[k+1].Onset = strings.Join(units[len(units)-onset:], "")
		}
	}
	return sylls
}

// clusterUnits splits a consonant run into the letter groups that scan
// as one consonant each: qu stays together, everything else stands
// alone.
func clusterUnits(rs []rune) []string {
	var units []string
	for i := 0; i < len(rs); {
		if rs[i] == 'q' && i+1 < len(rs) && rs[i+1] == 'u' {
			units = append(units, "qu")
			i += 2
			continue
		}
		units = append(units, string(rs[i]))
		i++
	}
	return units
}

// muteLiquidPair reports whether the consonant units a and b form a
// mute+liquid cluster.
func muteLiquidPair(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	return len(ra) == 1 && len(rb) == 1 && IsMute(ra[0]) && IsLiquid(rb[0])
}
