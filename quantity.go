package scansion

// lookahead gathers the consonant units that follow unit i's nucleus:
// its own coda, then the onset of whatever comes next in the sentence —
// the elided prefix riding on the following unit when there is one, the
// following unit's own onset otherwise. The window may cross a word
// boundary; it never reaches past the next nucleus.
func lookahead(units []unit, i int) (coda, onset []string) {
	coda = positionUnits(units[i].syl.Coda)
	if i+1 < len(units) {
		next := units[i+1]
		if next.elided != nil {
			onset = positionUnits(next.elided.onset)
		} else {
			onset = positionUnits(next.syl.Onset)
		}
	}
	return coda, onset
}

// positionUnits converts a consonant run into the units that count for
// length by position: h is silent, qu is one unit.
func positionUnits(s string) []string {
	var out []string
	for _, u := range clusterUnits([]rune(s)) {
		if u == "h" {
			continue
		}
		out = append(out, u)
	}
	return out
}

// positionWeight is the positional weight of a window; x and z count as
// two consonants.
func positionWeight(units []string) int {
	w := 0
	for _, u := range units {
		if IsDouble([]rune(u)[0]) {
			w += 2
		} else {
			w++
		}
	}
	return w
}

// muteLiquidCluster reports whether an onset window is exactly one mute
// followed by one liquid — the historically ambiguous cluster that by
// default does not force length.
func muteLiquidCluster(onset []string) bool {
	return len(onset) == 2 && muteLiquidPair(onset[0], onset[1])
}

// classify assigns unit i its weight symbol. Rules in priority order:
// a diphthong, or long material absorbed by elision, is long by nature;
// hiatus (a vowel running straight into the next vowel of its word) is
// short, macron or not; a macron-marked vowel is long; two or more
// following consonant units — or one double consonant — make the
// syllable long by position, unless they are exactly a tautosyllabic
// mute+liquid cluster; everything else is short. The sentence-final
// syllable has no following context and is never long by position.
func (s *Scanner) classify(units []unit, i int) rune {
	u := units[i]

	if u.syl.Diphthong || (u.elided != nil && u.elided.long) {
		return s.cfg.LongMark
	}

	last := i == len(units)-1
	coda, onset := lookahead(units, i)

	if !last && len(coda) == 0 && len(onset) == 0 {
		next := units[i+1]
		if !u.wordEnd || next.elided != nil {
			return s.cfg.ShortMark
		}
	}

	if u.syl.MarkedLong {
		return s.cfg.LongMark
	}

	if !last && positionWeight(coda)+positionWeight(onset) >= 2 {
		if len(coda) == 0 && !s.cfg.MuteLiquidLengthens && muteLiquidCluster(onset) {
			return s.cfg.ShortMark
		}
		return s.cfg.LongMark
	}
	return s.cfg.ShortMark
}
