// Package scansion converts Latin prose into per-sentence metrical
// scansion strings, one long (-) or short (u) symbol per syllable in
// reading order, following the classical quantity rules: inherent
// vowel length, diphthongs, length by position, and elision across
// word boundaries. Vowel length must already be marked in the input
// (macrons); the package never guesses unmarked quantities.
package scansion

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Config controls the tunable corners of classical scansion.
type Config struct {
	// ElideFinalM also elides a word-final vowel+m before a
	// vowel-initial word, the common poetic treatment.
	ElideFinalM bool

	// MuteLiquidLengthens makes a mute+liquid onset cluster count as
	// two consonants for length by position. Classical practice allows
	// either reading; the default keeps the cluster short.
	MuteLiquidLengthens bool

	// LongMark and ShortMark are the output symbols. Zero values fall
	// back to '-' and 'u'.
	LongMark  rune
	ShortMark rune
}

// DefaultConfig returns the standard configuration: final-m elision on,
// mute+liquid short, '-' and 'u' marks.
func DefaultConfig() Config {
	return Config{ElideFinalM: true, LongMark: '-', ShortMark: 'u'}
}

// Scanner scans normalized Latin sentences. It is immutable after
// construction and safe for concurrent use.
type Scanner struct {
	cfg Config
}

// New returns a Scanner with DefaultConfig.
func New() *Scanner { return NewWithConfig(DefaultConfig()) }

// NewWithConfig returns a Scanner using cfg.
func NewWithConfig(cfg Config) *Scanner {
	if cfg.LongMark == 0 {
		cfg.LongMark = '-'
	}
	if cfg.ShortMark == 0 {
		cfg.ShortMark = 'u'
	}
	return &Scanner{cfg: cfg}
}

// words splits a normalized sentence into syllabified words. Tokens
// that clean down to nothing are dropped.
func (s *Scanner) words(text string) []Word {
	fields := strings.Fields(NormalizeText(text))
	ws := make([]Word, 0, len(fields))
	for _, f := range fields {
		tok := cleanWord(f)
		if tok == "" {
			continue
		}
		ws = append(ws, Word{Token: tok, Syllables: syllabifyWord(tok)})
	}
	return ws
}

// ScanSentence scans one already-segmented sentence (words separated by
// spaces) and returns its scansion string, one symbol per non-elided
// syllable. A sentence without vowels yields the empty string. The
// function is pure: equal input always produces equal output.
func (s *Scanner) ScanSentence(text string) string {
	units := s.resolve(s.words(text))
	var b strings.Builder
	for i := range units {
		b.WriteRune(s.classify(units, i))
	}
	return b.String()
}

// ScanText scans sentences in order, one scansion string per sentence.
func (s *Scanner) ScanText(sentences []string) []string {
	out := make([]string, len(sentences))
	for i, sent := range sentences {
		out[i] = s.ScanSentence(sent)
	}
	return out
}

// ScanTextConcurrent scans sentences across at most workers goroutines.
// Sentences are independent, so only the fan-out is concurrent: results
// are written by index and the returned slice always matches input
// order. The only possible error is a canceled context.
func (s *Scanner) ScanTextConcurrent(ctx context.Context, sentences []string, workers int) ([]string, error) {
	if workers < 1 {
		workers = 1
	}
	out := make([]string, len(sentences))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, sent := range sentences {
		i, sent := i, sent
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = s.ScanSentence(sent)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
