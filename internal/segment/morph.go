package segment

import (
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Morpheme is one unit returned by a morphological analyzer. PartOfSpeech
// is an optional hint; the pipeline only consumes Surface.
type Morpheme struct {
	Surface      string
	PartOfSpeech string
}

// MorphAnalyzer is the opaque morphological-analysis capability. Analyzer
// errors are never fatal: the wrapping segmenter falls back to returning
// the chunk whole.
type MorphAnalyzer interface {
	Analyze(text string) ([]Morpheme, error)
}

// MorphSegmenter adapts a morphological analyzer to the Segmenter
// contract. It serves Japanese (kagome backend) and Korean (no built-in
// backend; without one the registry falls back to the default segmenter).
type MorphSegmenter struct {
	analyzer MorphAnalyzer
}

// NewMorphSegmenter wraps an analyzer. A nil analyzer yields a segmenter
// that passes chunks through unchanged.
func NewMorphSegmenter(analyzer MorphAnalyzer) *MorphSegmenter {
	return &MorphSegmenter{analyzer: analyzer}
}

// Segment implements Segmenter.
func (s *MorphSegmenter) Segment(text string) []string {
	if text == "" {
		return nil
	}
	if s.analyzer == nil {
		return []string{text}
	}

	morphemes, err := s.analyzer.Analyze(text)
	if err != nil || len(morphemes) == 0 {
		return []string{text}
	}

	pieces := make([]string, 0, len(morphemes))
	for _, m := range morphemes {
		if m.Surface != "" {
			pieces = append(pieces, m.Surface)
		}
	}
	return ensureCoverage(text, pieces)
}

// KagomeAnalyzer backs MorphSegmenter with the kagome tokenizer and its
// bundled IPA dictionary.
type KagomeAnalyzer struct {
	t *tokenizer.Tokenizer
}

// NewKagomeAnalyzer builds the kagome tokenizer once. The dictionary is
// embedded, so this does no I/O, but lattice construction state is
// per-call and the analyzer is safe for concurrent use.
func NewKagomeAnalyzer() (*KagomeAnalyzer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &KagomeAnalyzer{t: t}, nil
}

// Analyze implements MorphAnalyzer.
func (a *KagomeAnalyzer) Analyze(text string) ([]Morpheme, error) {
	tokens := a.t.Tokenize(text)
	morphemes := make([]Morpheme, 0, len(tokens))
	for _, tok := range tokens {
		m := Morpheme{Surface: tok.Surface}
		if pos := tok.POS(); len(pos) > 0 {
			m.PartOfSpeech = pos[0]
		}
		morphemes = append(morphemes, m)
	}
	return morphemes, nil
}
