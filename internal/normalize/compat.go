package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"lexipipe/internal/token"
)

// CompatNormalizer rewrites lemmas into their NFKC form: ligatures ("ﬁ" to
// "fi"), circled digits, full-width forms, and canonical composition of
// decomposed sequences, so "cafe" with a combining acute and the composed
// "café" index to the same term. Composed output is used rather than
// decomposition so that accented letters stay single runes; mark stripping
// is the diacritics family's job.
type CompatNormalizer struct{}

// Family implements Normalizer.
func (CompatNormalizer) Family() string { return "compat" }

// Priority implements Normalizer.
func (CompatNormalizer) Priority() int { return PriorityCompat }

// ShouldNormalize implements Normalizer.
func (CompatNormalizer) ShouldNormalize(t token.Token) bool {
	return t.IsWord() && !norm.NFKC.IsNormalString(t.Lemma)
}

// Normalize implements Normalizer. Composition spans runes, so the lemma is
// normalized in whole NFKC boundary segments rather than rune by rune; the
// char map gets one entry per segment.
func (CompatNormalizer) Normalize(t token.Token, opts Options) []token.Token {
	if !opts.CreateCharMap {
		out := norm.NFKC.String(t.Lemma)
		if out != t.Lemma {
			t.Lemma = out
			t.Altered = true
		}
		return []token.Token{t}
	}

	var b strings.Builder
	b.Grow(len(t.Lemma))
	var mb token.MapBuilder

	if t.CharMap == nil {
		var it norm.Iter
		it.InitString(norm.NFKC, t.Lemma)
		pos := 0
		for !it.Done() {
			seg := it.Next()
			mb.Push(it.Pos()-pos, len(seg))
			pos = it.Pos()
			b.Write(seg)
		}
	} else {
		// A previous stage already changed lengths: normalize chunk by chunk
		// so each entry keeps pointing at its original bytes.
		pos := 0
		for _, m := range t.CharMap {
			chunk := t.Lemma[pos : pos+int(m.Dst)]
			pos += int(m.Dst)
			out := norm.NFKC.String(chunk)
			mb.Push(int(m.Src), len(out))
			b.WriteString(out)
		}
	}

	t.CharMap = mb.Map()
	if out := b.String(); out != t.Lemma {
		t.Lemma = out
		t.Altered = true
	}
	return []token.Token{t}
}
