package normalize

import (
	"strings"

	"github.com/mozillazg/go-unidecode"

	"lexipipe/internal/detect"
	"lexipipe/internal/token"
)

// TranslitNormalizer appends a Latin transliteration variant after each
// non-Latin word token, so "Москва" also indexes as "moskva". This is
// token multiplication: the original form is kept and the variant follows
// it, sharing the same source span. Disabled by default.
type TranslitNormalizer struct{}

// Family implements Normalizer.
func (TranslitNormalizer) Family() string { return "translit" }

// Priority implements Normalizer.
func (TranslitNormalizer) Priority() int { return PriorityTranslit }

// ShouldNormalize implements Normalizer.
func (TranslitNormalizer) ShouldNormalize(t token.Token) bool {
	return t.IsWord() && t.Script != detect.ScriptLatin && t.Script != detect.ScriptOther
}

// Normalize implements Normalizer.
func (TranslitNormalizer) Normalize(t token.Token, opts Options) []token.Token {
	romanized := strings.ToLower(strings.TrimSpace(unidecode.Unidecode(t.Lemma)))
	if romanized == "" || romanized == t.Lemma {
		return []token.Token{t}
	}

	variant := t
	variant.Lemma = romanized
	variant.Altered = true
	if opts.CreateCharMap {
		// Transliteration has no per-character correspondence; record one
		// coarse mapping covering the whole token.
		var mb token.MapBuilder
		mb.Push(t.ByteLen(), len(romanized))
		variant.CharMap = mb.Map()
	} else {
		variant.CharMap = nil
	}

	return []token.Token{t, variant}
}
