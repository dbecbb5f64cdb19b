package normalize

import (
	"github.com/kljensen/snowball"

	"lexipipe/internal/detect"
	"lexipipe/internal/token"
)

// snowballLanguages maps detected languages to snowball stemmer names.
// Languages outside this table simply pass through.
var snowballLanguages = map[detect.Language]string{
	detect.English: "english",
	detect.French:  "french",
	detect.Spanish: "spanish",
	detect.Russian: "russian",
}

// StemNormalizer reduces words to their stem ("running" to "run") using
// the snowball family of stemmers. It only fires when the language is
// known; script-only dispatch is not specific enough to pick a stemmer.
// Disabled by default.
type StemNormalizer struct{}

// Family implements Normalizer.
func (StemNormalizer) Family() string { return "stem" }

// Priority implements Normalizer.
func (StemNormalizer) Priority() int { return PriorityStem }

// ShouldNormalize implements Normalizer.
func (StemNormalizer) ShouldNormalize(t token.Token) bool {
	if !t.IsWord() {
		return false
	}
	_, ok := snowballLanguages[t.Language]
	return ok
}

// Normalize implements Normalizer.
func (StemNormalizer) Normalize(t token.Token, opts Options) []token.Token {
	lang := snowballLanguages[t.Language]
	stemmed, err := snowball.Stem(t.Lemma, lang, false)
	if err != nil || stemmed == "" || stemmed == t.Lemma {
		return []token.Token{t}
	}

	t.Lemma = stemmed
	t.Altered = true
	if opts.CreateCharMap {
		// Stemming rewrites the suffix, not characters one by one; keep a
		// single coarse mapping.
		var mb token.MapBuilder
		mb.Push(t.ByteLen(), len(stemmed))
		t.CharMap = mb.Map()
	} else {
		t.CharMap = nil
	}
	return []token.Token{t}
}
