package normalize

import (
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"lexipipe/internal/detect"
	"lexipipe/internal/token"
)

// stripChainPool avoids rebuilding the NFD -> remove(Mn) -> NFC pipeline on
// every call.
var stripChainPool = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	},
}

func stripMarks(s string) string {
	t := stripChainPool.Get().(transform.Transformer)
	defer func() {
		t.Reset()
		stripChainPool.Put(t)
	}()

	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// DiacriticsNormalizer folds accented Latin letters toward plain ASCII by
// decomposing and dropping combining marks ("café" to "cafe"). Disabled by
// default; accent-sensitive deployments leave it off.
type DiacriticsNormalizer struct{}

// Family implements Normalizer.
func (DiacriticsNormalizer) Family() string { return "diacritics" }

// Priority implements Normalizer.
func (DiacriticsNormalizer) Priority() int { return PriorityDiacritics }

// ShouldNormalize implements Normalizer.
func (DiacriticsNormalizer) ShouldNormalize(t token.Token) bool {
	return t.IsWord() && t.Script == detect.ScriptLatin
}

// Normalize implements Normalizer.
func (DiacriticsNormalizer) Normalize(t token.Token, opts Options) []token.Token {
	return []token.Token{rewriteLemma(t, opts, func(r rune) string {
		return stripMarks(string(r))
	})}
}
