package normalize

import (
	"unicode"

	"lexipipe/internal/detect"
	"lexipipe/internal/token"
)

// Scripts whose nonspacing marks are routinely omitted in search queries:
// Arabic harakat, Hebrew niqqud, Thai and Khmer tone marks and above/below
// vowels.
var markStrippedScripts = map[detect.Script]bool{
	detect.ScriptArabic: true,
	detect.ScriptHebrew: true,
	detect.ScriptThai:   true,
	detect.ScriptKhmer:  true,
}

// NonspacingNormalizer removes combining nonspacing marks from scripts
// where users type them inconsistently, so vocalized and plain spellings
// index to the same term.
type NonspacingNormalizer struct{}

// Family implements Normalizer.
func (NonspacingNormalizer) Family() string { return "nonspacing" }

// Priority implements Normalizer.
func (NonspacingNormalizer) Priority() int { return PriorityNonspacing }

// ShouldNormalize implements Normalizer.
func (NonspacingNormalizer) ShouldNormalize(t token.Token) bool {
	return t.IsWord() && markStrippedScripts[t.Script]
}

// Normalize implements Normalizer.
func (NonspacingNormalizer) Normalize(t token.Token, opts Options) []token.Token {
	return []token.Token{rewriteLemma(t, opts, func(r rune) string {
		if unicode.Is(unicode.Mn, r) {
			return ""
		}
		return string(r)
	})}
}
