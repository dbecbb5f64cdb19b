package normalize

import (
	"strings"

	"lexipipe/internal/detect"
	"lexipipe/internal/token"
)

// Scripts that distinguish letter case.
var casedScripts = map[detect.Script]bool{
	detect.ScriptLatin:    true,
	detect.ScriptCyrillic: true,
	detect.ScriptGreek:    true,
	detect.ScriptArmenian: true,
	detect.ScriptGeorgian: true,
	detect.ScriptOther:    true,
}

// LowercaseNormalizer folds cased scripts to lower case. Folding one rune
// at a time keeps the char map exact even where lowering changes byte
// length (e.g. İ).
type LowercaseNormalizer struct{}

// Family implements Normalizer.
func (LowercaseNormalizer) Family() string { return "lowercase" }

// Priority implements Normalizer.
func (LowercaseNormalizer) Priority() int { return PriorityLowercase }

// ShouldNormalize implements Normalizer.
func (LowercaseNormalizer) ShouldNormalize(t token.Token) bool {
	return t.IsWord() && casedScripts[t.Script]
}

// Normalize implements Normalizer.
func (LowercaseNormalizer) Normalize(t token.Token, opts Options) []token.Token {
	return []token.Token{rewriteLemma(t, opts, func(r rune) string {
		return strings.ToLower(string(r))
	})}
}
