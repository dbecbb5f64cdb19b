package normalize

import (
	"strings"

	"lexipipe/internal/token"
)

// StopWordNormalizer flags tokens found in the configured stop-word list.
// It runs last so the list is matched against fully normalized lemmas, and
// it only re-tags the token; dropping stop words is the indexer's call,
// not the pipeline's.
type StopWordNormalizer struct {
	words map[string]struct{}
}

// NewStopWordNormalizer builds the normalizer from a word list. Words are
// matched case-insensitively against normalized lemmas.
func NewStopWordNormalizer(words []string) *StopWordNormalizer {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return &StopWordNormalizer{words: set}
}

// Family implements Normalizer.
func (*StopWordNormalizer) Family() string { return "stopwords" }

// Priority implements Normalizer.
func (*StopWordNormalizer) Priority() int { return PriorityStopwords }

// ShouldNormalize implements Normalizer.
func (n *StopWordNormalizer) ShouldNormalize(t token.Token) bool {
	return len(n.words) > 0 && t.IsWord()
}

// Normalize implements Normalizer. The lemma is folded here too, so the
// list still matches when the lowercase family is disabled.
func (n *StopWordNormalizer) Normalize(t token.Token, _ Options) []token.Token {
	if _, ok := n.words[strings.ToLower(t.Lemma)]; ok {
		t.Kind = token.StopWord
	}
	return []token.Token{t}
}
