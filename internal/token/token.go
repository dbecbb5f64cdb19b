// Package token defines the units flowing through the tokenization
// pipeline: spans into the original input, raw and normalized tokens, and
// the shared character-class tables used by segmenters and normalizers.
package token

import "lexipipe/internal/detect"

// Token is the unit produced by a segmenter and transformed by the
// normalizer cascade. The Span always references the original input; Lemma
// holds the (possibly rewritten) text content.
type Token struct {
	Lemma string `json:"lemma"`
	Span
	Script   detect.Script   `json:"script"`
	Language detect.Language `json:"language,omitempty"`
	Kind     Kind            `json:"kind"`
	CharMap  CharMap         `json:"charMap,omitempty"`
	// Altered is set once any normalizer changes the lemma from the
	// original text.
	Altered bool `json:"altered"`
}

// NormalizedToken is a Token whose lemma has passed the full normalizer
// cascade. The pipeline only ever exposes normalized tokens to callers.
type NormalizedToken = Token

// OriginalText returns the slice of input this token was produced from.
// The input must be the same string the pipeline tokenized.
func (t Token) OriginalText(input string) string {
	return input[t.ByteStart:t.ByteEnd]
}

// IsWord reports whether the token carries lexical content.
func (t Token) IsWord() bool { return t.Kind == Word || t.Kind == Unknown }

// IsSeparator reports whether the token is a separator of either strength.
func (t Token) IsSeparator() bool { return t.Kind.IsSeparator() }

// IsStopWord reports whether the token matched the stop-word list.
func (t Token) IsStopWord() bool { return t.Kind == StopWord }
