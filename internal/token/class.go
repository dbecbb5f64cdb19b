package token

import "unicode"

// Character-class helpers shared by segmenters and normalizers. Pure
// functions over codepoints plus static tables; no state.

// hardSeparators end a phrase or sentence. Everything else that separates
// is soft.
var hardSeparators = map[rune]struct{}{
	'.': {}, '!': {}, '?': {}, ';': {}, '…': {},
	'。': {}, '！': {}, '？': {}, '；': {},
	'؟': {}, '۔': {}, '।': {}, '\n': {}, '\r': {},
	'ฯ': {}, // Thai paiyannoi
	'។': {}, // Khmer khan
}

// IsSeparator reports whether the rune splits words: whitespace and
// punctuation, but not symbols, so "29.3°F" keeps its degree sign inside a
// word token. The zero-width space is included; Khmer and Thai authors use
// it as an invisible word break and it is not covered by unicode.IsSpace.
func IsSeparator(r rune) bool {
	return r == '​' || unicode.IsSpace(r) || unicode.IsPunct(r)
}

// SeparatorKind returns the token kind for a separator rune.
func SeparatorKind(r rune) Kind {
	if _, hard := hardSeparators[r]; hard {
		return HardSeparator
	}
	return SoftSeparator
}

// SeparatorRunKind returns the kind for a run of separator runes: hard if
// any rune in the run is hard.
func SeparatorRunKind(runes string) Kind {
	for _, r := range runes {
		if SeparatorKind(r) == HardSeparator {
			return HardSeparator
		}
	}
	return SoftSeparator
}

// IsCaseBoundary reports a camelCase transition between two adjacent
// runes: lower-or-digit followed by upper.
func IsCaseBoundary(prev, next rune) bool {
	return (unicode.IsLower(prev) || unicode.IsDigit(prev)) && unicode.IsUpper(next)
}
