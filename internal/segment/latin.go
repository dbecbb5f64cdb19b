package segment

import "lexipipe/internal/token"

// LatinSegmenter splits Latin-script word chunks on camelCase boundaries,
// so "getUserName" becomes "get", "User", "Name". Underscores and hyphens
// never reach this segmenter; they are separators and already tokens of
// their own. With identifier splitting disabled it passes chunks through
// unchanged.
type LatinSegmenter struct {
	SplitIdentifiers bool
}

// Segment implements Segmenter.
func (s LatinSegmenter) Segment(text string) []string {
	if text == "" {
		return nil
	}
	if !s.SplitIdentifiers {
		return []string{text}
	}

	var pieces []string
	start := 0
	prev := rune(-1)
	for i, r := range text {
		if prev >= 0 && token.IsCaseBoundary(prev, r) && i > start {
			pieces = append(pieces, text[start:i])
			start = i
		}
		prev = r
	}
	pieces = append(pieces, text[start:])
	return pieces
}
