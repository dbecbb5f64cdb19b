package segment

import "strings"

// ensureCoverage verifies that pieces are consecutive substrings covering
// text exactly. If a backend returned pieces that drop, reorder, or
// duplicate content, the whole chunk is re-split into single runes instead:
// a deterministic fallback that keeps the coverage invariant intact.
func ensureCoverage(text string, pieces []string) []string {
	if len(pieces) == 0 {
		return runeSplit(text)
	}

	total := 0
	for _, p := range pieces {
		total += len(p)
	}
	if total != len(text) || strings.Join(pieces, "") != text {
		return runeSplit(text)
	}
	return pieces
}

// runeSplit splits text into one piece per rune.
func runeSplit(text string) []string {
	pieces := make([]string, 0, len(text))
	for i, r := range text {
		pieces = append(pieces, text[i:i+len(string(r))])
	}
	return pieces
}
