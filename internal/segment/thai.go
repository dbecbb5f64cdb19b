package segment

// ThaiSegmenter segments Thai text, which has no word-boundary whitespace.
//
// Boundary heuristic, documented here because no reference segmentation
// standard is claimed: the text is first grouped into orthographic
// clusters. A cluster starts at a consonant, carries any dependent vowels,
// tone marks, and signs that follow it, and absorbs a preceding preposed
// vowel (เ แ โ ใ ไ), which is written before the consonant it sounds
// after. Clusters are then joined by greedy longest-match against the
// configured dictionary, with matches only accepted on cluster
// boundaries. Without a dictionary every cluster is its own token.
type ThaiSegmenter struct {
	dict Dictionary
}

// NewThaiSegmenter creates a Thai segmenter. The dictionary may be nil.
func NewThaiSegmenter(dict Dictionary) *ThaiSegmenter {
	return &ThaiSegmenter{dict: dict}
}

// Segment implements Segmenter.
func (s *ThaiSegmenter) Segment(text string) []string {
	if text == "" {
		return nil
	}
	clusters := thaiClusters(text)
	if s.dict == nil {
		return clusters
	}
	return joinByDictionary(clusters, s.dict)
}

func isThaiConsonant(r rune) bool { return r >= 0x0E01 && r <= 0x0E2E }

func isThaiPreposedVowel(r rune) bool { return r >= 0x0E40 && r <= 0x0E44 }

// isThaiAttached covers dependent vowels, tone marks, and combining signs
// that never start a cluster.
func isThaiAttached(r rune) bool {
	switch {
	case r >= 0x0E30 && r <= 0x0E3A: // sara a..phinthu, incl. mai han akat
		return true
	case r >= 0x0E47 && r <= 0x0E4E:
		return true
	}
	return false
}

func thaiClusters(text string) []string {
	var clusters []string
	start := 0
	prevPreposed := false
	for i, r := range text {
		if i == 0 {
			prevPreposed = isThaiPreposedVowel(r)
			continue
		}
		boundary := false
		switch {
		case isThaiAttached(r):
			// stays in the current cluster
		case prevPreposed:
			// a preposed vowel binds to this rune
		default:
			boundary = true
		}
		if boundary {
			clusters = append(clusters, text[start:i])
			start = i
		}
		prevPreposed = isThaiPreposedVowel(r)
	}
	clusters = append(clusters, text[start:])
	return clusters
}

// joinByDictionary merges consecutive clusters whenever their
// concatenation is the longest dictionary match starting at the current
// cluster.
func joinByDictionary(clusters []string, dict Dictionary) []string {
	var pieces []string
	for i := 0; i < len(clusters); {
		// Longest run of clusters whose joined runes form a dictionary word.
		best := 1
		joined := clusters[i]
		runesSoFar := []rune(joined)
		for j := i + 1; j < len(clusters); j++ {
			runesSoFar = append(runesSoFar, []rune(clusters[j])...)
			if dict.LongestMatch(runesSoFar) == len(runesSoFar) {
				best = j - i + 1
			}
		}
		word := clusters[i]
		for k := i + 1; k < i+best; k++ {
			word += clusters[k]
		}
		pieces = append(pieces, word)
		i += best
	}
	return pieces
}
