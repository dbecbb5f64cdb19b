package segment

// KhmerSegmenter segments Khmer text, another scriptio-continua script.
//
// Boundary heuristic: a coeng sign (U+17D2) binds the following consonant
// into the current cluster, and dependent vowels and diacritic signs
// (U+17B6..U+17D1) never start a cluster. Zero-width spaces, when authors
// typed them, count as whitespace upstream and never reach this segmenter.
// Clusters are joined by greedy dictionary matching exactly like the Thai
// segmenter; with no dictionary every cluster stands alone.
type KhmerSegmenter struct {
	dict Dictionary
}

// NewKhmerSegmenter creates a Khmer segmenter. The dictionary may be nil.
func NewKhmerSegmenter(dict Dictionary) *KhmerSegmenter {
	return &KhmerSegmenter{dict: dict}
}

const khmerCoeng = '្'

func isKhmerAttached(r rune) bool { return r >= 0x17B6 && r <= 0x17D1 }

// Segment implements Segmenter.
func (s *KhmerSegmenter) Segment(text string) []string {
	if text == "" {
		return nil
	}
	clusters := khmerClusters(text)
	if s.dict == nil {
		return clusters
	}
	return joinByDictionary(clusters, s.dict)
}

func khmerClusters(text string) []string {
	var clusters []string
	start := 0
	prev := rune(-1)
	for i, r := range text {
		if i == 0 {
			prev = r
			continue
		}
		attached := isKhmerAttached(r) || r == khmerCoeng || prev == khmerCoeng
		if !attached {
			clusters = append(clusters, text[start:i])
			start = i
		}
		prev = r
	}
	clusters = append(clusters, text[start:])
	return clusters
}
