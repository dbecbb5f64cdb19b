package segment

// Dictionary is the lookup capability a dictionary segmenter needs: given a
// rune slice, report the length in runes of the longest dictionary word
// that prefixes it, or zero on a miss. Implementations must be read-only
// after construction.
type Dictionary interface {
	LongestMatch(runes []rune) int
}

// TrieDictionary is an in-memory prefix trie over rune sequences.
type TrieDictionary struct {
	root *trieNode
	size int
}

type trieNode struct {
	children map[rune]*trieNode
	terminal bool
}

// NewTrieDictionary builds a trie from the given words. Empty words are
// ignored.
func NewTrieDictionary(words []string) *TrieDictionary {
	d := &TrieDictionary{root: &trieNode{}}
	for _, w := range words {
		if w == "" {
			continue
		}
		node := d.root
		for _, r := range w {
			if node.children == nil {
				node.children = make(map[rune]*trieNode)
			}
			child, ok := node.children[r]
			if !ok {
				child = &trieNode{}
				node.children[r] = child
			}
			node = child
		}
		if !node.terminal {
			node.terminal = true
			d.size++
		}
	}
	return d
}

// Len returns the number of distinct words in the dictionary.
func (d *TrieDictionary) Len() int { return d.size }

// LongestMatch implements Dictionary.
func (d *TrieDictionary) LongestMatch(runes []rune) int {
	node := d.root
	best := 0
	for i, r := range runes {
		child, ok := node.children[r]
		if !ok {
			break
		}
		node = child
		if node.terminal {
			best = i + 1
		}
	}
	return best
}

// DictSegmenter segments scriptio-continua text by greedy longest match
// against a dictionary. Runs with no dictionary word fall back to
// single-character pieces, so an empty or missing dictionary degrades to
// per-character tokens instead of failing.
type DictSegmenter struct {
	dict Dictionary
}

// NewDictSegmenter wraps a dictionary. A nil dictionary yields a segmenter
// that always falls back to single characters.
func NewDictSegmenter(dict Dictionary) *DictSegmenter {
	return &DictSegmenter{dict: dict}
}

// Segment implements Segmenter.
func (s *DictSegmenter) Segment(text string) []string {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	var pieces []string
	byteAt := 0
	for i := 0; i < len(runes); {
		n := 0
		if s.dict != nil {
			n = s.dict.LongestMatch(runes[i:])
		}
		if n == 0 {
			n = 1
		}
		word := string(runes[i : i+n])
		pieces = append(pieces, text[byteAt:byteAt+len(word)])
		byteAt += len(word)
		i += n
	}
	return pieces
}
