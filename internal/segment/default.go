package segment

// DefaultSegmenter is the always-available fallback. The token stream has
// already split its input on whitespace and punctuation, so the remaining
// word chunk is returned as a single piece.
type DefaultSegmenter struct{}

// Segment implements Segmenter.
func (DefaultSegmenter) Segment(text string) []string {
	if text == "" {
		return nil
	}
	return []string{text}
}
