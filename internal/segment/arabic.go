package segment

import "strings"

// Arabic definite-article prefixes. Each is two Arabic letters, four bytes
// in UTF-8.
var arabicArticlePrefixes = []string{"ال", "أل", "إل", "آل", "ٱل"}

const arabicArticleBytes = 4

// ArabicSegmenter splits the definite article off the front of a word, so
// "الشجرة" (the tree) yields "ال" and "شجرة" and a search for either form
// matches. Words that merely start with those letters (proper nouns like
// "البانيا", Albania) are split the same way; both halves stay adjacent so
// phrase matching still works.
type ArabicSegmenter struct{}

// Segment implements Segmenter.
func (ArabicSegmenter) Segment(text string) []string {
	if text == "" {
		return nil
	}
	if len(text) <= arabicArticleBytes {
		return []string{text}
	}
	for _, prefix := range arabicArticlePrefixes {
		if strings.HasPrefix(text, prefix) {
			return []string{text[:arabicArticleBytes], text[arabicArticleBytes:]}
		}
	}
	return []string{text}
}
