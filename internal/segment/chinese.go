package segment

import (
	"github.com/go-ego/gse"
)

// WordMatcher is the opaque capability behind the Chinese segmenter: cut a
// chunk into consecutive word pieces. The statistical model inside the
// backend is not this package's concern; its output is re-checked against
// the coverage contract before use.
type WordMatcher interface {
	Cut(text string) []string
}

// ChineseSegmenter delegates to a dictionary-backed word matcher (gse by
// default) and guards its output so that backend misbehavior degrades to
// single-character pieces rather than breaking coverage.
type ChineseSegmenter struct {
	matcher WordMatcher
}

// NewChineseSegmenter loads the gse backend with its embedded dictionary
// plus any user-supplied words. Loading is done once here; the segmenter is
// read-only afterwards and safe for concurrent use.
func NewChineseSegmenter(userWords []string) (*ChineseSegmenter, error) {
	var seg gse.Segmenter
	if err := seg.LoadDict(); err != nil {
		return nil, err
	}
	for _, w := range userWords {
		if w == "" {
			continue
		}
		_ = seg.AddToken(w, 100)
	}
	return &ChineseSegmenter{matcher: gseMatcher{seg: &seg}}, nil
}

// NewChineseSegmenterWithMatcher wraps a caller-supplied backend.
func NewChineseSegmenterWithMatcher(m WordMatcher) *ChineseSegmenter {
	return &ChineseSegmenter{matcher: m}
}

// Segment implements Segmenter.
func (s *ChineseSegmenter) Segment(text string) []string {
	if text == "" {
		return nil
	}
	if s.matcher == nil {
		return runeSplit(text)
	}
	return ensureCoverage(text, s.matcher.Cut(text))
}

type gseMatcher struct {
	seg *gse.Segmenter
}

func (m gseMatcher) Cut(text string) []string {
	return m.seg.Cut(text, true)
}
