package segment

import (
	"reflect"
	"testing"
)

type scriptedMatcher struct {
	pieces []string
}

func (m scriptedMatcher) Cut(string) []string { return m.pieces }

func TestChineseSegmenterWithMatcher(t *testing.T) {
	s := NewChineseSegmenterWithMatcher(scriptedMatcher{pieces: []string{"你好", "世界"}})
	got := s.Segment("你好世界")
	want := []string{"你好", "世界"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Segment = %v, want %v", got, want)
	}
}

func TestChineseSegmenterBadBackendOutput(t *testing.T) {
	// Backend reorders the pieces; the coverage guard rejects them.
	s := NewChineseSegmenterWithMatcher(scriptedMatcher{pieces: []string{"世界", "你好"}})
	got := s.Segment("你好世界")
	if !reflect.DeepEqual(got, []string{"你", "好", "世", "界"}) {
		t.Fatalf("coverage fallback = %v, want per-rune pieces", got)
	}
}

func TestChineseSegmenterNilMatcher(t *testing.T) {
	s := &ChineseSegmenter{}
	if got := s.Segment("你好"); len(got) != 2 {
		t.Fatalf("nil matcher = %v, want per-rune pieces", got)
	}
	if got := s.Segment(""); got != nil {
		t.Fatalf("empty chunk = %v, want nil", got)
	}
}
