package segment

import (
	"reflect"
	"strings"
	"testing"
)

func TestThaiClusters(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{"preposed vowel binds forward", "ไทย", []string{"ไท", "ย"}},
		{"attached vowel stays", "วัน", []string{"วั", "น"}},
		{"tone mark stays", "นี้", []string{"นี้"}},
		{"plain consonants", "กขค", []string{"ก", "ข", "ค"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := thaiClusters(tc.text)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("thaiClusters(%q) = %v, want %v", tc.text, got, tc.want)
			}
			if strings.Join(got, "") != tc.text {
				t.Fatalf("clusters do not cover input: %v", got)
			}
		})
	}
}

func TestThaiSegmenterNoDictionary(t *testing.T) {
	got := NewThaiSegmenter(nil).Segment("ไทย")
	want := []string{"ไท", "ย"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Segment = %v, want clusters %v", got, want)
	}
}

func TestThaiSegmenterJoinsDictionaryWords(t *testing.T) {
	dict := NewTrieDictionary([]string{"ไทย", "ประเทศ"})
	s := NewThaiSegmenter(dict)

	got := s.Segment("ประเทศไทย")
	if strings.Join(got, "") != "ประเทศไทย" {
		t.Fatalf("pieces do not cover input: %v", got)
	}
	if got[len(got)-1] != "ไทย" {
		t.Fatalf("dictionary word not joined: %v", got)
	}
}

func TestThaiSegmenterEmpty(t *testing.T) {
	if got := NewThaiSegmenter(nil).Segment(""); got != nil {
		t.Fatalf("empty chunk = %v, want nil", got)
	}
}
