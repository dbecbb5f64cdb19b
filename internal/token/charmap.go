package token

// Mapping records that one chunk of original text became one chunk of
// normalized text: Src original bytes produced Dst normalized bytes. Byte
// counts are clamped to 255, which comfortably covers any single character
// and its expansions.
type Mapping struct {
	Src uint8 `json:"src"`
	Dst uint8 `json:"dst"`
}

// CharMap maps normalized token content back to original character
// positions. It is only built when the pipeline is configured to do so,
// since most callers never need per-character provenance.
type CharMap []Mapping

// MapBuilder accumulates a CharMap while a normalizer rewrites a lemma
// character by character.
type MapBuilder struct {
	m CharMap
}

// Push records that src original bytes produced dst normalized bytes.
func (b *MapBuilder) Push(src, dst int) {
	b.m = append(b.m, Mapping{Src: clampByte(src), Dst: clampByte(dst)})
}

// Map returns the accumulated CharMap, or nil if nothing was pushed.
func (b *MapBuilder) Map() CharMap { return b.m }

// SrcBytes sums the original-byte side of the map.
func (m CharMap) SrcBytes() int {
	total := 0
	for _, p := range m {
		total += int(p.Src)
	}
	return total
}

// DstBytes sums the normalized-byte side of the map.
func (m CharMap) DstBytes() int {
	total := 0
	for _, p := range m {
		total += int(p.Dst)
	}
	return total
}

func clampByte(n int) uint8 {
	if n > 255 {
		return 255
	}
	if n < 0 {
		return 0
	}
	return uint8(n)
}
