package token

// Span references a range of the original input by byte and character
// offsets. It never copies text; offsets stay valid for the lifetime of the
// input string they were derived from.
type Span struct {
	ByteStart int `json:"byteStart"`
	ByteEnd   int `json:"byteEnd"`
	CharStart int `json:"charStart"`
	CharEnd   int `json:"charEnd"`
}

// ByteLen returns the number of input bytes the span covers.
func (s Span) ByteLen() int { return s.ByteEnd - s.ByteStart }

// CharLen returns the number of input characters the span covers.
func (s Span) CharLen() int { return s.CharEnd - s.CharStart }

// Contains reports whether other lies entirely within s.
func (s Span) Contains(other Span) bool {
	return other.ByteStart >= s.ByteStart && other.ByteEnd <= s.ByteEnd &&
		other.CharStart >= s.CharStart && other.CharEnd <= s.CharEnd
}
