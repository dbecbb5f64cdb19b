package token

// Kind classifies a token.
type Kind int

const (
	// Unknown is the kind of a raw token before classification.
	Unknown Kind = iota
	// Word is a lexical token carrying content.
	Word
	// StopWord is a word present in the configured stop-word list.
	StopWord
	// SoftSeparator separates words without ending a phrase (spaces,
	// hyphens, underscores).
	SoftSeparator
	// HardSeparator ends a phrase or sentence (periods, question marks,
	// newlines).
	HardSeparator
)

var kindNames = [...]string{
	Unknown:       "unknown",
	Word:          "word",
	StopWord:      "stopword",
	SoftSeparator: "softSeparator",
	HardSeparator: "hardSeparator",
}

// String returns the kind name used in API responses.
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsSeparator reports whether the kind is a separator of either strength.
func (k Kind) IsSeparator() bool { return k == SoftSeparator || k == HardSeparator }

// MarshalText encodes the kind as its name.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }
