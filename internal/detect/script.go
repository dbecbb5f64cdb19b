package detect

import "unicode"

// Script identifies the writing system of a rune or of a run of text.
//
// Han ideographs, Hiragana, and Katakana are grouped under a single ScriptCJ
// value: Japanese prose interleaves all three, and splitting them into
// separate runs would hand the morphological analyzer unusable fragments.
type Script string

const (
	ScriptOther      Script = "Other"
	ScriptLatin      Script = "Latin"
	ScriptCyrillic   Script = "Cyrillic"
	ScriptGreek      Script = "Greek"
	ScriptArabic     Script = "Arabic"
	ScriptHebrew     Script = "Hebrew"
	ScriptCJ         Script = "Cj"
	ScriptHangul     Script = "Hangul"
	ScriptThai       Script = "Thai"
	ScriptKhmer      Script = "Khmer"
	ScriptDevanagari Script = "Devanagari"
	ScriptGeorgian   Script = "Georgian"
	ScriptArmenian   Script = "Armenian"
)

// AllScripts lists every script the classifier can assign, excluding
// ScriptOther.
var AllScripts = []Script{
	ScriptLatin,
	ScriptCyrillic,
	ScriptGreek,
	ScriptArabic,
	ScriptHebrew,
	ScriptCJ,
	ScriptHangul,
	ScriptThai,
	ScriptKhmer,
	ScriptDevanagari,
	ScriptGeorgian,
	ScriptArmenian,
}

// ScriptFor returns the script of a single rune. Punctuation, whitespace,
// digits, and other shared characters return ScriptOther so that the run
// classifier can attach them to the surrounding run.
func ScriptFor(r rune) Script {
	if r < 0x80 {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return ScriptLatin
		}
		return ScriptOther
	}

	switch {
	case unicode.Is(unicode.Latin, r):
		return ScriptLatin
	case unicode.Is(unicode.Han, r), unicode.Is(unicode.Hiragana, r), unicode.Is(unicode.Katakana, r):
		return ScriptCJ
	case unicode.Is(unicode.Hangul, r):
		return ScriptHangul
	case unicode.Is(unicode.Cyrillic, r):
		return ScriptCyrillic
	case unicode.Is(unicode.Greek, r):
		return ScriptGreek
	case unicode.Is(unicode.Arabic, r):
		return ScriptArabic
	case unicode.Is(unicode.Hebrew, r):
		return ScriptHebrew
	case unicode.Is(unicode.Thai, r):
		return ScriptThai
	case unicode.Is(unicode.Khmer, r):
		return ScriptKhmer
	case unicode.Is(unicode.Devanagari, r):
		return ScriptDevanagari
	case unicode.Is(unicode.Georgian, r):
		return ScriptGeorgian
	case unicode.Is(unicode.Armenian, r):
		return ScriptArmenian
	default:
		return ScriptOther
	}
}

// String returns the script name.
func (s Script) String() string {
	if s == "" {
		return string(ScriptOther)
	}
	return string(s)
}
