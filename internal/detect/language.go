package detect

// Language identifies a natural language as an ISO 639-3 code. The zero
// value means the language is unknown; every consumer treats unknown as
// "match on script alone".
type Language string

const (
	LanguageOther Language = ""
	English       Language = "eng"
	French        Language = "fra"
	German        Language = "deu"
	Spanish       Language = "spa"
	Italian       Language = "ita"
	Russian       Language = "rus"
	Ukrainian     Language = "ukr"
	Greek         Language = "ell"
	Mandarin      Language = "cmn"
	Japanese      Language = "jpn"
	Korean        Language = "kor"
	Thai          Language = "tha"
	Khmer         Language = "khm"
	Arabic        Language = "ara"
	Hebrew        Language = "heb"
	Hindi         Language = "hin"
	Georgian      Language = "kat"
	Armenian      Language = "hye"
)

// String returns the ISO 639-3 code, or "unknown" for the zero value.
func (l Language) String() string {
	if l == LanguageOther {
		return "unknown"
	}
	return string(l)
}
