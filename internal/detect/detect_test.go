package detect

import "testing"

func TestScriptFor(t *testing.T) {
	cases := []struct {
		name string
		r    rune
		want Script
	}{
		{"ascii letter", 'a', ScriptLatin},
		{"ascii upper", 'Z', ScriptLatin},
		{"ascii digit", '7', ScriptOther},
		{"ascii punct", '.', ScriptOther},
		{"space", ' ', ScriptOther},
		{"accented latin", 'é', ScriptLatin},
		{"cyrillic", 'М', ScriptCyrillic},
		{"greek", 'λ', ScriptGreek},
		{"arabic", 'ش', ScriptArabic},
		{"hebrew", 'ש', ScriptHebrew},
		{"han", '你', ScriptCJ},
		{"hiragana", 'ひ', ScriptCJ},
		{"katakana", 'カ', ScriptCJ},
		{"hangul", '한', ScriptHangul},
		{"thai", 'ก', ScriptThai},
		{"khmer", 'ខ', ScriptKhmer},
		{"devanagari", 'ह', ScriptDevanagari},
		{"georgian", 'ქ', ScriptGeorgian},
		{"armenian", 'ա', ScriptArmenian},
		{"symbol", '°', ScriptOther},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ScriptFor(tc.r); got != tc.want {
				t.Fatalf("ScriptFor(%q) = %s, want %s", tc.r, got, tc.want)
			}
		})
	}
}

func TestScriptString(t *testing.T) {
	if got := Script("").String(); got != "Other" {
		t.Fatalf("zero script String() = %q, want Other", got)
	}
	if got := ScriptCJ.String(); got != "Cj" {
		t.Fatalf("ScriptCJ.String() = %q, want Cj", got)
	}
}

func TestHeuristicDetector(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		want    Language
		minConf float64
	}{
		{"english prose", "the quick brown fox jumps over the lazy dog", English, 0.2},
		{"french prose", "le chat est dans la maison avec une souris", French, 0.2},
		{"german prose", "der Hund ist nicht mit der Katze", German, 0.2},
		{"russian hard sign", "объект находится здесь", Russian, 0.5},
		{"ukrainian marker", "їжак біжить додому", Ukrainian, 0.5},
		{"japanese kana", "こんにちは世界", Japanese, 0.5},
		{"han only", "你好世界", Mandarin, 0.5},
		{"hangul", "안녕하세요", Korean, 0.5},
		{"thai", "สวัสดี", Thai, 0.5},
		{"greek", "καλημέρα", Greek, 0.5},
		{"arabic", "مرحبا بالعالم", Arabic, 0.5},
		{"hebrew", "שלום עולם", Hebrew, 0.5},
	}

	d := NewHeuristicDetector()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lang, conf := d.Detect(tc.text)
			if lang != tc.want {
				t.Fatalf("Detect(%q) = %s (conf %.2f), want %s", tc.text, lang, conf, tc.want)
			}
			if conf < tc.minConf {
				t.Fatalf("Detect(%q) confidence %.2f below %.2f", tc.text, conf, tc.minConf)
			}
		})
	}
}

func TestHeuristicDetectorUnknown(t *testing.T) {
	lang, conf := NewHeuristicDetector().Detect("xyzzy plugh 12345")
	if lang != LanguageOther {
		t.Fatalf("Detect on nonsense = %s, want unknown", lang)
	}
	if conf != 0 {
		t.Fatalf("confidence = %.2f, want 0", conf)
	}
}

type countingDetector struct {
	calls int
	lang  Language
	conf  float64
}

func (d *countingDetector) Detect(string) (Language, float64) {
	d.calls++
	return d.lang, d.conf
}

func TestCachedDetector(t *testing.T) {
	inner := &countingDetector{lang: English, conf: 0.7}
	cached := NewCachedDetector(inner, 8)

	for i := 0; i < 3; i++ {
		lang, conf := cached.Detect("the same text")
		if lang != English || conf != 0.7 {
			t.Fatalf("Detect = (%s, %.2f), want (eng, 0.70)", lang, conf)
		}
	}
	if inner.calls != 1 {
		t.Fatalf("inner detector called %d times, want 1", inner.calls)
	}

	cached.Detect("different text")
	if inner.calls != 2 {
		t.Fatalf("inner detector called %d times after new text, want 2", inner.calls)
	}
}

func TestCachedDetectorDefaultSize(t *testing.T) {
	cached := NewCachedDetector(&countingDetector{lang: French, conf: 0.5}, 0)
	if lang, _ := cached.Detect("bonjour"); lang != French {
		t.Fatalf("Detect through default-sized cache = %s, want fra", lang)
	}
}

func TestLanguageString(t *testing.T) {
	if got := LanguageOther.String(); got != "unknown" {
		t.Fatalf("LanguageOther.String() = %q, want unknown", got)
	}
	if got := Japanese.String(); got != "jpn" {
		t.Fatalf("Japanese.String() = %q, want jpn", got)
	}
}
