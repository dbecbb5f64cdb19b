package pipeline

import (
	"errors"
	"reflect"
	"testing"

	"lexipipe/internal/detect"
	"lexipipe/internal/token"
)

// latinOnly keeps the heavyweight CJ backends out of unit tests.
func latinOnly(t *testing.T, mutate func(*Config)) *Pipeline {
	t.Helper()
	cfg := Config{
		EnabledScripts:   []detect.Script{detect.ScriptLatin, detect.ScriptCyrillic, detect.ScriptGreek, detect.ScriptArabic, detect.ScriptThai, detect.ScriptKhmer},
		SplitIdentifiers: true,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	p, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func lemmas(tokens []token.NormalizedToken) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Lemma)
	}
	return out
}

func TestTokenizeEnglishSentence(t *testing.T) {
	p := latinOnly(t, nil)

	tokens, err := p.Tokens("The quick brown fox.")
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}

	wantLemmas := []string{"the", " ", "quick", " ", "brown", " ", "fox", "."}
	if got := lemmas(tokens); !reflect.DeepEqual(got, wantLemmas) {
		t.Fatalf("lemmas = %v, want %v", got, wantLemmas)
	}

	wantKinds := []token.Kind{
		token.Word, token.SoftSeparator, token.Word, token.SoftSeparator,
		token.Word, token.SoftSeparator, token.Word, token.HardSeparator,
	}
	for i, tok := range tokens {
		if tok.Kind != wantKinds[i] {
			t.Errorf("token %d kind = %s, want %s", i, tok.Kind, wantKinds[i])
		}
		if tok.Script != detect.ScriptLatin {
			t.Errorf("token %d script = %s, want Latin", i, tok.Script)
		}
	}
	if tokens[0].Language != detect.English {
		t.Errorf("language = %s, want eng", tokens[0].Language)
	}
	if !tokens[0].Altered {
		t.Error("case-folded token should be flagged altered")
	}
	if tokens[1].Altered {
		t.Error("separator token should not be altered")
	}
}

func TestTokenizeSplitsIdentifiers(t *testing.T) {
	p := latinOnly(t, nil)
	tokens, err := p.Tokens("getUserName")
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}
	want := []string{"get", "user", "name"}
	if got := lemmas(tokens); !reflect.DeepEqual(got, want) {
		t.Fatalf("lemmas = %v, want %v", got, want)
	}

	plain := latinOnly(t, func(cfg *Config) { cfg.SplitIdentifiers = false })
	tokens, err = plain.Tokens("getUserName")
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}
	if got := lemmas(tokens); !reflect.DeepEqual(got, []string{"getusername"}) {
		t.Fatalf("lemmas = %v, want the identifier whole", got)
	}
}

func TestTokenizeStopwords(t *testing.T) {
	p := latinOnly(t, func(cfg *Config) { cfg.Stopwords = []string{"the"} })
	tokens, err := p.Tokens("The tree")
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}
	if tokens[0].Kind != token.StopWord {
		t.Fatalf("first token kind = %s, want stopword", tokens[0].Kind)
	}
	if tokens[2].Kind != token.Word {
		t.Fatalf("third token kind = %s, want word", tokens[2].Kind)
	}
}

func TestTokenizeDiacriticsFamily(t *testing.T) {
	p := latinOnly(t, func(cfg *Config) {
		cfg.NormalizerFamilies = []string{"compat", "lowercase", "diacritics"}
		cfg.CreateCharMap = true
	})
	tokens, err := p.Tokens("café")
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("got %d tokens, want 1", len(tokens))
	}

	tok := tokens[0]
	if tok.Lemma != "cafe" || !tok.Altered {
		t.Fatalf("token = %+v, want altered cafe", tok)
	}
	if tok.OriginalText("café") != "café" {
		t.Fatalf("span does not cover the original: %+v", tok.Span)
	}
	if tok.CharMap.SrcBytes() != 5 || tok.CharMap.DstBytes() != 4 {
		t.Fatalf("char map sums = (%d, %d), want (5, 4)", tok.CharMap.SrcBytes(), tok.CharMap.DstBytes())
	}
}

func TestTokenizeDefaultKeepsAccents(t *testing.T) {
	p := latinOnly(t, nil)
	tokens, err := p.Tokens("café")
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}
	if tokens[0].Lemma != "café" {
		t.Fatalf("lemma = %q; accents should survive the default families", tokens[0].Lemma)
	}
}

func TestTokenizeComposesDecomposedInput(t *testing.T) {
	p := latinOnly(t, nil)

	composed, err := p.Tokens("caf\u00e9")
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}
	decomposed, err := p.Tokens("cafe\u0301")
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}

	if len(composed) != 1 || len(decomposed) != 1 {
		t.Fatalf("got %d and %d tokens, want 1 each", len(composed), len(decomposed))
	}
	if composed[0].Lemma != decomposed[0].Lemma {
		t.Fatalf("lemmas differ: %q vs %q; both spellings must index to one term",
			composed[0].Lemma, decomposed[0].Lemma)
	}
	if !decomposed[0].Altered {
		t.Fatal("composing a decomposed lemma should flag the token altered")
	}
}

func TestTokenizeArabicArticle(t *testing.T) {
	p := latinOnly(t, nil)
	tokens, err := p.Tokens("الشجرة")
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}
	want := []string{"ال", "شجرة"}
	if got := lemmas(tokens); !reflect.DeepEqual(got, want) {
		t.Fatalf("lemmas = %v, want %v", got, want)
	}
	if tokens[0].Language != detect.Arabic {
		t.Fatalf("language = %s, want ara", tokens[0].Language)
	}
}

func TestTokenizeThaiWithDictionary(t *testing.T) {
	p := latinOnly(t, func(cfg *Config) {
		cfg.DictionaryWords = []string{"ประเทศ", "ไทย"}
		cfg.NormalizerFamilies = []string{}
	})
	tokens, err := p.Tokens("ประเทศไทย")
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}
	want := []string{"ประเทศ", "ไทย"}
	if got := lemmas(tokens); !reflect.DeepEqual(got, want) {
		t.Fatalf("lemmas = %v, want %v", got, want)
	}
}

func TestTokenizeInvalidEncoding(t *testing.T) {
	p := latinOnly(t, nil)
	if _, err := p.Tokenize("abc\xffdef"); !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("err = %v, want ErrInvalidEncoding", err)
	}
	if _, err := p.Tokens("\xc3"); !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("err = %v, want ErrInvalidEncoding", err)
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	p := latinOnly(t, nil)
	tokens, err := p.Tokens("")
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}
	if len(tokens) != 0 {
		t.Fatalf("got %d tokens, want none", len(tokens))
	}
}

func TestTokenizeSingleRune(t *testing.T) {
	p := latinOnly(t, nil)
	tokens, err := p.Tokens("a")
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Lemma != "a" || tokens[0].Kind != token.Word {
		t.Fatalf("tokens = %+v, want one word token", tokens)
	}
}

func TestTokenizeSpansCoverInput(t *testing.T) {
	input := "Hello, Мир! …και 29.3°F\nτέλος"
	p := latinOnly(t, nil)
	tokens, err := p.Tokens(input)
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}
	if len(tokens) == 0 {
		t.Fatal("no tokens produced")
	}

	bytePos, charPos := 0, 0
	rebuilt := ""
	for i, tok := range tokens {
		if tok.ByteStart != bytePos || tok.CharStart != charPos {
			t.Fatalf("token %d starts at (%d, %d), want (%d, %d): %+v", i, tok.ByteStart, tok.CharStart, bytePos, charPos, tok)
		}
		bytePos, charPos = tok.ByteEnd, tok.CharEnd
		rebuilt += tok.OriginalText(input)
	}
	if rebuilt != input {
		t.Fatalf("token spans rebuild %q, want the input", rebuilt)
	}
	if bytePos != len(input) || charPos != len([]rune(input)) {
		t.Fatalf("tokens end at (%d, %d), want (%d, %d)", bytePos, charPos, len(input), len([]rune(input)))
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	p := latinOnly(t, nil)
	input := "The same text, twice. Той самий текст."

	first, err := p.Tokens(input)
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}
	second, err := p.Tokens(input)
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical input and configuration must yield identical tokens")
	}
}

func TestDisabledScriptFallsBackToDefault(t *testing.T) {
	p := latinOnly(t, func(cfg *Config) {
		cfg.EnabledScripts = []detect.Script{detect.ScriptLatin}
		cfg.NormalizerFamilies = []string{}
	})

	// Thai is not enabled, but its text still tokenizes through the default
	// segmenter instead of being dropped.
	tokens, err := p.Tokens("สวัสดี")
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("got %d tokens, want the chunk whole", len(tokens))
	}
	if tokens[0].Lemma != "สวัสดี" || tokens[0].Kind != token.Word {
		t.Fatalf("token = %+v, want the unsplit word", tokens[0])
	}
}

func TestLanguageHintOverridesDetection(t *testing.T) {
	p := latinOnly(t, func(cfg *Config) { cfg.LanguageHint = detect.French })
	tokens, err := p.Tokens("the")
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}
	if tokens[0].Language != detect.French {
		t.Fatalf("language = %s, want the hinted fra", tokens[0].Language)
	}
}

func TestWithLanguageHintSharesBackends(t *testing.T) {
	p := latinOnly(t, nil)
	hinted := p.WithLanguageHint(detect.French)

	// Only dispatch changes; the loaded registries, detector, and cascade
	// are the same objects.
	if hinted.registry != p.registry {
		t.Fatal("hinted pipeline rebuilt the segmenter registry")
	}
	if hinted.detector != p.detector {
		t.Fatal("hinted pipeline rebuilt the detector")
	}
	if hinted.cascade != p.cascade {
		t.Fatal("hinted pipeline rebuilt the normalizer cascade")
	}

	tokens, err := hinted.Tokens("the")
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}
	if tokens[0].Language != detect.French {
		t.Fatalf("hinted language = %s, want fra", tokens[0].Language)
	}

	tokens, err = p.Tokens("the")
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}
	if tokens[0].Language != detect.English {
		t.Fatalf("original pipeline language = %s, want detection to still run", tokens[0].Language)
	}
}

func TestStemFamilyByLanguage(t *testing.T) {
	p := latinOnly(t, func(cfg *Config) {
		cfg.NormalizerFamilies = []string{"lowercase", "stem"}
		cfg.LanguageHint = detect.English
	})
	tokens, err := p.Tokens("running quickly")
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}
	if tokens[0].Lemma != "run" {
		t.Fatalf("lemma = %q, want run", tokens[0].Lemma)
	}
}

func TestTranslitFamilyMultipliesTokens(t *testing.T) {
	p := latinOnly(t, func(cfg *Config) {
		cfg.NormalizerFamilies = []string{"lowercase", "translit"}
	})
	tokens, err := p.Tokens("Москва")
	if err != nil {
		t.Fatalf("Tokens: %v", err)
	}
	want := []string{"москва", "moskva"}
	if got := lemmas(tokens); !reflect.DeepEqual(got, want) {
		t.Fatalf("lemmas = %v, want %v", got, want)
	}
	if tokens[0].Span != tokens[1].Span {
		t.Fatal("variant must keep the original source span")
	}
}

func TestPipelineAccessors(t *testing.T) {
	p := latinOnly(t, nil)

	want := []string{"compat", "chinese", "lowercase", "nonspacing", "stopwords"}
	if got := p.NormalizerFamilies(); !reflect.DeepEqual(got, want) {
		t.Fatalf("NormalizerFamilies = %v, want priority order %v", got, want)
	}
	if len(p.EnabledScripts()) == 0 {
		t.Fatal("EnabledScripts should not be empty")
	}
}

func TestStreamIsLazy(t *testing.T) {
	p := latinOnly(t, nil)
	stream, err := p.Tokenize("one two three")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}

	tok, ok := stream.Next()
	if !ok || tok.Lemma != "one" {
		t.Fatalf("first token = (%+v, %v), want one", tok, ok)
	}
	// Abandoning the stream here is the cancellation path; nothing to assert
	// beyond not hanging.
}

func TestStreamDrainsToEOF(t *testing.T) {
	p := latinOnly(t, nil)
	stream, err := p.Tokenize("a b")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}

	count := 0
	for {
		_, ok := stream.Next()
		if !ok {
			break
		}
		count++
	}
	if count != 3 {
		t.Fatalf("stream yielded %d tokens, want 3", count)
	}
	if _, ok := stream.Next(); ok {
		t.Fatal("Next after EOF should keep returning ok=false")
	}
}
