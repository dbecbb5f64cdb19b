// Package detect classifies text by Unicode script and, best effort, by
// natural language.
//
// Script detection is a per-rune range lookup. Language detection is a
// heuristic: scripts written by a single language map directly, while
// Latin and Cyrillic runs are scored against small function-word and
// marker-character sets. Detection may return the unknown language; the
// caller downgrades to script-only dispatch and never treats a miss as an
// error.
package detect

import "strings"

// Detector guesses the language of a run of text. Confidence is in [0, 1];
// implementations return LanguageOther with zero confidence when unsure.
type Detector interface {
	Detect(text string) (Language, float64)
}

// scriptLanguages maps scripts written by one dominant language straight to
// that language, bypassing content inspection.
var scriptLanguages = map[Script]Language{
	ScriptHangul:     Korean,
	ScriptThai:       Thai,
	ScriptKhmer:      Khmer,
	ScriptGreek:      Greek,
	ScriptHebrew:     Hebrew,
	ScriptArabic:     Arabic,
	ScriptDevanagari: Hindi,
	ScriptGeorgian:   Georgian,
	ScriptArmenian:   Armenian,
}

// HeuristicDetector is the built-in language detector. It is stateless and
// safe for concurrent use.
type HeuristicDetector struct{}

// NewHeuristicDetector returns the built-in detector.
func NewHeuristicDetector() *HeuristicDetector { return &HeuristicDetector{} }

// Detect implements Detector.
func (d *HeuristicDetector) Detect(text string) (Language, float64) {
	script := dominantScript(text)

	if lang, ok := scriptLanguages[script]; ok {
		return lang, 0.9
	}

	switch script {
	case ScriptCJ:
		return detectCJ(text)
	case ScriptCyrillic:
		return detectCyrillic(text)
	case ScriptLatin:
		return detectLatin(text)
	default:
		return LanguageOther, 0
	}
}

// dominantScript counts letters per script and returns the most frequent,
// preferring specific scripts over Latin on ties.
func dominantScript(text string) Script {
	counts := make(map[Script]int, 4)
	for _, r := range text {
		if s := ScriptFor(r); s != ScriptOther {
			counts[s]++
		}
	}

	best, bestCount := ScriptOther, 0
	for _, s := range AllScripts {
		if c := counts[s]; c > bestCount {
			best, bestCount = s, c
		}
	}
	return best
}

// detectCJ distinguishes Japanese from Mandarin: any kana makes the run
// Japanese, otherwise Han-only text defaults to Mandarin.
func detectCJ(text string) (Language, float64) {
	for _, r := range text {
		if (r >= 0x3040 && r <= 0x309F) || (r >= 0x30A0 && r <= 0x30FF) {
			return Japanese, 0.9
		}
	}
	return Mandarin, 0.6
}

// Characters present in Ukrainian but absent from Russian, and vice versa.
const (
	ukrainianMarkers = "іїєґІЇЄҐ"
	russianMarkers   = "ыъэёЫЪЭЁ"
)

func detectCyrillic(text string) (Language, float64) {
	if strings.ContainsAny(text, ukrainianMarkers) {
		return Ukrainian, 0.8
	}
	if strings.ContainsAny(text, russianMarkers) {
		return Russian, 0.8
	}
	return Russian, 0.3
}

// functionWords holds high-frequency closed-class words per Latin-script
// language. A handful per language is enough to separate short prose runs.
var functionWords = map[Language][]string{
	English: {"the", "and", "of", "to", "is", "in", "that", "it", "for", "with"},
	French:  {"le", "la", "les", "des", "est", "une", "dans", "que", "pour", "avec"},
	German:  {"der", "die", "das", "und", "ist", "nicht", "ein", "mit", "für", "auf"},
	Spanish: {"el", "los", "las", "es", "una", "que", "por", "con", "para", "como"},
	Italian: {"il", "gli", "che", "di", "non", "una", "per", "con", "sono", "della"},
}

// latinLanguages fixes the scoring order so ties resolve deterministically.
var latinLanguages = []Language{English, French, German, Spanish, Italian}

func detectLatin(text string) (Language, float64) {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return LanguageOther, 0
	}

	present := make(map[string]int, len(words))
	for _, w := range words {
		present[strings.Trim(w, ".,;:!?\"'()")]++
	}

	best, bestScore := LanguageOther, 0
	for _, lang := range latinLanguages {
		score := 0
		for _, fw := range functionWords[lang] {
			score += present[fw]
		}
		if score > bestScore {
			best, bestScore = lang, score
		}
	}

	if best == LanguageOther {
		return LanguageOther, 0
	}
	confidence := float64(bestScore) / float64(len(words))
	if confidence > 1 {
		confidence = 1
	}
	return best, confidence
}
