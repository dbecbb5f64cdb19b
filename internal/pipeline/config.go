package pipeline

import (
	"log/slog"

	"lexipipe/internal/detect"
	"lexipipe/internal/normalize"
	"lexipipe/internal/segment"
)

// Config is the resolved pipeline configuration. All validation happens in
// New; a constructed Pipeline can no longer fail on dispatch.
type Config struct {
	// EnabledScripts selects which scripts get specialized segmenters. Runs
	// in other scripts still tokenize through the default segmenter; no
	// input is ever dropped.
	EnabledScripts []detect.Script
	// NormalizerFamilies enables normalizer families by tag. A family
	// missing from the list is a silent passthrough.
	NormalizerFamilies []string
	// LanguageHint forces every run's language, bypassing detection.
	LanguageHint detect.Language
	// CreateCharMap enables per-character provenance maps on tokens.
	CreateCharMap bool
	// SplitIdentifiers enables camelCase splitting in the Latin segmenter.
	SplitIdentifiers bool
	// Stopwords feeds the stopwords normalizer family.
	Stopwords []string
	// DictionaryWords supplements the segmentation dictionaries (Chinese
	// user words, Thai/Khmer longest-match entries).
	DictionaryWords []string
	// Detector overrides the built-in language detector. Nil selects the
	// heuristic detector behind an LRU cache.
	Detector detect.Detector
	// DetectorCacheSize bounds the detection cache; zero uses a default.
	DetectorCacheSize int
	// KoreanAnalyzer plugs a morphological backend in for Hangul runs.
	// Without one, Hangul falls back to default segmentation.
	KoreanAnalyzer segment.MorphAnalyzer
	// ChineseConversion overrides the traditional-to-simplified table.
	ChineseConversion normalize.ConversionTable
	// Logger receives backend-loading diagnostics. Nil disables them.
	Logger *slog.Logger
}

// DefaultNormalizerFamilies are the families enabled when the caller does
// not choose: canonical cleanup and case folding, but not the lossy ones
// (diacritics, translit, stem), which deployments opt into.
var DefaultNormalizerFamilies = []string{"compat", "chinese", "lowercase", "nonspacing", "stopwords"}

// DefaultConfig enables every supported script and the default normalizer
// families.
func DefaultConfig() Config {
	scripts := make([]detect.Script, len(detect.AllScripts))
	copy(scripts, detect.AllScripts)
	return Config{
		EnabledScripts:     scripts,
		NormalizerFamilies: append([]string(nil), DefaultNormalizerFamilies...),
		SplitIdentifiers:   true,
	}
}

func (cfg Config) enabledScriptSet() map[detect.Script]bool {
	set := make(map[detect.Script]bool, len(cfg.EnabledScripts))
	for _, s := range cfg.EnabledScripts {
		set[s] = true
	}
	return set
}

func (cfg Config) enabledFamilySet() map[string]bool {
	set := make(map[string]bool, len(cfg.NormalizerFamilies))
	for _, f := range cfg.NormalizerFamilies {
		set[f] = true
	}
	return set
}
