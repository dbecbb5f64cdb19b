// Package pipeline wires script classification, segmenter dispatch, and
// the normalizer cascade into one tokenization pipeline.
//
// All dispatch decisions are validated when a Pipeline is built: an enabled
// script with no reachable segmenter or a normalizer priority collision
// fails New, and malformed input fails Tokenize before the first token.
// Once a stream has yielded its first token, no error can occur; every
// linguistic uncertainty downgrades to a less specific strategy instead.
package pipeline

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"lexipipe/internal/detect"
	"lexipipe/internal/normalize"
	"lexipipe/internal/segment"
	"lexipipe/internal/token"
)

// ErrInvalidEncoding reports input that is not valid UTF-8. The pipeline
// does not attempt partial recovery.
var ErrInvalidEncoding = errors.New("input is not valid UTF-8")

// Construction-time configuration errors, re-exported for callers that
// only import this package.
var (
	ErrUnresolvedScript   = segment.ErrUnresolvedScript
	ErrNormalizerConflict = normalize.ErrNormalizerConflict
)

// Pipeline is an immutable tokenization pipeline. One Pipeline serves any
// number of concurrent Tokenize calls; all shared state (dictionaries,
// registries, tables) is read-only after New returns.
type Pipeline struct {
	cfg      Config
	enabled  map[detect.Script]bool
	detector detect.Detector
	registry *segment.Registry
	cascade  *normalize.Cascade
	opts     normalize.Options
}

// New validates the configuration and builds the pipeline. Segmentation
// backends that fail to load are logged and skipped, which downgrades
// their script to default segmentation; configuration contradictions
// (ErrUnresolvedScript, ErrNormalizerConflict) are fatal.
func New(cfg Config) (*Pipeline, error) {
	if len(cfg.EnabledScripts) == 0 {
		cfg.EnabledScripts = DefaultConfig().EnabledScripts
	}
	if cfg.NormalizerFamilies == nil {
		cfg.NormalizerFamilies = DefaultConfig().NormalizerFamilies
	}

	detector := cfg.Detector
	if detector == nil {
		detector = detect.NewCachedDetector(detect.NewHeuristicDetector(), cfg.DetectorCacheSize)
	}

	registry, err := buildRegistry(cfg)
	if err != nil {
		return nil, err
	}

	cascade, err := normalize.NewCascade(cfg.enabledFamilySet(),
		normalize.CompatNormalizer{},
		normalize.NewChineseNormalizer(cfg.ChineseConversion),
		normalize.LowercaseNormalizer{},
		normalize.DiacriticsNormalizer{},
		normalize.NonspacingNormalizer{},
		normalize.TranslitNormalizer{},
		normalize.StemNormalizer{},
		normalize.NewStopWordNormalizer(cfg.Stopwords),
	)
	if err != nil {
		return nil, fmt.Errorf("build normalizer cascade: %w", err)
	}

	return &Pipeline{
		cfg:      cfg,
		enabled:  cfg.enabledScriptSet(),
		detector: detector,
		registry: registry,
		cascade:  cascade,
		opts:     normalize.Options{CreateCharMap: cfg.CreateCharMap},
	}, nil
}

func buildRegistry(cfg Config) (*segment.Registry, error) {
	registry := segment.NewRegistry(segment.DefaultSegmenter{})
	enabled := cfg.enabledScriptSet()

	var dict segment.Dictionary
	if len(cfg.DictionaryWords) > 0 {
		dict = segment.NewTrieDictionary(cfg.DictionaryWords)
	}

	if enabled[detect.ScriptLatin] {
		registry.Register(detect.ScriptLatin, detect.LanguageOther,
			segment.LatinSegmenter{SplitIdentifiers: cfg.SplitIdentifiers})
	}
	if enabled[detect.ScriptCJ] {
		if chinese, err := segment.NewChineseSegmenter(cfg.DictionaryWords); err != nil {
			logWarn(cfg, "chinese segmentation backend unavailable, falling back", "error", err)
		} else {
			registry.Register(detect.ScriptCJ, detect.Mandarin, chinese)
			registry.Register(detect.ScriptCJ, detect.LanguageOther, chinese)
		}
		if analyzer, err := segment.NewKagomeAnalyzer(); err != nil {
			logWarn(cfg, "japanese analysis backend unavailable, falling back", "error", err)
		} else {
			registry.Register(detect.ScriptCJ, detect.Japanese, segment.NewMorphSegmenter(analyzer))
		}
	}
	if enabled[detect.ScriptHangul] && cfg.KoreanAnalyzer != nil {
		registry.Register(detect.ScriptHangul, detect.Korean, segment.NewMorphSegmenter(cfg.KoreanAnalyzer))
	}
	if enabled[detect.ScriptThai] {
		registry.Register(detect.ScriptThai, detect.LanguageOther, segment.NewThaiSegmenter(dict))
	}
	if enabled[detect.ScriptKhmer] {
		registry.Register(detect.ScriptKhmer, detect.LanguageOther, segment.NewKhmerSegmenter(dict))
	}
	if enabled[detect.ScriptArabic] {
		registry.Register(detect.ScriptArabic, detect.LanguageOther, segment.ArabicSegmenter{})
	}
	// Greek, Hebrew, Cyrillic, and the other alphabetic scripts segment on
	// whitespace and punctuation, which the stream already does; they
	// resolve to the default segmenter.

	if err := registry.Validate(cfg.EnabledScripts); err != nil {
		return nil, fmt.Errorf("build segmenter registry: %w", err)
	}
	return registry, nil
}

func logWarn(cfg Config, msg string, args ...any) {
	if cfg.Logger != nil {
		cfg.Logger.Warn(msg, args...)
	}
}

// Tokenize validates the input and returns a fresh token stream. Each call
// creates an independent stream; streams are single-use and restart only by
// calling Tokenize again.
func (p *Pipeline) Tokenize(text string) (*Stream, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidEncoding
	}
	return &Stream{p: p, input: text, runs: classifyRuns(text)}, nil
}

// Tokens tokenizes text and collects the whole output sequence.
func (p *Pipeline) Tokens(text string) ([]token.NormalizedToken, error) {
	stream, err := p.Tokenize(text)
	if err != nil {
		return nil, err
	}
	var tokens []token.NormalizedToken
	for {
		t, ok := stream.Next()
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, t)
	}
}

// WithLanguageHint returns a pipeline that forces every run's language,
// sharing the segmenter registry, dictionaries, detector, and cascade of
// the receiver. No backend is reloaded; the copy only changes dispatch.
func (p *Pipeline) WithLanguageHint(lang detect.Language) *Pipeline {
	clone := *p
	clone.cfg.LanguageHint = lang
	return &clone
}

// NormalizerFamilies returns the enabled families in cascade order.
func (p *Pipeline) NormalizerFamilies() []string { return p.cascade.Families() }

// EnabledScripts returns the scripts with specialized dispatch.
func (p *Pipeline) EnabledScripts() []detect.Script { return p.cfg.EnabledScripts }

// resolveLanguage picks the language for a run: the configured hint wins,
// otherwise detection, otherwise unknown. Low-confidence guesses degrade
// to unknown so dispatch falls back to script-wide strategies.
func (p *Pipeline) resolveLanguage(runText string, script detect.Script) detect.Language {
	if p.cfg.LanguageHint != detect.LanguageOther {
		return p.cfg.LanguageHint
	}
	if script == detect.ScriptOther {
		return detect.LanguageOther
	}
	lang, confidence := p.detector.Detect(runText)
	if confidence < 0.2 {
		return detect.LanguageOther
	}
	return lang
}

// resolveSegmenter returns the segmenter for a run. Disabled scripts use
// the default segmenter: the allow-list narrows dispatch, it never drops
// input.
func (p *Pipeline) resolveSegmenter(script detect.Script, lang detect.Language) segment.Segmenter {
	if !p.enabled[script] {
		return p.registry.Resolve(detect.ScriptOther, detect.LanguageOther)
	}
	return p.registry.Resolve(script, lang)
}
