// Package config loads service configuration from TOML or YAML files,
// merging file values over built-in defaults.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"lexipipe/internal/detect"
	"lexipipe/internal/pipeline"
)

// AppConfig captures configuration for the server, the tokenization
// pipeline, and observability.
type AppConfig struct {
	Server   ServerConfig   `toml:"server" yaml:"server"`
	Pipeline PipelineConfig `toml:"pipeline" yaml:"pipeline"`
	Logging  LoggingConfig  `toml:"logging" yaml:"logging"`
	Metrics  MetricsConfig  `toml:"metrics" yaml:"metrics"`
}

// ServerConfig controls network settings.
type ServerConfig struct {
	Listen string `toml:"listen" yaml:"listen"`
}

// PipelineConfig mirrors the pipeline options exposed to operators.
type PipelineConfig struct {
	EnabledScripts     []string `toml:"enabled_scripts" yaml:"enabled_scripts"`
	NormalizerFamilies []string `toml:"normalizer_families" yaml:"normalizer_families"`
	LanguageHint       string   `toml:"language_hint" yaml:"language_hint"`
	CreateCharMap      *bool    `toml:"create_char_map" yaml:"create_char_map"`
	SplitIdentifiers   *bool    `toml:"split_identifiers" yaml:"split_identifiers"`
	StopwordsPath      string   `toml:"stopwords_path" yaml:"stopwords_path"`
	DictionaryPaths    []string `toml:"dictionary_paths" yaml:"dictionary_paths"`
	DetectorCacheSize  int      `toml:"detector_cache_size" yaml:"detector_cache_size"`
}

// LoggingConfig toggles observability around requests.
type LoggingConfig struct {
	RequestLogs *bool `toml:"request_logs" yaml:"request_logs"`
}

// MetricsConfig enables counters/telemetry endpoints.
type MetricsConfig struct {
	Enabled *bool `toml:"enabled" yaml:"enabled"`
}

// DefaultConfig returns the baseline configuration used when no file is
// supplied.
func DefaultConfig() AppConfig {
	defaults := pipeline.DefaultConfig()
	scripts := make([]string, 0, len(defaults.EnabledScripts))
	for _, s := range defaults.EnabledScripts {
		scripts = append(scripts, string(s))
	}
	return AppConfig{
		Server: ServerConfig{Listen: ":8080"},
		Pipeline: PipelineConfig{
			EnabledScripts:     scripts,
			NormalizerFamilies: append([]string(nil), pipeline.DefaultNormalizerFamilies...),
			SplitIdentifiers:   boolPtr(true),
			CreateCharMap:      boolPtr(false),
		},
		Logging: LoggingConfig{RequestLogs: boolPtr(true)},
		Metrics: MetricsConfig{Enabled: boolPtr(true)},
	}
}

// Load reads the provided config path, merging it onto the defaults.
func Load(path string) (AppConfig, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, fmt.Errorf("read config: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	var fileCfg AppConfig
	switch ext {
	case ".toml":
		if err := toml.Unmarshal(content, &fileCfg); err != nil {
			return AppConfig{}, fmt.Errorf("parse toml: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &fileCfg); err != nil {
			return AppConfig{}, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return AppConfig{}, errors.New("config file must be .toml, .yaml, or .yml")
	}

	return mergeConfig(cfg, fileCfg), nil
}

func mergeConfig(base, override AppConfig) AppConfig {
	if override.Server.Listen != "" {
		base.Server.Listen = override.Server.Listen
	}

	if len(override.Pipeline.EnabledScripts) > 0 {
		base.Pipeline.EnabledScripts = override.Pipeline.EnabledScripts
	}
	if len(override.Pipeline.NormalizerFamilies) > 0 {
		base.Pipeline.NormalizerFamilies = override.Pipeline.NormalizerFamilies
	}
	if override.Pipeline.LanguageHint != "" {
		base.Pipeline.LanguageHint = override.Pipeline.LanguageHint
	}
	if override.Pipeline.CreateCharMap != nil {
		base.Pipeline.CreateCharMap = override.Pipeline.CreateCharMap
	}
	if override.Pipeline.SplitIdentifiers != nil {
		base.Pipeline.SplitIdentifiers = override.Pipeline.SplitIdentifiers
	}
	if override.Pipeline.StopwordsPath != "" {
		base.Pipeline.StopwordsPath = override.Pipeline.StopwordsPath
	}
	if len(override.Pipeline.DictionaryPaths) > 0 {
		base.Pipeline.DictionaryPaths = override.Pipeline.DictionaryPaths
	}
	if override.Pipeline.DetectorCacheSize != 0 {
		base.Pipeline.DetectorCacheSize = override.Pipeline.DetectorCacheSize
	}

	if override.Logging.RequestLogs != nil {
		base.Logging.RequestLogs = override.Logging.RequestLogs
	}
	if override.Metrics.Enabled != nil {
		base.Metrics.Enabled = override.Metrics.Enabled
	}

	return base
}

// ToPipeline converts the file representation into the value expected by
// the pipeline package, loading word-list files along the way.
func (cfg AppConfig) ToPipeline() (pipeline.Config, error) {
	out := pipeline.DefaultConfig()

	if len(cfg.Pipeline.EnabledScripts) > 0 {
		scripts := make([]detect.Script, 0, len(cfg.Pipeline.EnabledScripts))
		for _, s := range cfg.Pipeline.EnabledScripts {
			scripts = append(scripts, detect.Script(s))
		}
		out.EnabledScripts = scripts
	}
	if len(cfg.Pipeline.NormalizerFamilies) > 0 {
		out.NormalizerFamilies = cfg.Pipeline.NormalizerFamilies
	}
	out.LanguageHint = detect.Language(cfg.Pipeline.LanguageHint)
	if cfg.Pipeline.CreateCharMap != nil {
		out.CreateCharMap = *cfg.Pipeline.CreateCharMap
	}
	if cfg.Pipeline.SplitIdentifiers != nil {
		out.SplitIdentifiers = *cfg.Pipeline.SplitIdentifiers
	}
	out.DetectorCacheSize = cfg.Pipeline.DetectorCacheSize

	if cfg.Pipeline.StopwordsPath != "" {
		words, err := loadWordList(cfg.Pipeline.StopwordsPath)
		if err != nil {
			return pipeline.Config{}, fmt.Errorf("load stopwords: %w", err)
		}
		out.Stopwords = words
	}
	for _, path := range cfg.Pipeline.DictionaryPaths {
		words, err := loadWordList(path)
		if err != nil {
			return pipeline.Config{}, fmt.Errorf("load dictionary %s: %w", path, err)
		}
		out.DictionaryWords = append(out.DictionaryWords, words...)
	}

	return out, nil
}

// loadWordList reads one word per line, skipping blanks and '#' comments.
// Lines may carry a trailing frequency column, which is ignored here.
func loadWordList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.Fields(line)[0])
	}
	return words, scanner.Err()
}

func boolPtr(v bool) *bool {
	return &v
}
