// Package segment splits script-homogeneous text into word pieces.
//
// A Segmenter receives a chunk of text that contains no separators (the
// token stream splits on whitespace and punctuation first, keeping the
// separators as tokens of their own) and returns consecutive substrings
// whose concatenation reconstructs the chunk exactly. That contract is what
// guarantees the pipeline-wide no-gap no-overlap invariant regardless of
// which strategy produced the pieces.
package segment

import (
	"errors"
	"fmt"

	"lexipipe/internal/detect"
)

// ErrUnresolvedScript is returned at pipeline construction when a script is
// enabled but neither a specialized segmenter nor the default is available.
var ErrUnresolvedScript = errors.New("no segmenter registered for script")

// Segmenter splits a separator-free chunk of script-homogeneous text into
// word pieces. The returned pieces must be consecutive substrings of text
// covering it exactly.
type Segmenter interface {
	Segment(text string) []string
}

// Key addresses a registry entry. The zero Language matches any language of
// the script.
type Key struct {
	Script   detect.Script
	Language detect.Language
}

// Registry maps (script, language) pairs to segmenters. Registration is
// static: the pipeline fills the table once at construction and the table
// is read-only afterwards, so lookups are safe for concurrent use.
type Registry struct {
	table    map[Key]Segmenter
	fallback Segmenter
}

// NewRegistry creates a registry with the given fallback. A nil fallback is
// allowed at construction but rejected by Validate.
func NewRegistry(fallback Segmenter) *Registry {
	return &Registry{table: make(map[Key]Segmenter), fallback: fallback}
}

// Register binds a segmenter to a (script, language) pair. Registering with
// the zero Language makes the segmenter the script-wide choice.
func (r *Registry) Register(script detect.Script, lang detect.Language, s Segmenter) {
	r.table[Key{Script: script, Language: lang}] = s
}

// Resolve returns the most specific segmenter for the pair:
// (script, language) exact match, then (script, any language), then the
// fallback. Resolve never returns nil once Validate has passed.
func (r *Registry) Resolve(script detect.Script, lang detect.Language) Segmenter {
	if s, ok := r.table[Key{Script: script, Language: lang}]; ok {
		return s
	}
	if s, ok := r.table[Key{Script: script, Language: detect.LanguageOther}]; ok {
		return s
	}
	return r.fallback
}

// Validate checks that every enabled script resolves to a segmenter. It is
// called once at pipeline construction so that dispatch can never fail
// mid-stream.
func (r *Registry) Validate(scripts []detect.Script) error {
	for _, script := range scripts {
		if r.Resolve(script, detect.LanguageOther) == nil {
			return fmt.Errorf("%w: %s", ErrUnresolvedScript, script)
		}
	}
	if r.fallback == nil && r.Resolve(detect.ScriptOther, detect.LanguageOther) == nil {
		return fmt.Errorf("%w: %s", ErrUnresolvedScript, detect.ScriptOther)
	}
	return nil
}
