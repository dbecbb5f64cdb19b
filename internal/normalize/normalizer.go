// Package normalize rewrites token lemmas into canonical forms.
//
// Normalizers are grouped into named families that configuration can switch
// off (a disabled family is skipped, never an error). Each normalizer
// carries a fixed priority; the cascade applies every applicable stage in
// ascending priority order, and a stage may expand one token into several
// variants, so output never shrinks silently. Ordering is a total order
// over static priorities, independent of registration order and input, so
// identical input and configuration always produce identical output.
package normalize

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"lexipipe/internal/token"
)

// ErrNormalizerConflict is returned at cascade construction when two
// normalizers claim the same priority rank.
var ErrNormalizerConflict = errors.New("normalizers share a priority rank")

// Priority ranks for the built-in families. Lower runs first.
const (
	PriorityCompat     = 10
	PriorityChinese    = 20
	PriorityLowercase  = 30
	PriorityDiacritics = 40
	PriorityNonspacing = 50
	PriorityTranslit   = 60
	PriorityStem       = 70
	PriorityStopwords  = 90
)

// Options is the per-invocation normalization configuration.
type Options struct {
	// CreateCharMap asks normalizers to maintain the original-to-normalized
	// character mapping. Off by default; it costs an allocation per token.
	CreateCharMap bool
}

// Normalizer rewrites a token into zero or more variants. Implementations
// must be read-only after construction so one cascade can serve concurrent
// pipeline invocations.
type Normalizer interface {
	// Family is the configuration tag that enables or disables the
	// normalizer.
	Family() string
	// Priority is the fixed rank of the normalizer in the cascade.
	Priority() int
	// ShouldNormalize is the applicability predicate over script, language,
	// and kind.
	ShouldNormalize(t token.Token) bool
	// Normalize returns the rewritten variants. Returning the token
	// unchanged is valid; returning nothing discards it.
	Normalize(t token.Token, opts Options) []token.Token
}

// Cascade is an ordered list of enabled normalizers.
type Cascade struct {
	stages []Normalizer
}

// NewCascade filters normalizers by enabled family, orders them by
// priority, and rejects priority collisions.
func NewCascade(enabled map[string]bool, normalizers ...Normalizer) (*Cascade, error) {
	var stages []Normalizer
	for _, n := range normalizers {
		if enabled[n.Family()] {
			stages = append(stages, n)
		}
	}

	sort.SliceStable(stages, func(i, j int) bool { return stages[i].Priority() < stages[j].Priority() })
	for i := 1; i < len(stages); i++ {
		if stages[i].Priority() == stages[i-1].Priority() {
			return nil, fmt.Errorf("%w: %s and %s both rank %d",
				ErrNormalizerConflict, stages[i-1].Family(), stages[i].Family(), stages[i].Priority())
		}
	}

	return &Cascade{stages: stages}, nil
}

// Families returns the enabled family tags in cascade order.
func (c *Cascade) Families() []string {
	names := make([]string, 0, len(c.stages))
	for _, n := range c.stages {
		names = append(names, n.Family())
	}
	return names
}

// Apply runs the full cascade over one raw token. Every stage consumes the
// previous stage's output set, so variants produced early are themselves
// normalized by later stages.
func (c *Cascade) Apply(t token.Token, opts Options) []token.NormalizedToken {
	out := []token.Token{t}
	for _, stage := range c.stages {
		next := make([]token.Token, 0, len(out))
		for _, tok := range out {
			if stage.ShouldNormalize(tok) {
				next = append(next, stage.Normalize(tok, opts)...)
			} else {
				next = append(next, tok)
			}
		}
		out = next
	}
	return out
}

// rewriteLemma applies a per-character rewrite to the lemma, composing the
// char map with whatever a previous stage recorded. fn receives one rune of
// the current lemma and returns its replacement (possibly empty or longer).
func rewriteLemma(t token.Token, opts Options, fn func(r rune) string) token.Token {
	var b strings.Builder
	b.Grow(len(t.Lemma))
	changed := false

	if !opts.CreateCharMap {
		for _, r := range t.Lemma {
			out := fn(r)
			if out != string(r) {
				changed = true
			}
			b.WriteString(out)
		}
		if changed {
			t.Lemma = b.String()
			t.Altered = true
		}
		return t
	}

	var mb token.MapBuilder
	if t.CharMap == nil {
		for _, r := range t.Lemma {
			out := fn(r)
			if out != string(r) {
				changed = true
			}
			mb.Push(len(string(r)), len(out))
			b.WriteString(out)
		}
	} else {
		// A previous stage already changed lengths: rewrite chunk by chunk so
		// each entry keeps pointing at its original bytes.
		pos := 0
		for _, m := range t.CharMap {
			chunk := t.Lemma[pos : pos+int(m.Dst)]
			pos += int(m.Dst)
			chunkLen := 0
			for _, r := range chunk {
				out := fn(r)
				if out != string(r) {
					changed = true
				}
				chunkLen += len(out)
				b.WriteString(out)
			}
			mb.Push(int(m.Src), chunkLen)
		}
	}

	t.CharMap = mb.Map()
	if changed {
		t.Lemma = b.String()
		t.Altered = true
	}
	return t
}
