package pipeline

import (
	"unicode/utf8"

	"lexipipe/internal/token"
)

// Stream is a pull-based sequence of normalized tokens over one input.
// Work happens on demand, one separator-delimited chunk at a time; a
// caller that stops calling Next simply abandons the remaining work, which
// is the pipeline's only cancellation mechanism. A Stream must not be
// shared across goroutines.
type Stream struct {
	p     *Pipeline
	input string
	runs  []Run

	runIdx   int
	entered  bool
	seg      segmenterFunc
	bytePos  int
	charPos  int
	queue    []token.NormalizedToken
}

type segmenterFunc func(text string) []string

// Next returns the next normalized token, or ok=false at end of input.
// Token order always matches source-position order.
func (s *Stream) Next() (token.NormalizedToken, bool) {
	for len(s.queue) == 0 {
		if !s.refill() {
			return token.NormalizedToken{}, false
		}
	}
	t := s.queue[0]
	s.queue = s.queue[1:]
	return t, true
}

// refill processes the next chunk of the current run (or enters the next
// run) and pushes its normalized tokens onto the queue. It returns false
// once every run is exhausted.
func (s *Stream) refill() bool {
	for {
		if s.runIdx >= len(s.runs) {
			return false
		}
		run := &s.runs[s.runIdx]

		if !s.entered {
			run.Language = s.p.resolveLanguage(s.input[run.ByteStart:run.ByteEnd], run.Script)
			segmenter := s.p.resolveSegmenter(run.Script, run.Language)
			s.seg = segmenter.Segment
			s.bytePos = run.ByteStart
			s.charPos = run.CharStart
			s.entered = true
		}

		if s.bytePos >= run.ByteEnd {
			s.runIdx++
			s.entered = false
			continue
		}

		s.processChunk(run)
		return true
	}
}

// processChunk consumes one maximal separator or word chunk from the
// current run, segments it if needed, runs every raw token through the
// cascade, and queues the results.
func (s *Stream) processChunk(run *Run) {
	rest := s.input[s.bytePos:run.ByteEnd]
	first, _ := utf8.DecodeRuneInString(rest)
	isSep := token.IsSeparator(first)

	end := len(rest)
	for i, r := range rest {
		if token.IsSeparator(r) != isSep {
			end = i
			break
		}
	}
	chunk := rest[:end]

	if isSep {
		s.pushRaw(run, chunk, token.SeparatorRunKind(chunk))
		return
	}
	for _, piece := range s.seg(chunk) {
		s.pushRaw(run, piece, token.Word)
	}
}

// pushRaw builds the raw token for one piece, advances the cursors, and
// applies the normalizer cascade.
func (s *Stream) pushRaw(run *Run, piece string, kind token.Kind) {
	chars := utf8.RuneCountInString(piece)
	raw := token.Token{
		Lemma: piece,
		Span: token.Span{
			ByteStart: s.bytePos,
			ByteEnd:   s.bytePos + len(piece),
			CharStart: s.charPos,
			CharEnd:   s.charPos + chars,
		},
		Script:   run.Script,
		Language: run.Language,
		Kind:     kind,
	}
	s.bytePos += len(piece)
	s.charPos += chars

	s.queue = append(s.queue, s.p.cascade.Apply(raw, s.p.opts)...)
}
