package pipeline

import (
	"lexipipe/internal/detect"
	"lexipipe/internal/token"
)

// Run is a maximal span of input sharing one detected script. Language is
// resolved lazily, when the stream first enters the run.
type Run struct {
	token.Span
	Script   detect.Script
	Language detect.Language
}

// classifyRuns partitions text into script-homogeneous runs. Punctuation,
// whitespace, and digits carry no script of their own and extend the
// current run, so ordinary prose does not fragment into one-character
// runs; only a rune with a different concrete script closes a run. The
// returned runs cover the input exactly, with no gaps and no overlaps.
func classifyRuns(text string) []Run {
	if text == "" {
		return nil
	}

	var runs []Run
	current := detect.ScriptOther
	startByte, startChar := 0, 0
	chars := 0
	for i, r := range text {
		script := detect.ScriptFor(r)
		if script != detect.ScriptOther && script != current {
			if i > startByte {
				runs = append(runs, Run{
					Span:   token.Span{ByteStart: startByte, ByteEnd: i, CharStart: startChar, CharEnd: chars},
					Script: current,
				})
				startByte, startChar = i, chars
			}
			current = script
		}
		chars++
	}
	runs = append(runs, Run{
		Span:   token.Span{ByteStart: startByte, ByteEnd: len(text), CharStart: startChar, CharEnd: chars},
		Script: current,
	})
	return runs
}
