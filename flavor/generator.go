// Package flavor produces the short end-of-match narration line. Generators
// are external collaborators: the match loop fires a request asynchronously
// and substitutes Fallback on any failure, so neither latency nor errors can
// gate the match-over transition.
package flavor

import "context"

// Report carries everything a generator may use about the finished match.
type Report struct {
	WinnerName     string
	WinnerStyle    string
	LoserName      string
	LoserStyle     string
	WinnerHP       float64
	WinnerMaxHP    float64
	ElapsedSeconds int
}

// Generator turns a match report into one short line of narration.
type Generator interface {
	Line(ctx context.Context, r Report) (string, error)
}

// Fallback is shown whenever generation fails.
const Fallback = "The dust settles. A victor stands in the ink-stained arena."

// Thinking is the placeholder shown while a request is in flight.
const Thinking = "..."

// Static always returns a fixed line. Useful headless and in tests.
type Static string

func (s Static) Line(context.Context, Report) (string, error) {
	return string(s), nil
}
