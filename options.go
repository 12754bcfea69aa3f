package reflow

import (
	"time"

	"github.com/pagemill/reflow/engine"
)

// Options holds the configuration recognized by a reflow session.
type Options struct {
	// PageCapacity is the content height budget of a page, in the
	// measurement units of the host's layout oracle.
	PageCapacity float64

	// HeightTolerance is the slack allowed past capacity before content
	// counts as overflowing. Keep it small but positive (a few units) to
	// absorb sub-pixel rounding without letting real overflow through.
	HeightTolerance float64

	// MinSplitOffset is the minimum content retained on each side of a
	// split, in offset units.
	MinSplitOffset int

	// SettleInterval is the debounce delay between a change notification
	// and the reflow pass it schedules, giving the rendering surface time
	// to commit the latest edit before it is measured.
	SettleInterval time.Duration
}

// DefaultOptions returns options sized for a letter-like page measured in
// CSS pixels.
func DefaultOptions() Options {
	return Options{
		PageCapacity:    960,
		HeightTolerance: 4,
		MinSplitOffset:  1,
		SettleInterval:  150 * time.Millisecond,
	}
}

// params converts the session options to engine parameters.
func (o Options) params() engine.Params {
	return engine.Params{
		PageCapacity:    o.PageCapacity,
		HeightTolerance: o.HeightTolerance,
		MinSplitOffset:  o.MinSplitOffset,
	}
}
