package engine

import (
	"github.com/pagemill/reflow/internal/search"
	"github.com/pagemill/reflow/layout"
	"github.com/pagemill/reflow/model"
)

// maxSplitProbes bounds the geometric search. It is a forced-termination
// guard against a non-monotonic or faulty oracle, not a tunable.
const maxSplitProbes = 30

// ResolveSplit computes the offset at which the offending block's content
// must be cut so the retained portion fits the page capacity. It returns
// false when no valid split exists: the block's span is too small to keep
// MinSplitOffset content on both sides, or no probed offset fits within
// the bounded search. The caller then leaves the page overflowing for
// this pass.
//
// If the oracle can enumerate rendered line boxes, the last line boundary
// that fits is used directly; otherwise (or when no line boundary falls
// inside the valid range) a bounded binary search over caret rectangles
// finds the largest fitting offset. Measurement failures shrink the
// search range rather than aborting.
func ResolveSplit(doc *model.Document, ov Overflow, oracle layout.Oracle, p Params) (int, bool) {
	start, end := doc.BlockRange(ov.Page, ov.Block)
	if end-start < 2*p.MinSplitOffset {
		return 0, false
	}
	lo, hi := start+p.MinSplitOffset, end-p.MinSplitOffset
	limit := p.capacityBottom()

	if off, ok := lineBoundarySplit(ov, oracle, lo, hi, limit); ok {
		return off, true
	}

	return search.MaxFitting(lo, hi, maxSplitProbes, func(o int) (bool, error) {
		r, err := oracle.OffsetRect(o)
		if err != nil {
			return false, err
		}
		if !r.IsValid() {
			return false, layout.ErrUnmeasurable
		}
		return r.Bottom <= limit, nil
	})
}

// lineBoundarySplit scans the offending block's rendered line boxes for
// the last line whose bottom fits, returning that line's end offset when
// it falls inside the valid split range.
func lineBoundarySplit(ov Overflow, oracle layout.Oracle, lo, hi int, limit float64) (int, bool) {
	lm, ok := oracle.(layout.LineMeasurer)
	if !ok {
		return 0, false
	}
	boxes, err := lm.LineBoxes(ov.Page, ov.Block)
	if err != nil {
		return 0, false
	}
	best, found := 0, false
	for _, box := range boxes {
		if box.Rect.Bottom > limit {
			break
		}
		if box.End >= lo && box.End <= hi {
			best, found = box.End, true
		}
	}
	return best, found
}
