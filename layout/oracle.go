package layout

import (
	"errors"

	"github.com/pagemill/reflow/model"
)

// ErrUnmeasurable reports that the host rendering surface cannot answer a
// geometry query, typically because the content has not been painted yet.
// The engine treats it as "skip for this pass", never as a failure of the
// pass itself.
var ErrUnmeasurable = errors.New("layout: content not measurable")

// Oracle is the geometry capability supplied by the host rendering
// surface. All measurements are relative to the content top of the page
// being measured and must reflect the currently rendered tree.
//
// Queries may fail with [ErrUnmeasurable] (possibly wrapped); they must
// never panic.
type Oracle interface {
	// BlockBottom returns the bottom edge of the given block's rendered
	// extent, measured from the top of its page's content area.
	BlockBottom(page, block int) (float64, error)

	// OffsetRect returns the caret rectangle at an absolute document
	// offset, relative to the content top of the page the offset falls on.
	OffsetRect(offset int) (model.Rect, error)
}

// LineBox is one rendered line of a block: its rectangle and the document
// offset just past the line's last rune.
type LineBox struct {
	Rect model.Rect
	End  int
}

// LineMeasurer is an optional oracle capability: hosts that can enumerate
// the rendered line boxes of a block let the split point resolver find a
// line boundary directly instead of probing offsets.
type LineMeasurer interface {
	LineBoxes(page, block int) ([]LineBox, error)
}
