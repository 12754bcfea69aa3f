package engine

import (
	"github.com/pagemill/reflow/layout"
	"github.com/pagemill/reflow/model"
	"github.com/pagemill/reflow/txn"
)

// Run executes one reflow pass over a document snapshot: detect the first
// overflowing page, resolve its split point, and build the transaction
// that fixes it. It returns false when the pass produces no transaction —
// no page overflows, no valid split exists, or the edit would move
// nothing. None of these is an error: the pass simply ends and the next
// document change retries.
func Run(doc *model.Document, oracle layout.Oracle, p Params) (*txn.Transaction, bool) {
	ov, ok := FindOverflow(doc, oracle, p)
	if !ok {
		return nil, false
	}
	off, ok := ResolveSplit(doc, ov, oracle, p)
	if !ok {
		return nil, false
	}
	return BuildReflow(doc, ov.Page, off)
}
