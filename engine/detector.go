package engine

import (
	"github.com/pagemill/reflow/layout"
	"github.com/pagemill/reflow/model"
)

// Overflow locates the first offending block: the lowest-index block on
// the earliest page whose rendered bottom crosses the page's capacity.
type Overflow struct {
	Page  int
	Block int
}

// FindOverflow scans pages in document order and returns the first block
// whose measured bottom edge exceeds the page capacity plus tolerance.
// Pages the oracle cannot measure (not painted yet) are skipped, not
// treated as overflowing. Scanning stops at the first offending block:
// one page is fixed per pass, further overflow is found by later passes.
func FindOverflow(doc *model.Document, oracle layout.Oracle, p Params) (Overflow, bool) {
	limit := p.capacityBottom()
	for pi := range doc.Pages {
		for bi := range doc.Pages[pi].Blocks {
			bottom, err := oracle.BlockBottom(pi, bi)
			if err != nil {
				// Unmeasurable page: skip it entirely this pass.
				break
			}
			if bottom > limit {
				return Overflow{Page: pi, Block: bi}, true
			}
		}
	}
	return Overflow{}, false
}
