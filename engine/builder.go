package engine

import (
	"github.com/pagemill/reflow/model"
	"github.com/pagemill/reflow/txn"
)

// BuildReflow constructs the atomic transaction that resolves one
// overflowing page: the source page is replaced by its content before
// splitOffset, and the content from splitOffset onward is merged into the
// start of the following page, or carried by a brand-new page appended at
// the document end when the source page is last. The selection is
// translated so a cursor inside the moved fragment lands at the
// equivalent position in its new page.
//
// It returns false when nothing would move (overflow empty) or the
// inputs do not address a page. The transaction touches exactly the
// source page and at most one destination page; cascading overflow is
// left to subsequent passes.
func BuildReflow(doc *model.Document, pageIdx, splitOffset int) (*txn.Transaction, bool) {
	if pageIdx < 0 || pageIdx >= len(doc.Pages) {
		return nil, false
	}
	src := doc.Pages[pageIdx]
	pageStart := doc.PageStart(pageIdx)

	keep, overflow, at := src.Cut(pageStart, splitOffset)
	if len(overflow) == 0 {
		return nil, false
	}
	// A split below MinSplitOffset can legitimately leave keep empty;
	// normalization synthesizes the placeholder either way.
	keepBlocks := keep.Normalize()
	overflowBlocks := overflow.Normalize()

	newKeep := model.NewPageWithID(src.ID, src.Style, keepBlocks)
	merge := pageIdx+1 < len(doc.Pages)

	newPages := make([]*model.Page, 0, len(doc.Pages)+1)
	newPages = append(newPages, doc.Pages[:pageIdx]...)
	newPages = append(newPages, newKeep)

	var newNext, appended *model.Page
	if merge {
		next := doc.Pages[pageIdx+1]
		blocks := make([]model.Block, 0, len(overflowBlocks)+len(next.Blocks))
		blocks = append(blocks, overflowBlocks...)
		blocks = append(blocks, next.Blocks...)
		newNext = model.NewPageWithID(next.ID, next.Style, blocks)
		newPages = append(newPages, newNext)
		newPages = append(newPages, doc.Pages[pageIdx+2:]...)
	} else {
		appended = model.NewPage(src.Style, overflowBlocks...)
		newPages = append(newPages, appended)
	}

	newDoc := &model.Document{Pages: newPages}
	newSel := mapSelection(doc, newDoc, pageIdx, splitOffset, at, merge)

	t := txn.New()
	if merge {
		t.ReplaceRange(pageStart, doc.PageEnd(pageIdx+1), newKeep, newNext)
	} else {
		t.ReplaceRange(pageStart, doc.PageEnd(pageIdx), newKeep)
		t.Insert(newDoc.PageStart(pageIdx+1), appended)
	}
	t.SetSelection(newSel)
	return t, true
}

// mapSelection translates the selection across a reflow edit. Offsets
// before the split point are unaffected; offsets inside the moved
// fragment are recomputed relative to their new page; offsets past the
// affected pages shift by the net size delta of the edit.
func mapSelection(old, updated *model.Document, pageIdx, splitOffset int, at model.CutPoint, merge bool) int {
	s := old.Selection
	if s < splitOffset {
		return s
	}

	if s < old.PageEnd(pageIdx) {
		pos, ok := old.Resolve(s)
		if !ok || pos.Page != pageIdx {
			return s
		}
		if pos.Block < at.Block || (pos.Block == at.Block && pos.Rune < at.Rune) {
			return s
		}
		dest := model.Position{Page: pageIdx + 1, Block: pos.Block - at.Block, Rune: pos.Rune}
		if pos.Block == at.Block {
			dest.Rune = pos.Rune - at.Rune
		}
		return updated.OffsetOf(dest)
	}

	if !merge {
		// The source page was last; offsets at or past its end can only
		// be the document end. Land inside the appended page.
		return updated.ClampToContent(updated.Size())
	}

	overflowLen := len(updated.Pages[pageIdx+1].Blocks) - len(old.Pages[pageIdx+1].Blocks)
	nextEnd := old.PageEnd(pageIdx + 1)
	if s < nextEnd {
		pos, ok := old.Resolve(s)
		if !ok || pos.Page != pageIdx+1 {
			return s
		}
		return updated.OffsetOf(model.Position{
			Page:  pageIdx + 1,
			Block: pos.Block + overflowLen,
			Rune:  pos.Rune,
		})
	}

	delta := (updated.PageEnd(pageIdx+1) - updated.PageStart(pageIdx)) -
		(nextEnd - old.PageStart(pageIdx))
	return s + delta
}
