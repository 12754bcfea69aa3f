package reflow

import (
	"github.com/pagemill/reflow/engine"
	"github.com/pagemill/reflow/model"
	"github.com/pagemill/reflow/txn"
)

// AppendPage inserts an empty page at the document end and moves the
// selection into it. The new page inherits the style of the current last
// page.
func (s *Session) AppendPage() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	size := s.doc.Size()
	style := s.doc.Pages[len(s.doc.Pages)-1].Style
	page := model.NewPage(style)
	// Content of the appended page starts one page token and one block
	// token past the old document end.
	t := txn.New().Insert(size, page).SetSelection(size + 2)
	doc, selChanged, err := s.commitLocked(t)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.log.Debug("page appended", "txn", t.ID, "pages", len(doc.Pages))
	s.notify(t, doc, selChanged)
	s.DocumentChanged()
	return nil
}

// RemoveLastPage deletes the last page. It fails with [ErrLastPage] on a
// one-page document, leaving it unchanged. A selection inside the removed
// page moves to the end of the preceding page.
func (s *Session) RemoveLastPage() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	if len(s.doc.Pages) == 1 {
		s.mu.Unlock()
		return ErrLastPage
	}
	last := len(s.doc.Pages) - 1
	start := s.doc.PageStart(last)
	sel := s.doc.Selection
	if sel >= start {
		// Last content position of the preceding page.
		sel = start - 2
	}
	t := txn.New().ReplaceRange(start, s.doc.Size()).SetSelection(sel)
	doc, selChanged, err := s.commitLocked(t)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.log.Debug("last page removed", "txn", t.ID, "pages", len(doc.Pages))
	s.notify(t, doc, selChanged)
	s.DocumentChanged()
	return nil
}

// SplitPageAtCursor cuts the current page's content at the selection,
// exactly like an automatic reflow split but without any overflow
// precondition: the content after the cursor merges into the next page or
// starts a new one. It fails with [ErrNoSplit] when the cursor does not
// address content or nothing would move.
func (s *Session) SplitPageAtCursor() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	pos, ok := s.doc.Resolve(s.doc.Selection)
	if !ok {
		s.mu.Unlock()
		return ErrNoSplit
	}
	t, ok := engine.BuildReflow(s.doc, pos.Page, s.doc.Selection)
	if !ok {
		s.mu.Unlock()
		return ErrNoSplit
	}
	doc, selChanged, err := s.commitLocked(t)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.log.Debug("page split at cursor", "txn", t.ID, "pages", len(doc.Pages))
	s.notify(t, doc, selChanged)
	s.DocumentChanged()
	return nil
}
