package reflow

import (
	"context"
	"fmt"
	"sync"

	"github.com/pagemill/reflow/engine"
	"github.com/pagemill/reflow/layout"
	"github.com/pagemill/reflow/logger"
	"github.com/pagemill/reflow/model"
	"github.com/pagemill/reflow/txn"
)

// TransactionFunc receives every committed transaction together with the
// resulting tree. A rendering surface typically repaints here.
type TransactionFunc func(t *txn.Transaction, doc *model.Document)

// SelectionFunc receives the new selection offset whenever a committed
// transaction moved it.
type SelectionFunc func(offset int)

// Session ties a document, a layout oracle, and the reflow scheduler
// together for the lifetime of one editing session. The session never
// owns the document's meaning, only its pagination: all writes go through
// whole-transaction replacement.
//
// Sessions are single-threaded and cooperative: host notifications,
// commands, and the scheduled pass serialize on one mutex, and a pass
// always measures the most recently committed tree before deciding.
type Session struct {
	mu     sync.Mutex
	doc    *model.Document
	oracle layout.Oracle
	opts   Options
	sched  *scheduler
	log    logger.Logger
	onTxn  TransactionFunc
	onSel  SelectionFunc
	closed bool
}

// NewSession creates a session over a document and the host's layout
// oracle. Configure handlers with [Session.OnTransaction] and
// [Session.OnSelection] before the first change notification.
func NewSession(doc *model.Document, oracle layout.Oracle, opts Options) *Session {
	if doc == nil {
		doc = model.NewDocument()
	}
	s := &Session{
		doc:    doc,
		oracle: oracle,
		opts:   opts,
		log:    logger.Nop(),
	}
	s.sched = newScheduler(opts.SettleInterval, s.runPass)
	return s
}

// OnTransaction registers the commit handler. Returns the session for
// chaining.
func (s *Session) OnTransaction(fn TransactionFunc) *Session {
	s.onTxn = fn
	return s
}

// OnSelection registers the selection-changed handler. Returns the
// session for chaining.
func (s *Session) OnSelection(fn SelectionFunc) *Session {
	s.onSel = fn
	return s
}

// WithLogger sets the session logger. Returns the session for chaining.
func (s *Session) WithLogger(l logger.Logger) *Session {
	if l != nil {
		s.log = l
	}
	return s
}

// Document returns the current tree. The tree is immutable; the pointer
// changes with every committed transaction.
func (s *Session) Document() *model.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// Selection returns the current selection offset.
func (s *Session) Selection() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Selection
}

// DocumentChanged is the host's change notification: any edit, including
// the session's own committed transactions, schedules a debounced reflow
// pass.
func (s *Session) DocumentChanged() {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return
	}
	s.sched.request()
}

// ViewportChanged is the host's resize notification. Pagination depends
// on rendered geometry, so it schedules a pass like a document change.
func (s *Session) ViewportChanged() {
	s.DocumentChanged()
}

// Close tears the session down, cancelling any pending pass. Commands
// issued after Close fail with [ErrSessionClosed].
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.sched.cancel()
}

// runPass is the scheduled callback: measure the committed tree, decide,
// and commit at most one transaction. The commit counts as a document
// change, which schedules the next pass until no overflow remains.
func (s *Session) runPass() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	t, ok := engine.Run(s.doc, s.oracle, s.opts.params())
	if !ok {
		s.log.Debug("reflow pass produced no transaction")
		s.mu.Unlock()
		return
	}
	doc, selChanged, err := s.commitLocked(t)
	s.mu.Unlock()
	if err != nil {
		s.log.Warn("reflow transaction rejected", "txn", t.ID, "error", err)
		return
	}
	s.log.Debug("reflow transaction applied", "txn", t.ID, "pages", len(doc.Pages))
	s.notify(t, doc, selChanged)
	s.DocumentChanged()
}

// Settle drives passes synchronously until the detector reports no
// overflow, for hosts without an event loop (command-line tools, tests).
// It is bounded: a faulty oracle cannot spin it forever.
func (s *Session) Settle(ctx context.Context) error {
	s.mu.Lock()
	maxPasses := s.doc.Size() + 8
	s.mu.Unlock()

	for i := 0; i < maxPasses; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return ErrSessionClosed
		}
		t, ok := engine.Run(s.doc, s.oracle, s.opts.params())
		if !ok {
			s.mu.Unlock()
			return nil
		}
		doc, selChanged, err := s.commitLocked(t)
		s.mu.Unlock()
		if err != nil {
			return err
		}
		s.notify(t, doc, selChanged)
	}
	return fmt.Errorf("reflow: document did not settle after %d passes", maxPasses)
}

// commitLocked applies a transaction and swaps in the resulting tree.
// Callers hold s.mu.
func (s *Session) commitLocked(t *txn.Transaction) (*model.Document, bool, error) {
	applied, err := t.Apply(s.doc)
	if err != nil {
		return nil, false, err
	}
	selChanged := applied.Selection != s.doc.Selection
	s.doc = applied
	return applied, selChanged, nil
}

// notify dispatches host events outside the session lock, so handlers may
// call back into the session.
func (s *Session) notify(t *txn.Transaction, doc *model.Document, selChanged bool) {
	if s.onTxn != nil {
		s.onTxn(t, doc)
	}
	if selChanged && s.onSel != nil {
		s.onSel(doc.Selection)
	}
}
