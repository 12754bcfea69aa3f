package txn

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pagemill/reflow/model"
)

var (
	// ErrNotPageBoundary reports a step offset that does not align with a
	// page boundary in the tree it is applied to.
	ErrNotPageBoundary = errors.New("txn: offset is not a page boundary")

	// ErrInvalidRange reports a replace range whose ends are reversed or
	// out of the document.
	ErrInvalidRange = errors.New("txn: invalid range")

	// ErrEmptyDocument reports a transaction that would leave the
	// document without any page.
	ErrEmptyDocument = errors.New("txn: document must keep at least one page")
)

// StepKind identifies a transaction step.
type StepKind int

const (
	StepReplaceRange StepKind = iota + 1
	StepInsert
	StepSetSelection
)

// Step is one operation of a transaction. Offsets address the tree as it
// stands when the step runs: later steps see the effect of earlier ones.
type Step struct {
	Kind StepKind

	// ReplaceRange: [From, To) replaced by Pages (which may be empty).
	From, To int
	Pages    []*model.Page

	// Insert: a single page inserted at Offset.
	Offset int
	Page   *model.Page

	// SetSelection: the new selection offset.
	Selection int
}

// Transaction is an atomic document edit. The ID correlates log lines and
// host notifications; it plays no role in application.
type Transaction struct {
	ID    uuid.UUID
	Steps []Step
}

// New creates an empty transaction.
func New() *Transaction {
	return &Transaction{ID: uuid.New()}
}

// ReplaceRange appends a step replacing the pages spanning [from, to)
// with the given pages. An empty replacement deletes the range.
func (t *Transaction) ReplaceRange(from, to int, pages ...*model.Page) *Transaction {
	t.Steps = append(t.Steps, Step{Kind: StepReplaceRange, From: from, To: to, Pages: pages})
	return t
}

// Insert appends a step inserting one page at the given offset.
func (t *Transaction) Insert(offset int, page *model.Page) *Transaction {
	t.Steps = append(t.Steps, Step{Kind: StepInsert, Offset: offset, Page: page})
	return t
}

// SetSelection appends a step moving the selection. The offset is snapped
// to the nearest content position when applied.
func (t *Transaction) SetSelection(offset int) *Transaction {
	t.Steps = append(t.Steps, Step{Kind: StepSetSelection, Selection: offset})
	return t
}

// Apply runs the transaction against a document and returns the resulting
// tree. The input document is never modified; on any error the
// transaction has no effect.
func (t *Transaction) Apply(doc *model.Document) (*model.Document, error) {
	work := doc.Clone()
	for i, s := range t.Steps {
		var err error
		switch s.Kind {
		case StepReplaceRange:
			err = applyReplace(work, s)
		case StepInsert:
			err = applyInsert(work, s)
		case StepSetSelection:
			work.Selection = work.ClampToContent(s.Selection)
		default:
			err = fmt.Errorf("txn: unknown step kind %d", s.Kind)
		}
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}
	return work, nil
}

// pageIndexAt finds the page whose start offset equals off. The document
// end offset maps to the index one past the last page.
func pageIndexAt(doc *model.Document, off int) (int, bool) {
	at := 0
	for i, p := range doc.Pages {
		if at == off {
			return i, true
		}
		at += p.NodeSize()
	}
	if at == off {
		return len(doc.Pages), true
	}
	return 0, false
}

func applyReplace(doc *model.Document, s Step) error {
	if s.From > s.To {
		return fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, s.From, s.To)
	}
	pi, ok := pageIndexAt(doc, s.From)
	if !ok {
		return fmt.Errorf("from %d: %w", s.From, ErrNotPageBoundary)
	}
	pj, ok := pageIndexAt(doc, s.To)
	if !ok {
		return fmt.Errorf("to %d: %w", s.To, ErrNotPageBoundary)
	}
	if pj < pi {
		return fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, s.From, s.To)
	}
	if len(doc.Pages)-(pj-pi)+len(s.Pages) == 0 {
		return ErrEmptyDocument
	}
	pages := make([]*model.Page, 0, len(doc.Pages)-(pj-pi)+len(s.Pages))
	pages = append(pages, doc.Pages[:pi]...)
	pages = append(pages, s.Pages...)
	pages = append(pages, doc.Pages[pj:]...)
	doc.Pages = pages
	return nil
}

func applyInsert(doc *model.Document, s Step) error {
	if s.Page == nil {
		return fmt.Errorf("%w: nil page", ErrInvalidRange)
	}
	pi, ok := pageIndexAt(doc, s.Offset)
	if !ok {
		return fmt.Errorf("offset %d: %w", s.Offset, ErrNotPageBoundary)
	}
	pages := make([]*model.Page, 0, len(doc.Pages)+1)
	pages = append(pages, doc.Pages[:pi]...)
	pages = append(pages, s.Page)
	pages = append(pages, doc.Pages[pi:]...)
	doc.Pages = pages
	return nil
}
