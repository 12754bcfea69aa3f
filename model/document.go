package model

import (
	"fmt"
	"strings"
)

// Document is the root of the paginated tree: an ordered, never-empty
// sequence of pages plus the current selection, a single absolute offset.
// The document is owned by the host editing session; the reflow engine
// only transforms it through whole-transaction replacement.
type Document struct {
	Pages     []*Page
	Selection int
}

// NewDocument creates a document from the given pages. A document always
// holds at least one page: with no arguments an empty page is synthesized.
func NewDocument(pages ...*Page) *Document {
	if len(pages) == 0 {
		pages = []*Page{NewPage("")}
	}
	owned := make([]*Page, len(pages))
	copy(owned, pages)
	return &Document{Pages: owned}
}

// Clone returns a shallow copy of the document. Pages and blocks are
// immutable value nodes, so sharing them is safe; the page list itself is
// copied so transactions can replace entries.
func (d *Document) Clone() *Document {
	pages := make([]*Page, len(d.Pages))
	copy(pages, d.Pages)
	return &Document{Pages: pages, Selection: d.Selection}
}

// Size returns the total offset span of the document.
func (d *Document) Size() int {
	size := 0
	for _, p := range d.Pages {
		size += p.NodeSize()
	}
	return size
}

// PageStart returns the absolute offset at which page i begins.
func (d *Document) PageStart(i int) int {
	off := 0
	for _, p := range d.Pages[:i] {
		off += p.NodeSize()
	}
	return off
}

// PageEnd returns the absolute offset just past page i.
func (d *Document) PageEnd(i int) int {
	return d.PageStart(i) + d.Pages[i].NodeSize()
}

// BlockStart returns the absolute offset at which the given block begins,
// i.e. the position of its opening token.
func (d *Document) BlockStart(page, block int) int {
	off := d.PageStart(page) + 1
	for _, b := range d.Pages[page].Blocks[:block] {
		off += NodeSize(b)
	}
	return off
}

// BlockRange returns the half-open range [start, end) of content
// positions inside the given block. A split at offset o within the range
// keeps the runes [start, o) on the source page.
func (d *Document) BlockRange(page, block int) (start, end int) {
	bs := d.BlockStart(page, block)
	return bs + 1, bs + 1 + d.Pages[page].Blocks[block].Size()
}

// Position addresses a content location in the tree: a rune offset inside
// a specific block on a specific page.
type Position struct {
	Page  int
	Block int
	Rune  int
}

// Resolve maps an absolute offset to a content position. It returns false
// for offsets that land on structural tokens (page or block boundaries)
// rather than inside block content.
func (d *Document) Resolve(off int) (Position, bool) {
	for pi, p := range d.Pages {
		bs := d.PageStart(pi) + 1
		for bi, b := range p.Blocks {
			cs, ce := bs+1, bs+1+b.Size()
			if off >= cs && off <= ce {
				return Position{Page: pi, Block: bi, Rune: off - cs}, true
			}
			bs += NodeSize(b)
		}
	}
	return Position{}, false
}

// OffsetOf maps a content position back to its absolute offset.
func (d *Document) OffsetOf(pos Position) int {
	return d.BlockStart(pos.Page, pos.Block) + 1 + pos.Rune
}

// ClampToContent snaps an arbitrary offset to the nearest valid content
// position at or after it, falling back to the last content position of
// the document. Used as a safety net so the selection always resolves
// after a transaction.
func (d *Document) ClampToContent(off int) int {
	last := 0
	for pi, p := range d.Pages {
		bs := d.PageStart(pi) + 1
		for _, b := range p.Blocks {
			cs, ce := bs+1, bs+1+b.Size()
			if off <= ce {
				if off < cs {
					return cs
				}
				return off
			}
			last = ce
			bs += NodeSize(b)
		}
	}
	return last
}

/// Outline renders a compact, deterministic summary of the tree: one line
// per page and one line per block. Page identity is deliberately omitted
// so the output is stable across runs.
func (d *Document) Outline() string {
	var sb strings.Builder
	for pi, p := range d.Pages {
		fmt.Fprintf(&sb, "page %d: %d blocks\n", pi+1, len(p.Blocks))
		for _, b := range p.Blocks {
			switch t := b.(type) {
			case Image:
				fmt.Fprintf(&sb, "  %s[%d] %dx%d %s\n", b.Kind(), b.Size(), t.Width(), t.Height(), t.Format())
			case TextBlock:
				fmt.Fprintf(&sb, "  %s[%d] %q\n", b.Kind(), b.Size(), truncateRunes(t.Text(), 24))
			default:
				fmt.Fprintf(&sb, "  %s[%d]\n", b.Kind(), b.Size())
			}
		}
	}
	return sb.String()
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
