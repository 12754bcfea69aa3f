package layout

import (
	"fmt"

	"github.com/pagemill/reflow/model"
)

// Metrics holds the fixed geometry of a [Grid]: a monospace character
// grid with uniform line height.
type Metrics struct {
	// LineHeight is the height of one rendered text line.
	LineHeight float64

	// CharWidth is the advance width of one character cell.
	CharWidth float64

	// CharsPerLine is the number of characters that fit on one line.
	CharsPerLine int

	// ImageHeight is the rendered height of every image block.
	ImageHeight float64
}

// DefaultMetrics returns grid metrics resembling an 80-column terminal.
func DefaultMetrics() Metrics {
	return Metrics{
		LineHeight:   16,
		CharWidth:    8,
		CharsPerLine: 80,
		ImageHeight:  96,
	}
}

// Grid is a deterministic layout oracle that lays text out on a fixed
// character grid. It simulates a host rendering surface for tests and the
// command-line demo: the host calls [Grid.SetDocument] whenever it
// "repaints" a new tree, exactly as a real surface would re-render after
// a committed transaction.
//
// Grid implements [Oracle] and the optional [LineMeasurer] capability.
// It is not safe for concurrent use; reflow sessions are single-threaded.
type Grid struct {
	m          Metrics
	doc        *model.Document
	unrendered map[int]bool
}

// NewGrid creates a grid oracle with the given metrics. No document is
// attached yet; until [Grid.SetDocument] is called every query fails with
// [ErrUnmeasurable].
func NewGrid(m Metrics) *Grid {
	if m.CharsPerLine <= 0 {
		m.CharsPerLine = DefaultMetrics().CharsPerLine
	}
	if m.LineHeight <= 0 {
		m.LineHeight = DefaultMetrics().LineHeight
	}
	return &Grid{m: m, unrendered: make(map[int]bool)}
}

// SetDocument attaches the currently rendered tree. Hosts call this after
// every committed transaction so measurements reflect the latest content.
func (g *Grid) SetDocument(doc *model.Document) {
	g.doc = doc
}

// MarkUnrendered flags a page as not painted: queries against it fail
// with [ErrUnmeasurable] until [Grid.MarkRendered] is called.
func (g *Grid) MarkUnrendered(page int) {
	g.unrendered[page] = true
}

// MarkRendered clears the unrendered flag for a page.
func (g *Grid) MarkRendered(page int) {
	delete(g.unrendered, page)
}

// blockHeight returns the rendered height of a block on the grid.
func (g *Grid) blockHeight(b model.Block) float64 {
	if b.Kind() == model.KindImage {
		return g.m.ImageHeight
	}
	lines := (b.Size() + g.m.CharsPerLine - 1) / g.m.CharsPerLine
	if lines < 1 {
		lines = 1
	}
	return float64(lines) * g.m.LineHeight
}

func (g *Grid) page(page int) (*model.Page, error) {
	if g.doc == nil || page < 0 || page >= len(g.doc.Pages) {
		return nil, fmt.Errorf("page %d: %w", page, ErrUnmeasurable)
	}
	if g.unrendered[page] {
		return nil, fmt.Errorf("page %d not painted: %w", page, ErrUnmeasurable)
	}
	return g.doc.Pages[page], nil
}

// BlockBottom implements [Oracle].
func (g *Grid) BlockBottom(page, block int) (float64, error) {
	p, err := g.page(page)
	if err != nil {
		return 0, err
	}
	if block < 0 || block >= len(p.Blocks) {
		return 0, fmt.Errorf("block %d on page %d: %w", block, page, ErrUnmeasurable)
	}
	bottom := 0.0
	for _, b := range p.Blocks[:block+1] {
		bottom += g.blockHeight(b)
	}
	return bottom, nil
}

// OffsetRect implements [Oracle]. The rectangle is the caret box at the
// offset: the line the content up to the offset ends on, with zero width.
func (g *Grid) OffsetRect(offset int) (model.Rect, error) {
	if g.doc == nil {
		return model.Rect{}, ErrUnmeasurable
	}
	pos, ok := g.doc.Resolve(offset)
	if !ok {
		return model.Rect{}, fmt.Errorf("offset %d: %w", offset, ErrUnmeasurable)
	}
	p, err := g.page(pos.Page)
	if err != nil {
		return model.Rect{}, err
	}
	b := p.Blocks[pos.Block]
	top := 0.0
	for _, prev := range p.Blocks[:pos.Block] {
		top += g.blockHeight(prev)
	}
	if b.Kind() == model.KindImage {
		return model.NewRect(top, top+g.m.ImageHeight, 0, g.m.CharWidth), nil
	}
	line := 0
	if pos.Rune > 0 {
		line = (pos.Rune - 1) / g.m.CharsPerLine
	}
	col := pos.Rune - line*g.m.CharsPerLine
	lineTop := top + float64(line)*g.m.LineHeight
	x := float64(col) * g.m.CharWidth
	return model.NewRect(lineTop, lineTop+g.m.LineHeight, x, x), nil
}

// LineBoxes implements [LineMeasurer].
func (g *Grid) LineBoxes(page, block int) ([]LineBox, error) {
	p, err := g.page(page)
	if err != nil {
		return nil, err
	}
	if block < 0 || block >= len(p.Blocks) {
		return nil, fmt.Errorf("block %d on page %d: %w", block, page, ErrUnmeasurable)
	}
	b := p.Blocks[block]
	start, end := g.doc.BlockRange(page, block)
	top := 0.0
	for _, prev := range p.Blocks[:block] {
		top += g.blockHeight(prev)
	}
	if b.Kind() == model.KindImage {
		return []LineBox{{
			Rect: model.NewRect(top, top+g.m.ImageHeight, 0, g.m.CharWidth),
			End:  end,
		}}, nil
	}
	size := b.Size()
	lines := (size + g.m.CharsPerLine - 1) / g.m.CharsPerLine
	if lines < 1 {
		lines = 1
	}
	boxes := make([]LineBox, 0, lines)
	for l := 0; l < lines; l++ {
		chars := g.m.CharsPerLine
		if rem := size - l*g.m.CharsPerLine; rem < chars {
			chars = rem
		}
		lineTop := top + float64(l)*g.m.LineHeight
		lineEnd := (l + 1) * g.m.CharsPerLine
		if lineEnd > size {
			lineEnd = size
		}
		boxes = append(boxes, LineBox{
			Rect: model.NewRect(lineTop, lineTop+g.m.LineHeight, 0, float64(chars)*g.m.CharWidth),
			End:  start + lineEnd,
		})
	}
	return boxes, nil
}
