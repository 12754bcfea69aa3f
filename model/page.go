package model

import "github.com/google/uuid"

// Page is a fixed-capacity container of blocks: the pagination unit.
// Identity and style are fixed attributes; replacing a page's content
// during reflow preserves them. A page never holds zero blocks: an empty
// placeholder is synthesized when needed.
type Page struct {
	ID     uuid.UUID
	Style  string
	Blocks []Block
}

// NewPage creates a page with a fresh identity. An empty block list is
// normalized to a single placeholder.
func NewPage(style string, blocks ...Block) *Page {
	return NewPageWithID(uuid.New(), style, blocks)
}

// NewPageWithID creates a page carrying an existing identity. Used when a
// transaction replaces a page's content but not the page itself.
func NewPageWithID(id uuid.UUID, style string, blocks []Block) *Page {
	if len(blocks) == 0 {
		blocks = []Block{Placeholder()}
	}
	owned := make([]Block, len(blocks))
	copy(owned, blocks)
	return &Page{ID: id, Style: style, Blocks: owned}
}

// ContentSize returns the total offset span of the page's blocks.
func (p *Page) ContentSize() int {
	size := 0
	for _, b := range p.Blocks {
		size += NodeSize(b)
	}
	return size
}

// NodeSize returns the number of offset positions the page occupies,
// including its opening and closing tokens.
func (p *Page) NodeSize() int {
	return p.ContentSize() + 2
}

// CutPoint records where a cut fell within a page: the index of the first
// block with content in the overflow fragment, and the rune offset within
// that block at which the overflow starts (0 when the whole block moved).
type CutPoint struct {
	Block int
	Rune  int
}

// Cut splits the page's content at absolute document offset off into a
// keep fragment (content before the cut) and an overflow fragment (content
// from the cut onward). pageStart is the page's absolute start offset.
// Offsets at block boundaries move whole blocks; offsets inside a text
// block split it; atomic blocks are never split.
//
// Either fragment may come back empty; callers embed fragments in pages
// via [Fragment.Normalize].
func (p *Page) Cut(pageStart, off int) (keep, overflow Fragment, at CutPoint) {
	at = CutPoint{Block: len(p.Blocks)}
	bs := pageStart + 1
	for j, b := range p.Blocks {
		ns := NodeSize(b)
		switch {
		case off <= bs:
			if len(overflow) == 0 {
				at = CutPoint{Block: j}
			}
			overflow = append(overflow, b)
		case off >= bs+ns:
			keep = append(keep, b)
		default:
			r := off - (bs + 1)
			if r < 0 {
				r = 0
			}
			if r > b.Size() {
				r = b.Size()
			}
			head, tail, ok := SplitBlock(b, r)
			switch {
			case ok:
				keep = append(keep, head)
				if len(overflow) == 0 {
					at = CutPoint{Block: j, Rune: r}
				}
				overflow = append(overflow, tail)
			case r >= b.Size():
				keep = append(keep, b)
			default:
				// Cut at or before the block's first content position,
				// or inside an atomic block: the whole block moves.
				if len(overflow) == 0 {
					at = CutPoint{Block: j}
				}
				overflow = append(overflow, b)
			}
		}
		bs += ns
	}
	return keep, overflow, at
}
