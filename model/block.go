package model

import (
	"bytes"
	"fmt"
	"image"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	// Formats recognized when decoding image block dimensions.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// BlockKind represents the kind of content block.
type BlockKind int

const (
	KindUnknown BlockKind = iota
	KindParagraph
	KindHeading
	KindListItem
	KindQuote
	KindImage
)

func (k BlockKind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindHeading:
		return "heading"
	case KindListItem:
		return "list_item"
	case KindQuote:
		return "quote"
	case KindImage:
		return "image"
	default:
		return "unknown"
	}
}

// Block is the interface for all content blocks. Blocks are immutable
// value nodes: reflow replaces blocks wholesale rather than mutating them.
//
// Size is the block's content length in offset units: rune count for
// text-bearing blocks, 1 for atomic blocks. A block additionally occupies
// one opening and one closing token in the document offset scheme; see
// [NodeSize].
type Block interface {
	Kind() BlockKind
	Size() int
}

// TextBlock is implemented by blocks that carry text content.
type TextBlock interface {
	Block
	Text() string
}

// NodeSize returns the number of offset positions the block occupies,
// including its opening and closing tokens.
func NodeSize(b Block) int {
	return b.Size() + 2
}

// normText normalizes text to NFC so rune counts and offsets are stable.
func normText(s string) string {
	return norm.NFC.String(s)
}

// Paragraph is a block of body text.
type Paragraph struct {
	text string
}

// NewParagraph creates a paragraph block. The text is NFC-normalized.
func NewParagraph(text string) Paragraph {
	return Paragraph{text: normText(text)}
}

func (p Paragraph) Kind() BlockKind { return KindParagraph }
func (p Paragraph) Size() int       { return utf8.RuneCountInString(p.text) }
func (p Paragraph) Text() string    { return p.text }

// Heading is a section heading with a level between 1 and 6.
type Heading struct {
	text  string
	level int
}

// NewHeading creates a heading block. Levels outside 1-6 are clamped.
func NewHeading(level int, text string) Heading {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return Heading{text: normText(text), level: level}
}

func (h Heading) Kind() BlockKind { return KindHeading }
func (h Heading) Size() int       { return utf8.RuneCountInString(h.text) }
func (h Heading) Text() string    { return h.text }
func (h Heading) Level() int      { return h.level }

// ListItem is a single item of an ordered or unordered list.
type ListItem struct {
	text  string
	level int
}

// NewListItem creates a list item block at nesting level 0.
func NewListItem(text string) ListItem {
	return ListItem{text: normText(text)}
}

// NewNestedListItem creates a list item block at the given nesting level.
func NewNestedListItem(text string, level int) ListItem {
	if level < 0 {
		level = 0
	}
	return ListItem{text: normText(text), level: level}
}

func (l ListItem) Kind() BlockKind { return KindListItem }
func (l ListItem) Size() int       { return utf8.RuneCountInString(l.text) }
func (l ListItem) Text() string    { return l.text }
func (l ListItem) Level() int      { return l.level }

// Quote is a block quotation.
type Quote struct {
	text string
}

// NewQuote creates a quote block.
func NewQuote(text string) Quote {
	return Quote{text: normText(text)}
}

func (q Quote) Kind() BlockKind { return KindQuote }
func (q Quote) Size() int       { return utf8.RuneCountInString(q.text) }
func (q Quote) Text() string    { return q.text }

// Image is an embedded image. Images are atomic: Size is always 1 and a
// cut never lands inside one. The intrinsic pixel dimensions are decoded
// at construction; the rendered height on a page is supplied only by the
// layout oracle.
type Image struct {
	data   []byte
	format string
	width  int
	height int
}

// NewImage creates an image block from encoded image data. The data must
// be in a recognized format (PNG, JPEG, GIF, BMP, TIFF, WebP).
func NewImage(data []byte) (Image, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("decoding image config: %w", err)
	}
	return Image{data: data, format: format, width: cfg.Width, height: cfg.Height}, nil
}

func (i Image) Kind() BlockKind { return KindImage }
func (i Image) Size() int       { return 1 }
func (i Image) Data() []byte    { return i.data }
func (i Image) Format() string  { return i.format }
func (i Image) Width() int      { return i.width }
func (i Image) Height() int     { return i.height }

// Placeholder returns the block synthesized into pages and fragments that
// would otherwise be empty.
func Placeholder() Block {
	return NewParagraph("")
}

// SplitBlock cuts a block's content at rune offset r, producing two blocks
// of the same kind and attributes. It returns false for atomic blocks and
// for offsets that would leave either side empty.
func SplitBlock(b Block, r int) (Block, Block, bool) {
	if r <= 0 || r >= b.Size() {
		return nil, nil, false
	}
	switch t := b.(type) {
	case Paragraph:
		head, tail := splitRunes(t.text, r)
		return NewParagraph(head), NewParagraph(tail), true
	case Heading:
		head, tail := splitRunes(t.text, r)
		return NewHeading(t.level, head), NewHeading(t.level, tail), true
	case ListItem:
		head, tail := splitRunes(t.text, r)
		return NewNestedListItem(head, t.level), NewNestedListItem(tail, t.level), true
	case Quote:
		head, tail := splitRunes(t.text, r)
		return NewQuote(head), NewQuote(tail), true
	default:
		return nil, nil, false
	}
}

func splitRunes(s string, r int) (string, string) {
	runes := []rune(s)
	return string(runes[:r]), string(runes[r:])
}
