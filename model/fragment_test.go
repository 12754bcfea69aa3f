package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFragmentNormalize(t *testing.T) {
	var empty Fragment
	norm := empty.Normalize()
	require.Len(t, norm, 1)
	assert.Equal(t, KindParagraph, norm[0].Kind())
	assert.Equal(t, 0, norm[0].Size())

	full := Fragment{NewParagraph("a")}
	assert.Equal(t, full, full.Normalize())
}

func TestFragmentSizes(t *testing.T) {
	f := Fragment{NewParagraph("abcd"), NewHeading(1, "hi")}
	assert.Equal(t, 6, f.TextSize())
	assert.Equal(t, 10, f.ContentSize())
}

// cutPage builds a page of the given blocks starting at document offset 0
// and cuts it at off.
func cutPage(t *testing.T, off int, blocks ...Block) (Fragment, Fragment, CutPoint) {
	t.Helper()
	p := NewPage("body", blocks...)
	keep, overflow, at := p.Cut(0, off)
	return keep, overflow, at
}

func TestCutAtBlockBoundary(t *testing.T) {
	// para(4) spans [1,7), heading(2) spans [7,11).
	keep, overflow, at := cutPage(t, 7, NewParagraph("abcd"), NewHeading(1, "hi"))

	require.Len(t, keep, 1)
	require.Len(t, overflow, 1)
	assert.Equal(t, KindParagraph, keep[0].Kind())
	assert.Equal(t, KindHeading, overflow[0].Kind())
	assert.Equal(t, CutPoint{Block: 1, Rune: 0}, at)
}

func TestCutInsideTextBlock(t *testing.T) {
	// para(6) content positions 2..8; cut at 5 keeps "abc".
	keep, overflow, at := cutPage(t, 5, NewParagraph("abcdef"))

	require.Len(t, keep, 1)
	require.Len(t, overflow, 1)
	assert.Equal(t, "abc", keep[0].(TextBlock).Text())
	assert.Equal(t, "def", overflow[0].(TextBlock).Text())
	assert.Equal(t, CutPoint{Block: 0, Rune: 3}, at)
}

func TestCutConservesContent(t *testing.T) {
	blocks := []Block{NewParagraph("abcdef"), NewHeading(2, "title"), NewQuote("q")}
	p := NewPage("body", blocks...)
	total := Fragment(blocks).TextSize()

	for off := 0; off <= p.NodeSize(); off++ {
		keep, overflow, _ := p.Cut(0, off)
		assert.Equal(t, total, keep.TextSize()+overflow.TextSize(), "cut at %d", off)
		// A cut either moves whole blocks or splits exactly one in two.
		n := len(keep) + len(overflow)
		assert.True(t, n == len(p.Blocks) || n == len(p.Blocks)+1, "cut at %d produced %d blocks", off, n)
	}
}

func TestCutBeforeFirstContent(t *testing.T) {
	keep, overflow, at := cutPage(t, 0, NewParagraph("abc"))
	assert.Empty(t, keep)
	require.Len(t, overflow, 1)
	assert.Equal(t, CutPoint{Block: 0, Rune: 0}, at)
}

func TestCutPastEnd(t *testing.T) {
	p := NewPage("body", NewParagraph("abc"))
	keep, overflow, _ := p.Cut(0, p.NodeSize())
	assert.Len(t, keep, 1)
	assert.Empty(t, overflow)
}

func TestCutNeverSplitsAtomicBlock(t *testing.T) {
	img := testImage(t)
	// img spans [1,4): open at 1, content position 2..3, close before 4.
	p := NewPage("body", img)
	for off := 0; off <= p.NodeSize(); off++ {
		keep, overflow, _ := p.Cut(0, off)
		assert.Equal(t, 1, len(keep)+len(overflow), "cut at %d", off)
	}
}
