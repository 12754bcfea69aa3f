package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentNeverEmpty(t *testing.T) {
	d := NewDocument()
	require.Len(t, d.Pages, 1)
	require.Len(t, d.Pages[0].Blocks, 1)
	assert.Equal(t, 0, d.Pages[0].Blocks[0].Size())
}

func TestNewPageNeverEmpty(t *testing.T) {
	p := NewPage("body")
	require.Len(t, p.Blocks, 1)
	assert.Equal(t, KindParagraph, p.Blocks[0].Kind())
	assert.NotEqual(t, p.ID, NewPage("body").ID)
}

func TestOffsets(t *testing.T) {
	// page0: para(4), heading(2); page1: para(3)
	d := NewDocument(
		NewPage("body", NewParagraph("abcd"), NewHeading(1, "hi")),
		NewPage("body", NewParagraph("xyz")),
	)

	// page0 open at 0; para(4) spans [1,7) with content positions 2..6;
	// heading(2) spans [7,11) with content positions 8..10; page0 closes
	// at 11, so page1 starts at 12.
	assert.Equal(t, 0, d.PageStart(0))
	assert.Equal(t, 12, d.PageEnd(0))
	assert.Equal(t, 12, d.PageStart(1))
	assert.Equal(t, 19, d.PageEnd(1))
	assert.Equal(t, 19, d.Size())

	assert.Equal(t, 1, d.BlockStart(0, 0))
	assert.Equal(t, 7, d.BlockStart(0, 1))

	start, end := d.BlockRange(0, 0)
	assert.Equal(t, 2, start)
	assert.Equal(t, 6, end)

	start, end = d.BlockRange(1, 0)
	assert.Equal(t, 14, start)
	assert.Equal(t, 17, end)
}

func TestResolveRoundTrip(t *testing.T) {
	d := NewDocument(
		NewPage("body", NewParagraph("abcd"), NewHeading(1, "hi")),
		NewPage("body", NewParagraph("xyz")),
	)

	for _, off := range []int{2, 4, 6, 8, 10, 14, 17} {
		pos, ok := d.Resolve(off)
		require.True(t, ok, "offset %d should resolve", off)
		assert.Equal(t, off, d.OffsetOf(pos), "round trip for offset %d", off)
	}

	// Structural tokens do not resolve.
	for _, off := range []int{0, 1, 7, 11, 12, 13, 18, 19} {
		_, ok := d.Resolve(off)
		assert.False(t, ok, "offset %d is a token, must not resolve", off)
	}
}

func TestClampToContent(t *testing.T) {
	d := NewDocument(
		NewPage("body", NewParagraph("abcd"), NewHeading(1, "hi")),
	)
	// Content positions: [2,6] and [8,10].
	assert.Equal(t, 2, d.ClampToContent(0))
	assert.Equal(t, 2, d.ClampToContent(1))
	assert.Equal(t, 4, d.ClampToContent(4))
	assert.Equal(t, 6, d.ClampToContent(6))
	assert.Equal(t, 8, d.ClampToContent(7))
	assert.Equal(t, 8, d.ClampToContent(8))
	assert.Equal(t, 10, d.ClampToContent(11))
	assert.Equal(t, 10, d.ClampToContent(99))
}

func TestCloneIsIndependent(t *testing.T) {
	d := NewDocument(NewPage("body", NewParagraph("abc")))
	c := d.Clone()
	c.Pages = append(c.Pages, NewPage("body"))
	c.Selection = 3

	assert.Len(t, d.Pages, 1)
	assert.Equal(t, 0, d.Selection)
}

func TestOutline(t *testing.T) {
	d := NewDocument(
		NewPage("body", NewParagraph("short"), NewHeading(2, strings.Repeat("x", 30))),
	)
	out := d.Outline()
	assert.Contains(t, out, "page 1: 2 blocks")
	assert.Contains(t, out, `paragraph[5] "short"`)
	// Long text is truncated to 24 runes.
	assert.Contains(t, out, `heading[30] "`+strings.Repeat("x", 21)+`..."`)
}
