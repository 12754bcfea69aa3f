package engine

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagemill/reflow/model"
)

func testPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func pageText(p *model.Page) string {
	var out string
	for _, b := range p.Blocks {
		if tb, ok := b.(model.TextBlock); ok {
			out += tb.Text()
		}
	}
	return out
}

func TestBuildReflowAppend(t *testing.T) {
	src := model.NewPage("body", model.NewParagraph(digits(120)))
	doc := model.NewDocument(src)
	doc.Selection = 50

	tx, ok := BuildReflow(doc, 0, 102)
	require.True(t, ok)

	got, err := tx.Apply(doc)
	require.NoError(t, err)
	require.Len(t, got.Pages, 2)

	assert.Equal(t, src.ID, got.Pages[0].ID, "source page keeps its identity")
	assert.NotEqual(t, src.ID, got.Pages[1].ID, "appended page is new")
	assert.Equal(t, "body", got.Pages[1].Style, "appended page inherits style")

	require.Len(t, got.Pages[0].Blocks, 1)
	require.Len(t, got.Pages[1].Blocks, 1)
	assert.Equal(t, 100, got.Pages[0].Blocks[0].Size())
	assert.Equal(t, 20, got.Pages[1].Blocks[0].Size())

	// No content is lost or duplicated.
	assert.Equal(t, digits(120), pageText(got.Pages[0])+pageText(got.Pages[1]))

	assert.Equal(t, 50, got.Selection, "selection before the split is untouched")
}

func TestBuildReflowMerge(t *testing.T) {
	next := model.NewPage("body", model.NewParagraph(digits(30)))
	doc := model.NewDocument(
		model.NewPage("body", model.NewParagraph(digits(120))),
		next,
	)

	tx, ok := BuildReflow(doc, 0, 102)
	require.True(t, ok)

	got, err := tx.Apply(doc)
	require.NoError(t, err)
	require.Len(t, got.Pages, 2, "overflow merges into the existing next page")

	assert.Equal(t, next.ID, got.Pages[1].ID)
	require.Len(t, got.Pages[1].Blocks, 2)
	assert.Equal(t, 20, got.Pages[1].Blocks[0].Size(), "moved fragment leads the next page")
	assert.Equal(t, 30, got.Pages[1].Blocks[1].Size())
}

func TestBuildReflowSelectionMapping(t *testing.T) {
	// Source page: paragraph of 120 runes, content at offsets [2, 122).
	// Split at 102 keeps the first 100 runes.
	tests := []struct {
		name  string
		pages []*model.Page
		sel   int
		want  int
	}{
		{
			name:  "inside moved fragment",
			pages: []*model.Page{model.NewPage("body", model.NewParagraph(digits(120)))},
			sel:   110, // rune 108, eight runes into the overflow
			want:  114, // rune 8 of the appended page's paragraph
		},
		{
			name:  "exactly at split offset",
			pages: []*model.Page{model.NewPage("body", model.NewParagraph(digits(120)))},
			sel:   102,
			want:  106, // start of the moved fragment's content
		},
		{
			name: "in next page after merge",
			pages: []*model.Page{
				model.NewPage("body", model.NewParagraph(digits(120))),
				model.NewPage("body", model.NewParagraph(digits(30))),
			},
			sel:  130, // rune 4 of the next page's paragraph
			want: 132, // same rune, shifted by the prepended fragment
		},
		{
			name: "past the affected pages",
			pages: []*model.Page{
				model.NewPage("body", model.NewParagraph(digits(120))),
				model.NewPage("body", model.NewParagraph(digits(30))),
				model.NewPage("body", model.NewParagraph(digits(10))),
			},
			sel:  163, // rune 3 on the third page
			want: 165, // shifted by the net size delta of the edit
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := model.NewDocument(tt.pages...)
			doc.Selection = tt.sel

			tx, ok := BuildReflow(doc, 0, 102)
			require.True(t, ok)
			got, err := tx.Apply(doc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Selection)
		})
	}
}

func TestBuildReflowWholeBlockMoves(t *testing.T) {
	// Splitting at a block boundary moves whole blocks, no text is cut.
	doc := model.NewDocument(
		model.NewPage("body",
			model.NewParagraph(digits(100)),
			model.NewParagraph(digits(20)),
		),
	)
	// Second block starts at offset 103.
	tx, ok := BuildReflow(doc, 0, 103)
	require.True(t, ok)
	got, err := tx.Apply(doc)
	require.NoError(t, err)

	require.Len(t, got.Pages, 2)
	require.Len(t, got.Pages[0].Blocks, 1)
	require.Len(t, got.Pages[1].Blocks, 1)
	assert.Equal(t, digits(20), pageText(got.Pages[1]))
}

func TestBuildReflowNoOverflowContent(t *testing.T) {
	doc := model.NewDocument(model.NewPage("body", model.NewParagraph(digits(10))))

	// A cut at or past the end of content moves nothing.
	_, ok := BuildReflow(doc, 0, 12)
	assert.False(t, ok)

	_, ok = BuildReflow(doc, 5, 3)
	assert.False(t, ok, "page index out of range")
}

func TestBuildReflowNeverEmptiesSourcePage(t *testing.T) {
	// Cut before the first block's content: everything moves, the source
	// page is left with a placeholder.
	doc := model.NewDocument(
		model.NewPage("body", model.NewParagraph(digits(40))),
		model.NewPage("body", model.NewParagraph(digits(10))),
	)
	tx, ok := BuildReflow(doc, 0, 1)
	require.True(t, ok)
	got, err := tx.Apply(doc)
	require.NoError(t, err)

	require.Len(t, got.Pages[0].Blocks, 1)
	assert.Equal(t, 0, got.Pages[0].Blocks[0].Size(), "placeholder holds the page open")
	assert.Equal(t, digits(40)+digits(10), pageText(got.Pages[1]))
}

func TestRunSinglePass(t *testing.T) {
	doc := model.NewDocument(model.NewPage("body", model.NewParagraph(digits(120))))

	tx, ok := Run(doc, testGrid(doc), testParams())
	require.True(t, ok)
	got, err := tx.Apply(doc)
	require.NoError(t, err)

	require.Len(t, got.Pages, 2)
	assert.Equal(t, 100, got.Pages[0].Blocks[0].Size())
	assert.Equal(t, 20, got.Pages[1].Blocks[0].Size())
}

func TestRunConvergesWithoutOverflow(t *testing.T) {
	doc := model.NewDocument(model.NewPage("body", model.NewParagraph(digits(80))))
	_, ok := Run(doc, testGrid(doc), testParams())
	assert.False(t, ok)
}
