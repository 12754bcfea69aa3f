// Package model provides the document tree for paginated rich documents.
//
// This package defines the data structures the reflow engine operates on:
// a [Document] holding an ordered, never-empty sequence of fixed-capacity
// pages, each holding an ordered, never-empty sequence of content blocks.
//
// # Document Structure
//
// The [Document] type is the root of the tree:
//
//	doc := model.NewDocument(
//	    model.NewPage("body", model.NewParagraph("Hello")),
//	)
//
// Each [Page] carries fixed attributes (identity, style) and a list of
// [Block] values. Blocks are immutable value nodes: edits replace blocks
// and pages wholesale rather than mutating in place.
//
// # Blocks
//
// All content implements the [Block] interface. The concrete types form a
// closed set:
//
//   - [Paragraph] - body text
//   - [Heading] - headings (levels 1-6)
//   - [ListItem] - list items with nesting level
//   - [Quote] - block quotations
//   - [Image] - embedded images (atomic, never split)
//
// Text-bearing blocks normalize their text to NFC at construction so that
// rune-based sizes and offsets stay stable across splits.
//
// # Offsets
//
// Positions in the document are absolute integer offsets over a token
// scheme: every block occupies Size()+2 positions (an opening token, its
// content, a closing token) and every page occupies its content plus 2.
// [Document.Resolve] maps an offset to a (page, block, rune) position and
// [Document.OffsetOf] maps back. The scheme makes selection mapping and
// size deltas of edits exact.
//
// # Fragments
//
// A [Fragment] is an ordered sub-sequence of blocks produced by cutting a
// page's content at a document offset ([Page.Cut]). Cuts landing inside a
// text block split it into two blocks of the same kind; cuts never land
// inside atomic blocks. Empty fragments normalize to a single placeholder
// paragraph before being embedded in a page.
//
// # Geometry
//
// [Rect] is the measurement primitive exchanged with the layout oracle:
// page-relative edges with intersection and union helpers.
package model
