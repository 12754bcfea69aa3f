// Package layout defines the measurement boundary between the reflow
// engine and the host rendering surface.
//
// The engine never computes rendered geometry itself: every height and
// rectangle comes from an [Oracle] supplied by the host. Measurements are
// page-relative and may fail at any time (content not painted yet); a
// failed query is reported as [ErrUnmeasurable] and the engine degrades
// gracefully, never treating it as a crash.
//
// # Oracle
//
// A host implements [Oracle] over its currently rendered tree:
//
//	type Oracle interface {
//	    BlockBottom(page, block int) (float64, error)
//	    OffsetRect(offset int) (model.Rect, error)
//	}
//
// Hosts that can enumerate rendered line boxes may additionally implement
// [LineMeasurer]; the split point resolver uses it as a fast path before
// falling back to geometric search.
//
// # Grid
//
// [Grid] is a deterministic oracle over a monospace line grid: fixed line
// height, fixed characters per line. It simulates a rendering surface for
// tests and for the command-line demo, including the optional line-box
// capability.
package layout
