// Package engine implements one reflow pass: overflow detection, split
// point resolution, and reflow transaction construction.
//
// The engine is a pure function of a document snapshot and a layout
// oracle: it measures, decides, and emits at most one transaction fixing
// at most one overflowing page. It never measures after mutating, never
// owns the document, and never applies its own transactions — scheduling
// and commit belong to the session.
//
// A full pass is [Run]; the stages are also exported individually:
//
//   - [FindOverflow] scans pages in document order for the first block
//     whose rendered bottom crosses its page's capacity.
//   - [ResolveSplit] computes the exact offset at which the offending
//     block's content must be cut so the retained portion fits.
//   - [BuildReflow] turns the split offset into one atomic transaction
//     that trims the source page and merges the overflow into the next
//     page or appends a new one, preserving the selection.
//
// Multi-page cascades are resolved by repeated passes, not inside one
// transaction: an applied transaction changes the document, the host
// notifies the session, and the scheduler requests another pass until
// [FindOverflow] reports none.
package engine
