// Package txn is the document mutation port: the only way the reflow
// engine (or a user-facing command) writes to the tree.
//
// A [Transaction] is an ordered list of steps — replace a page range,
// insert a page, set the selection — applied atomically by the host's
// commit mechanism. The built-in commit is [Transaction.Apply], which
// produces a new tree and never mutates the input; hosts with their own
// document store can instead walk Steps and translate them.
//
// Page ranges are addressed by absolute offsets that must align with page
// boundaries; a transaction that would leave the document without pages
// or that addresses a misaligned range fails as a whole, leaving the
// input untouched.
package txn
