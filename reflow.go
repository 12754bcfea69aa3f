// Package reflow paginates a flowing rich-document tree into
// fixed-capacity pages, continuously reflowing content while a host
// editing surface mutates it.
//
// A [Session] owns the scheduling and commit side of the loop; the
// measurement side is the host's [github.com/pagemill/reflow/layout.Oracle]
// and the decision side is the pure
// [github.com/pagemill/reflow/engine] pass.
//
// Basic usage:
//
//	doc := model.NewDocument(model.NewPage("body", blocks...))
//	grid := layout.NewGrid(layout.DefaultMetrics())
//	grid.SetDocument(doc)
//
//	sess := reflow.NewSession(doc, grid, reflow.DefaultOptions()).
//	    OnTransaction(func(t *txn.Transaction, d *model.Document) {
//	        grid.SetDocument(d) // the surface repaints the committed tree
//	    })
//	defer sess.Close()
//
//	sess.DocumentChanged() // host edit notification; a pass is scheduled
//
// Each pass fixes at most one overflowing page; the commit of its
// transaction counts as a document change and schedules the next pass,
// so multi-page cascades converge by repetition. Hosts without an event
// loop can call [Session.Settle] to drive passes synchronously.
//
// The engine only pushes overflow forward. Underfull pages are never
// compacted backward; only the explicit [Session.RemoveLastPage] command
// deletes a page.
package reflow
