// Package search provides a bounded-probe binary search over a monotonic
// predicate supplied by an external, possibly imperfect source.
//
// The combinator is independent of any geometry: the split point resolver
// uses it over layout measurements, but nothing here knows about
// rectangles or pages.
package search

// MaxFitting finds the largest n in [lo, hi] for which fits(n) reports
// true, assuming fitting becomes monotonically harder as n grows.
//
// The predicate may fail; a failed probe is treated as "does not fit"
// (the upper bound shrinks) rather than aborting the search. At most
// maxProbes predicate calls are made: the cap bounds cost and forcibly
// terminates if the predicate turns out not to be monotonic. It returns
// false if no probed value fits within the budget.
func MaxFitting(lo, hi, maxProbes int, fits func(n int) (bool, error)) (int, bool) {
	best, found := 0, false
	for probes := 0; lo <= hi && probes < maxProbes; probes++ {
		mid := lo + (hi-lo)/2
		ok, err := fits(mid)
		if err != nil || !ok {
			hi = mid - 1
			continue
		}
		best, found = mid, true
		lo = mid + 1
	}
	return best, found
}
