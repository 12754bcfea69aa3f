package engine

// Params holds the pagination geometry the engine works against. Page
// capacity is configuration, never computed from content.
type Params struct {
	// PageCapacity is the maximum content height of a page, in the same
	// page-relative units the oracle measures in.
	PageCapacity float64

	// HeightTolerance is the slack allowed past capacity before a block
	// counts as overflowing. A small positive tolerance absorbs sub-pixel
	// jitter in measurements and prevents split/merge oscillation.
	HeightTolerance float64

	// MinSplitOffset is the minimum content retained on each side of a
	// split, in offset units.
	MinSplitOffset int
}

// capacityBottom is the effective fit boundary for measurements.
func (p Params) capacityBottom() float64 {
	return p.PageCapacity + p.HeightTolerance
}
