package model

// Fragment is an ordered sub-sequence of blocks produced by cutting a
// page's content at a document offset.
type Fragment []Block

// Normalize returns a fragment guaranteed to hold at least one block. An
// empty fragment yields a single placeholder so it can be embedded in a
// page without violating the never-empty invariant.
func (f Fragment) Normalize() Fragment {
	if len(f) == 0 {
		return Fragment{Placeholder()}
	}
	return f
}

// ContentSize returns the total offset span of the fragment's blocks.
func (f Fragment) ContentSize() int {
	size := 0
	for _, b := range f {
		size += NodeSize(b)
	}
	return size
}

// TextSize returns the total content size of the fragment's blocks,
// excluding structural tokens. Used by content-conservation checks.
func (f Fragment) TextSize() int {
	size := 0
	for _, b := range f {
		size += b.Size()
	}
	return size
}
