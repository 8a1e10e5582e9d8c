package segment

import "fmt"

// ResizeAdjacent moves pointer pointerIndex by percentDelta. The pointer sits
// between segment pointerIndex (left) and pointerIndex+1 (right): the left
// segment grows by the delta and the right one shrinks by the same amount.
//
// A side that would fall below the minimum size is pinned to it and the
// shortfall is taken from the other side, so the pair's combined size never
// changes and the other segments are untouched.
//
// pointerIndex must be in [0, Len()-2]; anything else panics.
func (p *Partition) ResizeAdjacent(pointerIndex int, percentDelta float64) {
	if pointerIndex < 0 || pointerIndex >= len(p.segments)-1 {
		panic(fmt.Sprintf("segment: pointer index %d out of range [0, %d]", pointerIndex, len(p.segments)-2))
	}
	left := &p.segments[pointerIndex]
	right := &p.segments[pointerIndex+1]

	leftNew := left.Size + percentDelta
	rightNew := right.Size - percentDelta

	if leftNew < p.minSize {
		correction := p.minSize - leftNew
		leftNew = p.minSize
		rightNew -= correction
	}
	if rightNew < p.minSize {
		correction := p.minSize - rightNew
		rightNew = p.minSize
		leftNew -= correction
	}

	left.Size = leftNew
	right.Size = rightNew
}

// Pointers returns the number of draggable boundaries, Len()-1.
func (p *Partition) Pointers() int {
	return len(p.segments) - 1
}

// ValidPointer reports whether i names an existing boundary.
func (p *Partition) ValidPointer(i int) bool {
	return i >= 0 && i < len(p.segments)-1
}

// PercentDelta converts a horizontal pointer movement in pixels into a size
// delta for a bar barWidth pixels wide. A non-positive width yields zero.
func PercentDelta(pixels, barWidth float64) float64 {
	if barWidth <= 0 {
		return 0
	}
	return pixels / barWidth * Whole
}
