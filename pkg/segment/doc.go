// Package segment implements the partition model behind the pie/bar
// segmentation widget.
//
// A Partition splits a whole (100 percent) into an ordered list of adjacent
// segments. Each segment has a size and a color. The model has no notion of
// rendering or input devices; adapters translate pointer movement and clicks
// into the operations below and poll the query methods to redraw.
//
// # Overview
//
// The package provides:
//   - Partition: the owned state (segments, selection, display unit)
//   - ResizeAdjacent: moves the boundary between two neighbouring segments
//   - SetSegmentCount: re-splits the whole while keeping existing colors
//   - ResolveAngle / ResolveBarPosition: map a click to a segment index
//   - FormatSize: percent or currency display value for a segment
//
// # Usage
//
//	p := segment.New(segment.DefaultOptions())
//
//	// Drag pointer 0 (between segment 0 and 1) 40px right on a 400px bar
//	p.ResizeAdjacent(0, segment.PercentDelta(40, 400))
//
//	// Click on the pie at 90 degrees
//	if idx, ok := p.ResolveAngle(math.Pi / 2); ok {
//		p.Select(idx)
//	}
//
//	// Show the selection as a currency amount
//	p.SetUnitTypeWithTotal(segment.UnitCurrency, 2500)
//	v, _ := p.FormatSize(idx)
//	fmt.Println(v) // e.g. "625.00 €"
//
// # Invariants
//
// After every mutation the sizes sum to 100 and the partition has at least
// two segments. ResizeAdjacent keeps both affected segments at or above the
// minimum size whenever their combined size allows it; when the pair holds
// less than twice the minimum, the clamp-then-correct rule can leave one of
// them below the floor. Check reports such states.
//
// # Errors
//
// Mutations never return errors. Counts below two are clamped, out-of-range
// indices are ignored. The one exception is ResizeAdjacent, which panics on a
// pointer index outside [0, Len()-2]: input adapters only emit indices of
// pointers they created, so a bad index is a programming error.
package segment
