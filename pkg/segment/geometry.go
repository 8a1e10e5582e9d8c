package segment

import "math"

// FullTurn is the angle covered by the whole partition on the pie.
const FullTurn = 2 * math.Pi

// ResolveAngle maps a click angle on the pie to a segment index. Segment 0
// starts at angle 0 and each segment spans Size/100 of a full turn.
//
// Ranges are half open, so an angle exactly on a boundary belongs to the
// following segment. The end of the last segment is inclusive, which keeps
// FullTurn (and any rounding gap below it) inside the partition. Angles
// outside [0, FullTurn] resolve to nothing.
func (p *Partition) ResolveAngle(angle float64) (int, bool) {
	if math.IsNaN(angle) || angle < 0 || angle > FullTurn {
		return -1, false
	}
	return p.resolve(angle, FullTurn)
}

// ResolveBarPosition maps a position along the bar, in percent of its width,
// to a segment index using the same boundary rule as ResolveAngle.
func (p *Partition) ResolveBarPosition(percent float64) (int, bool) {
	if math.IsNaN(percent) || percent < 0 || percent > Whole {
		return -1, false
	}
	return p.resolve(percent, Whole)
}

func (p *Partition) resolve(pos, span float64) (int, bool) {
	if len(p.segments) == 0 {
		return -1, false
	}
	var start float64
	for i, s := range p.segments {
		end := start + s.Size/Whole*span
		if pos >= start && pos < end {
			return i, true
		}
		start = end
	}
	return len(p.segments) - 1, true
}

// Arc returns the start and end angle of segment index on the pie.
func (p *Partition) Arc(index int) (start, end float64, ok bool) {
	if index < 0 || index >= len(p.segments) {
		return 0, 0, false
	}
	for i := 0; i < index; i++ {
		start += p.segments[i].Size / Whole * FullTurn
	}
	end = start + p.segments[index].Size/Whole*FullTurn
	return start, end, true
}

// Boundaries returns the position of every pointer along the bar, in percent.
// Pointer i sits at the cumulative size of segments 0..i.
func (p *Partition) Boundaries() []float64 {
	if len(p.segments) < 2 {
		return nil
	}
	out := make([]float64, 0, len(p.segments)-1)
	var cum float64
	for _, s := range p.segments[:len(p.segments)-1] {
		cum += s.Size
		out = append(out, cum)
	}
	return out
}
