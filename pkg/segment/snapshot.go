package segment

// Snapshot is a read-only copy of a partition for renderers.
type Snapshot struct {
	Segments   []Segment
	Selected   int // -1 when nothing is highlighted
	UnitType   UnitType
	TotalValue float64
	Boundaries []float64
	Display    []DisplayValue
}

// Snapshot copies everything a renderer needs to draw one frame.
func (p *Partition) Snapshot() Snapshot {
	sel, ok := p.Selected()
	if !ok {
		sel = -1
	}
	display := make([]DisplayValue, len(p.segments))
	for i := range p.segments {
		display[i], _ = p.FormatSize(i)
	}
	return Snapshot{
		Segments:   p.Segments(),
		Selected:   sel,
		UnitType:   p.unitType,
		TotalValue: p.totalValue,
		Boundaries: p.Boundaries(),
		Display:    display,
	}
}

// HasSelection reports whether a segment is highlighted.
func (s Snapshot) HasSelection() bool {
	return s.Selected >= 0 && s.Selected < len(s.Segments)
}
