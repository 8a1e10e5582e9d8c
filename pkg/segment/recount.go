package segment

// SetSegmentCount re-splits the whole into newCount equal segments. Colors of
// the first min(newCount, Len()) segments are kept; additional segments take
// their color from the palette. A selection past the new end is cleared.
func (p *Partition) SetSegmentCount(newCount int) {
	newCount = clampCount(newCount)
	old := p.segments
	p.segments = equalSegments(newCount, p.palette)
	for i := 0; i < newCount && i < len(old); i++ {
		p.segments[i].Color = old[i].Color
	}
	if p.selected >= newCount {
		p.selected = -1
	}
}

// SetSegmentColor recolors segment index. Out of range indices are ignored.
func (p *Partition) SetSegmentColor(index int, c Color) {
	if index < 0 || index >= len(p.segments) {
		return
	}
	p.segments[index].Color = c
}
