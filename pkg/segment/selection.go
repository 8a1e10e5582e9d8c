package segment

// Select highlights segment index. Out of range indices are ignored.
func (p *Partition) Select(index int) {
	if index < 0 || index >= len(p.segments) {
		return
	}
	p.selected = index
}

// ClearSelection removes the highlight.
func (p *Partition) ClearSelection() {
	p.selected = -1
}

// Selected returns the highlighted index and whether there is one.
func (p *Partition) Selected() (int, bool) {
	if p.selected < 0 || p.selected >= len(p.segments) {
		return -1, false
	}
	return p.selected, true
}

// SelectNext moves the highlight one segment forward, wrapping at the end.
// Without a selection it highlights the first segment.
func (p *Partition) SelectNext() {
	cur, ok := p.Selected()
	if !ok {
		p.selected = 0
		return
	}
	p.selected = (cur + 1) % len(p.segments)
}

// SelectPrev moves the highlight one segment back, wrapping at the start.
// Without a selection it highlights the last segment.
func (p *Partition) SelectPrev() {
	cur, ok := p.Selected()
	if !ok {
		p.selected = len(p.segments) - 1
		return
	}
	p.selected = (cur - 1 + len(p.segments)) % len(p.segments)
}
