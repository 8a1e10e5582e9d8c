package ui

import "github.com/OpenTraceLab/segbar/pkg/segment"

// DragTracker turns pointer motion over the bar into percent deltas. Each
// Move reports the motion since the previous event, so deltas are applied in
// event order and a clamped resize does not accumulate.
type DragTracker struct {
	pointer int
	lastX   float32
	width   float32
	active  bool
}

// Begin starts dragging pointer at screen x over a bar width pixels wide.
func (d *DragTracker) Begin(pointer int, x, width float32) {
	d.pointer = pointer
	d.lastX = x
	d.width = width
	d.active = true
}

// Move returns the pointer being dragged and the percent delta since the last
// event. ok is false when no drag is in progress.
func (d *DragTracker) Move(x float32) (pointer int, delta float64, ok bool) {
	if !d.active {
		return 0, 0, false
	}
	delta = segment.PercentDelta(float64(x-d.lastX), float64(d.width))
	d.lastX = x
	return d.pointer, delta, true
}

// End stops the current drag.
func (d *DragTracker) End() {
	d.active = false
}

// Active returns the dragged pointer.
func (d *DragTracker) Active() (int, bool) {
	return d.pointer, d.active
}
