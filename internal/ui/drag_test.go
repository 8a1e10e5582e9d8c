package ui

import "testing"

func TestDragTracker(t *testing.T) {
	var d DragTracker
	if _, _, ok := d.Move(10); ok {
		t.Fatalf("Move before Begin should report no drag")
	}

	d.Begin(1, 100, 400)
	if p, ok := d.Active(); !ok || p != 1 {
		t.Fatalf("Active = %d, %v", p, ok)
	}

	tests := []struct {
		x    float32
		want float64
	}{
		{x: 140, want: 10},
		{x: 140, want: 0},
		{x: 100, want: -10},
		{x: 120, want: 5},
	}
	for _, tc := range tests {
		p, delta, ok := d.Move(tc.x)
		if !ok || p != 1 || !approx(delta, tc.want) {
			t.Fatalf("Move(%v) = %d, %v, %v, want delta %v", tc.x, p, delta, ok, tc.want)
		}
	}

	d.End()
	if _, ok := d.Active(); ok {
		t.Fatalf("drag should be inactive after End")
	}
	if _, _, ok := d.Move(200); ok {
		t.Fatalf("Move after End should report no drag")
	}
}

func TestDragTrackerZeroWidth(t *testing.T) {
	var d DragTracker
	d.Begin(0, 0, 0)
	if _, delta, ok := d.Move(50); !ok || delta != 0 {
		t.Fatalf("zero-width bar should give 0 delta, got %v", delta)
	}
}
