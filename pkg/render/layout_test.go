package render

import (
	"math"
	"testing"

	"gioui.org/f32"

	"github.com/OpenTraceLab/segbar/pkg/segment"
)

func TestPieAngleAt(t *testing.T) {
	pie := Pie{Center: f32.Pt(100, 100), Radius: 50}
	tests := []struct {
		name   string
		pos    f32.Point
		angle  float64
		inside bool
	}{
		{"east", f32.Pt(140, 100), 0, true},
		{"south", f32.Pt(100, 140), math.Pi / 2, true},
		{"west", f32.Pt(60, 100), math.Pi, true},
		{"north", f32.Pt(100, 60), 3 * math.Pi / 2, true},
		{"outside", f32.Pt(200, 100), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			angle, inside := pie.AngleAt(tt.pos)
			if inside != tt.inside {
				t.Fatalf("inside = %v, want %v", inside, tt.inside)
			}
			if math.Abs(angle-tt.angle) > 1e-6 {
				t.Fatalf("angle = %v, want %v", angle, tt.angle)
			}
		})
	}
}

func TestPieClickResolvesSegment(t *testing.T) {
	p := segment.Initialize(4, nil)
	p.ResizeAdjacent(0, 10) // [35, 15, 25, 25]
	pie := PieIn(200, 200, 20)

	// Straight down is a quarter turn: 25% of the pie lies inside segment 0.
	angle, inside := pie.AngleAt(f32.Pt(100, 150))
	if !inside {
		t.Fatalf("click should be inside the pie")
	}
	if idx, ok := p.ResolveAngle(angle); !ok || idx != 0 {
		t.Fatalf("ResolveAngle = %d,%v want 0", idx, ok)
	}
	// Straight up is three quarters of a turn: segment 3 starts at 75%.
	angle, _ = pie.AngleAt(f32.Pt(100, 40))
	if idx, _ := p.ResolveAngle(angle); idx != 3 {
		t.Fatalf("ResolveAngle(up) = %d, want 3", idx)
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{2 * math.Pi, 0},
	}
	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBarGeometry(t *testing.T) {
	bar := Bar{Min: f32.Pt(10, 0), Size: f32.Pt(400, 30)}
	if got := bar.PercentAt(110); math.Abs(got-25) > 1e-6 {
		t.Fatalf("PercentAt(110) = %v, want 25", got)
	}
	if got := bar.PercentAt(-50); got != 0 {
		t.Fatalf("PercentAt left of bar = %v, want 0", got)
	}
	if got := bar.PercentAt(1000); got != 100 {
		t.Fatalf("PercentAt right of bar = %v, want 100", got)
	}
	if got := bar.X(50); got != 210 {
		t.Fatalf("X(50) = %v, want 210", got)
	}
	if !bar.Contains(f32.Pt(200, 15)) || bar.Contains(f32.Pt(200, 40)) {
		t.Fatalf("Contains mismatch")
	}
}

func TestBarPointerAt(t *testing.T) {
	bar := Bar{Size: f32.Pt(400, 30)}
	boundaries := []float64{25, 50, 75} // x = 100, 200, 300
	tests := []struct {
		x      float32
		want   int
		wantOK bool
	}{
		{100, 0, true},
		{205, 1, true},
		{294, 2, true},
		{150, -1, false},
	}
	for _, tt := range tests {
		got, ok := bar.PointerAt(tt.x, boundaries, 8)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Fatalf("PointerAt(%v) = %d,%v want %d,%v", tt.x, got, ok, tt.want, tt.wantOK)
		}
	}
}
