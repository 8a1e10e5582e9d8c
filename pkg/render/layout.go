package render

import (
	"math"

	"gioui.org/f32"

	"github.com/OpenTraceLab/segbar/pkg/segment"
)

// Pie places the circular view on screen.
type Pie struct {
	Center f32.Point
	Radius float32
}

// PieIn fits a pie into a w×h box, leaving margin pixels on every side.
func PieIn(w, h int, margin float32) Pie {
	r := float32(math.Min(float64(w), float64(h)))/2 - margin
	if r < 1 {
		r = 1
	}
	return Pie{
		Center: f32.Pt(float32(w)/2, float32(h)/2),
		Radius: r,
	}
}

// AngleAt converts a screen position into a pie angle in [0, 2π). Screen y
// grows downwards, so angles run clockwise from the positive x axis. The
// second result is false when pos lies outside the disc.
func (p Pie) AngleAt(pos f32.Point) (float64, bool) {
	dx := float64(pos.X - p.Center.X)
	dy := float64(pos.Y - p.Center.Y)
	inside := math.Hypot(dx, dy) <= float64(p.Radius)
	return NormalizeAngle(math.Atan2(dy, dx)), inside
}

// PointAt returns the screen position at angle on a circle of radius r.
func (p Pie) PointAt(angle float64, r float32) f32.Point {
	return f32.Pt(
		p.Center.X+r*float32(math.Cos(angle)),
		p.Center.Y+r*float32(math.Sin(angle)),
	)
}

// NormalizeAngle folds any angle into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, segment.FullTurn)
	if a < 0 {
		a += segment.FullTurn
	}
	if a >= segment.FullTurn {
		a = 0
	}
	return a
}

// Bar places the linear view on screen.
type Bar struct {
	Min  f32.Point
	Size f32.Point
}

// PercentAt converts a screen x coordinate into a position along the bar,
// clamped to [0, 100].
func (b Bar) PercentAt(x float32) float64 {
	if b.Size.X <= 0 {
		return 0
	}
	pct := float64(x-b.Min.X) / float64(b.Size.X) * segment.Whole
	return math.Max(0, math.Min(segment.Whole, pct))
}

// X converts a position along the bar, in percent, into a screen x.
func (b Bar) X(percent float64) float32 {
	return b.Min.X + float32(percent/segment.Whole)*b.Size.X
}

// Contains reports whether pos lies on the bar.
func (b Bar) Contains(pos f32.Point) bool {
	return pos.X >= b.Min.X && pos.X <= b.Min.X+b.Size.X &&
		pos.Y >= b.Min.Y && pos.Y <= b.Min.Y+b.Size.Y
}

// PointerAt returns the pointer closest to screen x, if one lies within
// tolerance pixels. boundaries are the pointer positions in percent.
func (b Bar) PointerAt(x float32, boundaries []float64, tolerance float32) (int, bool) {
	best, bestDist := -1, tolerance
	for i, pct := range boundaries {
		d := x - b.X(pct)
		if d < 0 {
			d = -d
		}
		if d <= bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}
