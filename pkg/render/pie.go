package render

import (
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/OpenTraceLab/segbar/pkg/segment"
)

// arcSteps is the number of line segments used for a full circle.
const arcSteps = 128

// DrawPie fills one wedge per segment, outlines it, and outlines the
// highlighted wedge on a slightly larger radius.
func DrawPie(ops *op.Ops, pie Pie, snap segment.Snapshot, style Style) {
	var start float64
	for i, seg := range snap.Segments {
		end := start + seg.Size/segment.Whole*segment.FullTurn
		if i == len(snap.Segments)-1 {
			end = segment.FullTurn
		}
		drawWedge(ops, pie, start, end, pie.Radius, seg.Color, style)
		if i == snap.Selected {
			strokeWedge(ops, pie, start, end, pie.Radius+style.HighlightGrow, style.HighlightWidth, style.HighlightColor)
		}
		start = end
	}
}

func drawWedge(ops *op.Ops, pie Pie, start, end float64, radius float32, c segment.Color, style Style) {
	paint.FillShape(ops, c.NRGBA(), clip.Outline{Path: wedgePath(ops, pie, start, end, radius)}.Op())
	if style.StrokeWidth > 0 {
		strokeWedge(ops, pie, start, end, radius, style.StrokeWidth, style.StrokeColor)
	}
}

func strokeWedge(ops *op.Ops, pie Pie, start, end float64, radius, width float32, col color.NRGBA) {
	stroke := clip.Stroke{
		Path:  wedgePath(ops, pie, start, end, radius),
		Width: width,
	}.Op()
	paint.FillShape(ops, col, stroke)
}

// wedgePath approximates the arc with straight lines, like the board renderer
// does for circles.
func wedgePath(ops *op.Ops, pie Pie, start, end float64, radius float32) clip.PathSpec {
	var path clip.Path
	path.Begin(ops)
	path.MoveTo(pie.Center)
	for _, pt := range arcPoints(pie, start, end, radius) {
		path.LineTo(pt)
	}
	path.Close()
	return path.End()
}

// arcPoints returns the polyline from start to end, both endpoints included.
func arcPoints(pie Pie, start, end float64, radius float32) []f32.Point {
	steps := int(math.Ceil((end - start) / segment.FullTurn * arcSteps))
	if steps < 2 {
		steps = 2
	}
	pts := make([]f32.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		a := start + (end-start)*float64(i)/float64(steps)
		if i == steps {
			a = end
		}
		pts = append(pts, pie.PointAt(a, radius))
	}
	return pts
}
