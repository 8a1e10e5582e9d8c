package render

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/OpenTraceLab/segbar/pkg/segment"
)

// DrawBar fills the bar left to right with one section per segment.
func DrawBar(ops *op.Ops, bar Bar, snap segment.Snapshot, style Style) {
	var cum float64
	for i, seg := range snap.Segments {
		x0 := bar.X(cum)
		cum += seg.Size
		x1 := bar.X(cum)
		if i == len(snap.Segments)-1 {
			x1 = bar.Min.X + bar.Size.X
		}
		rect := image.Rect(
			int(x0+0.5), int(bar.Min.Y),
			int(x1+0.5), int(bar.Min.Y+bar.Size.Y),
		)
		paint.FillShape(ops, seg.Color.NRGBA(), clip.Rect(rect).Op())
		if i == snap.Selected {
			outline(ops, rect, style.HighlightWidth, style.HighlightColor)
		}
	}
	outline(ops, image.Rect(
		int(bar.Min.X), int(bar.Min.Y),
		int(bar.Min.X+bar.Size.X), int(bar.Min.Y+bar.Size.Y),
	), style.StrokeWidth, style.StrokeColor)
}

// DrawPointers draws a handle above the bar and a guide line across it for
// every boundary.
func DrawPointers(ops *op.Ops, bar Bar, boundaries []float64, active int, style Style) {
	for i, pct := range boundaries {
		x := bar.X(pct)
		col := style.PointerColor
		if i == active {
			col = style.StrokeColor
			col.A = 200
		}

		var line clip.Path
		line.Begin(ops)
		line.MoveTo(f32.Pt(x, bar.Min.Y))
		line.LineTo(f32.Pt(x, bar.Min.Y+bar.Size.Y))
		paint.FillShape(ops, col, clip.Stroke{Path: line.End(), Width: 2}.Op())

		hw := style.PointerWidth / 2
		top := bar.Min.Y - style.PointerHeight
		var handle clip.Path
		handle.Begin(ops)
		handle.MoveTo(f32.Pt(x-hw, top))
		handle.LineTo(f32.Pt(x+hw, top))
		handle.LineTo(f32.Pt(x, bar.Min.Y))
		handle.Close()
		paint.FillShape(ops, col, clip.Outline{Path: handle.End()}.Op())
	}
}

func outline(ops *op.Ops, rect image.Rectangle, width float32, col color.NRGBA) {
	if width <= 0 {
		return
	}
	var path clip.Path
	path.Begin(ops)
	path.MoveTo(f32.Pt(float32(rect.Min.X), float32(rect.Min.Y)))
	path.LineTo(f32.Pt(float32(rect.Max.X), float32(rect.Min.Y)))
	path.LineTo(f32.Pt(float32(rect.Max.X), float32(rect.Max.Y)))
	path.LineTo(f32.Pt(float32(rect.Min.X), float32(rect.Max.Y)))
	path.Close()
	paint.FillShape(ops, col, clip.Stroke{Path: path.End(), Width: width}.Op())
}
