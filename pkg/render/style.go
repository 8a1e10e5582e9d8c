package render

import (
	"image/color"

	"github.com/OpenTraceLab/segbar/pkg/segment"
)

// Style holds the stroke and highlight settings shared by the pie and bar.
type Style struct {
	StrokeColor    color.NRGBA
	StrokeWidth    float32
	HighlightColor color.NRGBA
	HighlightWidth float32
	HighlightGrow  float32 // extra radius of the highlight arc

	PointerColor  color.NRGBA
	PointerWidth  float32 // pointer handle width
	PointerHeight float32
}

// DefaultStyle mirrors the widget's stock look: dark outlines and a white
// outline around the highlighted wedge.
func DefaultStyle() Style {
	return Style{
		StrokeColor:    segment.Color("#333333").NRGBA(),
		StrokeWidth:    2,
		HighlightColor: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		HighlightWidth: 3,
		HighlightGrow:  5,
		PointerColor:   color.NRGBA{R: 34, G: 37, B: 49, A: 255},
		PointerWidth:   12,
		PointerHeight:  10,
	}
}
