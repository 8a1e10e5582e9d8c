package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/OpenTraceLab/segbar/pkg/segment"
)

const segmentGlyphs = "0123456789abcdefghijklmnopqrstuvwxyz"

func glyph(i int) byte {
	return segmentGlyphs[i%len(segmentGlyphs)]
}

// TextBar draws the bar as width characters, one glyph per segment index.
// Cell boundaries are rounded from the cumulative sizes so the bar is always
// exactly width cells wide.
func TextBar(snap segment.Snapshot, width int) string {
	if width <= 0 || len(snap.Segments) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(width + 2)
	b.WriteByte('[')
	var cum float64
	prev := 0
	for i, seg := range snap.Segments {
		cum += seg.Size
		next := int(math.Round(cum / segment.Whole * float64(width)))
		if i == len(snap.Segments)-1 || next > width {
			next = width
		}
		for c := prev; c < next; c++ {
			b.WriteByte(glyph(i))
		}
		if next > prev {
			prev = next
		}
	}
	b.WriteByte(']')
	return b.String()
}

// WriteTable prints one row per segment: index, size, display value, color.
// The highlighted segment is marked with '>'. Indices are 1-based as shown to
// users.
func WriteTable(w io.Writer, snap segment.Snapshot) error {
	if _, err := fmt.Fprintf(w, "  %-3s %-4s %8s  %14s  %s\n", "#", "Key", "Size", "Value", "Color"); err != nil {
		return err
	}
	for i, seg := range snap.Segments {
		mark := ' '
		if i == snap.Selected {
			mark = '>'
		}
		value := ""
		if i < len(snap.Display) {
			value = snap.Display[i].String()
		}
		if _, err := fmt.Fprintf(w, "%c %-3d %-4c %7.2f%%  %14s  %s\n",
			mark, i+1, glyph(i), seg.Size, value, seg.Color); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary prints the table followed by the text bar.
func WriteSummary(w io.Writer, snap segment.Snapshot, barWidth int) error {
	unit := string(snap.UnitType)
	if snap.UnitType == segment.UnitCurrency {
		unit = fmt.Sprintf("%s (total %.2f)", unit, snap.TotalValue)
	}
	if _, err := fmt.Fprintf(w, "Segments: %d  Unit: %s\n", len(snap.Segments), unit); err != nil {
		return err
	}
	if err := WriteTable(w, snap); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n", TextBar(snap, barWidth))
	return err
}
