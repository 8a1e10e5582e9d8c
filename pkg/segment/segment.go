package segment

import (
	"fmt"
	"math"
	"strings"
)

const (
	// Whole is the total every partition sums to.
	Whole = 100.0

	// MinSegmentCount is the smallest number of segments a partition holds.
	MinSegmentCount = 2

	DefaultSegmentCount   = 4
	DefaultTotalValue     = 1000.0
	DefaultMinimumSize    = 1.0
	DefaultCurrencySymbol = "€"

	// SumTolerance bounds the floating point drift allowed in the sum.
	SumTolerance = 1e-9
)

// Segment is one slice of the partition.
type Segment struct {
	Size  float64 // percent of the whole, (0, 100]
	Color Color
}

// Options configures a new Partition. Zero values select the defaults.
type Options struct {
	InitialSegmentCount int
	UnitType            UnitType
	TotalValue          float64
	MinimumSegmentSize  float64
	CurrencySymbol      string
	Palette             Palette
}

// DefaultOptions returns the stock widget configuration.
func DefaultOptions() Options {
	return Options{
		InitialSegmentCount: DefaultSegmentCount,
		UnitType:            UnitPercent,
		TotalValue:          DefaultTotalValue,
		MinimumSegmentSize:  DefaultMinimumSize,
		CurrencySymbol:      DefaultCurrencySymbol,
		Palette:             DefaultPalette(),
	}
}

// withDefaults fills zero or unusable fields from DefaultOptions.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.InitialSegmentCount == 0 {
		o.InitialSegmentCount = def.InitialSegmentCount
	}
	if o.UnitType == "" {
		o.UnitType = def.UnitType
	}
	if o.TotalValue == 0 {
		o.TotalValue = def.TotalValue
	}
	if !Positive(o.MinimumSegmentSize) || o.MinimumSegmentSize*MinSegmentCount > Whole {
		o.MinimumSegmentSize = def.MinimumSegmentSize
	}
	if o.CurrencySymbol == "" {
		o.CurrencySymbol = def.CurrencySymbol
	}
	if len(o.Palette) == 0 {
		o.Palette = def.Palette
	}
	return o
}

// Partition is the mutable state of one segmentation widget. It is not safe
// for concurrent use; callers that share it across goroutines must lock.
type Partition struct {
	segments []Segment
	selected int

	unitType       UnitType
	totalValue     float64
	minSize        float64
	currencySymbol string
	palette        Palette
}

// New builds a partition of opts.InitialSegmentCount equal segments.
func New(opts Options) *Partition {
	opts = opts.withDefaults()
	p := &Partition{
		selected:       -1,
		unitType:       opts.UnitType,
		totalValue:     opts.TotalValue,
		minSize:        opts.MinimumSegmentSize,
		currencySymbol: opts.CurrencySymbol,
		palette:        append(Palette(nil), opts.Palette...),
	}
	p.segments = equalSegments(opts.InitialSegmentCount, p.palette)
	return p
}

// Initialize builds a partition of count equal segments colored from palette.
// A nil palette selects the default one. Counts below two are raised to two.
func Initialize(count int, palette Palette) *Partition {
	opts := DefaultOptions()
	opts.InitialSegmentCount = clampCount(count)
	if len(palette) > 0 {
		opts.Palette = palette
	}
	return New(opts)
}

// Positive reports whether v is a finite number above zero. Totals and
// minimum sizes must satisfy it.
func Positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// MaxSegmentCount returns how many segments of at least minSize fit in the
// whole. An unusable minSize yields MinSegmentCount.
func MaxSegmentCount(minSize float64) int {
	if !Positive(minSize) {
		return MinSegmentCount
	}
	n := int(math.Floor(Whole/minSize + SumTolerance))
	if n < MinSegmentCount {
		return MinSegmentCount
	}
	return n
}

func clampCount(count int) int {
	if count < MinSegmentCount {
		return MinSegmentCount
	}
	return count
}

func equalSegments(count int, palette Palette) []Segment {
	count = clampCount(count)
	size := Whole / float64(count)
	segs := make([]Segment, count)
	for i := range segs {
		segs[i] = Segment{Size: size, Color: palette.At(i)}
	}
	return segs
}

// Len returns the number of segments.
func (p *Partition) Len() int {
	return len(p.segments)
}

// Segments returns a copy of the segments in order.
func (p *Partition) Segments() []Segment {
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)
	return out
}

// Sizes returns the segment sizes in order.
func (p *Partition) Sizes() []float64 {
	sizes := make([]float64, len(p.segments))
	for i, s := range p.segments {
		sizes[i] = s.Size
	}
	return sizes
}

// Sum returns the total of all segment sizes.
func (p *Partition) Sum() float64 {
	var sum float64
	for _, s := range p.segments {
		sum += s.Size
	}
	return sum
}

func (p *Partition) MinimumSize() float64 { return p.minSize }

// Check reports every violated invariant, or nil for a well formed partition.
func (p *Partition) Check() error {
	var problems []string
	if len(p.segments) < MinSegmentCount {
		problems = append(problems, fmt.Sprintf("%d segments, need at least %d", len(p.segments), MinSegmentCount))
	}
	if !Positive(p.minSize) {
		problems = append(problems, fmt.Sprintf("minimum size %v is not a positive number", p.minSize))
	}
	if sum := p.Sum(); math.IsNaN(sum) || math.Abs(sum-Whole) > SumTolerance {
		problems = append(problems, fmt.Sprintf("sizes sum to %.12g, want %g", sum, Whole))
	}
	for i, s := range p.segments {
		switch {
		case !Positive(s.Size):
			problems = append(problems, fmt.Sprintf("segment %d size %v is not positive", i, s.Size))
		case s.Size < p.minSize-SumTolerance:
			problems = append(problems, fmt.Sprintf("segment %d size %.6g below minimum %g", i, s.Size, p.minSize))
		}
	}
	if p.selected >= len(p.segments) {
		problems = append(problems, fmt.Sprintf("selection %d out of range", p.selected))
	}
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("invalid partition: %s", strings.Join(problems, "; "))
}
