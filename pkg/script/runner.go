package script

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/hashicorp/go-hclog"

	"github.com/OpenTraceLab/segbar/pkg/render"
	"github.com/OpenTraceLab/segbar/pkg/segment"
)

var (
	ErrPointerRange = errors.New("pointer index out of range")
	ErrSegmentRange = errors.New("segment index out of range")
	ErrCountRange   = errors.New("segment count out of range")
	ErrInvalidUnit  = errors.New("unknown unit type")
	ErrInvalidColor = errors.New("invalid color")
	ErrInvariant    = errors.New("partition invariant violated")
)

// Runner applies parsed statements to a partition in order. It validates
// indices before calling the model, so a bad script yields an error rather
// than a panic.
type Runner struct {
	Partition *segment.Partition
	Out       io.Writer
	Logger    hclog.Logger

	// Strict checks the partition invariants after every statement.
	Strict bool
	// BarWidth is the width of the text bar printed by "show".
	BarWidth int
	// FallbackTotal replaces a missing or non-positive currency total.
	FallbackTotal float64

	steps int
}

// NewRunner returns a runner with the stock bar width and fallback total.
func NewRunner(p *segment.Partition, out io.Writer, logger hclog.Logger) *Runner {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Runner{
		Partition:     p,
		Out:           out,
		Logger:        logger,
		BarWidth:      40,
		FallbackTotal: segment.DefaultTotalValue,
	}
}

// Steps returns the number of statements applied so far.
func (r *Runner) Steps() int { return r.steps }

// Run applies every statement of prog, stopping at the first error.
func (r *Runner) Run(prog *Program) error {
	for _, stmt := range prog.Statements {
		if err := r.Exec(stmt); err != nil {
			return fmt.Errorf("line %d: %s: %w", stmt.Pos.Line, stmt.Name(), err)
		}
	}
	return nil
}

// Exec applies a single statement.
func (r *Runner) Exec(stmt *Statement) error {
	p := r.Partition
	log := r.Logger.With("line", stmt.Pos.Line, "op", stmt.Name())

	switch {
	case stmt.Count != nil:
		if limit := segment.MaxSegmentCount(p.MinimumSize()); stmt.Count.N > limit {
			return fmt.Errorf("%w: %d (at most %d at minimum size %g)", ErrCountRange, stmt.Count.N, limit, p.MinimumSize())
		}
		p.SetSegmentCount(stmt.Count.N)
		log.Debug("segment count set", "requested", stmt.Count.N, "count", p.Len())

	case stmt.Resize != nil:
		if err := r.resize(stmt.Resize.Pointer, stmt.Resize.Delta); err != nil {
			return err
		}
		log.Debug("resized", "pointer", stmt.Resize.Pointer, "delta", stmt.Resize.Delta, "sizes", p.Sizes())

	case stmt.Drag != nil:
		d := stmt.Drag
		delta := segment.PercentDelta(d.Pixels, d.Width)
		if err := r.resize(d.Pointer, delta); err != nil {
			return err
		}
		log.Debug("dragged", "pointer", d.Pointer, "pixels", d.Pixels, "width", d.Width, "delta", delta)

	case stmt.Color != nil:
		idx := stmt.Color.Index
		if idx < 0 || idx >= p.Len() {
			return fmt.Errorf("%w: %d (have %d segments)", ErrSegmentRange, idx, p.Len())
		}
		c, err := segment.ParseColor(stmt.Color.Color)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidColor, err)
		}
		p.SetSegmentColor(idx, c)
		log.Debug("recolored", "segment", idx, "color", c)

	case stmt.Select != nil:
		idx := stmt.Select.Index
		if idx < 0 || idx >= p.Len() {
			return fmt.Errorf("%w: %d (have %d segments)", ErrSegmentRange, idx, p.Len())
		}
		p.Select(idx)

	case stmt.Click != nil:
		r.click(log, stmt.Click.Angle)

	case stmt.ClickDeg != nil:
		r.click(log, stmt.ClickDeg.Degrees*math.Pi/180)

	case stmt.Unit != nil:
		if err := r.unit(log, stmt.Unit); err != nil {
			return err
		}

	case stmt.Next:
		p.SelectNext()
	case stmt.Prev:
		p.SelectPrev()
	case stmt.Clear:
		p.ClearSelection()

	case stmt.Show:
		if r.Out != nil {
			if err := render.WriteSummary(r.Out, p.Snapshot(), r.BarWidth); err != nil {
				return fmt.Errorf("write summary: %w", err)
			}
		}

	case stmt.Check:
		if err := p.Check(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvariant, err)
		}
	}

	r.steps++
	if r.Strict && !stmt.Check {
		if err := p.Check(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvariant, err)
		}
	}
	return nil
}

func (r *Runner) resize(pointer int, delta float64) error {
	if !r.Partition.ValidPointer(pointer) {
		return fmt.Errorf("%w: %d (have %d pointers)", ErrPointerRange, pointer, r.Partition.Pointers())
	}
	r.Partition.ResizeAdjacent(pointer, delta)
	return nil
}

func (r *Runner) click(log hclog.Logger, angle float64) {
	angle = render.NormalizeAngle(angle)
	idx, ok := r.Partition.ResolveAngle(angle)
	if !ok {
		log.Warn("click did not resolve to a segment", "angle", angle)
		return
	}
	r.Partition.Select(idx)
	log.Debug("click selected segment", "angle", angle, "segment", idx)
}

func (r *Runner) unit(log hclog.Logger, stmt *UnitStmt) error {
	unit, ok := segment.ParseUnitType(stmt.Unit)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidUnit, stmt.Unit)
	}
	p := r.Partition
	if stmt.Total == nil {
		if unit == segment.UnitCurrency && !segment.Positive(p.TotalValue()) {
			log.Warn("currency total unusable, using fallback", "total", p.TotalValue(), "fallback", r.FallbackTotal)
			p.SetUnitTypeWithTotal(unit, r.FallbackTotal)
			return nil
		}
		p.SetUnitType(unit)
		return nil
	}
	total := *stmt.Total
	if !segment.Positive(total) {
		log.Warn("currency total unusable, using fallback", "total", total, "fallback", r.FallbackTotal)
		total = r.FallbackTotal
	}
	p.SetUnitTypeWithTotal(unit, total)
	return nil
}
