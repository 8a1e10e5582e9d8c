package ui

import (
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/OpenTraceLab/segbar/internal/logging"
	"github.com/OpenTraceLab/segbar/pkg/segment"
)

// StateSnapshot captures a copy of the state data for rendering without
// requiring the UI to hold locks while laying out widgets.
type StateSnapshot struct {
	Partition      segment.Snapshot
	CurrencySymbol string
	Status         string
	Logs           []string
	LastUpdated    time.Time
}

// AppState tracks the partition shared between the Gio event loop and the
// goroutines that log into the UI.
type AppState struct {
	mu sync.RWMutex

	part          *segment.Partition
	fallbackTotal float64
	status        string

	logs *logging.LineBuffer
	log  hclog.Logger

	lastUpdated time.Time
}

// NewState wraps part. logs receives the lines shown in the log pane and may
// be shared with an hclog sink.
func NewState(part *segment.Partition, logs *logging.LineBuffer, logger hclog.Logger) *AppState {
	if part == nil {
		part = segment.New(segment.DefaultOptions())
	}
	if logs == nil {
		logs = logging.NewLineBuffer(200)
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &AppState{
		part:          part,
		fallbackTotal: segment.DefaultTotalValue,
		status:        "Ready",
		logs:          logs,
		log:           logger,
		lastUpdated:   time.Now(),
	}
}

// Snapshot returns a copy of the mutable state for rendering.
func (s *AppState) Snapshot() StateSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return StateSnapshot{
		Partition:      s.part.Snapshot(),
		CurrencySymbol: s.part.CurrencySymbol(),
		Status:         s.status,
		Logs:           s.logs.Lines(),
		LastUpdated:    s.lastUpdated,
	}
}

// SetFallbackTotal sets the total used when the user enters an unusable one.
func (s *AppState) SetFallbackTotal(total float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if segment.Positive(total) {
		s.fallbackTotal = total
	}
}

// Resize moves pointer by percentDelta. Unknown pointers are rejected here so
// the model never sees them.
func (s *AppState) Resize(pointer int, percentDelta float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.part.ValidPointer(pointer) {
		return fmt.Errorf("resize: pointer %d out of range [0,%d)", pointer, s.part.Pointers())
	}
	s.part.ResizeAdjacent(pointer, percentDelta)
	s.touchLocked()
	return nil
}

// SetCount rebuilds the partition with n equal segments. n is capped at the
// number of segments that fit the minimum size.
func (s *AppState) SetCount(n int) {
	s.mu.Lock()
	if limit := segment.MaxSegmentCount(s.part.MinimumSize()); n > limit {
		n = limit
	}
	s.part.SetSegmentCount(n)
	count := s.part.Len()
	s.status = fmt.Sprintf("%d segments", count)
	s.touchLocked()
	s.mu.Unlock()

	s.log.Info("segment count changed", "count", count)
}

// AdjustCount changes the segment count by delta.
func (s *AppState) AdjustCount(delta int) {
	s.mu.RLock()
	n := s.part.Len() + delta
	s.mu.RUnlock()
	s.SetCount(n)
}

// SetColor recolors segment i.
func (s *AppState) SetColor(i int, c segment.Color) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= s.part.Len() {
		return fmt.Errorf("color: segment %d out of range [0,%d)", i, s.part.Len())
	}
	s.part.SetSegmentColor(i, c)
	s.touchLocked()
	return nil
}

// ColorSelected applies c to the highlighted segment, if any.
func (s *AppState) ColorSelected(c segment.Color) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.part.Selected()
	if !ok {
		return false
	}
	s.part.SetSegmentColor(idx, c)
	s.touchLocked()
	return true
}

// Select highlights segment i; out-of-range indices are ignored.
func (s *AppState) Select(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.part.Select(i)
	s.touchLocked()
}

// ClearSelection removes the highlight.
func (s *AppState) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.part.ClearSelection()
	s.touchLocked()
}

// SelectNext moves the highlight forward, wrapping at the end.
func (s *AppState) SelectNext() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.part.SelectNext()
	s.touchLocked()
}

// SelectPrev moves the highlight backward, wrapping at the start.
func (s *AppState) SelectPrev() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.part.SelectPrev()
	s.touchLocked()
}

// ClickAngle highlights the segment under angle and returns its index.
func (s *AppState) ClickAngle(angle float64) (int, bool) {
	s.mu.Lock()
	idx, ok := s.part.ResolveAngle(angle)
	if ok {
		s.part.Select(idx)
		s.touchLocked()
	}
	s.mu.Unlock()

	if ok {
		s.log.Debug("pie click", "angle", angle, "segment", idx)
	}
	return idx, ok
}

// ClickBar highlights the segment under a bar position given in percent.
func (s *AppState) ClickBar(percent float64) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, ok := s.part.ResolveBarPosition(percent)
	if ok {
		s.part.Select(idx)
		s.touchLocked()
	}
	return idx, ok
}

// SetUnit switches the display unit, keeping the current total.
func (s *AppState) SetUnit(unit segment.UnitType) {
	s.mu.Lock()
	if unit == segment.UnitCurrency && !segment.Positive(s.part.TotalValue()) {
		s.part.SetUnitTypeWithTotal(unit, s.fallbackTotal)
	} else {
		s.part.SetUnitType(unit)
	}
	s.touchLocked()
	s.mu.Unlock()

	s.log.Info("unit changed", "unit", unit)
}

// UnitType returns the active display unit.
func (s *AppState) UnitType() segment.UnitType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.part.UnitType()
}

// SetTotal sets the currency total and switches the display to currency.
// An unusable value is replaced by the fallback total and reported through
// the returned error.
func (s *AppState) SetTotal(total float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if !segment.Positive(total) {
		err = fmt.Errorf("total %v must be a positive number, using %v", total, s.fallbackTotal)
		total = s.fallbackTotal
	}
	s.part.SetUnitTypeWithTotal(segment.UnitCurrency, total)
	s.touchLocked()
	return err
}

// SetStatus updates the user-facing status message.
func (s *AppState) SetStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.lastUpdated = time.Now()
}

// AppendLog appends a line to the log pane.
func (s *AppState) AppendLog(msg string) {
	s.logs.Append(msg)
	s.mu.Lock()
	s.lastUpdated = time.Now()
	s.mu.Unlock()
}

func (s *AppState) touchLocked() {
	s.lastUpdated = time.Now()
}
