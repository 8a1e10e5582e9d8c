package segment

import (
	"fmt"
	"strings"
)

// UnitType selects how segment sizes are displayed.
type UnitType string

const (
	UnitPercent  UnitType = "percent"
	UnitCurrency UnitType = "currency"
)

// ParseUnitType accepts "percent"/"%" and "currency", case insensitive.
func ParseUnitType(s string) (UnitType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "percent", "%", "pct":
		return UnitPercent, true
	case "currency", "money":
		return UnitCurrency, true
	default:
		return "", false
	}
}

// DisplayValue is a segment size expressed in the current display unit.
// Adapters render Value with their own locale rules; String gives the
// widget's stock rendering.
type DisplayValue struct {
	Kind   UnitType
	Value  float64
	Symbol string
}

func (v DisplayValue) String() string {
	if v.Kind == UnitCurrency {
		if v.Symbol == "" {
			return fmt.Sprintf("%.2f", v.Value)
		}
		return fmt.Sprintf("%.2f %s", v.Value, v.Symbol)
	}
	return fmt.Sprintf("%.1f%%", v.Value)
}

// SetUnitType switches the display unit and keeps the current total.
func (p *Partition) SetUnitType(unit UnitType) {
	p.unitType = unit
}

// SetUnitTypeWithTotal switches the display unit and replaces the total used
// for currency display. The total is stored as given; callers validate it.
func (p *Partition) SetUnitTypeWithTotal(unit UnitType, total float64) {
	p.unitType = unit
	p.totalValue = total
}

func (p *Partition) UnitType() UnitType { return p.unitType }

func (p *Partition) TotalValue() float64 { return p.totalValue }

func (p *Partition) CurrencySymbol() string { return p.currencySymbol }

// FormatSize returns the size of segment index in the current display unit.
func (p *Partition) FormatSize(index int) (DisplayValue, bool) {
	if index < 0 || index >= len(p.segments) {
		return DisplayValue{}, false
	}
	size := p.segments[index].Size
	if p.unitType == UnitCurrency {
		return DisplayValue{
			Kind:   UnitCurrency,
			Value:  size / Whole * p.totalValue,
			Symbol: p.currencySymbol,
		}, true
	}
	return DisplayValue{Kind: UnitPercent, Value: size}, true
}
