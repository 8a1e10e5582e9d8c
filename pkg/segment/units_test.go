package segment

import "testing"

func TestFormatSizeRoundTrip(t *testing.T) {
	p := Initialize(4, nil)

	v, ok := p.FormatSize(0)
	if !ok || v.Kind != UnitPercent || v.Value != 25 {
		t.Fatalf("percent FormatSize = %+v,%v", v, ok)
	}

	p.SetUnitTypeWithTotal(UnitCurrency, 1000)
	v, _ = p.FormatSize(0)
	if v.Kind != UnitCurrency || v.Value != 250 {
		t.Fatalf("currency FormatSize = %+v, want 250", v)
	}
	if v.String() != "250.00 €" {
		t.Fatalf("currency String = %q", v.String())
	}

	p.SetUnitType(UnitPercent)
	v, _ = p.FormatSize(0)
	if v.String() != "25.0%" {
		t.Fatalf("percent String = %q, want 25.0%%", v.String())
	}
	if p.TotalValue() != 1000 {
		t.Fatalf("SetUnitType should keep the total, got %v", p.TotalValue())
	}
}

func TestFormatSizeFollowsResize(t *testing.T) {
	p := Initialize(4, nil)
	p.SetUnitTypeWithTotal(UnitCurrency, 2000)
	p.ResizeAdjacent(0, 10)
	v, _ := p.FormatSize(1)
	if v.String() != "300.00 €" {
		t.Fatalf("FormatSize(1) = %q, want 300.00 €", v.String())
	}
	if _, ok := p.FormatSize(4); ok {
		t.Fatalf("FormatSize past the end should fail")
	}
}

func TestParseUnitType(t *testing.T) {
	tests := map[string]UnitType{
		"percent":  UnitPercent,
		"%":        UnitPercent,
		"Currency": UnitCurrency,
		" money ":  UnitCurrency,
	}
	for in, want := range tests {
		got, ok := ParseUnitType(in)
		if !ok || got != want {
			t.Fatalf("ParseUnitType(%q) = %q,%v want %q", in, got, ok, want)
		}
	}
	if _, ok := ParseUnitType("yen"); ok {
		t.Fatalf("ParseUnitType(yen) should fail")
	}
}
