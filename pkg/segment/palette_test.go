package segment

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "#ffb6c1", want: "#FFB6C1"},
		{in: "87CEFA", want: "#87CEFA"},
		{in: "#abc", want: "#AABBCC"},
		{in: "#12345", wantErr: true},
		{in: "#GGGGGG", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseColor(%q) = %q, want error", tt.in, got)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("ParseColor(%q) = %q,%v want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestColorNRGBA(t *testing.T) {
	got := Color("#FF6347").NRGBA()
	want := color.NRGBA{R: 0xFF, G: 0x63, B: 0x47, A: 0xFF}
	if got != want {
		t.Fatalf("NRGBA = %+v, want %+v", got, want)
	}
	if black := Color("tomato").NRGBA(); black != (color.NRGBA{A: 255}) {
		t.Fatalf("malformed color = %+v, want opaque black", black)
	}
}

func TestDefaultPaletteIsACopy(t *testing.T) {
	p := DefaultPalette()
	if len(p) != 10 {
		t.Fatalf("default palette has %d entries, want 10", len(p))
	}
	p[0] = "#000000"
	if defaultPalette[0] == "#000000" {
		t.Fatalf("DefaultPalette leaked the package palette")
	}
	if got := Palette(nil).At(11); got != defaultPalette[1] {
		t.Fatalf("empty palette At(11) = %s", got)
	}
}
