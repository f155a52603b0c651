package internal

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want sdl.Color
	}{
		{"#FF0000", sdl.Color{R: 255, G: 0, B: 0, A: 255}},
		{"336699", sdl.Color{R: 0x33, G: 0x66, B: 0x99, A: 255}},
		{"  #ffffff ", sdl.Color{R: 255, G: 255, B: 255, A: 255}},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if err != nil {
			t.Fatalf("ParseHexColor(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseHexColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseHexColorRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "#FFF", "#GGGGGG", "not a color"} {
		if _, err := ParseHexColor(in); err == nil {
			t.Fatalf("ParseHexColor(%q) must fail", in)
		}
	}
}

func TestHexToColor(t *testing.T) {
	if got := HexToColor(0x112233); got != (sdl.Color{R: 0x11, G: 0x22, B: 0x33, A: 255}) {
		t.Fatalf("HexToColor(0x112233) = %+v", got)
	}
}
