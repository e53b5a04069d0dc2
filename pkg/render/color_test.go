package render

import (
	"image/color"
	"testing"
)

func TestDarkenColor(t *testing.T) {
	tests := []struct {
		in, want color.RGBA
	}{
		{color.RGBA{70, 130, 180, 220}, color.RGBA{35, 65, 90, 220}},
		{color.RGBA{255, 255, 255, 255}, color.RGBA{127, 127, 127, 255}},
		{color.RGBA{0, 0, 0, 0}, color.RGBA{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		if got := DarkenColor(tt.in); got != tt.want {
			t.Errorf("DarkenColor(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
