package utils

import (
	"math"
	"testing"
)

func TestApproach(t *testing.T) {
	tests := []struct {
		gap, speed, want float64
	}{
		{10, 1, 1},
		{-10, 1, -1},
		{0.5, 2, 0.5},
		{-1.5, 2, -1.5},
		{0, 3, 0},
	}
	for _, tt := range tests {
		if got := Approach(tt.gap, tt.speed); got != tt.want {
			t.Errorf("Approach(%v, %v) = %v, want %v", tt.gap, tt.speed, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	ux, uy, l := Normalize(3, 4)
	if l != 5 || math.Abs(ux-0.6) > 1e-9 || math.Abs(uy-0.8) > 1e-9 {
		t.Errorf("Normalize(3,4) = %v %v %v", ux, uy, l)
	}
	if ux, uy, l := Normalize(0, 0); ux != 0 || uy != 0 || l != 0 {
		t.Errorf("Normalize(0,0) = %v %v %v", ux, uy, l)
	}
}

func TestToRoman(t *testing.T) {
	tests := map[int]string{
		0:    "",
		-3:   "",
		1:    "I",
		3:    "III",
		4:    "IV",
		9:    "IX",
		14:   "XIV",
		40:   "XL",
		1994: "MCMXCIV",
	}
	for n, want := range tests {
		if got := ToRoman(n); got != want {
			t.Errorf("ToRoman(%d) = %q, want %q", n, got, want)
		}
	}
}
