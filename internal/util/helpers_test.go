package util

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct{ v, lo, hi, want int }{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, tc := range cases {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Fatalf("Clamp(%d, %d, %d) = %d, want %d", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
	if got := ClampFloat(1.5, 0, 1); got != 1 {
		t.Fatalf("ClampFloat = %v", got)
	}
	if got := ClampFloat(-0.5, 0, 1); got != 0 {
		t.Fatalf("ClampFloat = %v", got)
	}
}
