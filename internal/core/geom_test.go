package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 9, 7)

	if r.Right() != 11 {
		t.Errorf("Right() = %d, want 11", r.Right())
	}
	if r.Bottom() != 10 {
		t.Errorf("Bottom() = %d, want 10", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want int
	}{
		{3, 0, 4, 3},  // within range
		{-1, 0, 4, 0}, // below min
		{7, 0, 4, 4},  // above max
		{0, 0, 4, 0},  // at min
		{4, 0, 4, 4},  // at max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tc.val, tc.min, tc.max, got, tc.want)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(2, 9) != 2 || Min(9, 2) != 2 {
		t.Error("Min should return the smaller value")
	}
	if Max(2, 9) != 9 || Max(9, 2) != 9 {
		t.Error("Max should return the larger value")
	}
}
