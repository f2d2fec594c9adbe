package game

import "testing"

func TestClamp(t *testing.T) {
	if got := clamp(5, 1, 10); got != 5 {
		t.Errorf("clamp(5,1,10) = %g", got)
	}
	if got := clamp(0, 1, 10); got != 1 {
		t.Errorf("clamp(0,1,10) = %g", got)
	}
	if got := clamp(11, 1, 10); got != 10 {
		t.Errorf("clamp(11,1,10) = %g", got)
	}
}

func TestButtonContains(t *testing.T) {
	b := button{x: 10, y: 20, w: 100, h: 40}
	cases := []struct {
		mx, my int
		want   bool
	}{
		{10, 20, true},
		{110, 60, true},
		{60, 40, true},
		{9, 40, false},
		{111, 40, false},
		{60, 19, false},
		{60, 61, false},
	}
	for _, tc := range cases {
		if got := b.contains(tc.mx, tc.my); got != tc.want {
			t.Errorf("contains(%d,%d) = %v, want %v", tc.mx, tc.my, got, tc.want)
		}
	}
}

func TestSpinnerButtonsInsideRow(t *testing.T) {
	s := newSpinner(100, 50, "test", 1, 0, 10, nil, nil, nil)
	if s.minus.x <= 100 || s.plus.x <= s.minus.x {
		t.Fatalf("buttons out of order: minus.x=%d plus.x=%d", s.minus.x, s.plus.x)
	}
	if s.plus.x+s.plus.w > 100+spinnerWidth {
		t.Fatalf("plus button overflows row: %d > %d", s.plus.x+s.plus.w, 100+spinnerWidth)
	}
}
