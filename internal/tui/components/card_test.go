package components

import "testing"

func TestLayoutRowSumsExactly(t *testing.T) {
	cases := []struct {
		total, n int
	}{
		{100, 3},
		{101, 4},
		{7, 2},
		{80, 1},
	}
	for _, tc := range cases {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tc.total, tc.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tc.total, tc.n, sum)
		}
		for i := 1; i < len(widths); i++ {
			if widths[i] > widths[i-1] {
				t.Errorf("LayoutRow(%d, %d): width %d grows at index %d", tc.total, tc.n, widths[i], i)
			}
		}
	}

	if got := LayoutRow(100, 0); got != nil {
		t.Fatalf("LayoutRow with n=0 = %v, want nil", got)
	}
}

func TestSparklineEmptyAndFlat(t *testing.T) {
	if got := Sparkline(nil, "#FFFFFF"); got != "" {
		t.Fatalf("empty sparkline = %q", got)
	}
	// All zeros must not divide by zero.
	if got := Sparkline([]float64{0, 0, 0}, "#FFFFFF"); got == "" {
		t.Fatal("flat sparkline rendered empty")
	}
}
