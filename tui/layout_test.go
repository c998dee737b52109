package tui

import "testing"

func segLengths(segs []Segment) []int {
	out := make([]int, len(segs))
	for i, s := range segs {
		out[i] = s.Length
	}
	return out
}

func assertSegments(t *testing.T, got []Segment, want []Segment) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d segments, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestSplitFixed(t *testing.T) {
	tests := []struct {
		name        string
		length      int
		constraints []Constraint
		expected    []Segment
	}{
		{
			name:        "Fits with slack unused",
			length:      20,
			constraints: []Constraint{Fixed(4), Fixed(4)},
			expected:    []Segment{{0, 4}, {4, 4}},
		},
		{
			name:        "Greedy left to right under deficit",
			length:      7,
			constraints: []Constraint{Fixed(0), Fixed(4), Fixed(1), Fixed(4)},
			expected:    []Segment{{0, 0}, {0, 4}, {4, 1}, {5, 2}},
		},
		{
			name:        "Trailing constraints starve",
			length:      7,
			constraints: []Constraint{Fixed(3), Fixed(4), Fixed(1), Fixed(4)},
			expected:    []Segment{{0, 3}, {3, 4}, {7, 0}, {7, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.length, tt.constraints, Exact)
			assertSegments(t, got, tt.expected)
		})
	}
}

func TestSplitBoundedDeficit(t *testing.T) {
	tests := []struct {
		name        string
		length      int
		constraints []Constraint
		expected    []int
	}{
		{
			name:        "Two floors share the deficit",
			length:      7,
			constraints: []Constraint{AtLeast(4), AtLeast(4)},
			expected:    []int{4, 3},
		},
		{
			name:        "Two ceilings share the deficit",
			length:      7,
			constraints: []Constraint{AtMost(4), AtMost(4)},
			expected:    []int{4, 3},
		},
		{
			name:        "Floors win over a fixed spacer",
			length:      7,
			constraints: []Constraint{Fixed(0), AtLeast(4), Fixed(1), AtLeast(4)},
			expected:    []int{0, 4, 0, 3},
		},
		{
			name:        "Floors never expand into slack",
			length:      20,
			constraints: []Constraint{AtLeast(4), AtLeast(4)},
			expected:    []int{4, 4},
		},
		{
			name:        "Ceilings never expand into slack",
			length:      20,
			constraints: []Constraint{AtMost(4), AtMost(4)},
			expected:    []int{4, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := segLengths(Split(tt.length, tt.constraints, Exact))
			for i, want := range tt.expected {
				if got[i] != want {
					t.Errorf("length %d: expected %d, got %d (all: %v)", i, want, got[i], got)
				}
			}
		})
	}
}

func TestSplitBoundaryRounding(t *testing.T) {
	tests := []struct {
		name        string
		length      int
		constraints []Constraint
		expected    []int
	}{
		{
			// Positions 0, 2.1, 4.2 all round down: neither column gets the
			// extra cell, the leftover stays unused
			name:        "Two thirty percent columns over seven",
			length:      7,
			constraints: []Constraint{Percent(30), Percent(30)},
			expected:    []int{2, 2},
		},
		{
			// Positions 3.0, 5.1, 6.1, 7.2 round to 3, 5, 6, 7
			name:        "Percent after fixed prefix under deficit",
			length:      7,
			constraints: []Constraint{Fixed(3), Percent(30), Fixed(1), Percent(30)},
			expected:    []int{3, 2, 1, 1},
		},
		{
			// Positions 6.67, 7.67, 14.33 round to 7, 8, 14
			name:        "Thirds with spacer",
			length:      20,
			constraints: []Constraint{Fixed(0), Ratio(1, 3), Fixed(1), Ratio(1, 3)},
			expected:    []int{0, 7, 1, 6},
		},
		{
			// Positions 2.33, 3.33, 5.67 round to 2, 3, 6
			name:        "Thirds over seven",
			length:      7,
			constraints: []Constraint{Fixed(0), Ratio(1, 3), Fixed(1), Ratio(1, 3)},
			expected:    []int{0, 2, 1, 3},
		},
		{
			name:        "Half rounds to even",
			length:      7,
			constraints: []Constraint{Ratio(1, 2), Ratio(1, 2)},
			expected:    []int{4, 3}, // boundary 3.5 rounds to 4
		},
		{
			name:        "Zero denominator yields zero",
			length:      10,
			constraints: []Constraint{Ratio(1, 0), Fixed(4)},
			expected:    []int{0, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := segLengths(Split(tt.length, tt.constraints, Exact))
			for i, want := range tt.expected {
				if got[i] != want {
					t.Errorf("length %d: expected %d, got %d (all: %v)", i, want, got[i], got)
				}
			}
		})
	}
}

func TestSplitDistribution(t *testing.T) {
	constraints := []Constraint{AtLeast(10), AtLeast(10), AtLeast(1)}

	t.Run("Exact leaves slack unused", func(t *testing.T) {
		got := segLengths(Split(62, constraints, Exact))
		want := []int{10, 10, 1}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("length %d: expected %d, got %d", i, want[i], got[i])
			}
		}
	})

	t.Run("LastTakesRemainder assigns all slack to the final segment", func(t *testing.T) {
		got := segLengths(Split(62, constraints, LastTakesRemainder))
		want := []int{10, 10, 42}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("length %d: expected %d, got %d", i, want[i], got[i])
			}
		}
	})

	t.Run("EvenDistribution keeps equal constraints within one unit", func(t *testing.T) {
		got := segLengths(Split(62, []Constraint{AtLeast(10), AtLeast(10), AtLeast(10)}, EvenDistribution))
		want := []int{21, 21, 20}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("length %d: expected %d, got %d", i, want[i], got[i])
			}
		}
	})
}

func TestSplitFill(t *testing.T) {
	t.Run("Fill consumes the remainder", func(t *testing.T) {
		got := segLengths(Split(10, []Constraint{Fixed(2), Fill(), Fixed(3)}, Exact))
		want := []int{2, 5, 3}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("length %d: expected %d, got %d", i, want[i], got[i])
			}
		}
	})

	t.Run("Fill collapses to zero under deficit", func(t *testing.T) {
		got := segLengths(Split(4, []Constraint{Fixed(2), Fill(), Fixed(3)}, Exact))
		want := []int{2, 0, 2}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("length %d: expected %d, got %d", i, want[i], got[i])
			}
		}
	})

	t.Run("Multiple fills share equally", func(t *testing.T) {
		got := segLengths(Split(10, []Constraint{Fill(), Fixed(4), Fill()}, Exact))
		want := []int{3, 4, 3}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("length %d: expected %d, got %d", i, want[i], got[i])
			}
		}
	})
}

func TestSplitTotalNeverExceedsExtent(t *testing.T) {
	cases := [][]Constraint{
		{Fixed(5), Fixed(5), Fixed(5)},
		{Percent(100), Percent(100)},
		{AtLeast(9), Fixed(3), AtMost(9)},
		{Ratio(2, 3), Ratio(2, 3), Fixed(1)},
		{Fill(), Percent(50), Fixed(2)},
		{},
	}
	lengths := []int{0, 1, 7, 10, 100}

	for _, constraints := range cases {
		for _, l := range lengths {
			for _, policy := range []Distribution{Exact, LastTakesRemainder, EvenDistribution} {
				segs := Split(l, constraints, policy)
				if len(segs) != len(constraints) {
					t.Fatalf("expected %d segments, got %d", len(constraints), len(segs))
				}
				sum := 0
				offset := 0
				for i, s := range segs {
					if s.Length < 0 {
						t.Errorf("L=%d %v: negative segment %d: %+v", l, constraints, i, s)
					}
					if s.Offset != offset {
						t.Errorf("L=%d %v: segment %d not contiguous: %+v", l, constraints, i, s)
					}
					offset += s.Length
					sum += s.Length
				}
				if sum > l {
					t.Errorf("L=%d %v policy=%d: total %d exceeds extent", l, constraints, policy, sum)
				}
			}
		}
	}
}

func TestSplitZeroAndEmpty(t *testing.T) {
	if got := Split(0, []Constraint{Fixed(5), Percent(50)}, Exact); got[0].Length != 0 || got[1].Length != 0 {
		t.Errorf("expected zero lengths over zero extent, got %v", got)
	}
	if got := Split(10, nil, Exact); len(got) != 0 {
		t.Errorf("expected no segments for no constraints, got %v", got)
	}
	if got := Split(-5, []Constraint{Fixed(3)}, Exact); got[0].Length != 0 {
		t.Errorf("expected zero length over negative extent, got %v", got)
	}
}

func TestPercentOutOfRangePanics(t *testing.T) {
	tests := []struct {
		name  string
		value int
	}{
		{"Above hundred", 110},
		{"Negative", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected Percent(%d) to panic", tt.value)
				}
			}()
			Percent(tt.value)
		})
	}
}
