package dscale

import (
	"strconv"
	"testing"
)

func TestPartitioner(t *testing.T) {
	p := NewPartitioner(4)
	p.Learn(0, 8)

	tests := []struct {
		x    float64
		want string
	}{
		{-1, "(-∞, 0)"},
		{0, "[0, 2)"},
		{1.9, "[0, 2)"},
		{2, "[2, 4)"},
		{7.9, "[6, 8)"},
		{8, "[8, ∞)"},
		{100, "[8, ∞)"},
	}
	for i, tc := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := p.Partition(tc.x)
			if !got.Discrete() || got.Label() != tc.want {
				t.Errorf("Partition(%g) = %q, want %q",
					tc.x, got.Label(), tc.want)
			}
		})
	}
}

func TestPartitionerFeedsDiscreteScale(t *testing.T) {
	p := NewPartitioner(2)
	xs := []float64{1, 2, 3, 4}
	p.Learn(xs...)

	s := NewXScale()
	for _, x := range xs {
		s.Train([]Value{p.Partition(x)})
	}

	want := []string{"[1, 2.5)", "[2.5, 4)", "[4, ∞)"}
	got := s.Levels()
	if len(got) != len(want) {
		t.Fatalf("levels = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("level %d = %q, want %q", i, got[i], want[i])
		}
	}
}
