package dscale

import (
	"reflect"
	"strconv"
	"testing"
)

var discreteTrainTests = []struct {
	batches [][]string
	drop    bool
	want    []string
}{
	// Without drop training is a set union in first-seen order,
	// independent of batch boundaries.
	{[][]string{{"a", "b"}}, false, []string{"a", "b"}},
	{[][]string{{"a", "b"}, {"b", "c"}}, false, []string{"a", "b", "c"}},
	{[][]string{{"b"}, {"a"}, {"b"}}, false, []string{"b", "a"}},
	{[][]string{{"a", "a", "b"}}, false, []string{"a", "b"}},

	// With drop the most recent batch wins: earlier labels missing from
	// the current batch disappear, survivors keep their order.
	{[][]string{{"a", "b", "c"}, {"c", "a"}}, true, []string{"a", "c"}},
	{[][]string{{"a", "b"}, {"c"}}, true, []string{"c"}},
	{[][]string{{"a", "b"}, {"b", "d", "a"}}, true, []string{"a", "b", "d"}},
}

func TestDiscreteRangeTrain(t *testing.T) {
	for i, tc := range discreteTrainTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			r := NewDiscreteRange()
			for _, batch := range tc.batches {
				r.Train(batch, tc.drop)
			}
			if !reflect.DeepEqual(r.Limits(), tc.want) {
				t.Errorf("trained %v (drop=%t): limits = %v, want %v",
					tc.batches, tc.drop, r.Limits(), tc.want)
			}
		})
	}
}

func TestDiscreteRangeHas(t *testing.T) {
	r := NewDiscreteRange()
	r.Train([]string{"a", "b"}, false)
	if !r.Has("a") || r.Has("z") {
		t.Errorf("Has(a)=%t Has(z)=%t, want true false", r.Has("a"), r.Has("z"))
	}
	r.Train([]string{"b"}, true)
	if r.Has("a") {
		t.Error("label a survived a dropping batch without it")
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
}
