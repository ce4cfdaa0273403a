package dscale

import (
	"math"
	"strconv"
	"testing"
)

var nan = math.NaN()

var intervalUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{Interval{nan, nan}, nan, Interval{nan, nan}},
	{Interval{nan, nan}, 5, Interval{5, 5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervalUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !got.Equal(tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

var intervalUnionTests = []struct {
	a, b, want Interval
}{
	{Interval{1, 3}, Interval{2, 5}, Interval{1, 5}},
	{Interval{1, 3}, Interval{4, 5}, Interval{1, 5}},
	{Interval{nan, nan}, Interval{2, 5}, Interval{2, 5}},
	{Interval{2, 5}, Interval{nan, nan}, Interval{2, 5}},
	{Interval{nan, nan}, Interval{nan, nan}, Interval{nan, nan}},
}

func TestIntervalUnion(t *testing.T) {
	for i, tc := range intervalUnionTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := tc.a.Union(tc.b); !got.Equal(tc.want) {
				t.Errorf("%v union %v = %v, want %v",
					tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestIntervalDefined(t *testing.T) {
	if UnsetInterval().Defined() {
		t.Error("unset interval reported as defined")
	}
	if !(Interval{1, 2}).Defined() {
		t.Error("set interval reported as undefined")
	}
}
