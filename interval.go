package dscale

import "math"

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// determined yet. An Interval doubles as the continuous range tracker of a
// Scale: Update widens it to cover the trained values.
type Interval struct {
	Min, Max float64
}

// UnsetInterval returns the interval with both edges undetermined.
func UnsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x. NaN values are ignored.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Defined reports whether both edges of i are determined.
func (i Interval) Defined() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max)
}

// Width returns the width of i, 0 for an unset interval.
func (i Interval) Width() float64 {
	if !i.Defined() {
		return 0
	}
	return i.Max - i.Min
}

// Union returns the smallest interval containing i and j. An unset
// interval is the identity of Union.
func (i Interval) Union(j Interval) Interval {
	u := i
	u.Update(j.Min, j.Max)
	return u
}

// Equal reports whether i and j agree on both edges with NaN edges
// considered equal.
func (i Interval) Equal(j Interval) bool {
	if math.IsNaN(i.Min) || math.IsNaN(j.Min) {
		if math.IsNaN(i.Min) != math.IsNaN(j.Min) {
			return false
		}
	} else if i.Min != j.Min {
		return false
	}
	if math.IsNaN(i.Max) || math.IsNaN(j.Max) {
		return math.IsNaN(i.Max) == math.IsNaN(j.Max)
	}
	return i.Max == j.Max
}
