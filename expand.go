package dscale

// ----------------------------------------------------------------------------
// Expansion

// An Expansion is an (additive, multiplicative) pair of paddings applied to
// a range before display. How the two components are applied depends on the
// kind of range, see Scale.Dimension.
type Expansion struct {
	// Add is the additive component in axis units.
	Add float64
	// Mul is the multiplicative component as a fraction of the range width.
	Mul float64
}

// DefaultExpansion is the expansion used by newly created position scales.
var DefaultExpansion = Expansion{Add: 0, Mul: 0.5}

// ExpandInterval pads i independently on both sides: the lower edge is moved
// down by loAdd plus loMul times the width of i, the upper edge up by hiAdd
// plus hiMul times the width. An unset interval stays unset.
func ExpandInterval(i Interval, loAdd, loMul, hiAdd, hiMul float64) Interval {
	if !i.Defined() {
		return i
	}
	w := i.Width()
	return Interval{
		Min: i.Min - loAdd - loMul*w,
		Max: i.Max + hiAdd + hiMul*w,
	}
}
