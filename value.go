package dscale

import (
	"math"
	"strconv"
)

// ----------------------------------------------------------------------------
// Value

// A Value is a single observation on a positional axis. It is either a
// categorical label or a continuous number; the distinction is made once,
// at construction time.
type Value struct {
	label    string
	num      float64
	discrete bool
}

// Categorical returns the categorical Value label.
func Categorical(label string) Value {
	return Value{label: label, num: math.NaN(), discrete: true}
}

// Numeric returns the continuous Value x.
func Numeric(x float64) Value {
	return Value{num: x}
}

// Discrete reports whether v is categorical.
func (v Value) Discrete() bool { return v.discrete }

// Label returns the categorical label of v. It is empty for numeric values.
func (v Value) Label() string { return v.label }

// Num returns the numeric value of v. It is NaN for categorical values.
func (v Value) Num() float64 { return v.num }

func (v Value) String() string {
	if v.discrete {
		return v.label
	}
	return strconv.FormatFloat(v.num, 'g', -1, 64)
}

// Labels turns a list of categorical labels into Values.
func Labels(labels ...string) []Value {
	vs := make([]Value, len(labels))
	for i, l := range labels {
		vs[i] = Categorical(l)
	}
	return vs
}

// Numbers turns a list of continuous values into Values.
func Numbers(xs ...float64) []Value {
	vs := make([]Value, len(xs))
	for i, x := range xs {
		vs[i] = Numeric(x)
	}
	return vs
}

// split separates vs into the categorical labels and the numeric values.
func split(vs []Value) (labels []string, nums []float64) {
	for _, v := range vs {
		if v.discrete {
			labels = append(labels, v.label)
		} else {
			nums = append(nums, v.num)
		}
	}
	return labels, nums
}
