package dscale

import (
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Partitioner

// A Partitioner turns a continuous value into a categorical Value so that
// continuous data can be plotted on a discrete position scale. The learned
// range is split into equally wide partitions named by their interval.
type Partitioner struct {
	Partitions int
	Range      Interval
}

// NewPartitioner returns a Partitioner splitting the learned range into n
// partitions.
func NewPartitioner(n int) *Partitioner {
	return &Partitioner{Partitions: n, Range: UnsetInterval()}
}

// Learn widens the partitioned range to cover x.
func (p *Partitioner) Learn(x ...float64) { p.Range.Update(x...) }

// Partition returns the categorical label of the partition x falls into.
// Values outside the learned range fall into the two unbounded partitions.
func (p *Partitioner) Partition(x float64) Value {
	min, max := p.Range.Min, p.Range.Max

	if x < min {
		return Categorical(fmt.Sprintf("(-∞, %g)", min))
	}
	if x >= max {
		return Categorical(fmt.Sprintf("[%g, ∞)", max))
	}

	w := (max - min) / float64(p.Partitions)
	k := math.Floor((x - min) / w)
	return Categorical(fmt.Sprintf("[%g, %g)", min+k*w, min+(k+1)*w))
}
