// Package data contains various data interfaces and prototypical
// implementations for series of positional values.
package data

import "github.com/vdobler/dscale"

// XYer wraps the Len and XY methods for a series of (x, y) value pairs.
// Either coordinate may be categorical or numeric.
type XYer interface {
	// Len returns the number of x, y pairs.
	Len() int

	// XY returns an x, y pair.
	XY(int) (x, y dscale.Value)
}

// XYs implements the XYer interface.
type XYs []struct{ X, Y dscale.Value }

func (d XYs) Len() int                     { return len(d) }
func (d XYs) XY(i int) (x, y dscale.Value) { return d[i].X, d[i].Y }

// LabeledYs builds an XYs with categorical x values and numeric y values.
// Both slices must have the same length.
func LabeledYs(labels []string, ys []float64) XYs {
	d := make(XYs, len(labels))
	for i, l := range labels {
		d[i].X = dscale.Categorical(l)
		d[i].Y = dscale.Numeric(ys[i])
	}
	return d
}

// XValues returns the x values of xy in data order.
func XValues(xy XYer) []dscale.Value {
	vs := make([]dscale.Value, xy.Len())
	for i := range vs {
		vs[i], _ = xy.XY(i)
	}
	return vs
}

// YValues returns the y values of xy in data order.
func YValues(xy XYer) []dscale.Value {
	vs := make([]dscale.Value, xy.Len())
	for i := range vs {
		_, vs[i] = xy.XY(i)
	}
	return vs
}
