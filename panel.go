package dscale

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Panel

// A Geom draws data onto a panel.
type Geom interface {
	Draw(p *Panel)
}

// A ValueRanger exposes the raw values a geom places on the two position
// scales. Every geom which wants its data to be covered by the axes
// implements it; the facet layer trains the panel's scales from it.
type ValueRanger interface {
	XValues() []Value
	YValues() []Value
}

// An Adjuster turns categorical x values into adjusted numeric positions,
// e.g. by jittering. The adjusted values are trained into the continuous
// range of the x scale in a second training phase, after the discrete
// range is complete.
type Adjuster interface {
	AdjustedX(x *Scale) []Value
}

// A Panel represents one panel in a faceted plot. It owns its two position
// scales; panels with free axes get independent clones, otherwise the
// scales are shared along a row or column.
type Panel struct {
	Title  string
	Geoms  []Geom
	Canvas draw.Canvas
	X, Y   *Scale

	// Style is the style of the enclosing facet, set during drawing.
	// Geoms read their defaults from it.
	Style *Style
}

// MapXY maps the data coordinates (x, y) to a canvas point. The second
// return is false if either value has no axis position; such points are
// not drawn.
func (p *Panel) MapXY(x, y Value) (vg.Point, bool) {
	xv, ok := p.X.Map(x)
	if !ok {
		return vg.Point{}, false
	}
	yv, ok := p.Y.Map(y)
	if !ok {
		return vg.Point{}, false
	}

	cx := Interval{float64(p.Canvas.Min.X), float64(p.Canvas.Max.X)}
	cy := Interval{float64(p.Canvas.Min.Y), float64(p.Canvas.Max.Y)}
	return vg.Point{
		X: vg.Length(LinearTrans.Trans(p.X.Range, cx, xv)),
		Y: vg.Length(LinearTrans.Trans(p.Y.Range, cy, yv)),
	}, true
}

// mapX maps an already resolved axis position onto the canvas.
func (p *Panel) mapX(x float64) vg.Length {
	cx := Interval{float64(p.Canvas.Min.X), float64(p.Canvas.Max.X)}
	return vg.Length(LinearTrans.Trans(p.X.Range, cx, x))
}

func (p *Panel) mapY(y float64) vg.Length {
	cy := Interval{float64(p.Canvas.Min.Y), float64(p.Canvas.Max.Y)}
	return vg.Length(LinearTrans.Trans(p.Y.Range, cy, y))
}

// InRangeXY reports whether the mapped position of (x, y) lies in the
// resolved ranges of the panel's scales.
func (p *Panel) InRangeXY(x, y Value) bool {
	xv, ok := p.X.Map(x)
	if !ok {
		return false
	}
	yv, ok := p.Y.Map(y)
	if !ok {
		return false
	}
	return xv >= p.X.Range.Min && xv <= p.X.Range.Max &&
		yv >= p.Y.Range.Min && yv <= p.Y.Range.Max
}
