// Package geom provides basic geometric objects to display data in a plot.
//
// The overall concept is loosely based on ggplot2's geoms. The geoms here
// are the ones typically drawn on a discrete position scale: jittered
// points and bars sitting on categorical slots. Values without an axis
// position, e.g. labels cut away by explicit scale limits, are skipped
// silently.
package geom

import (
	"image/color"
	"math/rand"

	"github.com/vdobler/dscale"
	"github.com/vdobler/dscale/data"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// BoxStyle describes how a filled, bordered box is drawn.
type BoxStyle struct {
	Fill   color.Color
	Border draw.LineStyle
}

// ----------------------------------------------------------------------------
// Point

// Point draws points / symbols. With a nonzero JitterWidth points with a
// categorical x value are spread uniformly around their axis position;
// the jittered positions are numeric values on the categorical axis and
// train the continuous range of the x scale.
type Point struct {
	XY data.XYer

	// JitterWidth is the half width of the jitter in axis units,
	// 0 disables jittering.
	JitterWidth float64

	// Seed makes the jitter reproducible.
	Seed int64

	Default draw.GlyphStyle

	adjusted []dscale.Value
}

// XValues implements dscale.ValueRanger.
func (p *Point) XValues() []dscale.Value { return data.XValues(p.XY) }

// YValues implements dscale.ValueRanger.
func (p *Point) YValues() []dscale.Value { return data.YValues(p.XY) }

// AdjustedX implements dscale.Adjuster: it replaces each mappable
// categorical x value by its jittered numeric position. The result is
// computed once and reused during drawing. Without jittering there is
// nothing to adjust.
func (p *Point) AdjustedX(xs *dscale.Scale) []dscale.Value {
	if p.JitterWidth == 0 {
		return nil
	}
	if p.adjusted != nil {
		return p.adjusted
	}

	rnd := rand.New(rand.NewSource(p.Seed))
	p.adjusted = make([]dscale.Value, p.XY.Len())
	for i := range p.adjusted {
		x, _ := p.XY.XY(i)
		p.adjusted[i] = x
		if !x.Discrete() {
			continue
		}
		pos, ok := xs.Map(x)
		if !ok {
			continue // stays categorical and is dropped when drawn
		}
		off := (2*rnd.Float64() - 1) * p.JitterWidth
		p.adjusted[i] = dscale.Numeric(pos + off)
	}
	return p.adjusted
}

// Draw implements dscale.Geom.
func (p *Point) Draw(panel *dscale.Panel) {
	sty := p.Default
	if sty.Color == nil {
		sty.Color = panel.Style.GeomDefault.Color
	}
	if sty.Radius == 0 {
		sty.Radius = panel.Style.GeomDefault.Size
	}
	if sty.Shape == nil {
		sty.Shape = draw.CircleGlyph{}
	}

	adjusted := p.adjusted
	if p.JitterWidth > 0 && adjusted == nil {
		adjusted = p.AdjustedX(panel.X)
	}

	for i := 0; i < p.XY.Len(); i++ {
		x, y := p.XY.XY(i)
		if adjusted != nil {
			x = adjusted[i]
		}
		center, ok := panel.MapXY(x, y)
		if !ok {
			continue
		}
		panel.Canvas.DrawGlyph(sty, center)
	}
}

// ----------------------------------------------------------------------------
// Bar

// Bar draws one bar per data point, standing (or hanging) from y=0 and
// centered at the x position. On a discrete axis adjacent positions are
// one unit apart, so Width is effectively the filled fraction of a slot.
type Bar struct {
	XY data.XYer

	// Width of a bar in axis units. Defaults to 0.9.
	Width float64

	Default BoxStyle
}

func (b *Bar) width() float64 {
	if b.Width == 0 {
		return 0.9
	}
	return b.Width
}

// XValues implements dscale.ValueRanger.
func (b *Bar) XValues() []dscale.Value { return data.XValues(b.XY) }

// YValues implements dscale.ValueRanger. Bars hang from 0, so 0 is part
// of the data range.
func (b *Bar) YValues() []dscale.Value {
	return append(data.YValues(b.XY), dscale.Numeric(0))
}

// AdjustedX implements dscale.Adjuster: the outer bar edges are numeric
// positions on the categorical axis and train the continuous range, so
// extra wide bars widen the covered dimension.
func (b *Bar) AdjustedX(xs *dscale.Scale) []dscale.Value {
	half := b.width() / 2
	var edges []dscale.Value
	for i := 0; i < b.XY.Len(); i++ {
		x, _ := b.XY.XY(i)
		pos, ok := xs.Map(x)
		if !ok {
			continue
		}
		edges = append(edges,
			dscale.Numeric(pos-half), dscale.Numeric(pos+half))
	}
	return edges
}

// Draw implements dscale.Geom.
func (b *Bar) Draw(panel *dscale.Panel) {
	fill := b.Default.Fill
	border := b.Default.Border
	if fill == nil && border.Color == nil {
		fill = panel.Style.GeomDefault.Color
	}

	half := b.width() / 2
	for i := 0; i < b.XY.Len(); i++ {
		x, y := b.XY.XY(i)
		pos, ok := panel.X.Map(x)
		if !ok {
			continue
		}
		min, ok := panel.MapXY(dscale.Numeric(pos-half), dscale.Numeric(0))
		if !ok {
			continue
		}
		max, ok := panel.MapXY(dscale.Numeric(pos+half), y)
		if !ok {
			continue
		}
		rect := canonical(vg.Rectangle{Min: min, Max: max})

		if fill != nil {
			panel.Canvas.SetColor(fill)
			panel.Canvas.Fill(rect.Path())
		}
		if border.Color != nil && border.Width > 0 {
			panel.Canvas.SetColor(border.Color)
			panel.Canvas.SetLineWidth(border.Width)
			panel.Canvas.SetLineDash(border.Dashes, border.DashOffs)
			panel.Canvas.Stroke(rect.Path())
		}
	}
}

// canonical returns r with Min and Max actually being the lower left and
// upper right corner.
func canonical(r vg.Rectangle) vg.Rectangle {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}
