package dscale

import (
	"image/color"
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how a Facet is drawn. Position scales never produce a
// guide, so there is no legend styling here.
type Style struct {
	Title       draw.TextStyle
	TitleHeight vg.Length

	Panel struct {
		Background color.Color
		PadX       vg.Length
		PadY       vg.Length
	}
	HStrip struct {
		Background color.Color
		Height     vg.Length
		draw.TextStyle
	}
	VStrip struct {
		Background color.Color
		Width      vg.Length
		draw.TextStyle
	}

	Grid struct {
		Major draw.LineStyle
		Minor draw.LineStyle
	}

	GeomDefault struct {
		Color     color.Color
		Size      vg.Length
		LineWidth vg.Length
	}

	XAxis struct {
		Title       draw.TextStyle
		TitleHeight vg.Length
		Line        draw.LineStyle
		Tick        struct {
			Label  draw.TextStyle
			Major  draw.LineStyle
			Minor  draw.LineStyle
			Length vg.Length
		}
	}

	YAxis struct {
		Title      draw.TextStyle
		TitleWidth vg.Length
		Line       draw.LineStyle
		Tick       struct {
			Label  draw.TextStyle
			Major  draw.LineStyle
			Minor  draw.LineStyle
			Length vg.Length
		}
	}
}

// DefaultStyle returns a Style which mimics the appearance of ggplot2.
// The baseFontSize is the font size for axis titles and strip labels, the
// title is a bit bigger, tick labels a bit smaller.
func DefaultStyle(baseFontSize vg.Length) (Style, error) {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	titleFont, err := vg.MakeFont("Helvetica-Bold", scale(baseFontSize, 1.2))
	if err != nil {
		return Style{}, errors.Wrap(err, "dscale: making title font")
	}
	baseFont, err := vg.MakeFont("Helvetica-Bold", baseFontSize)
	if err != nil {
		return Style{}, errors.Wrap(err, "dscale: making base font")
	}
	tickFont, err := vg.MakeFont("Helvetica", scale(baseFontSize, 1/1.2))
	if err != nil {
		return Style{}, errors.Wrap(err, "dscale: making tick font")
	}

	sty := Style{}
	sty.TitleHeight = scale(baseFontSize, 3)
	sty.Title.Color = color.Black
	sty.Title.Font = titleFont
	sty.Title.XAlign = draw.XCenter
	sty.Title.YAlign = draw.YTop

	sty.Panel.Background = color.Gray16{0xeeee}
	sty.Panel.PadX = scale(baseFontSize, 0.5)
	sty.Panel.PadY = sty.Panel.PadX

	sty.HStrip.Background = color.Gray16{0xcccc}
	sty.HStrip.Font = baseFont
	sty.HStrip.Height = scale(baseFontSize, 2)
	sty.HStrip.XAlign = draw.XCenter
	sty.HStrip.YAlign = -0.3

	sty.VStrip.Background = color.Gray16{0xcccc}
	sty.VStrip.Font = baseFont
	sty.VStrip.Width = scale(baseFontSize, 2.5)
	sty.VStrip.XAlign = draw.XCenter
	sty.VStrip.YAlign = -0.3
	sty.VStrip.Rotation = -math.Pi / 2

	sty.Grid.Major.Color = color.White
	sty.Grid.Major.Width = vg.Length(1)
	sty.Grid.Minor.Color = color.White
	sty.Grid.Minor.Width = vg.Length(0.5)

	sty.GeomDefault.Color = color.Gray16{0x2222}
	sty.GeomDefault.Size = vg.Length(3)
	sty.GeomDefault.LineWidth = vg.Length(1)

	sty.XAxis.Title.Color = color.Black
	sty.XAxis.Title.Font = baseFont
	sty.XAxis.Title.Rotation = 0
	sty.XAxis.Title.XAlign = draw.XCenter
	sty.XAxis.Title.YAlign = draw.YAlignment(0.3)
	sty.XAxis.TitleHeight = scale(baseFontSize, 2)

	sty.XAxis.Line.Width = 0
	sty.XAxis.Tick.Label.Color = color.Black
	sty.XAxis.Tick.Label.Font = tickFont
	sty.XAxis.Tick.Label.XAlign = draw.XCenter
	sty.XAxis.Tick.Label.YAlign = draw.YTop
	sty.XAxis.Tick.Major.Color = color.Gray16{0x1111}
	sty.XAxis.Tick.Major.Width = vg.Length(1)
	sty.XAxis.Tick.Length = vg.Length(5)

	sty.YAxis.Title.Color = color.Black
	sty.YAxis.Title.Font = baseFont
	sty.YAxis.Title.Rotation = math.Pi / 2
	sty.YAxis.Title.XAlign = draw.XCenter
	sty.YAxis.Title.YAlign = draw.YTop
	sty.YAxis.TitleWidth = scale(baseFontSize, 2)

	sty.YAxis.Line.Width = 0
	sty.YAxis.Tick.Label.Color = color.Black
	sty.YAxis.Tick.Label.Font = tickFont
	sty.YAxis.Tick.Label.XAlign = draw.XRight
	sty.YAxis.Tick.Label.YAlign = draw.YCenter
	sty.YAxis.Tick.Major.Color = color.Gray16{0x1111}
	sty.YAxis.Tick.Major.Width = vg.Length(1)
	sty.YAxis.Tick.Length = vg.Length(5)

	return sty, nil
}
