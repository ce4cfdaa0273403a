package dscale

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Facet

// Facet describes a faceted plot: a grid of panels whose x and y axes are
// discrete position scales. All panels of a column share one x scale and
// all panels of a row share one y scale unless the facet was created with
// free axes, in which case every column (row) gets an independent clone of
// the prototype scale.
type Facet struct {
	Title                string
	Rows, Cols           int
	Panels               [][]*Panel
	RowLabels, ColLabels []string
	XScales, YScales     []*Scale

	// Style controls the appearance; Draw falls back to DefaultStyle(12)
	// if nil.
	Style *Style

	// Logger receives training and scale-resolution diagnostics.
	Logger *zap.SugaredLogger
}

// NewFacet creates a new faceted plot with rows x cols many panels.
// All columns share the same x scale and all rows share the same y scale
// unless freeX or respectively freeY is specified; free scales are
// untrained clones of one configured prototype, so per-panel configuration
// stays identical while the accumulated data stays independent.
func NewFacet(rows, cols int, freeX, freeY bool) *Facet {
	f := Facet{
		Rows:      rows,
		Cols:      cols,
		Panels:    make([][]*Panel, rows),
		RowLabels: make([]string, rows),
		ColLabels: make([]string, cols),
		XScales:   make([]*Scale, cols),
		YScales:   make([]*Scale, rows),
		Logger:    zap.NewNop().Sugar(),
	}

	for r := 0; r < f.Rows; r++ {
		f.Panels[r] = make([]*Panel, cols)
		for c := 0; c < f.Cols; c++ {
			f.Panels[r][c] = new(Panel)
		}
	}

	// The different x scales.
	protoX := NewXScale()
	if freeX {
		for c := range f.XScales {
			f.XScales[c] = protoX.Clone()
		}
	} else {
		for c := range f.XScales {
			f.XScales[c] = protoX
		}
	}

	// The different y scales.
	protoY := NewYScale()
	if freeY {
		for r := range f.YScales {
			f.YScales[r] = protoY.Clone()
		}
	} else {
		for r := range f.YScales {
			f.YScales[r] = protoY
		}
	}

	return &f
}

// trainScales feeds the data of every geom in every panel into the panel's
// scales. Training happens in two phases: first the raw values complete
// the discrete ranges, then position adjustments (jitter) map categorical
// values onto numeric positions and those numbers are trained into the
// continuous range of the x scale.
func (f *Facet) trainScales() {
	for row := 0; row < f.Rows; row++ {
		for col := 0; col < f.Cols; col++ {
			panel := f.Panels[row][col]
			panel.X, panel.Y = f.XScales[col], f.YScales[row]
			for _, g := range panel.Geoms {
				if vr, ok := g.(ValueRanger); ok {
					panel.X.Train(vr.XValues())
					panel.Y.Train(vr.YValues())
				}
			}
		}
	}

	for row := 0; row < f.Rows; row++ {
		for col := 0; col < f.Cols; col++ {
			for _, g := range f.Panels[row][col].Geoms {
				if a, ok := g.(Adjuster); ok {
					f.XScales[col].Train(a.AdjustedX(f.XScales[col]))
				}
			}
		}
	}
}

// applyToScales calls m once per distinct scale of f.
func (f *Facet) applyToScales(m func(*Scale)) {
	done := make(map[*Scale]bool)
	for _, s := range f.XScales {
		if done[s] {
			continue
		}
		m(s)
		done[s] = true
	}
	for _, s := range f.YScales {
		if done[s] {
			continue
		}
		m(s)
		done[s] = true
	}
}

func (f *Facet) logScales(stage string) {
	for c, s := range f.XScales {
		f.Logger.Debugw("x-scale", "stage", stage, "col", c, "scale", s.String())
	}
	for r, s := range f.YScales {
		f.Logger.Debugw("y-scale", "stage", stage, "row", r, "scale", s.String())
	}
}

// deDegenerateXandY makes sure no x or y scale has an unset or degenerate
// display range: a panel without data still needs a drawable axis.
func (f *Facet) deDegenerateXandY() {
	f.applyToScales(func(s *Scale) {
		if !s.Range.Defined() {
			s.Range = Interval{-1, 1}
		}
		if s.Range.Min == s.Range.Max {
			s.Range.Min--
			s.Range.Max++
		}
	})
}

// Range trains all scales from the panel data and resolves their display
// ranges from the covered dimensions.
func (f *Facet) Range() error {
	var badExpand error
	f.applyToScales(func(s *Scale) {
		if s.Expand.Add < 0 || s.Expand.Mul < 0 {
			badExpand = errors.Newf(
				"dscale: negative expansion (%g, %g) on scale %q",
				s.Expand.Add, s.Expand.Mul, s.Title)
		}
	})
	if badExpand != nil {
		return badExpand
	}

	f.trainScales()
	f.logScales("after training")

	f.applyToScales(func(s *Scale) { s.Range = s.Dimension() })
	f.logScales("after dimension")

	f.deDegenerateXandY()
	f.logScales("after de-degenerating")

	return nil
}

// Draw renders f onto the canvas c. Range must have been called before.
func (f *Facet) Draw(c draw.Canvas) error {
	if f.Style == nil {
		sty, err := DefaultStyle(12)
		if err != nil {
			return errors.Wrap(err, "dscale: building default style")
		}
		f.Style = &sty
	}
	style := *f.Style

	if f.Title != "" {
		c.FillText(style.Title, vg.Point{X: c.Center().X, Y: c.Max.Y}, f.Title)
		c.Max.Y -= style.TitleHeight
	}

	var h1, h2, h3, h4 vg.Length
	var w1, w2, w3, w4 vg.Length

	// Determine various widths in the main plot area.
	if f.YScales[0].Title != "" {
		w1 = style.YAxis.TitleWidth
	}
	w2 = 20 // Ticks and tick labels. TODO: calculate from style.
	for _, rl := range f.RowLabels {
		if rl != "" {
			w4 = style.VStrip.Width
			break
		}
	}
	w3 = c.Max.X - c.Min.X - w1 - w2 - w4

	// Determine various heights in the main plot area.
	if f.XScales[0].Title != "" {
		h1 = style.XAxis.TitleHeight
	}
	h2 = 20
	for _, cl := range f.ColLabels {
		if cl != "" {
			h4 = style.HStrip.Height
			break
		}
	}
	h3 = c.Max.Y - c.Min.Y - h1 - h2 - h4

	// Draw the x and y axis titles.
	c.FillText(style.XAxis.Title,
		vg.Point{X: c.Min.X + w1 + w2 + w3/2, Y: c.Min.Y}, f.XScales[0].Title)
	c.FillText(style.YAxis.Title,
		vg.Point{X: c.Min.X, Y: c.Min.Y + h1 + h2 + h3/2}, f.YScales[0].Title)

	xticks := make([][]plot.Tick, f.Cols)
	yticks := make([][]plot.Tick, f.Rows)
	for col, s := range f.XScales {
		xticks[col] = s.Ticker.Ticks(s.Range.Min, s.Range.Max)
	}
	for row, s := range f.YScales {
		yticks[row] = s.Ticker.Ticks(s.Range.Min, s.Range.Max)
	}

	// Setup the panel canvases, draw their background and grid and draw
	// the facet column and row labels.
	padx, pady := style.Panel.PadX, style.Panel.PadY
	numCols, numRows := vg.Length(f.Cols), vg.Length(f.Rows)
	width := (w3 - padx*(numCols-1)) / numCols
	height := (h3 - pady*(numRows-1)) / numRows
	// Point (x0,y0) is the top-left corner of each panel.
	y0 := c.Max.Y - h4
	for row, panels := range f.Panels {
		x0 := c.Min.X + w1 + w2
		for col, panel := range panels {
			panel.Canvas.Canvas = c.Canvas
			panel.Canvas.Min.X = x0
			panel.Canvas.Min.Y = y0 - height
			panel.Canvas.Max.X = x0 + width
			panel.Canvas.Max.Y = y0
			panel.X = f.XScales[col]
			panel.Y = f.YScales[row]
			panel.Style = f.Style
			panel.Canvas.SetColor(style.Panel.Background)
			panel.Canvas.Fill(panel.Canvas.Rectangle.Path())
			if style.Grid.Major.Color != nil {
				for _, xtic := range xticks[col] {
					px := panel.mapX(xtic.Value)
					sty := style.Grid.Major
					if xtic.IsMinor() {
						sty = style.Grid.Minor
					}
					panel.Canvas.StrokeLine2(sty, px, y0, px, y0-height)
				}
				for _, ytic := range yticks[row] {
					py := panel.mapY(ytic.Value)
					sty := style.Grid.Major
					if ytic.IsMinor() {
						sty = style.Grid.Minor
					}
					panel.Canvas.StrokeLine2(sty, x0, py, x0+width, py)
				}
			}

			if row == 0 && f.ColLabels[col] != "" {
				cb := c
				cb.Min.X = panel.Canvas.Min.X
				cb.Min.Y = panel.Canvas.Max.Y
				cb.Max.X = panel.Canvas.Max.X
				cb.Max.Y = cb.Min.Y + h4
				cb.SetColor(style.HStrip.Background)
				cb.Fill(cb.Rectangle.Path())
				cb.FillText(style.HStrip.TextStyle, cb.Center(), f.ColLabels[col])
			}
			x0 += width + padx
		}
		if f.RowLabels[row] != "" {
			cb := c
			panel := f.Panels[row][f.Cols-1]
			cb.Min.X = panel.Canvas.Max.X
			cb.Min.Y = panel.Canvas.Min.Y
			cb.Max.X = cb.Min.X + w4
			cb.Max.Y = panel.Canvas.Max.Y
			cb.SetColor(style.VStrip.Background)
			cb.Fill(cb.Rectangle.Path())
			cb.FillText(style.VStrip.TextStyle, cb.Center(), f.RowLabels[row])
		}

		y0 -= height + pady
	}

	// Draw the actual data.
	for _, panels := range f.Panels {
		for _, panel := range panels {
			for _, geom := range panel.Geoms {
				geom.Draw(panel)
			}
		}
	}

	// Draw the ticks.
	for col, xtick := range xticks {
		for _, tick := range xtick {
			panel := f.Panels[f.Rows-1][col]
			px := panel.mapX(tick.Value)
			sty := style.XAxis.Tick.Major
			length := style.XAxis.Tick.Length
			if tick.IsMinor() {
				sty = style.XAxis.Tick.Minor
				length /= 2
			}
			canvas := panel.Canvas
			ly := canvas.Min.Y
			canvas.StrokeLine2(sty, px, ly, px, ly-length)
			if tick.IsMinor() {
				continue
			}
			canvas.FillText(style.XAxis.Tick.Label,
				vg.Point{X: px, Y: ly - length}, tick.Label)
		}
	}
	for row, ytick := range yticks {
		for _, tick := range ytick {
			panel := f.Panels[row][0]
			py := panel.mapY(tick.Value)
			sty := style.YAxis.Tick.Major
			length := style.YAxis.Tick.Length
			if tick.IsMinor() {
				sty = style.YAxis.Tick.Minor
				length /= 2
			}
			canvas := panel.Canvas
			lx := canvas.Min.X
			canvas.StrokeLine2(sty, lx-length, py, lx, py)
			if tick.IsMinor() {
				continue
			}
			canvas.FillText(style.YAxis.Tick.Label,
				vg.Point{X: lx - length, Y: py}, tick.Label)
		}
	}

	return nil
}
