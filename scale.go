package dscale

import (
	"fmt"
	"strings"

	"gonum.org/v1/plot"
)

// ----------------------------------------------------------------------------
// Scale

// A Scale is a discrete position scale: it places categorical labels at the
// integer positions 1, 2, 3, ... of an axis and lets numeric values on the
// same axis pass through unchanged. One Scale serves one axis of one panel.
type Scale struct {
	// Title is the scale's title, drawn as the axis title.
	Title string

	// Aesthetics are the aesthetic names this scale applies to,
	// e.g. x, xmin, xmax and xend for an x-axis scale.
	Aesthetics []string

	// Limits overrides the trained labels: if non-nil only these labels,
	// in this order, get an axis position. Values outside Limits map to
	// nothing.
	Limits []string

	// Expand determines how much the covered dimension extends beyond
	// the actual data.
	Expand Expansion

	// Drop removes previously trained labels which are absent from the
	// current training batch.
	Drop bool

	// Range is the resolved display range of the scale. It is computed
	// from Dimension by the facet layer and read when mapping onto a
	// canvas.
	Range Interval

	// Ticker is responsible for generating the ticks.
	Ticker plot.Ticker

	discrete *DiscreteRange
	cont     Interval
}

// NewScale returns a new, untrained position scale for the given aesthetics.
func NewScale(aesthetics ...string) *Scale {
	s := &Scale{
		Aesthetics: aesthetics,
		Expand:     DefaultExpansion,
		Range:      UnsetInterval(),
		discrete:   NewDiscreteRange(),
		cont:       UnsetInterval(),
	}
	s.Ticker = LevelTicks{Scale: s}
	return s
}

// NewXScale returns a position scale for the x aesthetics.
func NewXScale() *Scale { return NewScale("x", "xmin", "xmax", "xend") }

// NewYScale returns a position scale for the y aesthetics.
func NewYScale() *Scale { return NewScale("y", "ymin", "ymax", "yend") }

// Guide reports whether the scale is shown as a guide (legend).
// Position scales are drawn as an axis, never as a guide.
func (s *Scale) Guide() bool { return false }

// Train records one batch of raw values: categorical values update the
// discrete range with Drop applied, numeric values widen the continuous
// range. The two ranges never mix.
func (s *Scale) Train(vs []Value) {
	labels, nums := split(vs)
	if len(labels) > 0 {
		s.discrete.Train(labels, s.Drop)
	}
	s.cont.Update(nums...)
}

// Levels returns the ordered labels defining the axis positions: the
// explicit Limits if set, the trained labels otherwise.
func (s *Scale) Levels() []string {
	if s.Limits != nil {
		return s.Limits
	}
	return s.discrete.Limits()
}

// Map converts a raw value to its axis position. Numeric values map to
// themselves, a categorical value to its 1-based index in the current
// levels. The second return is false for labels without a position, the
// position is 0 then; such values are dropped silently, which is how
// explicit Limits filter categories. Map does not change s.
func (s *Scale) Map(v Value) (float64, bool) {
	if !v.Discrete() {
		return v.Num(), true
	}
	for i, l := range s.Levels() {
		if l == v.Label() {
			return float64(i + 1), true
		}
	}
	return 0, false
}

// A Position is the result of mapping one raw value. OK is false for
// categorical values without an axis position.
type Position struct {
	Pos float64
	OK  bool
}

// MapAll maps a batch of raw values, one Position per value.
func (s *Scale) MapAll(vs []Value) []Position {
	ps := make([]Position, len(vs))
	for i, v := range vs {
		ps[i].Pos, ps[i].OK = s.Map(v)
	}
	return ps
}

// Dimension returns the interval the axis has to cover: the union of the
// expanded discrete span [1, len(Levels)] and the expanded continuous
// range. The discrete span is padded by the multiplicative component as a
// flat offset on both ends; the continuous range is padded by the additive
// component below and by the multiplicative component, relative to its
// width, above. A range which was never trained does not contribute.
//
// Dimension uses s.Expand unless an explicit expansion is given.
func (s *Scale) Dimension(expand ...Expansion) Interval {
	e := s.Expand
	if len(expand) > 0 {
		e = expand[0]
	}

	dim := UnsetInterval()

	if n := len(s.Levels()); n > 0 {
		disc := ExpandInterval(Interval{1, float64(n)}, e.Mul, 0, e.Mul, 0)
		dim = dim.Union(disc)
	}
	if s.cont.Defined() {
		cont := ExpandInterval(s.cont, e.Add, 0, 0, e.Mul)
		dim = dim.Union(cont)
	}

	return dim
}

// ContinuousRange returns the range covered by the numeric values trained
// into s. It is unset until the first numeric value is trained.
func (s *Scale) ContinuousRange() Interval { return s.cont }

// HasData reports whether anything was trained into s.
func (s *Scale) HasData() bool {
	return s.discrete.Len() > 0 || s.cont.Defined()
}

// Clone returns an untrained scale with the same configuration as s. Both
// ranges start empty; configuration slices are copied so the clone is
// fully independent. The Ticker is not carried over but reset to the
// clone's own LevelTicks: a Ticker replaced on s refers to s and would
// show the original's levels. Facets clone a prototype scale for every
// panel with free axes.
func (s *Scale) Clone() *Scale {
	c := NewScale()
	c.Title = s.Title
	c.Aesthetics = append([]string(nil), s.Aesthetics...)
	if s.Limits != nil {
		c.Limits = append([]string(nil), s.Limits...)
	}
	c.Expand = s.Expand
	c.Drop = s.Drop
	return c
}

func (s *Scale) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Levels=[%s] Cont=[%.2f:%.2f] Range=[%.2f:%.2f] %q",
		strings.Join(s.Levels(), ","),
		s.cont.Min, s.cont.Max, s.Range.Min, s.Range.Max, s.Title)
}
