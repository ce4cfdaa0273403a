package dscale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
)

func TestScaleTrainSeparatesRanges(t *testing.T) {
	s := NewXScale()
	s.Train(Labels("a", "b"))
	s.Train(Numbers(2, 5))
	s.Train(Labels("c"))

	assert.Equal(t, []string{"a", "b", "c"}, s.Levels())
	assert.True(t, s.ContinuousRange().Equal(Interval{2, 5}),
		"continuous range should cover exactly the numeric values")
}

func TestScaleTrainMixedBatch(t *testing.T) {
	s := NewXScale()
	s.Train([]Value{Categorical("a"), Numeric(7), Categorical("b")})

	assert.Equal(t, []string{"a", "b"}, s.Levels())
	assert.True(t, s.ContinuousRange().Equal(Interval{7, 7}))
}

func TestScaleMap(t *testing.T) {
	s := NewXScale()
	s.Train(Labels("a", "b", "c"))

	for i, label := range []string{"a", "b", "c"} {
		pos, ok := s.Map(Categorical(label))
		require.True(t, ok, "trained label %q should map", label)
		assert.Equal(t, float64(i+1), pos, "1-based position of %q", label)
	}

	pos, ok := s.Map(Categorical("zz"))
	assert.False(t, ok, "untrained label must map to absent, not error")
	assert.Zero(t, pos, "an absent result carries a zero position")

	pos, ok = s.Map(Numeric(2.25))
	require.True(t, ok)
	assert.Equal(t, 2.25, pos, "continuous values pass through unchanged")
}

func TestScaleMapIsPure(t *testing.T) {
	s := NewXScale()
	s.Train(Labels("a", "b", "c"))
	s.Train(Numbers(2, 5))

	before := s.Dimension()
	p1 := s.MapAll([]Value{Categorical("b"), Categorical("zz"), Numeric(1.5)})
	p2 := s.MapAll([]Value{Categorical("b"), Categorical("zz"), Numeric(1.5)})

	// The Position payload must stay comparable: batches containing
	// absent results compare equal as a whole.
	assert.Equal(t, p1, p2, "mapping twice must yield identical results")
	assert.True(t, s.Dimension().Equal(before),
		"mapping must not change the covered dimension")
	assert.Equal(t, Position{2, true}, p1[0])
	assert.Equal(t, Position{}, p1[1], "absent maps to the zero Position")
	assert.Equal(t, Position{1.5, true}, p1[2])
}

func TestScaleExplicitLimits(t *testing.T) {
	s := NewXScale()
	s.Train(Labels("a", "b", "c"))

	// Restricting the limits changes mapping without retraining.
	s.Limits = []string{"c", "a"}
	pos, ok := s.Map(Categorical("c"))
	require.True(t, ok)
	assert.Equal(t, 1.0, pos, "explicit limits define the order")
	_, ok = s.Map(Categorical("b"))
	assert.False(t, ok, "label excluded by limits maps to absent")

	// Dropping the limits restores the trained levels.
	s.Limits = nil
	pos, ok = s.Map(Categorical("b"))
	require.True(t, ok)
	assert.Equal(t, 2.0, pos)
}

func TestScaleDimension(t *testing.T) {
	s := NewXScale()
	s.Expand = Expansion{Add: 0, Mul: 0.5}
	s.Train(Labels("a", "b", "c"))

	// Only discrete data: [1,3] padded by 0.5 on both ends.
	assert.True(t, s.Dimension().Equal(Interval{0.5, 3.5}),
		"discrete span, got %v", s.Dimension())

	// Continuous data widens the union asymmetrically.
	s.Train(Numbers(2, 5))
	assert.True(t, s.Dimension().Equal(Interval{0.5, 6.5}),
		"union of spans, got %v", s.Dimension())

	// An explicit expansion overrides the scale's own.
	assert.True(t, s.Dimension(Expansion{}).Equal(Interval{1, 5}))
}

func TestScaleDimensionEmpty(t *testing.T) {
	s := NewXScale()
	assert.False(t, s.Dimension().Defined(),
		"a fully untrained scale covers nothing")

	// Continuous only: the discrete span must not contribute a [0,0]
	// or [1,0] artifact.
	s.Train(Numbers(2, 5))
	assert.True(t, s.Dimension().Equal(Interval{2, 6.5}),
		"got %v", s.Dimension())
}

func TestScaleDrop(t *testing.T) {
	s := NewXScale()
	s.Drop = true
	s.Train(Labels("a", "b", "c"))
	s.Train(Labels("c", "a"))

	assert.Equal(t, []string{"a", "c"}, s.Levels(),
		"drop removes labels absent from the latest batch")
}

func TestScaleClone(t *testing.T) {
	s := NewXScale()
	s.Title = "treatment"
	s.Expand = Expansion{Add: 0.1, Mul: 0.3}
	s.Drop = true
	s.Limits = []string{"b"}
	s.Train(Labels("a", "b"))
	s.Train(Numbers(4))

	c := s.Clone()

	// Configuration is preserved...
	assert.Equal(t, s.Title, c.Title)
	assert.Equal(t, s.Expand, c.Expand)
	assert.Equal(t, s.Drop, c.Drop)
	assert.Equal(t, s.Aesthetics, c.Aesthetics)
	assert.Equal(t, s.Limits, c.Limits)

	// ...but the clone starts untrained.
	c.Limits = nil
	_, ok := c.Map(Categorical("a"))
	assert.False(t, ok, "clone must not know the original's labels")
	assert.False(t, c.ContinuousRange().Defined())
	assert.False(t, c.HasData())

	// Training the clone leaves the original alone.
	c.Train(Labels("x", "y", "z"))
	assert.Equal(t, []string{"b"}, s.Levels())
}

func TestScaleCloneResetsTicker(t *testing.T) {
	s := NewXScale()
	s.Train(Labels("a", "b"))
	s.Ticker = plot.DefaultTicks{}

	c := s.Clone()

	lt, ok := c.Ticker.(LevelTicks)
	require.True(t, ok, "a replaced Ticker refers to the original and is not carried over")
	assert.Same(t, c, lt.Scale, "the clone's ticker shows the clone's levels")
}

func TestScaleGuide(t *testing.T) {
	if NewXScale().Guide() {
		t.Error("position scales must never be shown as a guide")
	}
}
