package dscale

import "gonum.org/v1/plot"

// ----------------------------------------------------------------------------
// LevelTicks

// LevelTicks generates one major tick per level of a discrete position
// scale, placed at the level's axis position and labelled with the level.
// It implements plot.Ticker.
type LevelTicks struct {
	Scale *Scale
}

// Ticks returns the ticks inside [min, max]. Levels mapped outside of the
// interval produce no tick: this happens when explicit Limits or a fixed
// Range cut away part of the trained data. A scale without any levels,
// i.e. one trained on numeric values only, falls back to plot.DefaultTicks.
func (lt LevelTicks) Ticks(min, max float64) []plot.Tick {
	if len(lt.Scale.Levels()) == 0 {
		return plot.DefaultTicks{}.Ticks(min, max)
	}
	var ticks []plot.Tick
	for i, level := range lt.Scale.Levels() {
		at := float64(i + 1)
		if at < min || at > max {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: at, Label: level})
	}
	return ticks
}
