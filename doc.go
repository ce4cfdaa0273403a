// Package dscale provides discrete positional scales for faceted plots.
//
// It tries to use or enhance gonum.org/v1/plot.
//
// Scales
//
// The concept of a discrete position scale is taken from ggplot2: categorical
// labels are placed at the integer positions 1, 2, 3, ... of an axis while
// numeric values sharing the same axis (jittered points, bar edges, jitter
// labels) pass through unchanged. A Scale therefore tracks two independent
// ranges:
//   - a DiscreteRange  The ordered set of labels seen during training.
//   - an Interval      The running min/max of all numeric values trained
//                      on the same axis.
//
// Both ranges stay separate until Dimension unions their individually
// expanded spans into the interval the axis has to cover.
//
// Training, mapping and dimension computation are the three operations a
// plot performs on a scale: every layer trains the scale with its data and
// rendering maps data values to axis positions. Scales are cloned, empty
// but with the same configuration, when a facet needs independent
// per-panel axes.
//
// Position scales are never shown as a guide (legend); they are drawn as
// an axis by the facet layer.
package dscale
