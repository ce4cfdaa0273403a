package dscale

// ----------------------------------------------------------------------------
// DiscreteRange

// A DiscreteRange tracks the categorical labels observed during training.
// Labels are kept in first-seen order which determines their default axis
// position.
type DiscreteRange struct {
	labels []string
	seen   map[string]bool
}

// NewDiscreteRange returns an empty, untrained DiscreteRange.
func NewDiscreteRange() *DiscreteRange {
	return &DiscreteRange{seen: make(map[string]bool)}
}

// Train records the labels of one training batch. Without drop training is
// a pure set union and the final label set does not depend on the batch
// order. With drop the most recent batch wins: labels seen earlier but
// absent from this batch are removed, surviving labels keep their original
// order and new labels are appended in batch order.
func (r *DiscreteRange) Train(labels []string, drop bool) {
	if drop {
		inBatch := make(map[string]bool, len(labels))
		for _, l := range labels {
			inBatch[l] = true
		}
		kept := r.labels[:0]
		for _, l := range r.labels {
			if inBatch[l] {
				kept = append(kept, l)
			} else {
				delete(r.seen, l)
			}
		}
		r.labels = kept
	}
	for _, l := range labels {
		if r.seen[l] {
			continue
		}
		r.seen[l] = true
		r.labels = append(r.labels, l)
	}
}

// Limits returns the ordered labels of r. The returned slice is owned by r
// and must not be modified.
func (r *DiscreteRange) Limits() []string { return r.labels }

// Len returns the number of distinct labels trained into r.
func (r *DiscreteRange) Len() int { return len(r.labels) }

// Has reports whether label was trained into r.
func (r *DiscreteRange) Has(label string) bool { return r.seen[label] }
