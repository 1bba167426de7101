package bucketsum

// An Accumulator owns NumBuckets numeric slots and folds Records into them.
// Accumulators are the only mutable state of a run: every strategy creates one
// or more of them, feeds Records from its sources into them, and reduces them
// into a single Sums once all sources are exhausted. Folding must be commutative
// and associative, so that neither record order nor the way sources are split
// across workers changes the final Sums.
type Accumulator interface {
	Accumulate(rec Record) error // Accumulate adds rec.Value to the slot rec.Key
	Merge(o Accumulator) error   // Merge folds every slot of another Accumulator into this one
	Sums() Sums                  // Sums returns a snapshot of the slots
}
