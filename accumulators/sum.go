package accumulators

import (
	"math/bits"

	"github.com/go-sif/bucketsum"
	"github.com/go-sif/bucketsum/errors"
)

// Adder returns a new Sum Accumulator
func Adder() bucketsum.Accumulator {
	return NewSum()
}

// NewSum returns a new, zeroed Sum Accumulator
func NewSum() *Sum {
	return &Sum{}
}

// Sum sums Records into plain numeric slots. It is not safe for concurrent use,
// and must be owned by a single worker at a time.
type Sum struct {
	sums bucketsum.Sums
}

// Accumulate adds a Record to this Accumulator
func (a *Sum) Accumulate(rec bucketsum.Record) error {
	if err := bucketsum.CheckKey(rec.Key); err != nil {
		return err
	}
	v, carry := bits.Add64(a.sums[rec.Key], rec.Value, 0)
	if carry != 0 {
		return overflow(rec.Key)
	}
	a.sums[rec.Key] = v
	return nil
}

// Merge merges another Accumulator into this one
func (a *Sum) Merge(o bucketsum.Accumulator) error {
	merged, err := a.sums.Add(o.Sums())
	if err != nil {
		return err
	}
	a.sums = merged
	return nil
}

// Sums returns the slot sums from this Accumulator
func (a *Sum) Sums() bucketsum.Sums {
	return a.sums
}

func overflow(key uint64) error {
	return errors.OverflowError{Key: key}
}
