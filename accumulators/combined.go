package accumulators

import (
	"github.com/go-sif/bucketsum"
)

// Value is a wrapped numeric type with a custom combine operation. Combine must be
// commutative and associative, so that the order in which Records are folded never
// changes the result. Combine reports failure (e.g. overflow) with ok == false.
type Value[V any] interface {
	Combine(o V) (result V, ok bool)
	Uint64() uint64
}

// Combiner returns a factory for Combined Accumulators, suitable for use wherever a
// fresh Accumulator is needed per worker
func Combiner[V Value[V]](lift func(uint64) V) func() bucketsum.Accumulator {
	return func() bucketsum.Accumulator {
		return NewCombined(lift)
	}
}

// NewCombined returns a new Combined Accumulator, whose slots start at lift(0)
func NewCombined[V Value[V]](lift func(uint64) V) *Combined[V] {
	c := &Combined[V]{lift: lift}
	for i := range c.slots {
		c.slots[i] = lift(0)
	}
	return c
}

// Combined folds Records into slots of a wrapped value type V, using V's Combine
// operation rather than primitive addition. It is not safe for concurrent use.
type Combined[V Value[V]] struct {
	slots [bucketsum.NumBuckets]V
	lift  func(uint64) V
}

// Accumulate combines a Record's value into the slot addressed by its key
func (c *Combined[V]) Accumulate(rec bucketsum.Record) error {
	if err := bucketsum.CheckKey(rec.Key); err != nil {
		return err
	}
	return c.combine(rec.Key, c.lift(rec.Value))
}

// Merge merges another Accumulator into this one, combining slot by slot
func (c *Combined[V]) Merge(o bucketsum.Accumulator) error {
	if oc, ok := o.(*Combined[V]); ok {
		return c.mergeSlots(oc.slots)
	}
	var lifted [bucketsum.NumBuckets]V
	for i, v := range o.Sums() {
		lifted[i] = c.lift(v)
	}
	return c.mergeSlots(lifted)
}

// Slot returns the wrapped value held for a key
func (c *Combined[V]) Slot(key uint64) (V, error) {
	if err := bucketsum.CheckKey(key); err != nil {
		var zero V
		return zero, err
	}
	return c.slots[key], nil
}

// Sums returns the slot values from this Accumulator
func (c *Combined[V]) Sums() bucketsum.Sums {
	var sums bucketsum.Sums
	for i, v := range c.slots {
		sums[i] = v.Uint64()
	}
	return sums
}

func (c *Combined[V]) mergeSlots(slots [bucketsum.NumBuckets]V) error {
	merged := c.slots
	for i, v := range slots {
		r, ok := merged[i].Combine(v)
		if !ok {
			return overflow(uint64(i))
		}
		merged[i] = r
	}
	c.slots = merged
	return nil
}

func (c *Combined[V]) combine(key uint64, v V) error {
	r, ok := c.slots[key].Combine(v)
	if !ok {
		return overflow(key)
	}
	c.slots[key] = r
	return nil
}
