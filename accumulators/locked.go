package accumulators

import (
	"fmt"
	"math/bits"

	"github.com/docker/docker/pkg/locker"
	"github.com/go-sif/bucketsum"
)

// SharedAdder returns a new Locked Accumulator
func SharedAdder() bucketsum.Accumulator {
	return NewLocked()
}

// NewLocked returns a new, zeroed Locked Accumulator
func NewLocked() *Locked {
	l := &Locked{plocks: locker.New()}
	for i := range l.names {
		l.names[i] = fmt.Sprintf("slot-%d", i)
	}
	return l
}

// Locked sums Records into slots shared by any number of concurrent workers.
// Every slot is guarded by its own named lock, so folds into different keys never
// block each other, while folds into the same key are strictly serialized.
// A slot may only be read or written while its lock is held.
type Locked struct {
	plocks *locker.Locker
	names  [bucketsum.NumBuckets]string
	slots  [bucketsum.NumBuckets]uint64
}

// Accumulate adds a Record to this Accumulator
func (l *Locked) Accumulate(rec bucketsum.Record) error {
	if err := bucketsum.CheckKey(rec.Key); err != nil {
		return err
	}
	return l.add(rec.Key, rec.Value)
}

// Merge merges another Accumulator into this one, one slot at a time. If Merge fails,
// some slots may already have been merged, and this Accumulator should be discarded.
func (l *Locked) Merge(o bucketsum.Accumulator) error {
	for i, v := range o.Sums() {
		if err := l.add(uint64(i), v); err != nil {
			return err
		}
	}
	return nil
}

// Sums returns a snapshot of the slots, reading each under its own lock
func (l *Locked) Sums() bucketsum.Sums {
	var sums bucketsum.Sums
	for i := range l.slots {
		l.plocks.Lock(l.names[i])
		sums[i] = l.slots[i]
		l.plocks.Unlock(l.names[i])
	}
	return sums
}

func (l *Locked) add(key uint64, value uint64) error {
	name := l.names[key]
	l.plocks.Lock(name)
	defer l.plocks.Unlock(name)
	v, carry := bits.Add64(l.slots[key], value, 0)
	if carry != 0 {
		return overflow(key)
	}
	l.slots[key] = v
	return nil
}
