package bucketsum

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/go-sif/bucketsum/errors"
)

// NumBuckets is the fixed number of slots in every accumulator
const NumBuckets = 10

// Record is a single key,value pair parsed from one line of a source
type Record struct {
	Key   uint64
	Value uint64
}

// Sums is a snapshot of the slots of an Accumulator, indexed by key
type Sums [NumBuckets]uint64

// Add returns the element-wise sum of two snapshots, failing if any slot overflows
func (s Sums) Add(o Sums) (Sums, error) {
	var result Sums
	for i := range s {
		v, carry := bits.Add64(s[i], o[i], 0)
		if carry != 0 {
			return s, errors.OverflowError{Key: uint64(i)}
		}
		result[i] = v
	}
	return result, nil
}

// String renders the slots as a bracketed sequence, e.g. [5, 4, 0, 0, 0, 0, 0, 0, 0, 1]
func (s Sums) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatUint(v, 10))
	}
	b.WriteByte(']')
	return b.String()
}

// CheckKey returns a KeyOutOfRangeError iff key does not address a slot
func CheckKey(key uint64) error {
	if key >= NumBuckets {
		return errors.KeyOutOfRangeError{Key: key, NumBuckets: NumBuckets}
	}
	return nil
}
