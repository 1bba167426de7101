package accumulators

import (
	"math/bits"
)

// Total is the wrapped numeric type used by the combined strategy
type Total uint64

// LiftTotal wraps a raw value as a Total
func LiftTotal(v uint64) Total {
	return Total(v)
}

// Combine adds two Totals, reporting overflow with ok == false
func (t Total) Combine(o Total) (Total, bool) {
	sum, carry := bits.Add64(uint64(t), uint64(o), 0)
	return Total(sum), carry == 0
}

// Uint64 unwraps a Total
func (t Total) Uint64() uint64 {
	return uint64(t)
}
