package bucketsum

import (
	"math"
	"testing"

	"github.com/go-sif/bucketsum/errors"
	"github.com/stretchr/testify/require"
)

func TestSumsString(t *testing.T) {
	require.Equal(t, "[0, 0, 0, 0, 0, 0, 0, 0, 0, 0]", Sums{}.String())
	require.Equal(t, "[5, 4, 0, 0, 0, 0, 0, 0, 0, 18446744073709551615]", Sums{5, 4, 9: math.MaxUint64}.String())
}

func TestSumsAdd(t *testing.T) {
	a := Sums{3, 4}
	b := Sums{2, 9: 1}
	ab, err := a.Add(b)
	require.Nil(t, err)
	require.Equal(t, Sums{5, 4, 0, 0, 0, 0, 0, 0, 0, 1}, ab)
	ba, err := b.Add(a)
	require.Nil(t, err)
	require.Equal(t, ab, ba)
	// operands are untouched
	require.Equal(t, Sums{3, 4}, a)
}

func TestSumsAddOverflow(t *testing.T) {
	a := Sums{7: math.MaxUint64}
	_, err := a.Add(Sums{7: 1})
	require.Equal(t, errors.OverflowError{Key: 7}, err)
}

func TestCheckKey(t *testing.T) {
	for k := uint64(0); k < NumBuckets; k++ {
		require.Nil(t, CheckKey(k))
	}
	require.Equal(t, errors.KeyOutOfRangeError{Key: NumBuckets, NumBuckets: NumBuckets}, CheckKey(NumBuckets))
	require.NotNil(t, CheckKey(math.MaxUint64))
}
