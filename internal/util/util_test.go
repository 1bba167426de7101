package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSafeSourceOperationRecoversPanic(t *testing.T) {
	op := SafeSourceOperation("file-1", func() error {
		var sums []uint64
		sums[3]++
		return nil
	})
	err := op()
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "Worker Panic")
	require.Contains(t, err.Error(), "file-1")
	// the trace starts at the panicking operation
	require.Contains(t, err.Error(), "util.TestSafeSourceOperationRecoversPanic.func1")
	require.NotContains(t, err.Error(), "runtime.gopanic")
}

func TestSafeSourceOperationPassesErrors(t *testing.T) {
	expected := errors.New("boom")
	err := SafeSourceOperation("file-1", func() error { return expected })()
	require.Equal(t, expected, err)
	require.Nil(t, SafeSourceOperation("file-1", func() error { return nil })())
}

func TestFormatMultiError(t *testing.T) {
	require.Equal(t, "a", FormatMultiError([]error{errors.New("a")}))
	require.Equal(t, "2 sources failed:\na\nb", FormatMultiError([]error{errors.New("a"), errors.New("b")}))
}
