package errors

import (
	"fmt"
)

// MalformedLineError occurs when a line cannot be split into a key and a value
type MalformedLineError struct {
	Source string
	Line   int
	Text   string
}

// Error returns a textual representation of this MalformedLineError
func (e MalformedLineError) Error() string {
	return fmt.Sprintf("Bad line %d in %s: %q", e.Line, e.Source, e.Text)
}

// InvalidIntegerError occurs when the key or value of a line is not a non-negative base-10 integer
type InvalidIntegerError struct {
	Source string
	Line   int
	Field  string // "key" or "value"
	Text   string
	Err    error
}

// Error returns a textual representation of this InvalidIntegerError
func (e InvalidIntegerError) Error() string {
	return fmt.Sprintf("Invalid %s %q on line %d in %s: %v", e.Field, e.Text, e.Line, e.Source, e.Err)
}

// Unwrap returns the underlying parse error
func (e InvalidIntegerError) Unwrap() error {
	return e.Err
}

// KeyOutOfRangeError occurs when a Record's key does not address an accumulator slot
type KeyOutOfRangeError struct {
	Key        uint64
	NumBuckets int
}

// Error returns a textual representation of this KeyOutOfRangeError
func (e KeyOutOfRangeError) Error() string {
	return fmt.Sprintf("Key %d is out of range [0, %d)", e.Key, e.NumBuckets)
}

// OverflowError occurs when adding to a slot would exceed its capacity
type OverflowError struct {
	Key uint64
}

// Error returns a textual representation of this OverflowError
func (e OverflowError) Error() string {
	return fmt.Sprintf("Sum for key %d overflows", e.Key)
}

// NoMoreRecordsError occurs when there are no more Records in a RecordIterator
type NoMoreRecordsError struct{}

// Error returns a textual representation of this NoMoreRecordsError
func (e NoMoreRecordsError) Error() string {
	return "No more records"
}

// SourceError attaches the name of a source, and the line being processed, to a failure
type SourceError struct {
	Source string
	Line   int // 0 if the failure is not tied to a line
	Err    error
}

// Error returns a textual representation of this SourceError
func (e *SourceError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
}

// Unwrap returns the underlying failure
func (e *SourceError) Unwrap() error {
	return e.Err
}
