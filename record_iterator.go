package bucketsum

// RecordIterator is a generalized interface for iterating over Records, regardless of where they come from
type RecordIterator interface {
	HasNextRecord() bool
	// NextRecord returns the next Record, or an error describing why the current line could not be read
	NextRecord() (Record, error)
	// OnEnd registers a listener which fires once, when this iterator is exhausted, fails or is closed
	OnEnd(onEnd func())
	// Close abandons any remaining Records, firing end listeners if they have not fired already
	Close()
}
