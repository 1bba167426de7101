package bucketsum

import "io"

// Parser is a parser capable of reading Records from an input stream
type Parser interface {
	Parse(r io.Reader, source string, onIteratorEnd func()) (RecordIterator, error)
}
