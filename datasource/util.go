package datasource

import (
	"bufio"
	"io"
	"sync"

	"github.com/go-sif/bucketsum"
	"github.com/go-sif/bucketsum/errors"
)

// LineParser parses the text of a single line (numbered from 1) into a Record
type LineParser func(source string, line int, text string) (bucketsum.Record, error)

// CreateLineIterator produces a RecordIterator which parses one Record per line of r
// (useful for the implementation of Parsers). The line terminator, and a carriage
// return preceding it, are not passed to parseLine.
func CreateLineIterator(r io.Reader, maxBufferSize int, source string, parseLine LineParser) bucketsum.RecordIterator {
	scanner := bufio.NewScanner(r)
	if maxBufferSize > 0 {
		// the scanner accepts tokens up to the larger of cap(buf) and max
		initial := 4096
		if maxBufferSize < initial {
			initial = maxBufferSize
		}
		scanner.Buffer(make([]byte, 0, initial), maxBufferSize)
	}
	return &lineIterator{
		scanner:      scanner,
		source:       source,
		parseLine:    parseLine,
		endListeners: []func(){},
	}
}

type lineIterator struct {
	scanner      *bufio.Scanner
	source       string
	parseLine    LineParser
	line         int
	pending      bool  // a scanned line is waiting to be returned by NextRecord
	pendingErr   error // a read error is waiting to be returned by NextRecord
	finished     bool
	lock         sync.Mutex
	endListeners []func()
}

// OnEnd registers a listener which fires when this iterator runs out of Records
func (li *lineIterator) OnEnd(onEnd func()) {
	li.lock.Lock()
	defer li.lock.Unlock()
	if li.finished {
		onEnd()
		return
	}
	li.endListeners = append(li.endListeners, onEnd)
}

// HasNextRecord returns true iff this RecordIterator can produce another Record (or an error)
func (li *lineIterator) HasNextRecord() bool {
	li.lock.Lock()
	defer li.lock.Unlock()
	if li.pending || li.pendingErr != nil {
		return true
	}
	if li.finished {
		return false
	}
	if li.scanner.Scan() {
		li.line++
		li.pending = true
		return true
	}
	if err := li.scanner.Err(); err != nil {
		li.pendingErr = err
		return true
	}
	li.finish()
	return false
}

// NextRecord returns the next Record if one is available, or an error
func (li *lineIterator) NextRecord() (bucketsum.Record, error) {
	li.lock.Lock()
	pendingErr := li.pendingErr
	pending := li.pending
	li.lock.Unlock()
	if !pending && pendingErr == nil && !li.HasNextRecord() {
		return bucketsum.Record{}, errors.NoMoreRecordsError{}
	}
	li.lock.Lock()
	defer li.lock.Unlock()
	if li.pendingErr != nil {
		err := li.pendingErr
		li.pendingErr = nil
		li.finish()
		return bucketsum.Record{}, &errors.SourceError{Source: li.source, Line: li.line + 1, Err: err}
	}
	li.pending = false
	rec, err := li.parseLine(li.source, li.line, li.scanner.Text())
	if err != nil {
		li.finish()
		return bucketsum.Record{}, err
	}
	return rec, nil
}

// Close abandons any remaining Records
func (li *lineIterator) Close() {
	li.lock.Lock()
	defer li.lock.Unlock()
	li.pending = false
	li.pendingErr = nil
	li.finish()
}

// finish fires and clears the end listeners. The lock must be held.
func (li *lineIterator) finish() {
	if li.finished {
		return
	}
	li.finished = true
	for _, l := range li.endListeners {
		l()
	}
	li.endListeners = []func(){}
}
