package memory

import (
	"bytes"
	"fmt"

	"github.com/go-sif/bucketsum"
)

// DataSource is a set of buffers, each of which is an input source
type DataSource struct {
	data [][]byte
}

// CreateDataSource is a factory for DataSources. Each buffer becomes a source named memory-<index>.
func CreateDataSource(data ...[]byte) *DataSource {
	return &DataSource{data}
}

// Analyze returns a SourceMap, describing each buffer as one source
func (ms *DataSource) Analyze() (bucketsum.SourceMap, error) {
	return &SourceMap{
		source: ms,
	}, nil
}

// SourceMap is an iterator producing a sequence of SourceLoaders
type SourceMap struct {
	next   int
	source *DataSource
}

// HasNext returns true iff there is another SourceLoader remaining
func (sm *SourceMap) HasNext() bool {
	return sm.next < len(sm.source.data)
}

// Next returns the next SourceLoader for a buffer
func (sm *SourceMap) Next() bucketsum.SourceLoader {
	result := &SourceLoader{idx: sm.next, source: sm.source}
	sm.next++
	return result
}

// SourceLoader is capable of loading Records from a buffer
type SourceLoader struct {
	idx    int
	source *DataSource
}

// Name returns the name of this SourceLoader's buffer
func (sl *SourceLoader) Name() string {
	return fmt.Sprintf("memory-%d", sl.idx)
}

// Load parses the buffer
func (sl *SourceLoader) Load(parser bucketsum.Parser) (bucketsum.RecordIterator, error) {
	return parser.Parse(bytes.NewReader(sl.source.data[sl.idx]), sl.Name(), nil)
}
