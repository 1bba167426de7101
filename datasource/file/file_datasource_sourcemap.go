package file

import "github.com/go-sif/bucketsum"

// SourceMap is an iterator producing a sequence of SourceLoaders
type SourceMap struct {
	files  []string
	source *DataSource
}

// HasNext returns true iff there is another SourceLoader remaining
func (sm *SourceMap) HasNext() bool {
	return len(sm.files) > 0
}

// Next returns the next SourceLoader for a file
func (sm *SourceMap) Next() bucketsum.SourceLoader {
	result := &SourceLoader{path: sm.files[0], source: sm.source}
	sm.files = sm.files[1:]
	return result
}
