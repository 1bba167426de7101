package file

import (
	"log"
	"os"

	"github.com/go-sif/bucketsum"
	"github.com/go-sif/bucketsum/errors"
)

// SourceLoader is capable of loading Records from a file
type SourceLoader struct {
	path   string
	source *DataSource
}

// Name returns the path of the file this SourceLoader reads
func (sl *SourceLoader) Name() string {
	return sl.path
}

// Load opens the file and parses it, closing the file when the returned iterator ends
func (sl *SourceLoader) Load(parser bucketsum.Parser) (bucketsum.RecordIterator, error) {
	f, err := os.Open(sl.path)
	if err != nil {
		return nil, &errors.SourceError{Source: sl.path, Err: err}
	}
	ri, err := parser.Parse(f, sl.path, func() {
		err := f.Close()
		if err != nil {
			log.Printf("WARNING: couldn't close file %s: %v", sl.path, err)
		}
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	return ri, nil
}
