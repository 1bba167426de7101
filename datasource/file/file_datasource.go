package file

import (
	"github.com/go-sif/bucketsum"
)

// FixedInputs are the file names read when no paths are configured explicitly
var FixedInputs = []string{"file-1", "file-2"}

// DataSource is a list of files, each of which is an input source
type DataSource struct {
	paths []string
}

// CreateDataSource is a factory for DataSources. Zero paths produce a DataSource with no sources.
func CreateDataSource(paths ...string) *DataSource {
	toRead := make([]string, len(paths))
	copy(toRead, paths)
	return &DataSource{paths: toRead}
}

// CreateFixedDataSource returns a DataSource reading FixedInputs from the working directory
func CreateFixedDataSource() *DataSource {
	return CreateDataSource(FixedInputs...)
}

// Analyze returns a SourceMap, describing each file as one source, in the order the paths were given
func (fs *DataSource) Analyze() (bucketsum.SourceMap, error) {
	toRead := make([]string, len(fs.paths))
	copy(toRead, fs.paths)
	return &SourceMap{
		files:  toRead,
		source: fs,
	}, nil
}
