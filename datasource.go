package bucketsum

// SourceLoader is a description of how to load the Records of one input source.
// DataSources implement this interface to implement data-loading logic. Each
// SourceLoader is processed in its entirety by a single worker.
type SourceLoader interface {
	Name() string                               // for logging and error reporting
	Load(parser Parser) (RecordIterator, error) // how to actually load data
}

// SourceMap is an interface describing an iterator for SourceLoaders.
// Returned by DataSource.Analyze(), a runner will iterate through
// SourceLoaders and assign each of them to a worker.
type SourceMap interface {
	HasNext() bool
	Next() SourceLoader
}

// DataSource is a collection of input sources, each a named, ordered sequence of Records.
type DataSource interface {
	Analyze() (SourceMap, error)
}
