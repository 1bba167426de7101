package bucketsum

import "time"

// RuntimeStatistics facilitates the retrieval of statistics about a bucketsum run
type RuntimeStatistics interface {
	// GetStartTime returns the start time of the run
	GetStartTime() time.Time
	// GetRuntime returns the running time of the run, or the time elapsed so far if it has not finished
	GetRuntime() time.Duration
	// GetNumRecordsProcessed returns the number of Records which have been folded so far, across all sources
	GetNumRecordsProcessed() int64
	// GetNumSourcesProcessed returns the number of sources which have been read to completion so far
	GetNumSourcesProcessed() int64
}
