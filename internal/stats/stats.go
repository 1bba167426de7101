package stats

import (
	"sync"
	"sync/atomic"
	"time"
)

// RunStatistics contains statistics about a running bucketsum job. Records and
// sources are counted atomically, since every worker reports into the same instance.
type RunStatistics struct {
	lifecycleLock    sync.Mutex
	started          bool
	finished         bool
	startTime        time.Time
	totalRuntime     int64
	recordsProcessed int64 // do not access directly; atomic
	sourcesProcessed int64 // do not access directly; atomic
}

// Start triggers statistics tracking, if it hasn't been started already
func (rs *RunStatistics) Start() {
	rs.lifecycleLock.Lock()
	defer rs.lifecycleLock.Unlock()
	if !rs.started {
		rs.started = true
		rs.startTime = time.Now()
	}
}

// Finish completes statistics tracking
func (rs *RunStatistics) Finish() {
	rs.lifecycleLock.Lock()
	defer rs.lifecycleLock.Unlock()
	if rs.started && !rs.finished {
		rs.finished = true
		rs.totalRuntime = time.Since(rs.startTime).Nanoseconds()
	}
}

// EndRecord tracks the folding of a single Record
func (rs *RunStatistics) EndRecord() {
	atomic.AddInt64(&rs.recordsProcessed, 1)
}

// EndSource tracks a source which has been read to completion
func (rs *RunStatistics) EndSource() {
	atomic.AddInt64(&rs.sourcesProcessed, 1)
}

// GetStartTime returns the start time of the run
func (rs *RunStatistics) GetStartTime() time.Time {
	rs.lifecycleLock.Lock()
	defer rs.lifecycleLock.Unlock()
	return rs.startTime
}

// GetRuntime returns the running time of the run
func (rs *RunStatistics) GetRuntime() time.Duration {
	rs.lifecycleLock.Lock()
	defer rs.lifecycleLock.Unlock()
	if rs.finished {
		return time.Duration(rs.totalRuntime)
	}
	if !rs.started {
		return 0
	}
	return time.Since(rs.startTime)
}

// GetNumRecordsProcessed returns the number of Records which have been folded so far
func (rs *RunStatistics) GetNumRecordsProcessed() int64 {
	return atomic.LoadInt64(&rs.recordsProcessed)
}

// GetNumSourcesProcessed returns the number of sources which have been read to completion so far
func (rs *RunStatistics) GetNumSourcesProcessed() int64 {
	return atomic.LoadInt64(&rs.sourcesProcessed)
}
