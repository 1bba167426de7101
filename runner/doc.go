// Package runner executes a bucketsum job: it loads every source of a DataSource, folds
// their Records into accumulators according to a Strategy, and reduces the result into
// a single Sums. Concurrent strategies run exactly one worker per source (unless bounded
// by Options.MaxWorkers) and wait for all of them before producing a Result. The first
// failing worker cancels its siblings, and all failures are reported as one error.
package runner
