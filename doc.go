// Package bucketsum contains the core components of bucketsum, a small tool which folds
// key,value records from one or more sources into a fixed array of summing buckets.
// This root package defines the types which are employed by every strategy, and is
// an overview of the key concepts: Records, Sums, Accumulators and DataSources.
package bucketsum
