// Package accumulators provides the strategies for folding Records into NumBuckets slots:
// Sum for exclusively-owned slots, Combined for slots of a wrapped value type with
// a custom combine operation, and Locked for slots shared between concurrent workers.
package accumulators
