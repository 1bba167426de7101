package runner

import (
	"github.com/go-sif/bucketsum"
)

// Result is the outcome of a successful run
type Result struct {
	Total    bucketsum.Sums              // the merged sums across every source
	Partials []Partial                   // the private, unmerged sums of each source (Private strategy only), in source order
	Stats    bucketsum.RuntimeStatistics // statistics about the run
}

// Partial is the private result of a single worker
type Partial struct {
	Source string
	Sums   bucketsum.Sums
}
