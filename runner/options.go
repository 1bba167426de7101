package runner

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-sif/bucketsum/logging"
)

// Strategy describes how Records from multiple sources are folded together
type Strategy = string

const (
	// Sequential processes sources one at a time into a single plain accumulator
	Sequential Strategy = "sequential"
	// Combined processes sources one at a time into a single accumulator of wrapped values
	Combined Strategy = "combined"
	// Private processes each source in its own worker, into a private accumulator,
	// and reduces the private accumulators once every worker has finished
	Private Strategy = "private"
	// Shared processes each source in its own worker, into one accumulator with per-slot locks
	Shared Strategy = "shared"
)

// Strategies lists every supported Strategy
var Strategies = []Strategy{Sequential, Combined, Private, Shared}

// ParseStrategy validates the name of a Strategy
func ParseStrategy(s string) (Strategy, error) {
	for _, strategy := range Strategies {
		if strings.EqualFold(s, strategy) {
			return strategy, nil
		}
	}
	return "", fmt.Errorf("Unknown strategy %q (expected one of %s)", s, strings.Join(Strategies, ", "))
}

// Options are options for a run
type Options struct {
	Strategy   Strategy        // how sources are folded together. Defaults to Shared.
	MaxWorkers int             // the maximum number of concurrent workers. Defaults to 0, one worker per source.
	Logger     *logging.Logger // where progress is logged. Defaults to warnings and above on stderr.
}

func ensureDefaultOptionsValues(opts *Options) error {
	if len(opts.Strategy) == 0 {
		opts.Strategy = Shared
	}
	strategy, err := ParseStrategy(opts.Strategy)
	if err != nil {
		return err
	}
	opts.Strategy = strategy
	if opts.MaxWorkers < 0 {
		return fmt.Errorf("Options.MaxWorkers must not be negative")
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewLogger(os.Stderr, logging.WarnLevel)
	}
	return nil
}
