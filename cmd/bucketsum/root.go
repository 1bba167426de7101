package main

import (
	"context"
	"fmt"

	"github.com/go-sif/bucketsum"
	"github.com/go-sif/bucketsum/datasource/file"
	"github.com/go-sif/bucketsum/datasource/parser/dsv"
	"github.com/go-sif/bucketsum/datasource/parser/jsonl"
	"github.com/go-sif/bucketsum/logging"
	"github.com/go-sif/bucketsum/runner"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	fixedInputs bool
	strategy    string
	maxWorkers  int
	format      string
	partials    bool
	logLevel    string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "bucketsum [files...]",
		Short: "Sum key,value lines into 10 buckets",
		Long: `bucketsum reads each file as a sequence of key,value lines, where key is a bucket
index in [0, 10) and value is a non-negative integer, and prints the total of
the values in every bucket across all files.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}
	flags := cmd.Flags()
	flags.BoolVar(&opts.fixedInputs, "fixed-inputs", false, fmt.Sprintf("read %v instead of positional arguments", file.FixedInputs))
	flags.StringVar(&opts.strategy, "strategy", runner.Shared, fmt.Sprintf("accumulation strategy, one of %v", runner.Strategies))
	flags.IntVar(&opts.maxWorkers, "max-workers", 0, "maximum number of files processed concurrently (0 for one worker per file)")
	flags.StringVar(&opts.format, "format", "dsv", "input format, dsv or jsonl")
	flags.BoolVar(&opts.partials, "partials", false, "also print the unmerged result of each file (private strategy only)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "minimum level of log messages written to stderr")
	return cmd
}

func (o *rootOptions) run(cmd *cobra.Command, args []string) error {
	level, err := logging.ParseLogLevel(o.logLevel)
	if err != nil {
		return err
	}
	strategy, err := runner.ParseStrategy(o.strategy)
	if err != nil {
		return err
	}
	parser, err := createParser(o.format)
	if err != nil {
		return err
	}
	source := file.CreateDataSource(args...)
	if o.fixedInputs {
		if len(args) > 0 {
			return fmt.Errorf("--fixed-inputs cannot be combined with file arguments")
		}
		source = file.CreateFixedDataSource()
	}
	logger := logging.NewLogger(cmd.ErrOrStderr(), level)
	if o.partials && strategy != runner.Private {
		logger.Logf(logging.WarnLevel, "bucketsum", "--partials has no effect with strategy %s", strategy)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	res, err := runner.Run(ctx, source, parser, &runner.Options{
		Strategy:   strategy,
		MaxWorkers: o.maxWorkers,
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if o.partials {
		for _, p := range res.Partials {
			fmt.Fprintf(out, "%s: %s\n", p.Source, p.Sums)
		}
	}
	fmt.Fprintln(out, res.Total)
	return nil
}

func createParser(format string) (bucketsum.Parser, error) {
	switch format {
	case "dsv":
		return dsv.CreateParser(&dsv.ParserConf{}), nil
	case "jsonl":
		return jsonl.CreateParser(&jsonl.ParserConf{}), nil
	default:
		return nil, fmt.Errorf("Unknown format %q (expected dsv or jsonl)", format)
	}
}
