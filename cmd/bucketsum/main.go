// Command bucketsum reads files of key,value lines and prints the sum of the values for each key.
//
//	bucketsum [--strategy sequential|combined|private|shared] [--max-workers N] [files...]
//
// Any malformed line, out-of-range key or unreadable file aborts the run with a
// diagnostic and a non-zero exit status.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		log.Fatal(err)
	}
}
