// Command membw measures memory read bandwidth by having several threads
// concurrently sum large private buffers.
//
//	membw                                  # 8 threads × 32 MiB × 1000 passes
//	membw -threads=16 -strategy=paired     # more threads, two-lane summation
//	membw -output-format=table -progress   # host info, progress bar, tables
//	membw -runs=5 -warmup=1 -output-format=json
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/utkarsh5026/membw/internal/runner"
)

func main() {
	log.SetFlags(0)

	flags := runner.DefineFlags(flag.CommandLine)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := runner.Execute(ctx, flags, os.Stdout, os.Stderr); err != nil {
		stop()
		log.Fatal(runner.Red.Sprintf("membw: %v", err))
	}
}
