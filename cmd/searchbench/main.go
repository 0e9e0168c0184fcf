// Command searchbench compares breadth-first, uniform-cost, greedy best-first
// and iterative-deepening search on the Romania road map (or a YAML map) and
// prints the results ranked by cost.
//
//	$ searchbench                      # prompts for start and destination
//	$ searchbench compare -from Arad -to Bucharest
//	$ searchbench run -algo greedy -from Arad -to Bucharest
//	$ searchbench cities
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/katalvlaran/searchbench/config"
	"github.com/katalvlaran/searchbench/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "**err**: %v\n", err)
		os.Exit(1)
	}

	if err = app.New(cfg, os.Stdin, os.Stdout, os.Stderr).Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "**err**: %v\n", err)
		stop()
		os.Exit(1)
	}
}
