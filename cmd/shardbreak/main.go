package main

import (
	"fmt"
	"os"

	"github.com/shardbreak/shardbreak/internal/app"
	"github.com/shardbreak/shardbreak/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  shardbreak [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  -layout <name>   Obstacle layout: grid, shards or mixed (default: shards)")
	fmt.Fprintln(os.Stderr, "  -seed <n>        Layout seed, 0 picks one from the clock")
	fmt.Fprintln(os.Stderr, "  -cells <n>       Seed points for the shard tessellation (default: 100)")
	fmt.Fprintln(os.Stderr, "  -relax <n>       Relaxation passes over the shard seeds (default: 3)")
	fmt.Fprintln(os.Stderr, "  -hp-min <n>      Minimum obstacle hit points (default: 1)")
	fmt.Fprintln(os.Stderr, "  -hp-max <n>      Maximum obstacle hit points (default: 4)")
	fmt.Fprintln(os.Stderr, "  -fps <n>         Simulation ticks per second (default: 60)")
	fmt.Fprintln(os.Stderr, "  -no-sound        Disable sound effects")
	fmt.Fprintln(os.Stderr, "  -config <file>   YAML config file; explicit flags win")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls: mouse or arrow keys / a,d move the paddle; q or Esc quits")
}
