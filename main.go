package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/life-engine/utils"
)

// flags bound on the command line; set ones override the config file
type flags struct {
	configPath  string
	pattern     string
	output      string
	rows        int
	cols        int
	generations int
	density     float64
	seed        int64
	workers     int
	print       bool
	progress    bool
}

func (f *flags) bind(fs *flag.FlagSet) {
	fs.StringVar(&f.configPath, "config", "config.json", "path to the JSON configuration")
	fs.StringVar(&f.pattern, "pattern", "", "text board to start from instead of a random fill")
	fs.StringVar(&f.output, "output", "", "file to write the final generation to")
	fs.IntVar(&f.rows, "rows", 0, "rows of a randomly filled board")
	fs.IntVar(&f.cols, "cols", 0, "columns of a randomly filled board")
	fs.IntVar(&f.generations, "generations", 0, "maximum generations, 0 runs until stable or interrupted")
	fs.Float64Var(&f.density, "density", 0, "probability that a randomly filled cell starts alive")
	fs.Int64Var(&f.seed, "seed", 0, "seed for the random fill, 0 picks one")
	fs.IntVar(&f.workers, "workers", 0, "goroutines computing each generation")
	fs.BoolVar(&f.print, "print", false, "print the final generation to stdout")
	fs.BoolVar(&f.progress, "progress", false, "show a progress bar or spinner on stderr")
}

// apply copies every flag that was set on the command line into config
func (f *flags) apply(fs *flag.FlagSet, config *utils.Config) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "pattern":
			config.PatternFile = f.pattern
		case "output":
			config.OutputFile = f.output
		case "rows":
			config.Rows = f.rows
		case "cols":
			config.Cols = f.cols
		case "generations":
			config.MaxGenerations = f.generations
		case "density":
			config.RandomDensity = f.density
		case "seed":
			config.Seed = f.seed
		case "workers":
			config.Workers = f.workers
		}
	})
}

func main() {
	var f flags
	f.bind(flag.CommandLine)
	flag.Parse()

	// Load configuration - fallback to defaults if the file doesn't exist
	config, err := utils.LoadConfig(f.configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("loading configuration: %+v", err)
		}
		fmt.Printf("Using default configuration (%s not found)\n", f.configPath)
		config = utils.DefaultConfig()
	}
	f.apply(flag.CommandLine, &config)
	if err = config.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	engine, err := buildEngine(config)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		engine.NumRows(), engine.NumCols(), engine.Population())

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result := run(ctx, engine, config, newReporter(os.Stderr, config, f.progress))
	displaySummary(os.Stdout, result)

	if config.OutputFile != "" {
		if err = writeResult(result.Final, config.OutputFile); err != nil {
			log.Fatalf("%+v", err)
		}
	}
	if f.print {
		if _, err = result.Final.WriteTo(os.Stdout); err != nil {
			log.Fatalf("writing final generation: %v", err)
		}
	}
}
