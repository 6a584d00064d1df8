package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/life-engine/loader"
	"github.com/sheikhrachel/life-engine/model"
	"github.com/sheikhrachel/life-engine/utils"
)

// outcome describes how a run ended
type outcome struct {
	Generations int
	Population  int
	Reason      string
	Final       *model.Generation
	Elapsed     time.Duration
}

// buildEngine sets up the engine and its first generation from the pattern
// file, or from a random fill when no pattern is configured
func buildEngine(config utils.Config) (*model.Engine, error) {
	opts := []model.Option{model.WithWorkers(config.Workers)}
	if config.UseMemoryPool {
		opts = append(opts, model.WithPool(model.NewGridPool()))
	}
	if config.Seed != 0 {
		opts = append(opts, model.WithSeed(config.Seed))
	}

	if config.PatternFile != "" {
		engine := model.New(opts...)
		if err := loader.LoadFile(engine, config.PatternFile); err != nil {
			return nil, errors.Wrap(err, "[buildEngine] failed to load pattern")
		}
		return engine, nil
	}

	engine := model.NewSized(config.Rows, config.Cols, opts...)
	engine.RandomInitialize(config.RandomDensity)
	return engine, nil
}

// checkStopConditions determines if the run should end after the latest generation
func checkStopConditions(engine *model.Engine, history *model.History, config utils.Config) (bool, string) {
	if engine.Population() == 0 {
		return true, "extinction"
	}
	if !config.StopOnStable {
		return false, ""
	}
	if engine.IsStillLife() {
		return true, "still life"
	}
	if period := history.Period(engine.Fingerprint()); period > 1 {
		return true, fmt.Sprintf("oscillator (period %d)", period)
	}
	return false, ""
}

// run advances the engine until a stop condition holds, the generation limit
// is reached or ctx is cancelled
func run(ctx context.Context, engine *model.Engine, config utils.Config, rep reporter) outcome {
	var (
		history    = model.NewHistory(config.HistorySize)
		stats      = utils.NewStats()
		generation = 0
		reason     = "generation limit reached"
	)
	defer rep.Finish()

	if stop, why := checkStopConditions(engine, history, config); stop {
		return finish(engine, stats, generation, why)
	}

	for config.MaxGenerations == 0 || generation < config.MaxGenerations {
		if ctx.Err() != nil {
			reason = "interrupted"
			break
		}

		history.Record(engine.Fingerprint())

		frameStart := time.Now()
		engine.Advance()
		generation++

		stats.Update(generation, engine.Population(), time.Since(frameStart))
		stats.RecordDelta(engine.Delta())
		rep.Step(stats)

		if stop, why := checkStopConditions(engine, history, config); stop {
			reason = why
			break
		}
	}

	return finish(engine, stats, generation, reason)
}

func finish(engine *model.Engine, stats *utils.Stats, generation int, reason string) outcome {
	return outcome{
		Elapsed:     stats.Elapsed(),
		Generations: generation,
		Population:  engine.Population(),
		Reason:      reason,
		Final:       engine.Generation(),
	}
}

// writeResult stores the final generation in the text format
func writeResult(g *model.Generation, filename string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "[writeResult] failed to create file: %+v", filename)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "[writeResult] failed to close file: %+v", filename)
		}
	}()

	if _, err = g.WriteTo(f); err != nil {
		return errors.Wrapf(err, "[writeResult] failed to write file: %+v", filename)
	}
	return nil
}

// displaySummary shows how the run ended
func displaySummary(w io.Writer, result outcome) {
	fmt.Fprintf(w, "Stopped after %d generations: %s\n", result.Generations, result.Reason)

	boundingInfo := "none"
	if b, ok := result.Final.BoundingBox(); ok {
		boundingInfo = fmt.Sprintf("rows %d-%d, cols %d-%d (%d cells)",
			b.MinRow, b.MaxRow, b.MinCol, b.MaxCol, b.Area())
	}
	fmt.Fprintf(w, "Grid: %dx%d | Living: %d | Bounding box: %s | Runtime: %.2fs\n",
		result.Final.Rows(), result.Final.Cols(), result.Population, boundingInfo, result.Elapsed.Seconds())
}
