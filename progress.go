package main

import (
	"fmt"
	"io"

	"github.com/cheggaaa/pb/v3"
	"github.com/gernest/wow"
	"github.com/gernest/wow/spin"

	"github.com/sheikhrachel/life-engine/utils"
)

// reporter shows the progress of a run after each generation
type reporter interface {
	Step(stats *utils.Stats)
	Finish()
}

// newReporter picks a progress bar for bounded runs, a spinner for unbounded
// ones, or plain status lines when interactive progress is off.
func newReporter(w io.Writer, config utils.Config, interactive bool) reporter {
	switch {
	case !interactive:
		return &lineReporter{w: w, every: config.ReportEvery}
	case config.MaxGenerations > 0:
		bar := pb.New(config.MaxGenerations).SetWriter(w).Start()
		return &barReporter{bar: bar}
	default:
		spinner := wow.New(w, spin.Get(spin.Dots), " simulating")
		spinner.Start()
		return &spinReporter{spinner: spinner, every: max(1, config.ReportEvery)}
	}
}

// lineReporter prints a status line every n generations; n == 0 prints nothing
type lineReporter struct {
	w     io.Writer
	every int
}

func (r *lineReporter) Step(stats *utils.Stats) {
	if r.every == 0 || stats.TotalGenerations%r.every != 0 {
		return
	}
	fmt.Fprintln(r.w, statusLine(stats))
}

func (r *lineReporter) Finish() {}

type barReporter struct {
	bar *pb.ProgressBar
}

func (r *barReporter) Step(stats *utils.Stats) {
	r.bar.Set("suffix", fmt.Sprintf(" | Living: %d", stats.Population))
	r.bar.SetCurrent(int64(stats.TotalGenerations))
}

func (r *barReporter) Finish() {
	r.bar.Finish()
}

type spinReporter struct {
	spinner *wow.Wow
	every   int
}

func (r *spinReporter) Step(stats *utils.Stats) {
	if stats.TotalGenerations%r.every != 0 {
		return
	}
	r.spinner.Text(" " + statusLine(stats))
}

func (r *spinReporter) Finish() {
	r.spinner.Stop()
}

func statusLine(stats *utils.Stats) string {
	return fmt.Sprintf("Gen: %d | Living: %d | Born: %d | Died: %d | %.1f gen/sec | Avg Pop: %.1f",
		stats.TotalGenerations, stats.Population, stats.Births, stats.Deaths,
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
