package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sheikhrachel/life-engine/loader"
	"github.com/sheikhrachel/life-engine/model"
	"github.com/sheikhrachel/life-engine/utils"
)

func testConfig() utils.Config {
	config := utils.DefaultConfig()
	config.Workers = 2
	config.ReportEvery = 0
	return config
}

func quietReporter() reporter {
	return &lineReporter{w: &bytes.Buffer{}}
}

func engineFrom(board string) *model.Engine {
	e := model.New()
	loader.LoadString(e, board)
	return e
}

func TestRunStopsOnStillLife(t *testing.T) {
	e := engineFrom("4 4\n....\n.OO.\n.OO.\n....\n")
	result := run(context.Background(), e, testConfig(), quietReporter())

	if result.Reason != "still life" || result.Generations != 1 {
		t.Fatalf("got %q after %d generations", result.Reason, result.Generations)
	}
	if result.Population != 4 {
		t.Fatalf("block population = %d, want 4", result.Population)
	}
}

func TestRunStopsOnOscillator(t *testing.T) {
	e := engineFrom("5 5\n.....\n..O..\n..O..\n..O..\n.....\n")
	result := run(context.Background(), e, testConfig(), quietReporter())

	if result.Reason != "oscillator (period 2)" || result.Generations != 2 {
		t.Fatalf("got %q after %d generations", result.Reason, result.Generations)
	}
}

func TestRunStopsOnExtinction(t *testing.T) {
	e := engineFrom("3 3\nO..\n...\n...\n")
	result := run(context.Background(), e, testConfig(), quietReporter())

	if result.Reason != "extinction" || result.Generations != 1 || result.Population != 0 {
		t.Fatalf("got %q after %d generations, population %d", result.Reason, result.Generations, result.Population)
	}
}

func TestRunHonoursGenerationLimit(t *testing.T) {
	config := testConfig()
	config.StopOnStable = false
	config.MaxGenerations = 7

	e := engineFrom("5 5\n.....\n..O..\n..O..\n..O..\n.....\n")
	result := run(context.Background(), e, config, quietReporter())

	if result.Reason != "generation limit reached" || result.Generations != 7 {
		t.Fatalf("got %q after %d generations", result.Reason, result.Generations)
	}
	// odd generation counts leave the blinker horizontal
	if !result.Final.Get(2, 1) || !result.Final.Get(2, 3) || result.Final.Get(1, 2) {
		t.Fatalf("unexpected final board:\n%s", result.Final)
	}
}

func TestRunInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	config := testConfig()
	config.MaxGenerations = 0
	e := engineFrom("5 5\n.....\n..O..\n..O..\n..O..\n.....\n")
	result := run(ctx, e, config, quietReporter())

	if result.Reason != "interrupted" || result.Generations != 0 {
		t.Fatalf("got %q after %d generations", result.Reason, result.Generations)
	}
}

func TestBuildEngineFromPattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), "block.txt")
	if err := os.WriteFile(path, []byte("4 4\n....\n.OO.\n.OO.\n....\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	config := testConfig()
	config.PatternFile = path
	e, err := buildEngine(config)
	if err != nil {
		t.Fatal(err)
	}
	if e.NumRows() != 4 || e.NumCols() != 4 || e.Population() != 4 {
		t.Fatalf("got %dx%d with %d live cells", e.NumRows(), e.NumCols(), e.Population())
	}

	config.PatternFile = filepath.Join(t.TempDir(), "missing.txt")
	if _, err = buildEngine(config); err == nil {
		t.Fatal("expected an error for a missing pattern")
	}
}

func TestBuildEngineRandom(t *testing.T) {
	config := testConfig()
	config.Rows, config.Cols = 9, 11
	config.RandomDensity = 1
	config.Seed = 3

	e, err := buildEngine(config)
	if err != nil {
		t.Fatal(err)
	}
	if e.NumRows() != 9 || e.NumCols() != 11 || e.Population() != 99 {
		t.Fatalf("got %dx%d with %d live cells", e.NumRows(), e.NumCols(), e.Population())
	}
}

func TestWriteResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	g := loader.Parse("2 3\nO..\n..O\n")
	if err := writeResult(g, path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "2 3\nO..\n..O\n" {
		t.Fatalf("got %q", data)
	}
}

func TestLineReporter(t *testing.T) {
	var buf bytes.Buffer
	rep := &lineReporter{w: &buf, every: 2}
	stats := utils.NewStats()
	for gen := 1; gen <= 4; gen++ {
		stats.Update(gen, 10, 0)
		rep.Step(stats)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "Gen: 2 ") || !strings.HasPrefix(lines[1], "Gen: 4 ") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestDisplaySummary(t *testing.T) {
	var buf bytes.Buffer
	displaySummary(&buf, outcome{
		Generations: 3,
		Population:  0,
		Reason:      "extinction",
		Final:       model.NewGeneration(2, 2),
		Elapsed:     1500 * time.Millisecond,
	})

	out := buf.String()
	if !strings.Contains(out, "Stopped after 3 generations: extinction") ||
		!strings.Contains(out, "Bounding box: none") ||
		!strings.Contains(out, "Runtime: 1.50s") {
		t.Fatalf("got %q", out)
	}
}
