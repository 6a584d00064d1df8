package utils

import (
	"math"
	"testing"
	"time"
)

func TestStatsElapsed(t *testing.T) {
	s := NewStats()
	s.StartTime = time.Now().Add(-time.Minute)
	if got := s.Elapsed(); got < time.Minute {
		t.Fatalf("elapsed %v, want at least a minute", got)
	}
}

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 100, 500*time.Millisecond)
	if s.AveragePopulation != 100 || s.GenerationsPerSecond != 2 {
		t.Fatalf("got avg %.1f at %.1f gen/sec", s.AveragePopulation, s.GenerationsPerSecond)
	}

	s.Update(2, 200, 0)
	if math.Abs(s.AveragePopulation-110) > 1e-9 || s.TotalGenerations != 2 || s.Population != 200 {
		t.Fatalf("got avg %.1f, gen %d, pop %d", s.AveragePopulation, s.TotalGenerations, s.Population)
	}

	s.RecordDelta(3, 4)
	if s.Births != 3 || s.Deaths != 4 {
		t.Fatalf("got %d births, %d deaths", s.Births, s.Deaths)
	}
}
