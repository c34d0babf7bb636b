package utils

import (
	"math"
	"testing"
	"time"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 100, 100*time.Millisecond)
	if !near(s.AveragePopulation, 100) {
		t.Fatalf("first sample average = %v, expected 100", s.AveragePopulation)
	}
	if !near(s.GenerationsPerSecond, 10) {
		t.Fatalf("GenerationsPerSecond = %v, expected 10", s.GenerationsPerSecond)
	}

	s.Update(2, 200, 0)
	if !near(s.AveragePopulation, 110) {
		t.Fatalf("moving average = %v, expected 110", s.AveragePopulation)
	}
	if !near(s.GenerationsPerSecond, 10) {
		t.Fatal("zero duration overwrote the rate")
	}
	if s.TotalGenerations != 2 {
		t.Fatalf("TotalGenerations = %d", s.TotalGenerations)
	}
}
