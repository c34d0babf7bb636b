package model_test

import (
	"testing"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/patterns"
)

func TestHistoryDetectsStillLife(t *testing.T) {
	g := mustEmpty(t, 6, 6)
	g.Put(1, 1, patterns.Beehive())
	h := model.NewHistory(0)

	for range 3 {
		if h.IsStagnant(g) && h.Len() < 3 {
			t.Fatal("stagnant before three generations were recorded")
		}
		h.Record(g)
		g.Step()
	}
	if !h.IsStagnant(g) {
		t.Fatal("still life not detected")
	}
}

func TestHistoryDetectsOscillator(t *testing.T) {
	g := mustEmpty(t, 6, 6)
	g.Put(1, 1, patterns.Toad())
	h := model.NewHistory(5)

	for range 3 {
		h.Record(g)
		g.Step()
	}
	if !h.IsStagnant(g) {
		t.Fatal("period-2 oscillator not detected")
	}
}

func TestHistoryGlider(t *testing.T) {
	g := mustEmpty(t, 16, 16)
	g.Put(0, 0, patterns.Glider())
	h := model.NewHistory(5)

	for range 8 {
		h.Record(g)
		g.Step()
		if h.IsStagnant(g) {
			t.Fatalf("moving glider flagged stagnant at generation %d", g.Generation())
		}
	}
	if h.Len() != 5 {
		t.Fatalf("Len = %d, expected history capped at 5", h.Len())
	}

	h.Reset()
	if h.Len() != 0 {
		t.Fatal("Reset kept entries")
	}
}

func TestGridHash(t *testing.T) {
	a := mustEmpty(t, 4, 4)
	b := mustEmpty(t, 4, 4)
	if model.GridHash(a) != model.GridHash(b) {
		t.Fatal("equal grids hash differently")
	}
	b.Toggle(2, 2)
	if model.GridHash(a) == model.GridHash(b) {
		t.Fatal("different grids hash equally")
	}
}
