package model_test

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/cell"
	"github.com/sheikhrachel/go-life/model"
)

func mustPattern(t *testing.T, name string, width uint32, cells ...cell.State) model.Pattern {
	t.Helper()
	p, err := model.NewPattern(name, width, cells)
	if err != nil {
		t.Fatalf("NewPattern(%q): %v", name, err)
	}
	return p
}

func TestNewPattern(t *testing.T) {
	p := mustPattern(t, "row", 3, A, D, A, D, A, D)
	if p.Name() != "row" || p.Width() != 3 || p.Height() != 2 {
		t.Fatalf("got %q %dx%d", p.Name(), p.Width(), p.Height())
	}
	if p.Population() != 3 {
		t.Fatalf("Population = %d, expected 3", p.Population())
	}
	if s, ok := p.Get(1, 1); !ok || s != A {
		t.Fatalf("Get(1,1) = %v,%v", s, ok)
	}
	if _, ok := p.Get(2, 0); ok {
		t.Fatal("Get(2,0) in bounds on a 3x2 pattern")
	}
}

func TestNewPatternDimensionMismatch(t *testing.T) {
	for _, tt := range []struct {
		width uint32
		cells []cell.State
	}{
		{2, []cell.State{A, A, A}},
		{0, []cell.State{A}},
		{1, nil},
	} {
		if _, err := model.NewPattern("bad", tt.width, tt.cells); !errors.Is(err, model.ErrDimensionMismatch) {
			t.Fatalf("NewPattern(width=%d, %d cells) err = %v", tt.width, len(tt.cells), err)
		}
	}
}

func TestPatternIsImmutable(t *testing.T) {
	src := []cell.State{A, D}
	p := mustPattern(t, "pair", 2, src...)
	src[0] = D

	out := p.Cells()
	out[1] = A

	if s, _ := p.Get(0, 0); s != A {
		t.Fatal("pattern shares its input slice")
	}
	if s, _ := p.Get(0, 1); s != D {
		t.Fatal("pattern shares its Cells() result")
	}
}

func TestMustPatternPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustPattern accepted mismatched dimensions")
		}
	}()
	model.MustPattern("bad", 2, A, A, A)
}
