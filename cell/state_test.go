package cell

import (
	"testing"

	"github.com/pkg/errors"
)

func TestZeroValueIsDead(t *testing.T) {
	var s State
	if s != Dead {
		t.Fatalf("zero value = %v, expected Dead", s)
	}
	if s.IsAlive() {
		t.Fatal("zero value reports alive")
	}
}

func TestIsAlive(t *testing.T) {
	if Dead.IsAlive() {
		t.Fatal("Dead.IsAlive() = true")
	}
	if !Alive.IsAlive() {
		t.Fatal("Alive.IsAlive() = false")
	}
}

func TestToggle(t *testing.T) {
	s := Dead
	s.Toggle()
	if s != Alive {
		t.Fatalf("after first toggle got %v, expected Alive", s)
	}
	s.Toggle()
	if s != Dead {
		t.Fatalf("after second toggle got %v, expected Dead", s)
	}
}

func TestFromByte(t *testing.T) {
	tests := []struct {
		in      uint8
		want    State
		wantErr bool
	}{
		{in: 0, want: Dead},
		{in: 1, want: Alive},
		{in: 2, wantErr: true},
		{in: 255, wantErr: true},
	}

	for _, tt := range tests {
		got, err := FromByte(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidStateValue) {
				t.Fatalf("FromByte(%d) err = %v, expected ErrInvalidStateValue", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("FromByte(%d) unexpected err: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("FromByte(%d) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}

func TestStringGlyphsDiffer(t *testing.T) {
	if Dead.String() == Alive.String() {
		t.Fatal("Dead and Alive render identically")
	}
	if len([]rune(Dead.String())) != 1 || len([]rune(Alive.String())) != 1 {
		t.Fatal("expected single glyph per state")
	}
}

func TestCount(t *testing.T) {
	if got := Count(Alive, Dead, Alive); got != 2 {
		t.Fatalf("Count = %d, expected 2", got)
	}
	if got := Count(); got != 0 {
		t.Fatalf("Count() = %d, expected 0", got)
	}

	var n uint8
	n += Dead.Value()
	n += Alive.Value()
	if n != 1 {
		t.Fatalf("summed Value() = %d, expected 1", n)
	}
}
