package cell

import "github.com/pkg/errors"

// ErrInvalidStateValue is returned when decoding a byte that is neither 0 nor 1
var ErrInvalidStateValue = errors.New("invalid cell state value")

const (
	deadGlyph  = "▯"
	aliveGlyph = "▮"
)

// State is the binary state of a single cell. The zero value is Dead.
//
// A State occupies exactly one byte holding 0 or 1, which is the layout the
// grid's byte view exposes to renderers.
type State uint8

const (
	Dead  State = 0
	Alive State = 1
)

// FromByte decodes a cell state, rejecting anything other than 0 or 1
func FromByte(b uint8) (State, error) {
	switch b {
	case 0:
		return Dead, nil
	case 1:
		return Alive, nil
	}
	return Dead, errors.Wrapf(ErrInvalidStateValue, "[FromByte] got %d", b)
}

// IsAlive reports whether the cell is Alive
func (s State) IsAlive() bool {
	return s == Alive
}

// Toggle flips the cell between Dead and Alive
func (s *State) Toggle() {
	if *s == Alive {
		*s = Dead
		return
	}
	*s = Alive
}

// Value is the cell's contribution to a live-cell count
func (s State) Value() uint8 {
	if s == Alive {
		return 1
	}
	return 0
}

// String renders the state as a single glyph
func (s State) String() string {
	if s == Alive {
		return aliveGlyph
	}
	return deadGlyph
}

// Count sums the live cells in states
func Count(states ...State) (n uint64) {
	for _, s := range states {
		n += uint64(s.Value())
	}
	return
}
