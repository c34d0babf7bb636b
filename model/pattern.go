package model

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/cell"
	"github.com/sheikhrachel/go-life/utils"
)

// Pattern is an immutable block of cells that can be stamped into a Grid with Put
type Pattern struct {
	name   string
	width  uint32
	height uint32
	cells  []cell.State
}

// NewPattern builds a pattern from row-major cells; the height is derived from width
func NewPattern(name string, width uint32, cells []cell.State) (Pattern, error) {
	height, err := deriveHeight(width, len(cells))
	if err != nil {
		return Pattern{}, errors.Wrapf(err, "[NewPattern] %q", name)
	}
	return Pattern{
		name:   name,
		width:  width,
		height: height,
		cells:  slices.Clone(cells),
	}, nil
}

// MustPattern is NewPattern for package-level pattern data; it panics on bad dimensions
func MustPattern(name string, width uint32, cells ...cell.State) Pattern {
	p, err := NewPattern(name, width, cells)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Pattern) Name() string   { return p.name }
func (p Pattern) Width() uint32  { return p.width }
func (p Pattern) Height() uint32 { return p.height }

// Get returns the pattern cell at (row, column)
func (p Pattern) Get(row, column uint32) (cell.State, bool) {
	if row >= p.height || column >= p.width {
		return cell.Dead, false
	}
	return p.cells[utils.ToIndex(row, column, p.width)], true
}

// Cells returns a copy of the pattern's row-major cells
func (p Pattern) Cells() []cell.State {
	return slices.Clone(p.cells)
}

// Population returns the number of live cells in the pattern
func (p Pattern) Population() uint64 {
	return cell.Count(p.cells...)
}

func deriveHeight(width uint32, size int) (uint32, error) {
	if width == 0 || size == 0 {
		return 0, errors.Wrapf(ErrDimensionMismatch, "width %d with %d cells", width, size)
	}
	if size%int(width) != 0 {
		return 0, errors.Wrapf(ErrDimensionMismatch, "%d cells do not divide into rows of %d", size, width)
	}
	return uint32(size / int(width)), nil
}
