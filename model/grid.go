package model

import (
	"iter"
	"math"
	"math/rand/v2"
	"runtime"
	"slices"
	"strings"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/cell"
	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// Grid is a fixed-size toroidal board stored row-major: index = row*width + column.
// Width and height are always non-zero.
//
// A Grid is not safe for concurrent use. Callers that render from one goroutine
// while stepping from another must synchronize externally.
type Grid struct {
	width  uint32
	height uint32
	cells  []cell.State
	next   []cell.State // write buffer for Step, swapped with cells afterwards

	generation uint64
}

// Empty creates a grid with every cell Dead
func Empty(width, height uint32) (*Grid, error) {
	if width == 0 || height == 0 {
		return nil, errors.Wrapf(ErrDimensionMismatch, "[Empty] %dx%d", width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]cell.State, int(width)*int(height)),
	}, nil
}

// FromCells creates a grid from row-major cells. The height is len(cells)/width,
// which must divide exactly. The cells are copied.
func FromCells(width uint32, cells []cell.State) (*Grid, error) {
	height, err := deriveHeight(width, len(cells))
	if err != nil {
		return nil, errors.Wrap(err, "[FromCells]")
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  slices.Clone(cells),
	}, nil
}

// FromBytes is FromCells for raw 0/1 bytes, as handed over by a host binding
func FromBytes(width uint32, data []byte) (*Grid, error) {
	cells := make([]cell.State, len(data))
	for i, b := range data {
		s, err := cell.FromByte(b)
		if err != nil {
			return nil, errors.Wrapf(err, "[FromBytes] cell %d", i)
		}
		cells[i] = s
	}

	g, err := FromCells(width, cells)
	if err != nil {
		return nil, errors.Wrap(err, "[FromBytes]")
	}
	return g, nil
}

// Random creates a grid where each cell is independently Alive with the given
// probability. The same seed and probability always produce the same grid.
func Random(seed uint64, probability float64, width, height uint32) (*Grid, error) {
	if math.IsNaN(probability) || probability < 0 || probability > 1 {
		return nil, errors.Wrapf(ErrInvalidProbability, "[Random] %v", probability)
	}

	g, err := Empty(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[Random]")
	}

	rng := rand.New(rand.NewPCG(seed, 0))
	for i := range g.cells {
		if rng.Float64() < probability {
			g.cells[i] = cell.Alive
		}
	}
	return g, nil
}

func (g *Grid) Width() uint32  { return g.width }
func (g *Grid) Height() uint32 { return g.height }

// Size is the number of cells, width*height
func (g *Grid) Size() int { return len(g.cells) }

// Generation returns the number of steps taken since construction or the last Clear
func (g *Grid) Generation() uint64 { return g.generation }

func (g *Grid) inBounds(row, column uint32) bool {
	return row < g.height && column < g.width
}

// Get returns the state at (row, column); ok is false when out of bounds
func (g *Grid) Get(row, column uint32) (s cell.State, ok bool) {
	if !g.inBounds(row, column) {
		return cell.Dead, false
	}
	return g.cells[utils.ToIndex(row, column, g.width)], true
}

// CellRef returns a pointer to the cell at (row, column), or nil when out of bounds.
// The pointer is invalidated by Step.
func (g *Grid) CellRef(row, column uint32) *cell.State {
	if !g.inBounds(row, column) {
		return nil
	}
	return &g.cells[utils.ToIndex(row, column, g.width)]
}

// Set writes a state at (row, column); out of bounds is a no-op
func (g *Grid) Set(row, column uint32, s cell.State) {
	if ref := g.CellRef(row, column); ref != nil {
		*ref = s
	}
}

// Toggle flips the cell at (row, column); out of bounds is a no-op
func (g *Grid) Toggle(row, column uint32) {
	if ref := g.CellRef(row, column); ref != nil {
		ref.Toggle()
	}
}

// NeighborCount counts the live cells among the eight toroidal neighbors of
// (row, column); ok is false when out of bounds
func (g *Grid) NeighborCount(row, column uint32) (n uint8, ok bool) {
	if !g.inBounds(row, column) {
		return 0, false
	}
	return g.neighbors(g.cells, int(row), int(column)), true
}

// neighbors reads from src, so stepping can count against the frozen generation.
// row and column must be in bounds.
func (g *Grid) neighbors(src []cell.State, row, column int) (count uint8) {
	w, h := int(g.width), int(g.height)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r := (row + dr + h) % h
			c := (column + dc + w) % w
			count += src[r*w+c].Value()
		}
	}
	return
}

// stepRows writes generation n+1 for rows [startRow, endRow) of src into dst
func (g *Grid) stepRows(src, dst []cell.State, startRow, endRow int) {
	w := int(g.width)
	for row := startRow; row < endRow; row++ {
		for column := range w {
			idx := row*w + column
			dst[idx] = rules.NextState(src[idx], g.neighbors(src, row, column))
		}
	}
}

func (g *Grid) writeBuffer() []cell.State {
	if len(g.next) != len(g.cells) {
		g.next = make([]cell.State, len(g.cells))
	}
	return g.next
}

// Step advances every cell by one generation. All neighbor counts are taken
// from the current generation; nothing written during the step is read by it.
func (g *Grid) Step() {
	dst := g.writeBuffer()
	g.stepRows(g.cells, dst, 0, int(g.height))
	g.cells, g.next = dst, g.cells
	g.generation++
}

// StepParallel is Step with rows split across workers goroutines (runtime.NumCPU
// when workers <= 0). It returns once the whole generation is written.
func (g *Grid) StepParallel(workers int) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		eg            errgroup.Group
		src           = g.cells
		dst           = g.writeBuffer()
		height        = int(g.height)
		rowsPerWorker = (height + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, height)
		)
		if startRow >= height {
			break
		}

		eg.Go(func() error {
			g.stepRows(src, dst, startRow, endRow)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return errors.Wrap(err, "[StepParallel] worker failed")
	}

	g.cells, g.next = dst, src
	g.generation++
	return nil
}

// Put stamps p with its top-left corner at (row, column). Pattern cells that
// fall outside the grid are dropped.
func (g *Grid) Put(row, column uint32, p Pattern) {
	for i, s := range p.cells {
		pr, pc := utils.ToPosition(i, p.width)
		r, c := uint64(row)+uint64(pr), uint64(column)+uint64(pc)
		if r >= uint64(g.height) || c >= uint64(g.width) {
			continue
		}
		g.cells[utils.ToIndex(uint32(r), uint32(c), g.width)] = s
	}
}

// Pattern snapshots the grid as a pattern so it can be stamped elsewhere
func (g *Grid) Pattern(name string) Pattern {
	return Pattern{
		name:   name,
		width:  g.width,
		height: g.height,
		cells:  slices.Clone(g.cells),
	}
}

// Population returns the number of live cells
func (g *Grid) Population() uint64 {
	return cell.Count(g.cells...)
}

// All iterates over the cells in row-major order
func (g *Grid) All() iter.Seq2[int, cell.State] {
	return func(yield func(int, cell.State) bool) {
		for i, s := range g.cells {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Each calls fn with a pointer to every cell in row-major order
func (g *Grid) Each(fn func(row, column uint32, s *cell.State)) {
	for i := range g.cells {
		row, column := utils.ToPosition(i, g.width)
		fn(row, column, &g.cells[i])
	}
}

/*
View exposes the cell buffer without copying, for renderers.

Layout: row-major, one byte per cell, 0 for Dead and 1 for Alive, Size() bytes
long. The Grid keeps ownership. The view must be treated as read-only and must
not be used after Step, StepParallel, Put, Toggle, Set, Each or Clear.
*/
func (g *Grid) View() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(g.cells))), len(g.cells))
}

// Clear kills every cell and resets the generation counter
func (g *Grid) Clear() {
	clear(g.cells)
	g.generation = 0
}

// reset resizes the grid for reuse from a pool, keeping the buffers when they fit
func (g *Grid) reset(width, height uint32) error {
	if width == 0 || height == 0 {
		return errors.Wrapf(ErrDimensionMismatch, "[reset] %dx%d", width, height)
	}
	size := int(width) * int(height)
	if cap(g.cells) < size {
		g.cells = make([]cell.State, size)
	} else {
		g.cells = g.cells[:size]
		clear(g.cells)
	}
	g.next = nil
	g.width, g.height = width, height
	g.generation = 0
	return nil
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	return &Grid{
		width:      g.width,
		height:     g.height,
		cells:      slices.Clone(g.cells),
		generation: g.generation,
	}
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil {
		return false
	}
	return g.width == other.width && g.height == other.height && slices.Equal(g.cells, other.cells)
}

// String renders one line of glyphs per row
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(len(g.cells)*len(cell.Alive.String()) + int(g.height))
	for row := range slices.Chunk(g.cells, int(g.width)) {
		for _, s := range row {
			b.WriteString(s.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
