// Package patterns holds well-known seed patterns for stamping into a grid.
package patterns

import (
	"slices"

	"github.com/sheikhrachel/go-life/cell"
	"github.com/sheikhrachel/go-life/model"
)

const (
	A = cell.Alive
	D = cell.Dead
)

// Glider is the 3x3 spaceship; it moves one cell down and right every 4 generations
func Glider() model.Pattern {
	return model.MustPattern("glider", 3,
		D, D, A,
		A, D, A,
		D, A, A,
	)
}

// Block is the 2x2 still life
func Block() model.Pattern {
	return model.MustPattern("block", 2,
		A, A,
		A, A,
	)
}

// Blinker is the 3x3 period-2 oscillator
func Blinker() model.Pattern {
	return model.MustPattern("blinker", 3,
		D, A, D,
		D, A, D,
		D, A, D,
	)
}

// Toad is a period-2 oscillator
func Toad() model.Pattern {
	return model.MustPattern("toad", 4,
		D, D, D, D,
		D, A, A, A,
		A, A, A, D,
		D, D, D, D,
	)
}

// Beacon is a period-2 oscillator made of two diagonal blocks
func Beacon() model.Pattern {
	return model.MustPattern("beacon", 4,
		A, A, D, D,
		A, A, D, D,
		D, D, A, A,
		D, D, A, A,
	)
}

// Beehive is a still life
func Beehive() model.Pattern {
	return model.MustPattern("beehive", 4,
		D, A, A, D,
		A, D, D, A,
		D, A, A, D,
	)
}

var library = map[string]func() model.Pattern{
	"glider":  Glider,
	"block":   Block,
	"blinker": Blinker,
	"toad":    Toad,
	"beacon":  Beacon,
	"beehive": Beehive,
}

// Lookup returns a fresh copy of the named pattern
func Lookup(name string) (model.Pattern, bool) {
	factory, ok := library[name]
	if !ok {
		return model.Pattern{}, false
	}
	return factory(), true
}

// Names lists the available patterns in sorted order
func Names() []string {
	names := make([]string, 0, len(library))
	for name := range library {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
