package model

import (
	"crypto/md5"
	"fmt"
	"slices"
)

const defaultHistoryDepth = 5

// History remembers digests of recent generations for cycle detection
type History struct {
	depth  int
	hashes []string
}

// NewHistory keeps the last depth generations (5 when depth <= 0)
func NewHistory(depth int) *History {
	if depth <= 0 {
		depth = defaultHistoryDepth
	}
	return &History{depth: depth}
}

// GridHash returns an MD5 digest of the grid's cell buffer
func GridHash(g *Grid) string {
	return fmt.Sprintf("%x", md5.Sum(g.View()))
}

// Record adds the grid's current generation to the history
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, GridHash(g))

	if len(h.hashes) > h.depth {
		h.hashes = h.hashes[len(h.hashes)-h.depth:]
	}
}

// IsStagnant reports whether the grid repeats one of the last three recorded
// generations: a still life or an oscillator of period 3 or less
func (h *History) IsStagnant(g *Grid) bool {
	if len(h.hashes) < 3 {
		return false
	}

	return slices.Contains(h.hashes[len(h.hashes)-3:], GridHash(g))
}

// Reset forgets all recorded generations
func (h *History) Reset() {
	h.hashes = h.hashes[:0]
}

// Len returns the number of recorded generations
func (h *History) Len() int {
	return len(h.hashes)
}
