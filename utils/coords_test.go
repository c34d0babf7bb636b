package utils

import "testing"

func TestIndexPositionRoundTrip(t *testing.T) {
	for width := uint32(1); width <= 12; width++ {
		for row := uint32(0); row < 7; row++ {
			for column := uint32(0); column < width; column++ {
				index := ToIndex(row, column, width)
				r, c := ToPosition(index, width)
				if r != row || c != column {
					t.Fatalf("width=%d: (%d,%d) -> %d -> (%d,%d)", width, row, column, index, r, c)
				}
			}
		}
	}
}

func TestToIndexRowMajor(t *testing.T) {
	if got := ToIndex(2, 3, 10); got != 23 {
		t.Fatalf("ToIndex(2,3,10) = %d, expected 23", got)
	}
	if r, c := ToPosition(23, 10); r != 2 || c != 3 {
		t.Fatalf("ToPosition(23,10) = (%d,%d), expected (2,3)", r, c)
	}
}
