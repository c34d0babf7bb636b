package utils

// ToIndex maps (row, column) to its row-major offset in a grid of the given width
func ToIndex(row, column, width uint32) int {
	return int(row)*int(width) + int(column)
}

// ToPosition maps a row-major offset back to (row, column). width must be non-zero.
func ToPosition(index int, width uint32) (row, column uint32) {
	w := int(width)
	return uint32(index / w), uint32(index % w)
}
