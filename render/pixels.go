// Package render turns a grid's byte view into pixels for window renderers.
package render

import "image/color"

// FillRGBA converts a 0/1 cell view into RGBA pixels in buf, which must hold
// 4 bytes per cell
func FillRGBA(buf []byte, view []byte, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range view {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// CellAt maps a point on a screen scaled by scale back to grid (row, column)
func CellAt(x, y, scale int) (row, column uint32, ok bool) {
	if x < 0 || y < 0 || scale <= 0 {
		return 0, 0, false
	}
	return uint32(y / scale), uint32(x / scale), true
}
