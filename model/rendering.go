package model

import (
	"bufio"
	"io"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClear = "\033[H\033[2J"
)

// TerminalRenderer draws a grid as blocks of text
type TerminalRenderer struct {
	Out io.Writer
}

// Display renders the grid to Out, two columns per cell
func (r *TerminalRenderer) Display(g *Grid) error {
	var (
		w     = bufio.NewWriter(r.Out)
		view  = g.View()
		width = int(g.Width())
	)
	for i, b := range view {
		if b == 1 {
			w.WriteString(gridPosBlock)
		} else {
			w.WriteString(gridPosEmpty)
		}
		if (i+1)%width == 0 {
			w.WriteByte('\n')
		}
	}
	return w.Flush()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.Out, ansiClear)
	return err
}
