package rules

import "github.com/sheikhrachel/go-life/cell"

/*
NextState applies Conway's Game of Life rules to a single cell.

  - A live cell with fewer than two live neighbors dies (underpopulation).
  - A live cell with two or three live neighbors lives on.
  - A live cell with more than three live neighbors dies (overpopulation).
  - A dead cell with exactly three live neighbors becomes alive (reproduction).

Every other cell keeps its state. liveNeighbors is at most 8 when it comes from
a neighbor count; larger values fall through the same table.
*/
func NextState(current cell.State, liveNeighbors uint8) cell.State {
	switch {
	case current.IsAlive() && liveNeighbors < 2:
		return cell.Dead
	case current.IsAlive() && liveNeighbors <= 3:
		return cell.Alive
	case current.IsAlive():
		return cell.Dead
	case liveNeighbors == 3:
		return cell.Alive
	}
	return current
}
