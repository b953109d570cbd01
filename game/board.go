package game

type point struct {
	r, c int
}

// neighborOffsets are the eight king-move deltas around a cell.
var neighborOffsets = [8]point{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is a rows x cols grid of cells. Dimensions are fixed for the
// lifetime of the owning Game.
type Board struct {
	rows, cols int
	cells      [][]Cell
}

func newBoard(rows, cols int) *Board {
	board := &Board{rows: rows, cols: cols}
	board.clear()
	return board
}

// clear resets every cell to its zero state.
func (board *Board) clear() {
	board.cells = make([][]Cell, board.rows)
	for r := range board.cells {
		board.cells[r] = make([]Cell, board.cols)
	}
}

func (board *Board) Rows() int {
	return board.rows
}

func (board *Board) Cols() int {
	return board.cols
}

func (board *Board) NumCells() int {
	return board.rows * board.cols
}

// CellAt returns the cell at (r, c), or nil when out of bounds.
func (board *Board) CellAt(r, c int) *Cell {
	if !board.inBounds(r, c) {
		return nil
	}
	return &board.cells[r][c]
}

func (board *Board) inBounds(r, c int) bool {
	return r >= 0 && r < board.rows && c >= 0 && c < board.cols
}

// eachNeighbor calls fn for every in-bounds neighbor of (r, c).
func (board *Board) eachNeighbor(r, c int, fn func(r, c int)) {
	for _, d := range neighborOffsets {
		if nr, nc := r+d.r, c+d.c; board.inBounds(nr, nc) {
			fn(nr, nc)
		}
	}
}

func (board *Board) countAdjacentMines(r, c int) int {
	count := 0
	board.eachNeighbor(r, c, func(nr, nc int) {
		if board.cells[nr][nc].isMine {
			count++
		}
	})
	return count
}
