package game

// Cell is a single board position. Cells do not know their own
// coordinates; position is implied by the board's indexing.
type Cell struct {
	isMine, isRevealed, isFlagged bool

	// adjacentMines is only meaningful once mines have been placed.
	// Mines carry the MineAdjacent sentinel instead of a count.
	adjacentMines int
}

func (cell *Cell) IsMine() bool {
	return cell.isMine
}

func (cell *Cell) IsRevealed() bool {
	return cell.isRevealed
}

func (cell *Cell) IsFlagged() bool {
	return cell.isFlagged
}

// AdjacentMines is the number of mines among the up-to-8 neighbors, or
// MineAdjacent when the cell is a mine itself.
func (cell *Cell) AdjacentMines() int {
	return cell.adjacentMines
}

func (cell *Cell) serialize() byte {
	switch {
	case cell.isMine && cell.isFlagged:
		return 'F'
	case cell.isMine:
		return '*'
	case cell.isFlagged:
		return 'f'
	case cell.isRevealed:
		return '.'
	default:
		return '#'
	}
}

func (cell *Cell) deserialize(c byte) bool {
	switch c {
	case '*':
		cell.isMine = true
	case 'F':
		cell.isMine = true
		cell.isFlagged = true
	case 'f':
		cell.isFlagged = true
	case '.':
		cell.isRevealed = true
	case '#':
	default:
		return false
	}
	return true
}
