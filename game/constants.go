package game

import "fmt"

// Status is the lifecycle state of a single game. It only ever moves
// from Playing to Won or Lost; Reset starts a fresh Playing game.
type Status int

const (
	Playing Status = iota
	Won
	Lost
)

func (status Status) String() string {
	switch status {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Status(%d)", int(status))
	}
}

// MineAdjacent is the AdjacentMines value reserved for cells which are
// themselves mines.
const MineAdjacent = -1

// Board parameters used when the caller supplies none (or supplies
// garbage).
const (
	DefaultRows  = 10
	DefaultCols  = 10
	DefaultMines = 15
)
