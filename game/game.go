// Package game implements the minesweeper board engine: deferred mine
// placement (so the first reveal is always safe), adjacency counting,
// cascade reveals across blank regions, flag bookkeeping and win/loss
// detection. The engine renders nothing and holds no references to any
// front end; a view drives it through RevealCell, ToggleFlag and Reset
// and redraws from the read accessors.
package game

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/vzhuk/gomines/util/collections"
)

// Log is the package logger. The command layer configures it at
// startup; placement details only show up at debug level.
var Log = logrus.StandardLogger()

// Game owns one board and its state machine. Callers are expected to
// construct it with sane dimensions (rows > 0, cols > 0,
// 0 <= mines < rows*cols); the engine does not re-validate.
//
// A Game is not safe for concurrent use.
type Game struct {
	board *Board

	status        Status
	mineTarget    int // requested mines, restored by Reset
	numMines      int // mines actually on the board once placed
	numFlags      int
	cellsRevealed int
	gameOver      bool
	placed        bool // mines are placed lazily, on the first reveal

	rng *rand.Rand
}

// New creates a game with entropy-seeded mine placement.
func New(rows, cols, mines int) *Game {
	return NewWithRand(rows, cols, mines, rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(),
		new(maphash.Hash).Sum64(),
	)))
}

// NewWithRand creates a game whose mine placement draws from rng,
// making board generation reproducible.
func NewWithRand(rows, cols, mines int, rng *rand.Rand) *Game {
	game := &Game{
		board:      newBoard(rows, cols),
		mineTarget: mines,
		rng:        rng,
	}
	game.Reset()
	return game
}

// Reset returns the game to a fresh Playing state on the same
// dimensions. Mines are not placed here; placement happens on the next
// reveal, anchored to the clicked cell.
func (game *Game) Reset() {
	game.board.clear()
	game.status = Playing
	game.numMines = game.mineTarget
	game.numFlags = 0
	game.cellsRevealed = 0
	game.gameOver = false
	game.placed = false
}

// RevealCell opens the cell at (r, c), cascading across blank regions,
// and reports whether anything changed. Out-of-bounds, already
// revealed and flagged cells are no-ops, as is any call after the game
// has ended. A flagged cell must be unflagged before it can be
// revealed.
func (game *Game) RevealCell(r, c int) bool {
	if game.gameOver || !game.board.inBounds(r, c) {
		return false
	}
	cell := game.board.CellAt(r, c)
	if cell.isRevealed || cell.isFlagged {
		return false
	}

	if !game.placed {
		game.placeMines(r, c)
		game.placed = true
	}

	cell.isRevealed = true
	game.cellsRevealed++

	if cell.isMine {
		game.status = Lost
		game.gameOver = true
		Log.WithFields(logrus.Fields{"r": r, "c": c}).Debug("mine hit")
		return true
	}

	if cell.adjacentMines == 0 {
		game.cascadeEmpty(r, c)
	}

	game.checkWin()
	return true
}

// ToggleFlag flips the flag on the hidden cell at (r, c) and reports
// whether anything changed. Flags are advisory: they gate reveals but
// play no part in win detection.
func (game *Game) ToggleFlag(r, c int) bool {
	if game.gameOver || !game.board.inBounds(r, c) {
		return false
	}
	cell := game.board.CellAt(r, c)
	if cell.isRevealed {
		return false
	}

	cell.isFlagged = !cell.isFlagged
	if cell.isFlagged {
		game.numFlags++
	} else {
		game.numFlags--
	}
	return true
}

// RevealAllMines is the end-of-game display pass for the lost board:
// every unflagged mine becomes revealed, and every flag sitting on a
// non-mine is removed. The wrongly flagged cell itself stays hidden,
// which leaves the front end free to present the bad guess however it
// likes.
func (game *Game) RevealAllMines() {
	for r := 0; r < game.board.rows; r++ {
		for c := 0; c < game.board.cols; c++ {
			cell := &game.board.cells[r][c]
			switch {
			case cell.isMine && !cell.isFlagged:
				cell.isRevealed = true
			case !cell.isMine && cell.isFlagged:
				cell.isFlagged = false
				game.numFlags--
			}
		}
	}
}

// placeMines scatters mines across the board, excluding the safe zone
// around the anchor cell (the cell itself plus its neighbors) so the
// first reveal never loses and usually opens an area. When the safe
// zone leaves fewer candidate cells than requested, every candidate
// becomes a mine and the effective mine count shrinks to match, which
// keeps the win condition and the remaining-mines counter honest.
func (game *Game) placeMines(safeR, safeC int) {
	board := game.board

	// Any mines from an earlier deal are wiped first.
	for r := 0; r < board.rows; r++ {
		for c := 0; c < board.cols; c++ {
			board.cells[r][c].isMine = false
		}
	}

	safeZone := make(collections.Set[point])
	safeZone.Add(point{safeR, safeC})
	board.eachNeighbor(safeR, safeC, func(r, c int) {
		safeZone.Add(point{r, c})
	})

	// Candidates are gathered in row-major order so placement is
	// reproducible for a given rng.
	candidates := make([]point, 0, board.NumCells()-safeZone.Len())
	for r := 0; r < board.rows; r++ {
		for c := 0; c < board.cols; c++ {
			if p := (point{r, c}); !safeZone.Contains(p) {
				candidates = append(candidates, p)
			}
		}
	}

	game.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	numMines := min(game.mineTarget, len(candidates))
	for _, p := range candidates[:numMines] {
		board.cells[p.r][p.c].isMine = true
	}
	game.numMines = numMines

	game.calculateAdjacency()

	Log.WithFields(logrus.Fields{
		"placed":     numMines,
		"requested":  game.mineTarget,
		"candidates": len(candidates),
	}).Debug("mines placed")
}

func (game *Game) calculateAdjacency() {
	board := game.board
	for r := 0; r < board.rows; r++ {
		for c := 0; c < board.cols; c++ {
			cell := &board.cells[r][c]
			if cell.isMine {
				cell.adjacentMines = MineAdjacent
			} else {
				cell.adjacentMines = board.countAdjacentMines(r, c)
			}
		}
	}
}

// checkWin flips the game to Won once every non-mine cell has been
// revealed, then flags the still-hidden mines for display. Mines
// already shown keep their revealed state instead of gaining a flag;
// a cell is never revealed and flagged at once. Flag accuracy is
// irrelevant to winning; only the reveal count matters.
func (game *Game) checkWin() {
	if game.status != Playing {
		return
	}
	if game.cellsRevealed != game.board.NumCells()-game.numMines {
		return
	}

	game.status = Won
	game.gameOver = true
	for r := 0; r < game.board.rows; r++ {
		for c := 0; c < game.board.cols; c++ {
			cell := &game.board.cells[r][c]
			if cell.isMine && !cell.isRevealed {
				cell.isFlagged = true
			}
		}
	}
	game.numFlags = game.numMines
	Log.WithField("revealed", game.cellsRevealed).Debug("board cleared")
}

func (game *Game) Status() Status {
	return game.status
}

// IsOver reports whether the game has ended, either way.
func (game *Game) IsOver() bool {
	return game.gameOver
}

// Board exposes the grid for display. Cells reached through it only
// offer read accessors; all mutation goes through the Game.
func (game *Game) Board() *Board {
	return game.board
}

func (game *Game) Rows() int {
	return game.board.rows
}

func (game *Game) Cols() int {
	return game.board.cols
}

// NumMines is the number of mines on the board, which can be lower
// than the requested count on boards too small to hold it.
func (game *Game) NumMines() int {
	return game.numMines
}

// MinesRemaining is the mine count minus flags placed. Over-flagging
// drives it negative on purpose; the front end shows the negative
// number as feedback.
func (game *Game) MinesRemaining() int {
	return game.numMines - game.numFlags
}
