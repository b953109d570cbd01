package game

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"gopkg.in/yaml.v2"
)

// BoardSnapshot is a YAML-serializable picture of a board, one byte
// per cell with rows joined by newlines:
//
//	#  hidden safe cell     .  revealed safe cell
//	f  flagged safe cell    *  unflagged mine
//	F  flagged mine
//
// Snapshots exist for reproducible boards (fixture files, bug
// reports), not for saving games in progress.
type BoardSnapshot struct {
	Seed            uint64 `yaml:"seed,omitempty"`
	SerializedBoard string `yaml:"board,flow"`
}

// LoadSnapshot parses a YAML snapshot document.
func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &snapshot, nil
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}
	return string(out)
}

// Game builds a ready game from the snapshot. Mines sit where the
// bytes put them, adjacency is precomputed, reveal and flag marks are
// applied, and the usual first-reveal placement is already disarmed.
// Reset on the returned game keeps the dimensions and mine count but
// deals a fresh board.
func (snapshot *BoardSnapshot) Game() (*Game, error) {
	rows := strings.Split(strings.TrimRight(snapshot.SerializedBoard, "\n"), "\n")
	numRows, numCols := len(rows), len(rows[0])
	if numCols == 0 {
		return nil, fmt.Errorf("snapshot board is empty")
	}

	mines := 0
	for i, row := range rows {
		if len(row) != numCols {
			return nil, fmt.Errorf("snapshot row %d is %d cells wide, want %d", i, len(row), numCols)
		}
		for j := 0; j < len(row); j++ {
			if c := row[j]; c == '*' || c == 'F' {
				mines++
			}
		}
	}
	// A board needs at least one safe cell, or the win condition holds
	// before anything is revealed.
	if mines == numRows*numCols {
		return nil, fmt.Errorf("snapshot board has no safe cell")
	}

	var game *Game
	if snapshot.Seed != 0 {
		game = NewWithRand(numRows, numCols, mines, rand.New(rand.NewPCG(snapshot.Seed, 0)))
	} else {
		game = New(numRows, numCols, mines)
	}
	game.placed = true

	for r, row := range rows {
		for c := 0; c < len(row); c++ {
			cell := game.board.CellAt(r, c)
			if !cell.deserialize(row[c]) {
				return nil, fmt.Errorf("snapshot row %d col %d: unknown cell %q", r, c, row[c])
			}
			if cell.isRevealed {
				game.cellsRevealed++
			}
			if cell.isFlagged {
				game.numFlags++
			}
		}
	}

	game.calculateAdjacency()
	game.checkWin()
	return game, nil
}

// Snapshot captures the current position. Taken before the first
// reveal it records an all-hidden board with no mines, since mines do
// not exist until then.
func (game *Game) Snapshot() *BoardSnapshot {
	var builder strings.Builder
	for r := 0; r < game.board.rows; r++ {
		if r > 0 {
			builder.WriteByte('\n')
		}
		for c := 0; c < game.board.cols; c++ {
			builder.WriteByte(game.board.cells[r][c].serialize())
		}
	}
	return &BoardSnapshot{SerializedBoard: builder.String()}
}
