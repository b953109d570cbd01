package game

import (
	"github.com/gammazero/deque"

	"github.com/vzhuk/gomines/util/collections"
)

// cascadeEmpty floods outward from a just-revealed blank cell,
// revealing every connected zero-adjacency cell plus the ring of
// numbered cells bordering the region. An explicit worklist keeps the
// traversal flat no matter how large the board is.
//
// Every dequeued cell re-checks its own state, so flagged and already
// revealed cells drop out of the flood. Blank cells have no mine
// neighbors, which means a mine can never be swept up; the mine check
// stays as a guard all the same.
func (game *Game) cascadeEmpty(r, c int) {
	board := game.board

	visited := make(collections.Set[point])
	visited.Add(point{r, c})

	var queue deque.Deque[point]
	board.eachNeighbor(r, c, func(nr, nc int) {
		queue.PushBack(point{nr, nc})
	})

	for queue.Len() > 0 {
		p := queue.PopFront()
		if visited.Contains(p) {
			continue
		}
		visited.Add(p)

		cell := board.CellAt(p.r, p.c)
		if cell.isRevealed || cell.isFlagged || cell.isMine {
			continue
		}

		cell.isRevealed = true
		game.cellsRevealed++

		if cell.adjacentMines == 0 {
			board.eachNeighbor(p.r, p.c, func(nr, nc int) {
				if next := (point{nr, nc}); !visited.Contains(next) {
					queue.PushBack(next)
				}
			})
		}
	}
}
